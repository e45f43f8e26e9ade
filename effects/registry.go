// Package effects runs the particle effects seeded by emission programs.
// Descriptors are registered once in a Registry; an Emitter spawns instances
// of them and simulates their particles on the CPU.
package effects

import (
	"errors"
	"fmt"
	"sync"

	"github.com/automoto/tracer/shared/emission"
)

var ErrUnknownHandle = errors.New("effects: unknown handle")

// Handle refers to a registered descriptor. The zero Handle is never valid.
type Handle uint32

func (h Handle) Valid() bool {
	return h != 0
}

// Registry stores compiled programs in an arena indexed by Handle-1.
type Registry struct {
	mu       sync.RWMutex
	programs []*emission.Program
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register compiles d and returns its handle.
func (r *Registry) Register(d emission.Descriptor) (Handle, error) {
	p, err := emission.Compile(d)
	if err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs = append(r.programs, p)
	return Handle(len(r.programs)), nil
}

// Program returns the compiled program for h.
func (r *Registry) Program(h Handle) (*emission.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h == 0 || int(h) > len(r.programs) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return r.programs[h-1], nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.programs)
}
