package effects

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/automoto/tracer/shared/emission"
	"github.com/automoto/tracer/shared/gamemath"
	"github.com/google/uuid"
)

// Placement is the 2D transform an instance emits from.
type Placement struct {
	Position gamemath.Vec2
	Rotation float64
}

// Place maps a local sample into world space: the local Z is dropped, the rest
// is rotated by the placement rotation and translated.
func (p Placement) Place(s emission.Sample) (pos, vel gamemath.Vec2) {
	pos = p.Position.Add(gamemath.V(s.Position.X, s.Position.Y).Rotate(p.Rotation))
	vel = gamemath.V(s.Velocity.X, s.Velocity.Y).Rotate(p.Rotation)
	return pos, vel
}

type Particle struct {
	Position gamemath.Vec2
	Velocity gamemath.Vec2
	Age      float64
}

// Instance is one running effect.
type Instance struct {
	ID        uuid.UUID
	Handle    Handle
	Placement Placement
	Z         float64

	program   *emission.Program
	rng       *rand.Rand
	particles []Particle
	pending   float64 // fractional particles owed by the rate spawner
	stopped   bool
}

func (in *Instance) Particles() []Particle {
	return in.particles
}

// Stopped reports whether the instance has stopped emitting.
func (in *Instance) Stopped() bool {
	return in.stopped
}

// Style returns the colour and size of p from the descriptor's curves.
func (in *Instance) Style(p Particle) (rgba [4]float64, size float64) {
	d := in.program.Descriptor()
	f := p.Age / d.ParticleLifetime
	return d.Color.At(f), d.Size.At(f)
}

func (in *Instance) emit(n int) {
	d := in.program.Descriptor()
	for i := 0; i < n && len(in.particles) < d.Capacity; i++ {
		pos, vel := in.Placement.Place(in.program.Sample(in.rng))
		in.particles = append(in.particles, Particle{Position: pos, Velocity: vel})
	}
}

// Emitter owns every live instance. It is driven from a single system and is
// not safe for concurrent use.
type Emitter struct {
	registry  *Registry
	instances map[uuid.UUID]*Instance
	seed      uint64
	spawned   uint64
}

// NewEmitter creates an emitter whose instances draw from PCG streams derived
// from seed.
func NewEmitter(registry *Registry, seed uint64) *Emitter {
	return &Emitter{
		registry:  registry,
		instances: make(map[uuid.UUID]*Instance),
		seed:      seed,
	}
}

// Spawn starts an instance of h at p on layer z. The descriptor's burst is
// emitted immediately.
func (e *Emitter) Spawn(h Handle, p Placement, z float64) (uuid.UUID, error) {
	program, err := e.registry.Program(h)
	if err != nil {
		return uuid.Nil, fmt.Errorf("effects: spawn: %w", err)
	}
	e.spawned++
	in := &Instance{
		ID:        uuid.New(),
		Handle:    h,
		Placement: p,
		Z:         z,
		program:   program,
		rng:       rand.New(rand.NewPCG(e.seed, e.spawned)),
	}
	in.emit(program.Descriptor().Spawner.Burst)
	e.instances[in.ID] = in
	return in.ID, nil
}

// Move updates where a following instance emits from.
func (e *Emitter) Move(id uuid.UUID, p Placement) bool {
	in, ok := e.instances[id]
	if !ok {
		return false
	}
	in.Placement = p
	return true
}

// Stop ends emission; the instance is dropped once its particles expire.
func (e *Emitter) Stop(id uuid.UUID) {
	if in, ok := e.instances[id]; ok {
		in.stopped = true
	}
}

// Despawn removes an instance and its particles immediately.
func (e *Emitter) Despawn(id uuid.UUID) {
	delete(e.instances, id)
}

// Retain stops every instance whose id is not in live.
func (e *Emitter) Retain(live map[uuid.UUID]struct{}) {
	for id, in := range e.instances {
		if _, ok := live[id]; !ok {
			in.stopped = true
		}
	}
}

// Advance ages and moves particles by dt, then runs the rate spawners.
func (e *Emitter) Advance(dt float64) {
	for id, in := range e.instances {
		d := in.program.Descriptor()

		alive := in.particles[:0]
		for _, p := range in.particles {
			p.Age += dt
			if p.Age >= d.ParticleLifetime {
				continue
			}
			p.Position = p.Position.Add(p.Velocity.MulScalar(dt))
			alive = append(alive, p)
		}
		in.particles = alive

		if !in.stopped && d.Spawner.Rate > 0 {
			in.pending += d.Spawner.Rate * dt
			n := int(in.pending)
			in.pending -= float64(n)
			in.emit(n)
		}

		if in.stopped && len(in.particles) == 0 {
			delete(e.instances, id)
		}
	}
}

func (e *Emitter) Instance(id uuid.UUID) (*Instance, bool) {
	in, ok := e.instances[id]
	return in, ok
}

func (e *Emitter) Len() int {
	return len(e.instances)
}

// ParticleCount is the total number of live particles.
func (e *Emitter) ParticleCount() int {
	n := 0
	for _, in := range e.instances {
		n += len(in.particles)
	}
	return n
}

// Instances returns the live instances ordered by Z, back to front.
func (e *Emitter) Instances() []*Instance {
	out := make([]*Instance, 0, len(e.instances))
	for _, in := range e.instances {
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Z != out[j].Z {
			return out[i].Z < out[j].Z
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}
