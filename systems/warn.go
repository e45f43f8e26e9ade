package systems

import (
	"log"
	"sync"
)

// warnOnce logs each distinct warning message a single time so a degraded
// collaborator does not flood the log every tick.
type warnOnce struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func (w *warnOnce) Warn(format string, err error) {
	msg := err.Error()
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.seen == nil {
		w.seen = make(map[string]struct{})
	}
	if _, ok := w.seen[msg]; ok {
		return
	}
	w.seen[msg] = struct{}{}
	log.Printf(format, err)
}
