package runtime

import (
	"context"
	"sync"
)

// Readiness is a one-shot flag: it goes from not-ready to ready once and stays there.
type Readiness struct {
	once  sync.Once
	ready chan struct{}
}

func NewReadiness() *Readiness {
	return &Readiness{ready: make(chan struct{})}
}

func (r *Readiness) MarkReady() {
	r.once.Do(func() { close(r.ready) })
}

func (r *Readiness) IsReady() bool {
	select {
	case <-r.ready:
		return true
	default:
		return false
	}
}

// Wait blocks until the flag is set or ctx is done.
func (r *Readiness) Wait(ctx context.Context) error {
	select {
	case <-r.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
