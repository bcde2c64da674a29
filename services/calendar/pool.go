package calendar

import "context"

// gate bounds the number of in-flight calendar RPCs so one slow provider
// call cannot serialize or starve unrelated chat sessions.
type gate struct {
	sem chan struct{}
}

func newGate(size int) *gate {
	if size <= 0 {
		size = 1
	}
	return &gate{sem: make(chan struct{}, size)}
}

func (g *gate) acquire(ctx context.Context) error {
	select {
	case g.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *gate) release() {
	<-g.sem
}
