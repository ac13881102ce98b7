package resilience

import (
	"sync"

	"github.com/sourcegraph/conc/panics"
)

// SingleFlight deduplicates concurrent calls for the same key. Callers that
// arrive while a call is in flight share its result.
type SingleFlight[T any] struct {
	mu    sync.Mutex
	calls map[string]*call[T]
}

type call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do runs fn once per key at a time. shared reports whether the result
// came from another caller's execution. A panic in fn is returned as an
// error to every waiter.
func (g *SingleFlight[T]) Do(key string, fn func() (T, error)) (val T, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call[T])
	}
	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}

	c := &call[T]{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	var catcher panics.Catcher
	catcher.Try(func() {
		c.val, c.err = fn()
	})
	if recovered := catcher.Recovered(); recovered != nil {
		c.err = recovered.AsError()
	}

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	close(c.done)

	return c.val, c.err, false
}
