package practice

import "sync"

// Dispatcher runs best-effort background calls. Tasks dispatched before
// Close run to completion even if the dispatching controller is torn
// down; after Close no new tasks are accepted. It is shared across
// controllers and owned by the caller, not by any one session.
type Dispatcher struct {
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher creates an open Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Go runs fn on its own goroutine. Returns false if the dispatcher has
// been closed and fn was not started.
func (d *Dispatcher) Go(fn func()) bool {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return false
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		fn()
	}()
	return true
}

// Close stops the dispatcher from accepting new tasks. Tasks already
// dispatched keep running.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
}

// Wait blocks until all dispatched tasks have finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
