// Package preview coordinates interactive regeneration: a new request may
// be issued before a prior one completes, and only the most recently issued
// request's result is ever applied. Superseded results are dropped on
// arrival; no cancellation signal is sent to in-flight work.
package preview

import (
	"log"
	"sync"
)

// Coordinator applies last-writer-wins over asynchronously produced values.
type Coordinator[T any] struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	latest  T
	has     bool
}

func New[T any]() *Coordinator[T] {
	return &Coordinator[T]{}
}

// Begin reserves the next request sequence number.
func (c *Coordinator[T]) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// Deliver applies a finished result unless a newer request has been issued
// since, regardless of whether that request's own result has landed yet.
// It reports whether the result was kept.
func (c *Coordinator[T]) Deliver(seq uint64, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.issued || seq <= c.applied {
		return false
	}
	c.applied = seq
	c.latest = v
	c.has = true
	return true
}

// Submit runs fn on its own goroutine under a fresh sequence number and
// delivers its result. The returned sequence identifies the request.
func (c *Coordinator[T]) Submit(fn func() T) uint64 {
	seq := c.Begin()
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("preview build %d panicked: %v; result dropped", seq, r)
			}
		}()
		c.Deliver(seq, fn())
	}()
	return seq
}

// Latest returns the most recently applied result, its sequence number and
// whether any result has landed yet.
func (c *Coordinator[T]) Latest() (T, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latest, c.applied, c.has
}
