package event

import (
	"errors"
	"sync"
	"time"
)

// ErrDisconnected reports that the consumer side of a Queue is gone.
// Producers treat it as a clean stop signal, not a session failure.
var ErrDisconnected = errors.New("event queue disconnected")

const defaultCapacity = 64

// Queue is the ordered multi-producer, single-consumer channel between the
// host, the input reader and the reactor. Per-producer send order is
// preserved; cross-producer interleaving follows arrival order.
type Queue struct {
	ch        chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewQueue returns a queue ready for producers and one consumer.
func NewQueue() *Queue {
	return &Queue{
		ch:   make(chan Event, defaultCapacity),
		done: make(chan struct{}),
	}
}

// Send delivers ev to the consumer, blocking while the queue is full.
// After Close it returns ErrDisconnected instead of blocking forever.
func (q *Queue) Send(ev Event) error {
	select {
	case <-q.done:
		return ErrDisconnected
	default:
	}
	select {
	case q.ch <- ev:
		return nil
	case <-q.done:
		return ErrDisconnected
	}
}

// TryRecv takes the next event without blocking.
func (q *Queue) TryRecv() (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
		return nil, false
	}
}

// RecvTimeout waits up to d for the next event. It lets the reactor idle
// at a bounded latency instead of spinning on TryRecv.
func (q *Queue) RecvTimeout(d time.Duration) (Event, bool) {
	select {
	case ev := <-q.ch:
		return ev, true
	default:
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case ev := <-q.ch:
		return ev, true
	case <-timer.C:
		return nil, false
	}
}

// Close marks the consumer as gone. Pending events stay readable; new
// sends fail with ErrDisconnected. Safe to call more than once.
func (q *Queue) Close() {
	q.closeOnce.Do(func() { close(q.done) })
}
