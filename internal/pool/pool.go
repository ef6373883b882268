// Package pool implements the thread source of spec.md §4.A: a bounded
// pool of worker goroutines draining a concurrent FIFO in arrival order.
package pool

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Task is an opaque unit of work submitted to the pool. It carries its own
// result slot (the afio Operation's task adapter), so Task itself returns
// nothing.
type Task func()

// Pool is a bounded worker pool draining a FIFO queue in arrival order,
// sized so it can exceed the expected maximum number of concurrent
// synchronous syscalls (spec §5).
type Pool struct {
	sem *semaphore.Weighted
	n   int64

	mu      sync.Mutex
	queue   []Task
	depth   int
	running sync.WaitGroup

	closeOnce sync.Once
	closed    chan struct{}
}

// New constructs a Pool with n worker slots. n must be >= 1.
func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	return &Pool{
		sem:    semaphore.NewWeighted(int64(n)),
		n:      int64(n),
		closed: make(chan struct{}),
	}
}

// Enqueue appends task to the FIFO; the pool drains it in arrival order as
// soon as a worker slot is free.
func (p *Pool) Enqueue(task Task) {
	p.mu.Lock()
	p.queue = append(p.queue, task)
	p.depth++
	p.mu.Unlock()
	p.running.Add(1)
	go p.dispatchOne()
}

// dispatchOne waits for a free slot (honoring the pool's size bound, not
// goroutine count) then pops and runs the oldest queued task.
func (p *Pool) dispatchOne() {
	defer p.running.Done()
	if err := p.sem.Acquire(context.Background(), 1); err != nil {
		return
	}
	defer p.sem.Release(1)

	p.mu.Lock()
	var task Task
	if len(p.queue) > 0 {
		task = p.queue[0]
		p.queue = p.queue[1:]
		p.depth--
	}
	p.mu.Unlock()

	if task != nil {
		task()
	}
}

// Depth returns the number of tasks currently queued (not yet running),
// for diagnostics.
func (p *Pool) Depth() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.depth
}

// Shutdown blocks until the queue drains and every outstanding task has
// run. Clean shutdown: workers exit once nothing is outstanding.
func (p *Pool) Shutdown() {
	p.closeOnce.Do(func() { close(p.closed) })
	p.running.Wait()
}
