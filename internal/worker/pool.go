// Package worker provides a bounded worker pool that fans work items out to
// a fixed number of goroutines and collects their results on one channel.
package worker

import (
	"sync"
	"sync/atomic"
)

// ProcessFunc handles one work item. It runs on a worker goroutine, so any
// state it touches must be private to that item or safe for concurrent use.
type ProcessFunc[T, R any] func(item T) R

type poolConfig struct {
	numWorkers int
	bufferSize int
}

// PoolOption configures a Pool.
type PoolOption func(*poolConfig)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(c *poolConfig) {
		if n >= 1 {
			c.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(c *poolConfig) {
		if size >= 1 {
			c.bufferSize = size
		}
	}
}

// Pool runs ProcessFunc over submitted items on numWorkers goroutines.
// Results arrive in completion order, not submission order.
type Pool[T, R any] struct {
	numWorkers  int
	workChan    chan T
	resultChan  chan R
	processFunc ProcessFunc[T, R]
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// NewPool creates a pool. Default: 1 worker, buffer size of 10.
func NewPool[T, R any](processFunc ProcessFunc[T, R], opts ...PoolOption) *Pool[T, R] {
	cfg := poolConfig{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Pool[T, R]{
		numWorkers:  cfg.numWorkers,
		workChan:    make(chan T, cfg.bufferSize),
		resultChan:  make(chan R, cfg.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[T, R]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool[T, R]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool[T, R]) Submit(item T) {
	p.workChan <- item
}

// Stop makes workers skip the remaining queued items.
func (p *Pool[T, R]) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool[T, R]) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers, then closes the
// result channel. Call it from a separate goroutine when the caller is
// also draining Results.
func (p *Pool[T, R]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool[T, R]) Results() <-chan R {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool[T, R]) NumWorkers() int {
	return p.numWorkers
}
