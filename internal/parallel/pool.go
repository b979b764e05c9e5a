// Package parallel runs independent tile computations on a shared set of
// worker goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of workers, each with its own queue. An idle worker
// steals from the other queues before it blocks.
//
// Run never waits on a task that nobody has started: the caller executes
// every task still unclaimed after submission itself. A task may therefore
// call Run again, on the same pool, without deadlocking.
type Pool struct {
	workers int
	queues  []chan *task
	done    chan struct{}
	wg      sync.WaitGroup
	closed  atomic.Bool
}

type task struct {
	fn      func()
	claimed atomic.Bool
	wg      *sync.WaitGroup
}

// run executes the task unless another goroutine already claimed it.
func (t *task) run() {
	if !t.claimed.CompareAndSwap(false, true) {
		return
	}
	defer t.wg.Done()
	t.fn()
}

// NewPool starts a pool with the given number of workers. Zero or a
// negative count selects GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan *task, workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan *task, depth)
	}
	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

var defaultPool = sync.OnceValue(func() *Pool { return NewPool(0) })

// Default returns the process-wide pool, started on first use.
func Default() *Pool {
	return defaultPool()
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case t := <-own:
			t.run()
			continue
		case <-p.done:
			return
		default:
		}
		if t := p.steal(id); t != nil {
			t.run()
			continue
		}
		select {
		case t := <-own:
			t.run()
		case <-p.done:
			return
		}
	}
}

func (p *Pool) steal(id int) *task {
	for i := 1; i < p.workers; i++ {
		select {
		case t := <-p.queues[(id+i)%p.workers]:
			return t
		default:
		}
	}
	return nil
}

// Run executes every function of fns and returns when all have finished.
// A single function, or any function submitted after Close, runs on the
// calling goroutine.
func (p *Pool) Run(fns []func()) {
	switch {
	case len(fns) == 0:
		return
	case len(fns) == 1 || p.closed.Load():
		for _, fn := range fns {
			fn()
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(fns))
	tasks := make([]*task, len(fns))
	for i, fn := range fns {
		t := &task{fn: fn, wg: &wg}
		tasks[i] = t
		select {
		case p.queues[i%p.workers] <- t:
		default:
			// Queue full; the loop below picks it up.
		}
	}
	for _, t := range tasks {
		t.run()
	}
	wg.Wait()
}

// Close stops the workers. Queued tasks are still completed by their
// Run callers.
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
