package pool

import (
	"sync"

	"power4/meta"

	"github.com/rs/zerolog/log"
)

// Pool is a fixed set of worker goroutines draining a FIFO job queue. The
// queue is unbounded so submitting never blocks. A panicking job is not
// recovered and brings the process down.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	jobs    []func()
	closed  bool
	size    int
	workers sync.WaitGroup
}

var (
	sharedPool *Pool
	once       sync.Once
)

// Shared returns the process-wide pool, started on first use
func Shared() *Pool {
	once.Do(func() {
		sharedPool = New(meta.DEFAULT_WORKERS)
	})
	return sharedPool
}

func New(workers int) *Pool {
	if workers <= 0 {
		panic("pool needs at least one worker")
	}
	p := &Pool{size: workers}
	p.cond = sync.NewCond(&p.mu)
	for i := 0; i < workers; i++ {
		p.workers.Add(1)
		go p.work()
	}
	log.Debug().Msgf("started pool with %d workers", workers)
	return p
}

// Execute queues the work and returns its future immediately
func Execute[T any](p *Pool, work func() T) *Future[T] {
	f := &Future[T]{}
	p.submit(func() {
		f.complete(work())
	})
	return f
}

func (p *Pool) submit(job func()) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		panic("pool: submit on a closed pool")
	}
	p.jobs = append(p.jobs, job)
	p.mu.Unlock()

	p.cond.Signal()
}

func (p *Pool) work() {
	defer p.workers.Done()

	for {
		p.mu.Lock()
		for len(p.jobs) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.jobs) == 0 { // Closed and drained
			p.mu.Unlock()
			return
		}
		job := p.jobs[0]
		p.jobs[0] = nil
		p.jobs = p.jobs[1:]
		p.mu.Unlock()

		job()
	}
}

// Close lets the workers finish the queued jobs, then stops them
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.cond.Broadcast()
	p.workers.Wait()
	log.Debug().Msgf("stopped pool with %d workers", p.size)
}

func (p *Pool) Size() int {
	return p.size
}

// Pending returns the number of queued jobs not yet picked by a worker
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.jobs)
}
