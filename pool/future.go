package pool

import "sync"

// Future is the awaitable result of a job executed by a Pool. The result,
// the readiness flag and the waker share one lock, so a waker registered
// concurrently with completion is either seen by the worker or the poll
// observes the result.
type Future[T any] struct {
	mu       sync.Mutex
	result   T
	ready    bool
	consumed bool
	waker    Waker
}

func (f *Future[T]) Poll(wake Waker) (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var zero T
	if !f.ready {
		f.waker = wake
		return zero, false
	}
	if f.consumed {
		panic("pool: future polled after completion")
	}
	f.consumed = true
	result := f.result
	f.result = zero
	return result, true
}

// complete publishes the result once and wakes the registered consumer
func (f *Future[T]) complete(result T) {
	f.mu.Lock()
	if f.ready {
		f.mu.Unlock()
		panic("pool: future completed twice")
	}
	f.result = result
	f.ready = true
	wake := f.waker
	f.waker = nil
	f.mu.Unlock()

	if wake != nil {
		wake()
	}
}
