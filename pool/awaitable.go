// Package pool runs CPU-bound work on persistent worker goroutines and hands
// results back as awaitables that a cooperative loop can poll without
// blocking.
package pool

// Waker asks the owner of an awaitable to poll it again
type Waker func()

// Awaitable is work in progress. Poll returns the result and true once the
// work is done; otherwise it keeps the waker, which is called when polling
// again can make progress. A completed result is handed out exactly once and
// polling past that point panics. An awaitable has a single consumer.
type Awaitable[T any] interface {
	Poll(wake Waker) (T, bool)
}

// Await drives the awaitable from a goroutine that is free to block
func Await[T any](a Awaitable[T]) T {
	signal := make(chan struct{}, 1)
	wake := func() {
		select {
		case signal <- struct{}{}:
		default:
		}
	}
	for {
		if v, ok := a.Poll(wake); ok {
			return v
		}
		<-signal
	}
}

type ready[T any] struct {
	value    T
	consumed bool
}

// Ready returns an awaitable that is already complete
func Ready[T any](value T) Awaitable[T] {
	return &ready[T]{value: value}
}

func (r *ready[T]) Poll(Waker) (T, bool) {
	if r.consumed {
		panic("pool: awaitable polled after completion")
	}
	r.consumed = true
	return r.value, true
}

type joined[T, R any] struct {
	parts     []Awaitable[T]
	results   []T
	done      []bool
	remaining int
	fold      func([]T) R
	consumed  bool
}

// Join awaits every part concurrently and folds their results, in the order
// of parts, once all of them completed
func Join[T, R any](parts []Awaitable[T], fold func([]T) R) Awaitable[R] {
	return &joined[T, R]{
		parts:     parts,
		results:   make([]T, len(parts)),
		done:      make([]bool, len(parts)),
		remaining: len(parts),
		fold:      fold,
	}
}

func (j *joined[T, R]) Poll(wake Waker) (R, bool) {
	if j.consumed {
		panic("pool: awaitable polled after completion")
	}
	for i, part := range j.parts {
		if j.done[i] {
			continue
		}
		if v, ok := part.Poll(wake); ok {
			j.results[i] = v
			j.done[i] = true
			j.remaining--
		}
	}
	if j.remaining > 0 {
		var zero R
		return zero, false
	}
	j.consumed = true
	return j.fold(j.results), true
}
