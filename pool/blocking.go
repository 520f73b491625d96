package pool

// Blocking runs a single blocking computation on its own goroutine. It does
// not suspend: the first poll starts the computation and every poll waits
// for it to finish, so it must not be polled from a loop that has other
// work to interleave.
type Blocking[T any] struct {
	fn     func() T
	handle chan T
	done   bool
}

func NewBlocking[T any](fn func() T) *Blocking[T] {
	return &Blocking[T]{fn: fn}
}

func (b *Blocking[T]) Poll(Waker) (T, bool) {
	if b.done {
		panic("pool: blocking task polled after completion")
	}
	if b.handle == nil {
		fn := b.fn
		b.fn = nil
		handle := make(chan T, 1)
		b.handle = handle
		go func() {
			handle <- fn()
		}()
	}

	result := <-b.handle
	b.handle = nil
	b.done = true
	return result, true
}
