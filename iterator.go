package rendezvous

// Iterator is a thin consumer-side view over a Channel's Receive: Next
// calls Receive and stops permanently on the first false, without
// touching the channel again. Termination is sticky per Iterator
// instance -- a channel that outlives one exhausted Iterator can still
// be read through a fresh one, right up until Finish makes every future
// Receive return false too.
type Iterator[T any] struct {
	ch   *Channel[T]
	done bool
}

// Iterator returns a consumer handle over c.
func (c *Channel[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{ch: c}
}

// Next returns the next element, or (zero, false) once the channel has
// finished, this call was cancelled, or a prior call already saw false.
func (it *Iterator[T]) Next(ctx Context) (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	v, ok := it.ch.Receive(ctx)
	if !ok {
		it.done = true
	}
	return v, ok
}
