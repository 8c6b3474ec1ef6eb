package rendezvous

// receiverHandle is a resume handle that delivers an element back into
// the paired consumer's own suspension. It's what a producer's
// registration is resolved with when a rendezvous is found: a typed
// wrapper directing a value into a specific suspended party, narrowed
// down to exactly the one thing the protocol needs -- deliver, once,
// into the one receiver we were handed.
type receiverHandle[T any] struct {
	inner *suspension[T]
}

// deliver hands x to the consumer whose suspension this handle wraps.
// This call happens outside the channel's critical section -- it's the
// second step of the two-step hand-off, and is why element transport
// never contends with, or can deadlock against, the channel's mutex.
func (h receiverHandle[T]) deliver(x T) {
	h.inner.resolve(some(x))
}
