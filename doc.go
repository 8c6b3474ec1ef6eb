// Package rendezvous implements an unbuffered, single-element hand-off
// channel between producer and consumer goroutines.
//
// Unlike a buffered or zero-capacity native Go channel, a rendezvous
// Channel treats the element transfer as a two-step protocol: the
// producer is only ever resumed with a handle to a waiting consumer, and
// it is the producer who then delivers the element directly into that
// consumer's own suspension. The channel's internal state -- a single
// mutex-guarded phase plus two ordered waiter queues -- never changes
// hands while an element is in flight, and it is never locked across a
// resume.
//
// Send, Receive, and Finish are the only three operations. Cancellation
// is cooperative and carried entirely by the context.Context passed to
// Send and Receive: cancelling it before the call has been paired
// resolves the call with no element delivered, exactly as if the channel
// had been closed out from under it. A cancellation that arrives after
// the call was paired is ignored, and the hand-off completes.
package rendezvous
