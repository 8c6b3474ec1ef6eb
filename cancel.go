package rendezvous

import "github.com/tevino/abool"

// cancelToken is a caller-owned side record with two states, New or
// Cancelled. It is the sole mechanism that resolves the race
// between a cancellation hook firing and the corresponding Send or
// Receive call completing its own queue registration.
//
// Queue membership alone can't carry this: a waiter may not be in the
// queue yet when cancellation fires. And the flag alone can't carry it
// either: a waiter already queued still needs to be dequeued and
// resumed. Both the channel's critical section and this flag have to
// agree, which is why markCancelled is a compare-and-swap rather than a
// plain write.
type cancelToken struct {
	flag *abool.AtomicBool
}

func newCancelToken() cancelToken {
	return cancelToken{flag: abool.New()}
}

// isCancelled is the read the main Send/Receive path performs right
// before it would otherwise register into a wait queue.
func (t cancelToken) isCancelled() bool {
	return t.flag.IsSet()
}

// markCancelled performs the New -> Cancelled transition at most once,
// however many times a cancellation hook fires for this token.
func (t cancelToken) markCancelled() {
	t.flag.SetToIf(false, true)
}
