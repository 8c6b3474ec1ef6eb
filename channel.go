package rendezvous

import (
	"context"
	"fmt"
	"sync"
)

// phase is the channel's tagged-union state.
type phase uint8

const (
	phaseIdle phase = iota
	phaseSendersWaiting
	phaseReceiversWaiting
	phaseFinished
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseSendersWaiting:
		return "senders-waiting"
	case phaseReceiversWaiting:
		return "receivers-waiting"
	case phaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Channel is a rendezvous channel: Send blocks until a Receive is there
// to take the element, and Receive blocks until a Send offers one. There
// is no buffer -- every successful transfer is a direct hand-off between
// one producer and one consumer.
//
// A Channel is safe for concurrent use by any number of goroutines. All
// state transitions happen under a single mutex (mu), which is only ever
// held for pointer and ordered-set bookkeeping -- never across a resume,
// a callback, or the element copy itself.
type Channel[T any] struct {
	mu         sync.Mutex
	phase      phase
	generation uint64
	senders    *waiterQueue[receiverHandle[T]]
	receivers  *waiterQueue[T]
	cfg        Config

	// raceHookReceive/raceHookSend, when non-nil, are invoked with the
	// in-flight cancelToken and generation immediately after a
	// cancellation hook has been registered but before the dispatch
	// critical section is entered. They exist only so tests can
	// deterministically force the exact interleaving of a cancellation
	// firing in the window between establish and registration, instead
	// of leaving it to goroutine scheduling luck; production Channels
	// never set them.
	raceHookReceive func(cancelToken, uint64)
	raceHookSend    func(cancelToken, uint64)

	// raceHookDeliver, when non-nil, is invoked in Send after a waiting
	// sender has been resumed with a receiver handle but before it calls
	// deliver on that handle -- the window between a sender's dequeue
	// and the element actually changing hands. It exists so tests can
	// deterministically force Finish into that exact window instead of
	// leaving it to goroutine scheduling luck; production Channels never
	// set it.
	raceHookDeliver func()
}

// New creates a new Channel in the Idle phase with generation 0.
func New[T any](opts ...Option[T]) *Channel[T] {
	c := &Channel[T]{
		phase:     phaseIdle,
		senders:   newWaiterQueue[receiverHandle[T]](),
		receivers: newWaiterQueue[T](),
		cfg:       defaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// establish assigns a fresh generation under its own critical section,
// separate from the dispatch critical section that follows it. This gap
// is deliberate: it's the window in which a cancellation can race the
// rest of registration.
func (c *Channel[T]) establish() uint64 {
	c.mu.Lock()
	g := c.generation
	c.generation++
	c.mu.Unlock()
	return g
}

// Len reports the current depth of each wait queue. It's a best-effort,
// instant-stale snapshot meant for tests and monitoring -- never for
// control flow -- in the same spirit as SupervisedTask.State() and
// durableQueue.Len() in the pack.
func (c *Channel[T]) Len() (senders, receivers int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.senders.len(), c.receivers.len()
}

// String renders the channel's configured name and current phase, for
// use in log lines and %v/%s formatting. It never includes queue
// contents or the element type.
func (c *Channel[T]) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fmt.Sprintf("rendezvous.Channel(%s, %s)", c.cfg.Name, c.phase)
}

// Send offers x to the channel and blocks until a Receive accepts it,
// Finish is called, or ctx is cancelled. It never returns an error: if
// the element wasn't delivered, it is simply dropped.
func (c *Channel[T]) Send(ctx Context, x T) {
	g := c.establish()
	token := newCancelToken()
	stop := context.AfterFunc(ctx, func() { c.cancelSend(token, g) })
	defer stop()

	if c.raceHookSend != nil {
		c.raceHookSend(token, g)
	}

	outer := newSuspension[receiverHandle[T]]()

	var selfNone, terminal bool
	var handoff *waiterNode[T]

	c.mu.Lock()
	switch {
	case token.isCancelled():
		selfNone = true
	default:
		switch c.phase {
		case phaseIdle:
			c.senders.insert(g, outer)
			c.phase = phaseSendersWaiting
		case phaseSendersWaiting:
			c.senders.insert(g, outer)
		case phaseReceiversWaiting:
			node, _ := c.receivers.popFront()
			handoff = node
			if c.receivers.empty() {
				c.phase = phaseIdle
			}
		case phaseFinished:
			terminal = true
		}
	}
	c.mu.Unlock()

	switch {
	case selfNone || terminal:
		c.debugf(ctx, "send dropped", "generation", g, "cancelled", selfNone, "finished", terminal)
		return
	case handoff != nil:
		handoff.cont.resolve(some(x))
		c.debugf(ctx, "send handed off immediately", "generation", g)
		return
	default:
		res := outer.await()
		handle, ok := res.unwrap()
		if !ok {
			c.debugf(ctx, "send unblocked without delivery", "generation", g)
			return
		}
		if c.raceHookDeliver != nil {
			c.raceHookDeliver()
		}
		handle.deliver(x)
		c.debugf(ctx, "send delivered after waiting", "generation", g)
	}
}

// Receive blocks until a Send offers an element, Finish is called, or
// ctx is cancelled. It returns (x, true) on a successful hand-off, or
// (zero, false) if the channel finished or the wait was cancelled.
func (c *Channel[T]) Receive(ctx Context) (T, bool) {
	g := c.establish()
	token := newCancelToken()
	stop := context.AfterFunc(ctx, func() { c.cancelReceive(token, g) })
	defer stop()

	if c.raceHookReceive != nil {
		c.raceHookReceive(token, g)
	}

	cont := newSuspension[T]()

	var selfNone, terminal bool
	var handoff *waiterNode[receiverHandle[T]]

	c.mu.Lock()
	switch {
	case token.isCancelled():
		selfNone = true
	default:
		switch c.phase {
		case phaseIdle:
			c.receivers.insert(g, cont)
			c.phase = phaseReceiversWaiting
		case phaseSendersWaiting:
			node, _ := c.senders.popFront()
			handoff = node
			if c.senders.empty() {
				c.phase = phaseIdle
			}
		case phaseReceiversWaiting:
			c.receivers.insert(g, cont)
		case phaseFinished:
			terminal = true
		}
	}
	c.mu.Unlock()

	var zero T
	switch {
	case selfNone || terminal:
		c.debugf(ctx, "receive dropped", "generation", g, "cancelled", selfNone, "finished", terminal)
		return zero, false
	case handoff != nil:
		handoff.cont.resolve(some(receiverHandle[T]{inner: cont}))
		c.debugf(ctx, "receive handed off immediately", "generation", g)
		return cont.await().unwrap()
	default:
		v, ok := cont.await().unwrap()
		c.debugf(ctx, "receive woke after waiting", "generation", g, "delivered", ok)
		return v, ok
	}
}

// Finish transitions the channel to its terminal phase and resumes
// every currently queued waiter with none. It never blocks, and calling
// it more than once, or from inside a Send/Receive continuation
// triggered by this same channel, is safe -- by the time a continuation
// runs, the critical section that queued it has long since released the
// lock.
func (c *Channel[T]) Finish() {
	var drainedSenders []*waiterNode[receiverHandle[T]]
	var drainedReceivers []*waiterNode[T]

	c.mu.Lock()
	prior := c.phase
	switch prior {
	case phaseSendersWaiting:
		drainedSenders = c.senders.drainAll()
	case phaseReceiversWaiting:
		drainedReceivers = c.receivers.drainAll()
	}
	c.phase = phaseFinished
	c.mu.Unlock()

	for _, n := range drainedSenders {
		n.cont.resolve(none[receiverHandle[T]]())
	}
	for _, n := range drainedReceivers {
		n.cont.resolve(none[T]())
	}
	c.debugf(context.Background(), "finish drained waiters",
		"senders", len(drainedSenders), "receivers", len(drainedReceivers), "priorPhase", prior.String())
}

// cancelReceive resolves the race between a Receive's own context being
// cancelled and that Receive completing registration into Q_r.
func (c *Channel[T]) cancelReceive(token cancelToken, generation uint64) {
	var resume *suspension[T]

	c.mu.Lock()
	if c.phase == phaseReceiversWaiting {
		if node, ok := c.receivers.removeByGeneration(generation); ok {
			resume = node.cont
			if c.receivers.empty() {
				c.phase = phaseIdle
			}
		}
	}
	token.markCancelled()
	c.mu.Unlock()

	if resume != nil {
		resume.resolve(none[T]())
	}
}

// cancelSend is cancelReceive's mirror image against Q_s.
func (c *Channel[T]) cancelSend(token cancelToken, generation uint64) {
	var resume *suspension[receiverHandle[T]]

	c.mu.Lock()
	if c.phase == phaseSendersWaiting {
		if node, ok := c.senders.removeByGeneration(generation); ok {
			resume = node.cont
			if c.senders.empty() {
				c.phase = phaseIdle
			}
		}
	}
	token.markCancelled()
	c.mu.Unlock()

	if resume != nil {
		resume.resolve(none[receiverHandle[T]]())
	}
}
