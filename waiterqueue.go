package rendezvous

import "container/list"

// waiterNode is one queued waiter token: a generation identity plus the
// suspension that will be resolved when this token leaves the queue,
// however it leaves (rendezvous, Finish, or cancellation).
type waiterNode[V any] struct {
	generation uint64
	cont       *suspension[V]
	elem       *list.Element
}

// waiterQueue is the ordered-set-by-generation container backing a
// channel's sender and receiver queues: insertion order is preserved
// (service is FIFO), and removal by generation is O(1) via the index
// map, same as popping the head. A linked list gives stable element
// handles that a keyed map can point at, so a later out-of-order
// removal never has to walk the list.
type waiterQueue[V any] struct {
	order *list.List
	index map[uint64]*waiterNode[V]
}

func newWaiterQueue[V any]() *waiterQueue[V] {
	return &waiterQueue[V]{
		order: list.New(),
		index: make(map[uint64]*waiterNode[V]),
	}
}

func (q *waiterQueue[V]) insert(generation uint64, cont *suspension[V]) {
	n := &waiterNode[V]{generation: generation, cont: cont}
	n.elem = q.order.PushBack(n)
	q.index[generation] = n
}

// popFront removes and returns the earliest-registered waiter, if any.
func (q *waiterQueue[V]) popFront() (*waiterNode[V], bool) {
	front := q.order.Front()
	if front == nil {
		return nil, false
	}
	n := q.order.Remove(front).(*waiterNode[V])
	delete(q.index, n.generation)
	return n, true
}

// removeByGeneration removes a specific waiter by its generation key,
// used by cancellation to pull a not-yet-serviced waiter out of order.
func (q *waiterQueue[V]) removeByGeneration(generation uint64) (*waiterNode[V], bool) {
	n, ok := q.index[generation]
	if !ok {
		return nil, false
	}
	q.order.Remove(n.elem)
	delete(q.index, generation)
	return n, true
}

func (q *waiterQueue[V]) empty() bool { return q.order.Len() == 0 }

func (q *waiterQueue[V]) len() int { return q.order.Len() }

// drainAll empties the queue and returns every waiter it held, in
// registration order, for Finish to resolve after releasing the lock.
func (q *waiterQueue[V]) drainAll() []*waiterNode[V] {
	out := make([]*waiterNode[V], 0, q.order.Len())
	for e := q.order.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*waiterNode[V]))
	}
	q.order.Init()
	q.index = make(map[uint64]*waiterNode[V])
	return out
}
