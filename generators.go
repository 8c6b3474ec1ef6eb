package rendezvous

import "sync"

// Produce launches one goroutine per element of items, each offering
// that element to ch via Send, and returns a channel that is closed once
// every launched Send has returned (delivered, dropped, or cancelled).
//
// Because every Send still rendezvous individually, Produce adds no
// buffering of its own -- it only removes the boilerplate of spawning
// one goroutine per producer.
//
// Launching every Send concurrently means the order items are offered
// in is not guaranteed to match items' order; callers that need FIFO
// delivery should Send serially instead (the FIFO guarantee is about
// registration order, not slice order).
func Produce[T any](ctx Context, ch *Channel[T], items []T) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		wg.Add(len(items))
		for _, item := range items {
			go func(item T) {
				defer wg.Done()
				ch.Send(ctx, item)
			}(item)
		}
		wg.Wait()
	}()
	return done
}

// Collect drains ch through a fresh Iterator until it reports finished,
// returning every element received, in arrival order.
func Collect[T any](ctx Context, ch *Channel[T]) []T {
	it := ch.Iterator()
	var out []T
	for {
		v, ok := it.Next(ctx)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
