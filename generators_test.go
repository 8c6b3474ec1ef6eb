package rendezvous_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ohzeno/rendezvous"
)

func TestIteratorSticky(t *testing.T) {
	ch := rendezvous.New[int]()
	ctx := context.Background()

	go func() {
		ch.Send(ctx, 1)
		ch.Finish()
	}()

	it := ch.Iterator()
	v, ok := it.Next(ctx)
	require.Equal(t, true, ok)
	require.Equal(t, 1, v)

	// Channel is finished now: every further call reports false, and
	// stays false even if called repeatedly.
	for i := 0; i < 3; i++ {
		_, ok := it.Next(ctx)
		require.Equal(t, false, ok)
	}
}

func TestProduceCollect(t *testing.T) {
	ch := rendezvous.New[int]()
	ctx := context.Background()

	got := make(chan []int)
	go func() { got <- rendezvous.Collect(ctx, ch) }()

	<-rendezvous.Produce(ctx, ch, []int{1, 2, 3, 4, 5})
	ch.Finish()

	out := <-got
	sort.Ints(out)
	require.Equal(t, 5, len(out))
	for i, v := range out {
		require.Equal(t, i+1, v)
	}
}

func TestProduceClosesAfterAllSendsReturn(t *testing.T) {
	ch := rendezvous.New[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // every Send offered here is immediately cancelled

	done := rendezvous.Produce(ctx, ch, []int{1, 2, 3})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Produce's done channel should close once every cancelled Send returns")
	}
}
