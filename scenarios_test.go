package rendezvous_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ohzeno/rendezvous"
)

// TestHandoff: a receiver registers first, then a sender
// arrives and hands off directly to it.
func TestHandoff(t *testing.T) {
	ch := rendezvous.New[int]()
	ctx := context.Background()

	var got int
	var ok bool
	recvDone := make(chan struct{})
	go func() {
		got, ok = ch.Receive(ctx)
		close(recvDone)
	}()

	waitUntil(t, func() bool { _, r := ch.Len(); return r == 1 })
	ch.Send(ctx, 7)
	<-recvDone

	require.Equal(t, true, ok)
	require.Equal(t, 7, got)
	senders, receivers := ch.Len()
	require.Equal(t, 0, senders)
	require.Equal(t, 0, receivers)
}

// TestReverseHandoff: the sender suspends first, then a
// receiver arrives and completes the rendezvous.
func TestReverseHandoff(t *testing.T) {
	ch := rendezvous.New[int]()
	ctx := context.Background()

	sendDone := make(chan struct{})
	go func() {
		ch.Send(ctx, 7)
		close(sendDone)
	}()

	waitUntil(t, func() bool { s, _ := ch.Len(); return s == 1 })
	got, ok := ch.Receive(ctx)
	<-sendDone

	require.Equal(t, true, ok)
	require.Equal(t, 7, got)
	senders, receivers := ch.Len()
	require.Equal(t, 0, senders)
	require.Equal(t, 0, receivers)
}

// TestFIFOReceivers: two receivers queue in order, then two
// sends resolve them in the same order they registered.
func TestFIFOReceivers(t *testing.T) {
	ch := rendezvous.New[string]()
	ctx := context.Background()

	var r1, r2 string
	var wg sync.WaitGroup
	wg.Add(2)
	go func() { defer wg.Done(); r1, _ = ch.Receive(ctx) }()
	waitUntil(t, func() bool { _, r := ch.Len(); return r == 1 })
	go func() { defer wg.Done(); r2, _ = ch.Receive(ctx) }()
	waitUntil(t, func() bool { _, r := ch.Len(); return r == 2 })

	ch.Send(ctx, "a")
	ch.Send(ctx, "b")
	wg.Wait()

	require.Equal(t, "a", r1)
	require.Equal(t, "b", r2)
}

// TestInvariant_SymmetricFIFOSenders is the dual of TestFIFOReceivers,
// with senders queued ahead of receivers.
func TestInvariant_SymmetricFIFOSenders(t *testing.T) {
	ch := rendezvous.New[string]()
	ctx := context.Background()

	go ch.Send(ctx, "a")
	waitUntil(t, func() bool { s, _ := ch.Len(); return s == 1 })
	go ch.Send(ctx, "b")
	waitUntil(t, func() bool { s, _ := ch.Len(); return s == 2 })

	r1, _ := ch.Receive(ctx)
	r2, _ := ch.Receive(ctx)

	require.Equal(t, "a", r1)
	require.Equal(t, "b", r2)
}

// TestFinishDrainsWaiters: two receivers are suspended, Finish
// resolves both with false, and subsequent Send/Receive calls are
// no-ops against the finished channel.
func TestFinishDrainsWaiters(t *testing.T) {
	ch := rendezvous.New[int]()
	ctx := context.Background()

	results := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, ok := ch.Receive(ctx)
			results <- ok
		}()
	}
	waitUntil(t, func() bool { _, r := ch.Len(); return r == 2 })

	ch.Finish()

	for i := 0; i < 2; i++ {
		if ok := <-results; ok {
			t.Fatal("expected receive to report false after finish")
		}
	}

	ch.Send(ctx, 0) // must return promptly without delivering
	_, ok := ch.Receive(ctx)
	require.Equal(t, false, ok)
}

// TestCancelledReceiverReturnsToIdle: a suspended receiver is cancelled
// before any sender arrives; the channel returns to Idle and a later
// send/receive pair still completes normally.
func TestCancelledReceiverReturnsToIdle(t *testing.T) {
	ch := rendezvous.New[int]()
	ctx, cancel := context.WithCancel(context.Background())

	recvDone := make(chan bool, 1)
	go func() {
		_, ok := ch.Receive(ctx)
		recvDone <- ok
	}()
	waitUntil(t, func() bool { _, r := ch.Len(); return r == 1 })

	cancel()
	if ok := <-recvDone; ok {
		t.Fatal("expected cancelled receive to report false")
	}
	waitUntil(t, func() bool { _, r := ch.Len(); return r == 0 })

	go ch.Send(context.Background(), 9)
	got, ok := ch.Receive(context.Background())
	require.Equal(t, true, ok)
	require.Equal(t, 9, got)
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition never became true")
}
