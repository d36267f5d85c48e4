package notifier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	n := New()

	ch := n.Subscribe()
	require.NotNil(t, ch)
	assert.Equal(t, 1, n.Count())

	n.Unsubscribe(ch)
	assert.Equal(t, 0, n.Count())

	// Unsubscribe closes the channel
	_, open := <-ch
	assert.False(t, open)
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	n := New()

	ch1 := n.Subscribe()
	ch2 := n.Subscribe()
	defer n.Unsubscribe(ch1)
	defer n.Unsubscribe(ch2)

	n.Broadcast()

	for _, ch := range []chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("subscriber did not receive the broadcast")
		}
	}
}

func TestBroadcastCoalescesWhenPending(t *testing.T) {
	n := New()

	ch := n.Subscribe()
	defer n.Unsubscribe(ch)

	// A pending ping occupies the single buffer slot; further broadcasts
	// must not block.
	ch <- struct{}{}

	done := make(chan struct{})
	go func() {
		n.Broadcast()
		n.Broadcast()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Broadcast blocked on a subscriber with a pending ping")
	}

	// Only the one pending ping remains
	<-ch
	select {
	case <-ch:
		t.Fatal("expected the extra broadcasts to coalesce")
	default:
	}
}

func TestConcurrentSubscribers(t *testing.T) {
	n := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := n.Subscribe()
			n.Broadcast()
			n.Unsubscribe(ch)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, n.Count())
}
