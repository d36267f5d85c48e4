// Package notifier signals the admin dashboard's SSE streams that the
// translation history changed and the recent-translations block should
// be re-rendered.
package notifier

import "sync"

// Notifier fans a change signal out to every open SSE stream. The signal
// carries no payload; receivers re-query the history store. Each
// subscriber channel is buffered with one slot, so bursts of
// translations coalesce into a single pending ping per stream.
type Notifier struct {
	mu   sync.RWMutex
	subs map[chan struct{}]struct{}
}

// New creates an empty Notifier.
func New() *Notifier {
	return &Notifier{subs: make(map[chan struct{}]struct{})}
}

// Subscribe registers a new stream and returns its signal channel. The
// caller must Unsubscribe when the stream ends, or the channel leaks.
func (n *Notifier) Subscribe() chan struct{} {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (n *Notifier) Unsubscribe(ch chan struct{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.subs, ch)
	close(ch)
}

// Broadcast pings every subscriber without blocking. A subscriber whose
// ping is still pending keeps the one it has; it re-renders from the
// store anyway, so a second ping would be redundant.
func (n *Notifier) Broadcast() {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Count returns the number of open subscriptions.
func (n *Notifier) Count() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
