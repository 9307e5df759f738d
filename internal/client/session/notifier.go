// Package session provides the session-expiry notification channel between
// the transport layer and the rest of the client.
//
// A single Notifier is constructed at application startup and passed by
// reference to whichever component needs to publish (the API client) or
// subscribe (state stores, the UI shell). There is no package-level state.
package session

// ExpiredFunc is invoked when the current credential has been invalidated,
// either by local expiry detection or by a 401 from the server.
type ExpiredFunc func()

type subscriber struct {
	id int
	fn ExpiredFunc
}

// Notifier delivers session-expiry events to registered callbacks.
//
// Publish runs callbacks synchronously, in subscription order, and returns
// once all of them have run. The Notifier is not safe for concurrent use;
// the client's event loop is sequential by construction.
type Notifier struct {
	nextID int
	subs   []subscriber
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn and returns a function that removes it again.
// Unsubscribing twice is a no-op.
func (n *Notifier) Subscribe(fn ExpiredFunc) func() {
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range n.subs {
			if s.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish invokes every currently subscribed callback in subscription order.
func (n *Notifier) Publish() {
	// Copy: a callback may unsubscribe itself while we iterate.
	subs := make([]subscriber, len(n.subs))
	copy(subs, n.subs)
	for _, s := range subs {
		s.fn()
	}
}
