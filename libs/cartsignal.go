package libs

import "sync"

// CartSignal is the process-wide "cart changed" broadcast. Every mutating cart
// path publishes after its request settles; every cart-dependent view
// subscribes and re-runs its own authoritative fetch. Subscribers run
// independently and may complete in any order.
type CartSignal struct {
	mu   sync.Mutex
	subs []func(userID int)
}

func NewCartSignal() *CartSignal {
	return &CartSignal{}
}

func (s *CartSignal) Subscribe(fn func(userID int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Publish notifies every subscriber that the given user's cart changed. The
// signal carries no cart data; subscribers refetch for themselves.
func (s *CartSignal) Publish(userID int) {
	s.mu.Lock()
	subs := make([]func(userID int), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		go fn(userID)
	}
}
