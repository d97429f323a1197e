package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/repositories"
)

// BadgeService backs the header cart badge. It is a second, independent
// subscriber to the cart-changed signal: it runs its own fetch rather than
// sharing the cart view's, so the two views converge without coordinating.
type BadgeService struct {
	cartRepo *repositories.CartRepository
	logger   *zap.Logger

	mu     sync.Mutex
	counts map[int]int
	tokens map[int]string
}

func NewBadgeService(cartRepo *repositories.CartRepository, signal *libs.CartSignal, logger *zap.Logger) *BadgeService {
	s := &BadgeService{
		cartRepo: cartRepo,
		logger:   logger,
		counts:   make(map[int]int),
		tokens:   make(map[int]string),
	}

	signal.Subscribe(func(userID int) {
		s.mu.Lock()
		token := s.tokens[userID]
		s.mu.Unlock()
		s.refresh(context.Background(), token, userID)
	})

	return s
}

// Count returns the total quantity across the user's cart lines. A missing
// credential reads as zero, not as an error.
func (s *BadgeService) Count(ctx context.Context, token string, userID int) int {
	if token == "" {
		return 0
	}

	s.mu.Lock()
	s.tokens[userID] = token
	count, ok := s.counts[userID]
	s.mu.Unlock()
	if ok {
		return count
	}
	return s.refresh(ctx, token, userID)
}

func (s *BadgeService) refresh(ctx context.Context, token string, userID int) int {
	count := 0
	for _, line := range s.cartRepo.FetchCart(ctx, token) {
		count += line.Quantity
	}

	s.mu.Lock()
	s.counts[userID] = count
	s.mu.Unlock()
	return count
}
