package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/models"
)

// CartRepository wraps the cart endpoints of the commerce API. The server is
// the only authoritative cart; nothing here caches or patches state locally.
type CartRepository struct {
	client *libs.HTTPClient
	logger *zap.Logger
}

func NewCartRepository(client *libs.HTTPClient, logger *zap.Logger) *CartRepository {
	return &CartRepository{client: client, logger: logger}
}

// FetchCart returns the user's cart as flat lines. A missing credential means
// "not logged in", which reads as an empty cart. Transport failures, rejected
// statuses and malformed payloads also come back empty; they are logged but
// never surface as errors to the caller.
func (r *CartRepository) FetchCart(ctx context.Context, token string) []models.CartLine {
	if token == "" {
		return []models.CartLine{}
	}

	var envelope models.CartEnvelope
	if err := r.client.Get(ctx, "/cart", token, &envelope); err != nil {
		r.logger.Warn("cart fetch failed, treating as empty", zap.Error(err))
		return []models.CartLine{}
	}
	if !envelope.Success || envelope.Data == nil {
		r.logger.Warn("cart fetch rejected by server", zap.String("message", envelope.Message))
		return []models.CartLine{}
	}
	return envelope.Data.Lines()
}

func (r *CartRepository) AddLine(ctx context.Context, token string, productID, quantity int) error {
	body := map[string]int{"productId": productID, "qty": quantity}
	return r.client.Post(ctx, "/cart/items", token, body, nil)
}

// SetQuantity updates one line. Callers clamp quantity to >= 1 before this is
// reached; the repository does not second-guess them.
func (r *CartRepository) SetQuantity(ctx context.Context, token string, cartLineID, quantity int) error {
	body := map[string]int{"qty": quantity}
	return r.client.Patch(ctx, fmt.Sprintf("/cart/items/%d", cartLineID), token, body, nil)
}

func (r *CartRepository) RemoveLine(ctx context.Context, token string, cartLineID int) error {
	return r.client.Delete(ctx, fmt.Sprintf("/cart/items/%d", cartLineID), token)
}

// RemoveLines deletes the given lines with one request each, in parallel.
// Partial failure is not reconciled here: the first error is reported, and the
// follow-up refetch reflects whatever the server actually deleted.
func (r *CartRepository) RemoveLines(ctx context.Context, token string, cartLineIDs []int) error {
	var g errgroup.Group
	for _, id := range cartLineIDs {
		id := id
		g.Go(func() error {
			return r.RemoveLine(ctx, token, id)
		})
	}
	return g.Wait()
}
