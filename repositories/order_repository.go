package repositories

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/models"
)

type OrderRepository struct {
	client *libs.HTTPClient
	logger *zap.Logger
}

func NewOrderRepository(client *libs.HTTPClient, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{client: client, logger: logger}
}

// Checkout submits the composed order. An order counts as placed only when the
// HTTP status and the payload-level success flag both agree; a 2xx with
// success=false is still a rejection, surfaced with the server's message.
func (r *OrderRepository) Checkout(ctx context.Context, token string, req models.UpstreamCheckoutRequest) error {
	var envelope models.CheckoutEnvelope
	if err := r.client.Post(ctx, "/orders/checkout", token, req, &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "Checkout failed"
		}
		return &libs.APIError{Kind: libs.ErrKindRejected, Message: message}
	}
	return nil
}

func (r *OrderRepository) FetchOrders(ctx context.Context, token string) ([]models.UpstreamOrder, error) {
	var envelope models.OrdersEnvelope
	if err := r.client.Get(ctx, "/orders/my", token, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success || envelope.Data == nil {
		r.logger.Warn("order history rejected by server", zap.String("message", envelope.Message))
		return nil, &libs.APIError{Kind: libs.ErrKindRejected, Message: "Failed to load orders"}
	}
	return envelope.Data.Orders, nil
}

func (r *OrderRepository) CompleteItem(ctx context.Context, token string, orderItemID int) error {
	return r.client.Patch(ctx, fmt.Sprintf("/orders/items/%d/complete", orderItemID), token, nil, nil)
}

func (r *OrderRepository) CancelItem(ctx context.Context, token string, orderItemID int) error {
	return r.client.Patch(ctx, fmt.Sprintf("/orders/items/%d/cancel", orderItemID), token, nil, nil)
}
