package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/models"
)

type ProductRepository struct {
	client *libs.HTTPClient
	logger *zap.Logger
}

func NewProductRepository(client *libs.HTTPClient, logger *zap.Logger) *ProductRepository {
	return &ProductRepository{client: client, logger: logger}
}

func (r *ProductRepository) FetchProduct(ctx context.Context, productID int) (*models.UpstreamProduct, error) {
	var detail models.UpstreamProductDetail
	if err := r.client.Get(ctx, fmt.Sprintf("/products/%d", productID), "", &detail); err != nil {
		return nil, err
	}
	if !detail.Success || detail.Data == nil {
		return nil, &libs.APIError{Kind: libs.ErrKindRejected, Message: "Product not found"}
	}
	return &detail.Data.UpstreamProduct, nil
}

// ListProducts forwards the catalog query verbatim. Filtering and sorting are
// the commerce API's contract, not re-specified here.
func (r *ProductRepository) ListProducts(ctx context.Context, query url.Values) (json.RawMessage, error) {
	path := "/products"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var raw json.RawMessage
	if err := r.client.Get(ctx, path, "", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (r *ProductRepository) GetProductDetail(ctx context.Context, productID int) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := r.client.Get(ctx, fmt.Sprintf("/products/%d", productID), "", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
