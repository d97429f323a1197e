package repositories

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/models"
)

func newOrderRepo(t *testing.T, handler http.Handler) *OrderRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	return NewOrderRepository(libs.NewHTTPClient(server.URL, 2*time.Second, logger), logger)
}

func TestCheckoutOK(t *testing.T) {
	var path string
	repo := newOrderRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"success":true,"message":"Order placed"}`))
	}))

	err := repo.Checkout(context.Background(), testToken, models.UpstreamCheckoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/orders/checkout", path)
}

func TestCheckoutSuccessFalseIsRejection(t *testing.T) {
	// A 2xx carrying success=false still counts as a rejection.
	repo := newOrderRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"Insufficient stock"}`))
	}))

	err := repo.Checkout(context.Background(), testToken, models.UpstreamCheckoutRequest{})

	require.Error(t, err)
	apiErr, ok := libs.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, libs.ErrKindRejected, apiErr.Kind)
	assert.Equal(t, "Insufficient stock", apiErr.Message)
}

func TestFetchOrders(t *testing.T) {
	repo := newOrderRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/my", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"orders":[{"id":1,"code":"INV-001","paymentStatus":"PAID"}]}}`))
	}))

	orders, err := repo.FetchOrders(context.Background(), testToken)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "INV-001", orders[0].Code)
}

func TestFetchOrdersRejected(t *testing.T) {
	repo := newOrderRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"nope"}`))
	}))

	orders, err := repo.FetchOrders(context.Background(), testToken)
	assert.Nil(t, orders)
	require.Error(t, err)
}

func TestCompleteAndCancelItemPaths(t *testing.T) {
	var paths []string
	repo := newOrderRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		paths = append(paths, r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	}))

	require.NoError(t, repo.CompleteItem(context.Background(), testToken, 5))
	require.NoError(t, repo.CancelItem(context.Background(), testToken, 6))
	assert.Equal(t, []string{"/orders/items/5/complete", "/orders/items/6/cancel"}, paths)
}
