package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/repositories"
)

func newBadgeFixture(t *testing.T, handler http.Handler) (*BadgeService, *libs.CartSignal) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	client := libs.NewHTTPClient(server.URL, 2*time.Second, logger)
	repo := repositories.NewCartRepository(client, logger)
	signal := libs.NewCartSignal()

	return NewBadgeService(repo, signal, logger), signal
}

func TestBadgeCountWithoutToken(t *testing.T) {
	service, _ := newBadgeFixture(t, staticCartHandler(
		upstreamItem(1, 100, 5000, 3, 10, "Alpha"),
	))
	assert.Equal(t, 0, service.Count(context.Background(), "", 7))
}

func TestBadgeCountSumsQuantities(t *testing.T) {
	service, _ := newBadgeFixture(t, staticCartHandler(
		upstreamItem(1, 100, 5000, 3, 10, "Alpha"),
		upstreamItem(2, 101, 3000, 2, 20, "Beta"),
	))
	assert.Equal(t, 5, service.Count(context.Background(), testToken, 7))
}

func TestBadgeConvergesAfterSignal(t *testing.T) {
	var qty atomic.Int32
	qty.Store(1)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(cartPayload(upstreamItem(1, 100, 5000, int(qty.Load()), 10, "Alpha")))
	})

	service, signal := newBadgeFixture(t, handler)

	require.Equal(t, 1, service.Count(context.Background(), testToken, 7))

	// The badge is a subscriber; a published change makes it refetch on its
	// own with the remembered credential.
	qty.Store(4)
	signal.Publish(7)

	assert.Eventually(t, func() bool {
		return service.Count(context.Background(), testToken, 7) == 4
	}, 2*time.Second, 10*time.Millisecond)
}
