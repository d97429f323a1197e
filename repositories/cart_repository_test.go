package repositories

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adiafa-dev/e-commerce-mvp/libs"
)

const testToken = "test-token"

func newCartRepo(t *testing.T, handler http.Handler) *CartRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	return NewCartRepository(libs.NewHTTPClient(server.URL, 2*time.Second, logger), logger)
}

func TestFetchCartWithoutToken(t *testing.T) {
	var calls int
	repo := newCartRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	lines := repo.FetchCart(context.Background(), "")

	assert.Empty(t, lines)
	assert.Equal(t, 0, calls)
}

func TestFetchCartNormalizesUpstream(t *testing.T) {
	payload := `{
		"success": true,
		"data": {
			"cartId": 1,
			"items": [
				{
					"id": 1, "productId": 100, "qty": 2, "priceSnapshot": 5000,
					"product": {"id": 100, "title": "Mug", "price": 6000, "images": [], "shop": {"id": 10, "name": "Alpha", "logo": "/img/a.png"}}
				},
				{
					"id": 2, "productId": 101, "qty": 0, "priceSnapshot": 3000,
					"product": {"id": 101, "title": "Gone", "images": [], "shop": {"id": 10, "name": "Alpha"}}
				}
			]
		}
	}`
	repo := newCartRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		w.Write([]byte(payload))
	}))

	lines := repo.FetchCart(context.Background(), testToken)

	// The zero-quantity line never reaches the view.
	require.Len(t, lines, 1)
	line := lines[0]
	assert.Equal(t, 1, line.CartLineID)
	assert.Equal(t, "Mug", line.Title)
	// UnitPrice is the snapshot, not the live product price.
	assert.Equal(t, 5000, line.UnitPrice)
	assert.Equal(t, "/assets/images/no-image.png", line.ImageURL)
	assert.Equal(t, "Alpha", line.Shop.Name)
	assert.Equal(t, "/img/a.png", line.Shop.LogoURL)
}

func TestFetchCartMalformedPayload(t *testing.T) {
	repo := newCartRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))

	lines := repo.FetchCart(context.Background(), testToken)
	require.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestFetchCartServerRejection(t *testing.T) {
	repo := newCartRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"session expired"}`))
	}))

	lines := repo.FetchCart(context.Background(), testToken)
	assert.Empty(t, lines)
}

func TestAddLineBody(t *testing.T) {
	var body map[string]int
	repo := newCartRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/items", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"success":true}`))
	}))

	err := repo.AddLine(context.Background(), testToken, 100, 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"productId": 100, "qty": 3}, body)
}

func TestRemoveLinesReportsPartialFailure(t *testing.T) {
	var mu sync.Mutex
	deleted := map[int]bool{}

	repo := newCartRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/cart/items/"))
		mu.Lock()
		deleted[id] = true
		mu.Unlock()

		if id == 2 {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"success":false,"message":"already ordered"}`))
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))

	err := repo.RemoveLines(context.Background(), testToken, []int{1, 2, 3})

	require.Error(t, err)
	apiErr, ok := libs.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, libs.ErrKindRejected, apiErr.Kind)
	assert.Equal(t, "already ordered", apiErr.Message)

	// Every delete still went out; the failure of one does not cancel the rest.
	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, deleted, 3)
}
