package libs

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
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPClient(server.URL, 2*time.Second, zap.NewNop())
}

func TestDoDecodesSuccessPayload(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"message":"hello"}`))
	}))

	var out struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err := client.Get(context.Background(), "/ping", "", &out)

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "hello", out.Message)
}

func TestDoSetsBearerOnlyWithToken(t *testing.T) {
	var header atomic.Value
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))

	require.NoError(t, client.Get(context.Background(), "/a", "", nil))
	assert.Equal(t, "", header.Load())

	require.NoError(t, client.Get(context.Background(), "/a", "abc", nil))
	assert.Equal(t, "Bearer abc", header.Load())
}

func TestDoRejectedExtractsServerMessage(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Product not found"}`))
	}))

	err := client.Get(context.Background(), "/products/999", "", nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindRejected, apiErr.Kind)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Product not found", apiErr.Message)
}

func TestDoRejectedWithoutMessageFallsBack(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>oops</html>`))
	}))

	err := client.Get(context.Background(), "/boom", "", nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindRejected, apiErr.Kind)
	assert.Equal(t, "Unexpected server error", apiErr.Message)
}

func TestDoMalformedSuccessPayloadIsDecodeError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))

	var out map[string]interface{}
	err := client.Get(context.Background(), "/cart", "", &out)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindDecode, apiErr.Kind)
}

func TestDoTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewHTTPClient(url, time.Second, zap.NewNop())
	err := client.Get(context.Background(), "/cart", "", nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindTransport, apiErr.Kind)
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		// Drop the connection mid-flight so the client sees a transport error.
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		conn.Close()
	}))

	for i := 0; i < 5; i++ {
		err := client.Get(context.Background(), "/cart", "", nil)
		require.Error(t, err)
	}
	require.Equal(t, int32(5), calls.Load())

	// The breaker is open now; the next call fast-fails without a request.
	err := client.Get(context.Background(), "/cart", "", nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindTransport, apiErr.Kind)
	assert.Equal(t, int32(5), calls.Load())
}
