package ratelimit_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noamani/authkit/pkg/ratelimit"
)

type failingStore struct{}

func (failingStore) IncrementAndGet(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("store down")
}

func (failingStore) Get(context.Context, string) (int64, time.Duration, error) {
	return 0, 0, errors.New("store down")
}

func (failingStore) Delete(context.Context, string) error {
	return errors.New("store down")
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(t *testing.T, h http.Handler, ip string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/auth/request-reset-otp", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("allows under the limit and sets headers", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 2, time.Minute)
		require.NoError(t, err)

		h := ratelimit.Middleware(fw, ratelimit.ClientIP())(okHandler())

		rec := doRequest(t, h, "203.0.113.1")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("denies over the limit with generic json message", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 1, time.Minute)
		require.NoError(t, err)

		h := ratelimit.Middleware(fw, ratelimit.ClientIP())(okHandler())

		require.Equal(t, http.StatusOK, doRequest(t, h, "203.0.113.9").Code)

		rec := doRequest(t, h, "203.0.113.9")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Too many requests. Please try again later.", body["message"])
	})

	t.Run("independent ips do not interfere", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 1, time.Minute)
		require.NoError(t, err)

		h := ratelimit.Middleware(fw, ratelimit.ClientIP())(okHandler())

		assert.Equal(t, http.StatusOK, doRequest(t, h, "203.0.113.1").Code)
		assert.Equal(t, http.StatusOK, doRequest(t, h, "203.0.113.2").Code)
	})

	t.Run("fails open on store errors", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(failingStore{}, 1, time.Minute)
		require.NoError(t, err)

		h := ratelimit.Middleware(fw, ratelimit.ClientIP())(okHandler())
		assert.Equal(t, http.StatusOK, doRequest(t, h, "203.0.113.1").Code)
	})

	t.Run("nil key func panics", func(t *testing.T) {
		t.Parallel()

		fw, err := ratelimit.NewFixedWindow(ratelimit.NewMemoryStore(), 1, time.Minute)
		require.NoError(t, err)

		assert.Panics(t, func() {
			ratelimit.Middleware(fw, nil)
		})
	})
}

func TestComposite(t *testing.T) {
	t.Parallel()

	byHeader := func(name string) ratelimit.KeyFunc {
		return func(r *http.Request) string { return r.Header.Get(name) }
	}

	t.Run("joins parts", func(t *testing.T) {
		t.Parallel()

		fn := ratelimit.Composite(byHeader("A"), byHeader("B"))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("A", "left")
		req.Header.Set("B", "right")
		assert.Equal(t, "left:right", fn(req))
	})

	t.Run("empty when nothing matches", func(t *testing.T) {
		t.Parallel()

		fn := ratelimit.Composite(byHeader("A"))
		assert.Empty(t, fn(httptest.NewRequest(http.MethodGet, "/", nil)))
	})

	t.Run("long keys are hashed", func(t *testing.T) {
		t.Parallel()

		fn := ratelimit.Composite(byHeader("A"), byHeader("B"))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("A", string(make([]byte, 80)))
		req.Header.Set("B", "x")
		key := fn(req)
		assert.Len(t, key, 32)
	})
}
