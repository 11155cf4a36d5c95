package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dojo-forms/pkg/ctxutil"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(time.Hour)
	rl.now = clock.Now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
}

func post(h http.Handler, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/forms", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(t)
	handler := rl.Limit(5)(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, post(handler, "1.2.3.4:1234").Code, "request %d should be allowed", i)
	}

	rec := post(handler, "1.2.3.4:9999")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "port must not split the bucket")
	assert.Equal(t, "13", rec.Header().Get("Retry-After"))
}

func TestRateLimiter_DifferentClientsIndependent(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(t)
	handler := rl.Limit(1)(okHandler())

	assert.Equal(t, http.StatusOK, post(handler, "1.1.1.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, post(handler, "1.1.1.1:1").Code)
	assert.Equal(t, http.StatusOK, post(handler, "2.2.2.2:1").Code)

	req := httptest.NewRequest(http.MethodPost, "/api/forms", nil)
	req.RemoteAddr = "1.1.1.1:1"
	req = req.WithContext(ctxutil.WithActor(req.Context(), uuid.New(), "Sensei"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "instructors get their own bucket")
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(t)
	handler := rl.Limit(60)(okHandler())

	for i := 0; i < 60; i++ {
		require.Equal(t, http.StatusOK, post(handler, "1.2.3.4:1").Code)
	}
	require.Equal(t, http.StatusTooManyRequests, post(handler, "1.2.3.4:1").Code)

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, post(handler, "1.2.3.4:1").Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	t.Parallel()

	rl, _ := newTestLimiter(t)
	handler := rl.Limit(0)(okHandler())

	for i := 0; i < 100; i++ {
		require.Equal(t, http.StatusOK, post(handler, "1.2.3.4:1").Code)
	}
}

func TestRateLimiter_SweepDropsIdleBuckets(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(t)
	post(rl.Limit(5)(okHandler()), "1.2.3.4:1")

	clock.Advance(bucketIdleTTL + time.Second)
	rl.sweep()

	_, ok := rl.buckets.Load("ip:1.2.3.4")
	assert.False(t, ok)
}

func TestRateLimiter_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(time.Hour)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
