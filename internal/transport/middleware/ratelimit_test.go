package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/tradedesk-backend/pkg/ctxutil"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func hit(h http.Handler, remoteAddr string, userID uuid.UUID) int {
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/export", nil)
	req.RemoteAddr = remoteAddr
	if userID != uuid.Nil {
		req = req.WithContext(ctxutil.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	h := rl.Limit(10)(okHandler())
	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1234", uuid.Nil), "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	h := rl.Limit(5)(okHandler())
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1234", uuid.Nil))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/export", nil)
	req.RemoteAddr = "1.2.3.4:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "13", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_PortChangesShareBucket(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	h := rl.Limit(2)(okHandler())
	assert.Equal(t, http.StatusOK, hit(h, "5.5.5.5:1000", uuid.Nil))
	assert.Equal(t, http.StatusOK, hit(h, "5.5.5.5:1001", uuid.Nil))
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "5.5.5.5:1002", uuid.Nil))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	h := rl.Limit(1)(okHandler())
	alice, bob := uuid.New(), uuid.New()

	assert.Equal(t, http.StatusOK, hit(h, "1.1.1.1:1", uuid.Nil))
	assert.Equal(t, http.StatusOK, hit(h, "2.2.2.2:1", uuid.Nil))
	// Users behind the same address get their own buckets.
	assert.Equal(t, http.StatusOK, hit(h, "1.1.1.1:1", alice))
	assert.Equal(t, http.StatusOK, hit(h, "1.1.1.1:1", bob))
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "9.9.9.9:1", alice))
}

func TestRateLimiter_NonPositiveLimitDisables(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	h := rl.Limit(0)(okHandler())
	for i := 0; i < 100; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1234", uuid.Nil))
	}
}

func TestBucket_Refill(t *testing.T) {
	start := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := &bucket{tokens: 1, maxTokens: 60, refillRate: 1, lastRefill: start}

	assert.True(t, b.allow(start))
	assert.False(t, b.allow(start))
	assert.True(t, b.allow(start.Add(1100*time.Millisecond)))

	// Refill never exceeds the bucket size.
	b.allow(start.Add(time.Hour))
	assert.InDelta(t, 59, b.tokens, 0.001)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}
