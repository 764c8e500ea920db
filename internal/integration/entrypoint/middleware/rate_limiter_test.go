package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/asset-registry/backend/internal/domain/error"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Run("allows up to the attempt limit", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if ok, _ := rl.allow("10.0.0.1"); !ok {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		ok, retryAfter := rl.allow("10.0.0.1")
		if ok {
			t.Error("fourth attempt should be denied")
		}
		if retryAfter <= 0 || retryAfter > time.Minute {
			t.Errorf("expected retry-after within the window, got %s", retryAfter)
		}
	})

	t.Run("tracks keys independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if ok, _ := rl.allow("10.0.0.1"); !ok {
			t.Fatal("first key should be allowed")
		}
		if ok, _ := rl.allow("10.0.0.2"); !ok {
			t.Error("a different key must not share the budget")
		}
		if ok, _ := rl.allow("10.0.0.1"); ok {
			t.Error("first key should now be denied")
		}
	})

	t.Run("resets after the window expires", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		rl.allow("10.0.0.1")
		if ok, _ := rl.allow("10.0.0.1"); ok {
			t.Fatal("second attempt inside the window should be denied")
		}
		time.Sleep(15 * time.Millisecond)
		if ok, _ := rl.allow("10.0.0.1"); !ok {
			t.Error("attempt after window expiry should be allowed")
		}
	})
}

func TestRateLimiterMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(rl *RateLimiter) *gin.Engine {
		r := gin.New()
		r.POST("/extract", rl.Middleware(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("passes requests under the limit", func(t *testing.T) {
		engine := newEngine(NewRateLimiterWithConfig(2, time.Minute))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/extract", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("returns 429 with a retry hint when exhausted", func(t *testing.T) {
		engine := newEngine(NewRateLimiterWithConfig(1, time.Minute))

		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/extract", nil))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/extract", nil))

		if w.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", w.Code)
		}
		if w.Header().Get("Retry-After") == "" {
			t.Error("expected a Retry-After header")
		}
		if body := w.Body.String(); !strings.Contains(body, string(domainerror.ErrCodeRateLimited)) {
			t.Errorf("expected body to carry the rate limit code, got %s", body)
		}
	})
}
