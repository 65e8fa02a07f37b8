package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// 60 requests/min means a burst of 6 before the limiter kicks in.
	mw := New(pkgLog.NewNop(), 60)

	r := gin.New()
	r.POST("/limited", mw.RateLimit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	var ok, limited int
	for i := 0; i < 10; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/limited", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)

		switch w.Code {
		case http.StatusOK:
			ok++
		case http.StatusTooManyRequests:
			limited++
		default:
			t.Fatalf("unexpected status %d", w.Code)
		}
	}

	if ok == 0 {
		t.Errorf("every request was limited, want the burst to pass")
	}
	if limited == 0 {
		t.Errorf("no request was limited, want the flood to trip the limiter")
	}

	// A different client gets its own limiter.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("fresh client got status %d, want 200", w.Code)
	}
}

func TestRateLimitDefaults(t *testing.T) {
	mw := New(pkgLog.NewNop(), 0)
	if mw.burst < 1 {
		t.Errorf("burst = %d, want at least 1", mw.burst)
	}
}
