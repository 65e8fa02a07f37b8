package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "github.com/nikhil-s1nha/productivity/pkg/log"
)

// Middleware holds cross-cutting gin middleware for the HTTP layer.
type Middleware struct {
	l        pkgLog.Logger
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates the middleware set. requestsPerMin bounds how often a
// single client may hit rate-limited routes.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}

	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return Middleware{
		l: l,
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // max tracked clients
			nil,           // no eviction callback
			time.Minute*5, // idle TTL
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}
