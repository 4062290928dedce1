package middleware

import (
	"net/http"
	"time"

	"secured-access-demo/internal/handler/httperr"
	"secured-access-demo/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit applies a token bucket to the routes it is attached to.
// Each demo call fans out to three upstream requests.
func RateLimit(limit config.RateLimit) gin.HandlerFunc {
	if !limit.Enabled() {
		return func(c *gin.Context) { c.Next() }
	}

	perRequest := limit.Interval / time.Duration(limit.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}

	// rate.Limiter is safe for concurrent use
	limiter := rate.NewLimiter(rate.Every(perRequest), limit.Requests)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				httperr.NewResponse(http.StatusTooManyRequests, httperr.MsgTooManyRequests, nil))
			return
		}
		c.Next()
	}
}
