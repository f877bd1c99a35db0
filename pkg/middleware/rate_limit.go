package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	mem "payhub/pkg/memcache"
	"payhub/pkg/utils"
)

// RateLimiter throttles requests per client IP over a fixed window. Distinct
// instances carry distinct windows (general, auth, payment creation).
type RateLimiter struct {
	store   mem.WindowStore
	limit   int
	window  time.Duration
	message string
}

func NewRateLimiter(limit int, window time.Duration, message string) *RateLimiter {
	return &RateLimiter{
		store:   mem.NewFixedWindows(),
		limit:   limit,
		window:  window,
		message: message,
	}
}

func GeneralRateLimiter() *RateLimiter {
	return NewRateLimiter(100, 15*time.Minute,
		"Too many requests from this IP, please try again later.")
}

func AuthRateLimiter() *RateLimiter {
	return NewRateLimiter(5, 15*time.Minute,
		"Too many authentication attempts, please try again later.")
}

func PaymentRateLimiter() *RateLimiter {
	return NewRateLimiter(10, time.Minute,
		"Too many payment attempts, please try again later.")
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.store.Hit(c.ClientIP(), r.limit, r.window) {
			utils.RespondError(c, http.StatusTooManyRequests, r.message)
			c.Abort()
			return
		}
		c.Next()
	}
}
