package middleware

import (
	"net/http"

	"loyalty-wallet/internal/handler/httperr"
	"loyalty-wallet/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// NewDeviceLogLimiter throttles the device log endpoint, which accepts
// unauthenticated traffic when strict auth is off.
func NewDeviceLogLimiter(cfg config.Config) gin.HandlerFunc {
	return RateLimit(rate.NewLimiter(rate.Limit(cfg.PassKit.LogRPS), cfg.PassKit.LogBurst))
}

func RateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			httperr.Reject(c, http.StatusTooManyRequests, httperr.MsgTooManyRequests)
			return
		}
		c.Next()
	}
}
