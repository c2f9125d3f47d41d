package http

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, wait := limiter.Allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody("rate limit exceeded"))
			return
		}
		c.Next()
	}
}
