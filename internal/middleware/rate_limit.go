package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// limiter entries for idle clients expire after this long
const limiterTTL = time.Hour

// UploadRateLimit limits mutating requests per client IP. perMinute <= 0
// disables limiting.
func UploadRateLimit(perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	every := time.Minute / time.Duration(perMinute)

	return limit.NewRateLimiter(
		func(c *gin.Context) string {
			return c.ClientIP()
		},
		func(c *gin.Context) (*rate.Limiter, time.Duration) {
			return rate.NewLimiter(rate.Every(every), burst), limiterTTL
		},
		func(c *gin.Context) {
			log.Printf("UploadRateLimit(): too many requests from %s", c.ClientIP())
			c.String(http.StatusTooManyRequests, "Too many requests")
			c.Abort()
		},
	)
}
