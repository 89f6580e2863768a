package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"civicdispatch-be/config"

	"github.com/gin-gonic/gin"
)

const reportLimitKeyPrefix = "report_limit"

// ReportRateLimiter caps the number of reports one citizen phone number can
// submit per day. Counting happens in Redis with a daily TTL; when Redis is
// unavailable the submission goes through uncounted rather than failing the
// citizen.
func ReportRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		// Peek at the body for the citizen phone, then hand the body back to
		// the handler untouched.
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var peek struct {
			CitizenPhone string `json:"citizenPhone"`
		}
		if err := json.Unmarshal(body, &peek); err != nil || peek.CitizenPhone == "" {
			// Binding errors surface in the handler proper.
			c.Next()
			return
		}

		ctx := config.Ctx
		userKey := reportLimitKeyPrefix + ":" + peek.CitizenPhone

		count, err := config.RedisClient.Incr(ctx, userKey).Result()
		if err != nil {
			c.Next()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			_ = config.RedisClient.Expire(ctx, userKey, 24*time.Hour).Err()
		}

		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
