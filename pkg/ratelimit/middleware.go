package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"comedyslots/internal/shared/apperrors"
	"comedyslots/internal/shared/utils/response"
	"comedyslots/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Limiter decides whether a client may make another request of a given type.
type Limiter interface {
	IsAllowed(ctx context.Context, clientIP string, limitType RateLimitType) (*Result, error)
}

// Middleware applies the limit for the matched route. A Redis failure lets the
// request through. The client is identified by gin's ClientIP, so forwarding
// headers count only when the engine trusts the proxy that sent them.
func Middleware(limiter Limiter, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		limitType := getRateLimitType(c.Request.Method, c.FullPath())

		result, err := limiter.IsAllowed(c.Request.Context(), clientIP, limitType)
		if err != nil {
			log.WarnContext(c.Request.Context(), "rate limit check failed", "error", err, "ip", clientIP)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetTime))

		if !result.Allowed {
			log.LogRateLimitExceeded(c.Request.Context(), clientIP, c.FullPath())
			response.RespondError(c, apperrors.RateLimited(result.Limit, result.ResetTime))
			c.Abort()
			return
		}

		c.Next()
	}
}

func getRateLimitType(method, path string) RateLimitType {
	switch {
	case strings.HasPrefix(path, "/health"),
		strings.HasPrefix(path, "/ping"):
		return RateLimitTypeHealth

	case strings.Contains(path, "/auth/"):
		return RateLimitTypeAuth

	case strings.Contains(path, "/promoter/"):
		return RateLimitTypeManage

	// state-changing booking calls
	case strings.Contains(path, "/bookings") && method != http.MethodGet:
		return RateLimitTypeBooking

	case strings.Contains(path, "/shows") && method == http.MethodGet:
		return RateLimitTypePublic

	default:
		return RateLimitTypeDefault
	}
}
