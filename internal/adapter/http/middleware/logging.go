package middleware

import (
	"strings"
	"time"

	"espaco_vista/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger attaches a request scoped logger to the request context and
// writes one entry per request once the handler chain returns.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	base = logger.Component(base, "http")
	return func(c *gin.Context) {
		start := time.Now()
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		reqLog := base.With().Str("request_id", requestID).Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		evt := reqLog.Info()
		switch {
		case status >= 500:
			evt = reqLog.Error()
		case status >= 400:
			evt = reqLog.Warn()
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("errors", c.Errors.String())
		}
		evt.
			Str("method", c.Request.Method).
			Str("route", routeOf(c)).
			Int("status", status).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Str("role", string(RoleFromContext(c))).
			Msg("request completed")
	}
}

// Recovery turns a panic into a 500 and logs it.
func Recovery(base zerolog.Logger) gin.HandlerFunc {
	base = logger.Component(base, "http")
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		base.Error().Interface("panic", recovered).Str("route", routeOf(c)).Msg("recovered from panic")
		c.AbortWithStatus(500)
	})
}

func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unknown"
}
