// Package middleware holds the shared Gin middleware for the HTTP layer:
// request correlation, structured access logging, panic recovery, Prometheus
// instrumentation, rate limiting, and security headers.
//
// Recommended order: RequestID, Logger, Recovery — later entries then see the
// correlation ID and panics are logged with request context.
package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	ctxKeyRequestID = "requestID"
	ctxKeyLogger    = "logger"

	headerRequestID = "X-Request-ID"

	// queryLogLimit caps how many bytes of the raw query string end up in logs.
	queryLogLimit = 2048
)

// RequestID reuses the caller-supplied X-Request-ID or generates a UUIDv4,
// stores it in the Gin context and echoes it on the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(headerRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, rid)
		c.Writer.Header().Set(headerRequestID, rid)
		c.Next()
	}
}

// Logger emits one structured access log line per request and attaches a
// request-scoped zerolog.Logger to the context for handlers to enrich
// (retrieve it with LoggerFrom).
//
// Level follows the outcome: error for 5xx or when the Gin context collected
// errors, warn for 4xx, info otherwise. The path field uses the registered
// route pattern when one matched, the raw URL path otherwise.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		rid, _ := c.Get(ctxKeyRequestID)
		uid, _ := c.Get("userID")
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		reqLog := log.With().
			Str("request_id", ctxString(rid)).
			Str("user_id", ctxString(uid)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("remote_ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Str("referer", c.Request.Referer()).
			Str("query", clip(c.Request.URL.RawQuery, queryLogLimit)).
			Int64("bytes_in", c.Request.ContentLength). // -1 when unknown
			Logger()
		c.Set(ctxKeyLogger, &reqLog)

		c.Next()

		status := c.Writer.Status()
		line := reqLog.With().
			Int("status", status).
			Dur("latency", time.Since(start)).
			Int("bytes_out", c.Writer.Size()).
			Logger()

		switch {
		case len(c.Errors) > 0:
			line.Error().Str("errors", c.Errors.String()).Msg("request")
		case status >= 500:
			line.Error().Msg("request")
		case status >= 400:
			line.Warn().Msg("request")
		default:
			line.Info().Msg("request")
		}
	}
}

// Recovery turns a handler panic into a JSON 500 response and logs the panic
// value with a stack trace. If the handler already wrote a response body, only
// the status is forced; no JSON is appended to a partial body.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			rid, _ := c.Get(ctxKeyRequestID)
			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Str("request_id", ctxString(rid)).
				Msg("panic recovered")

			if c.Writer.Written() {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.Header("Content-Type", "application/json")
			c.Header(headerRequestID, ctxString(rid))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"request_id": ctxString(rid),
				"code":       "internal_error",
				"message":    "internal server error",
			})
		}()
		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger attached by Logger, or a
// fallback without request fields so callers never need a nil check.
func LoggerFrom(c *gin.Context) *zerolog.Logger {
	if v, ok := c.Get(ctxKeyLogger); ok {
		if lg, ok := v.(*zerolog.Logger); ok {
			return lg
		}
	}
	l := log.With().Logger()
	return &l
}

// ctxString reads a Gin context value as a string, empty for anything else.
func ctxString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// clip truncates s to max bytes and appends an ellipsis. max <= 0 disables
// truncation. Byte-level truncation is fine for log fields.
func clip(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
