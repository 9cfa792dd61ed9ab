package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/retailbill/backend/internal/infrastructure/logger"
	"github.com/retailbill/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware
type TracingConfig struct {
	ServiceName    string
	Enabled        bool
	TracerProvider trace.TracerProvider
}

// Tracing starts a server span per request through otelgin
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	var opts []otelgin.Option
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgin.WithTracerProvider(cfg.TracerProvider))
	}
	return otelgin.Middleware(cfg.ServiceName, opts...)
}

// SpanEnricher must run after Tracing. It tags the server span with the
// request ID and business email, puts the email on the logger context, and
// marks spans of 4xx and 5xx responses as errors.
func SpanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())

		email := businessEmailOf(c)
		if email != "" {
			c.Request = c.Request.WithContext(logger.WithBusinessEmail(c.Request.Context(), email))
		}

		if span.IsRecording() {
			if id := GetRequestID(c); id != "" {
				span.SetAttributes(attribute.String("request_id", id))
			}
			if email != "" {
				span.SetAttributes(attribute.String(telemetry.SpanAttrBusinessEmail, email))
			}
		}

		c.Next()

		if !span.IsRecording() {
			return
		}
		status := c.Writer.Status()
		if status >= http.StatusBadRequest {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

// businessEmailOf reads the tenant key from the query string. Request bodies
// are not read here, so sale submissions are tagged by the service span.
func businessEmailOf(c *gin.Context) string {
	email := c.Query("businessEmail")
	if len(email) > 320 {
		return ""
	}
	return email
}
