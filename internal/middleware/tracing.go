package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Tracing abre um span OpenTelemetry por requisição HTTP e registra método,
// rota, status e tamanho da resposta.
func Tracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := otel.Tracer("http").Start(c.Request.Context(), "http.request")
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.client_ip", c.ClientIP()),
		)

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		if status >= 400 {
			span.SetStatus(codes.Error, "requisição falhou")
			if len(c.Errors) > 0 {
				span.SetAttributes(attribute.String("http.error_message", c.Errors.String()))
			}
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}
}
