package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rahmatrdn/go-product-compare/internal/apperr"
	"go.uber.org/zap"
)

// RequestIDKey is the fiber Locals key the requestid middleware stores the id under.
const RequestIDKey = "requestid"

// RequestLogger logs one line per request after the handler chain has run.
func RequestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", statusOf(c, err)),
			zap.Duration("latency", time.Since(start)),
		}
		if id, ok := c.Locals(RequestIDKey).(string); ok {
			fields = append(fields, zap.String("request_id", id))
		}

		logger.Info("HTTP request", fields...)
		return err
	}
}

// statusOf is the status the error handler will write for err. Middleware
// runs before the error handler, so the response status is not final yet.
func statusOf(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	if ae, ok := apperr.As(err); ok {
		return ae.Status
	}
	return fiber.StatusInternalServerError
}
