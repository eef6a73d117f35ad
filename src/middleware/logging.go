package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/logger"
)

// RequestLogger logs one line per request, tagged with the request id set
// by the requestid middleware.
func RequestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	requestID, _ := c.Locals("requestid").(string)
	logger.L().Info("request",
		zap.String("id", requestID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", c.Response().StatusCode()),
		zap.Duration("duration", time.Since(start)),
		zap.String("ip", c.IP()),
	)
	return err
}
