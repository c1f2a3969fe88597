package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về log entry gắn sẵn context của request hiện tại.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	}
	if reqID := c.Get("X-Request-ID"); reqID != "" {
		fields["requestId"] = reqID
	}
	if businessID := c.Locals("business_id"); businessID != nil {
		fields["businessId"] = businessID
	}
	return GetAppLogger().WithFields(fields)
}
