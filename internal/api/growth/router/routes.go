// Package growthrouter đăng ký route cho domain growth.
package growthrouter

import (
	"github.com/gofiber/fiber/v3"

	basehdl "chat_grow/internal/api/base/handler"
	growthhdl "chat_grow/internal/api/growth/handler"
	"chat_grow/internal/api/middleware"
	apirouter "chat_grow/internal/api/router"
)

// Register đăng ký các route growth analytics vào group v1.
func Register(v1 fiber.Router) error {
	handler, err := growthhdl.NewGrowthHandler()
	if err != nil {
		return err
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	routes := []struct {
		method  string
		subPath string
		handler fiber.Handler
	}{
		{fiber.MethodGet, "/get/summary", handler.HandleGetSummary},
		{fiber.MethodGet, "/get/sources", handler.HandleGetSources},
		{fiber.MethodGet, "/get/timeline", handler.HandleGetTimeline},
		{fiber.MethodGet, "/get/ai-insights", handler.HandleGetAIInsights},
		{fiber.MethodPost, "/recompute", handler.HandleRecompute},
	}

	for _, r := range routes {
		if err := apirouter.RegisterRouteWithMiddleware(v1, "/growth", r.method, r.subPath, middlewares, basehdl.SafeHandlerWrapper(r.handler)); err != nil {
			return err
		}
	}
	return nil
}
