// Package businessrouter đăng ký route cho domain business.
package businessrouter

import (
	"github.com/gofiber/fiber/v3"

	businesshdl "chat_grow/internal/api/business/handler"
	"chat_grow/internal/api/middleware"
	apirouter "chat_grow/internal/api/router"
)

// Register đăng ký các route business profile vào group v1.
func Register(v1 fiber.Router) error {
	handler, err := businesshdl.NewBusinessHandler()
	if err != nil {
		return err
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	if err := apirouter.RegisterRouteWithMiddleware(v1, "/business", fiber.MethodGet, "/me", middlewares, handler.HandleGetMe); err != nil {
		return err
	}
	if err := apirouter.RegisterRouteWithMiddleware(v1, "/business", fiber.MethodPut, "/me", middlewares, handler.HandleUpdateMe); err != nil {
		return err
	}
	return nil
}
