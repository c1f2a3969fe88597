// Package landingrouter đăng ký route cho domain landing.
package landingrouter

import (
	"github.com/gofiber/fiber/v3"

	landinghdl "chat_grow/internal/api/landing/handler"
	"chat_grow/internal/api/middleware"
	apirouter "chat_grow/internal/api/router"
)

// Register đăng ký CRUD route cho landing pages và track endpoint public vào group v1.
func Register(v1 fiber.Router) error {
	handler, err := landinghdl.NewLandingPageHandler()
	if err != nil {
		return err
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}
	if err := apirouter.RegisterCRUDRoutes(v1, "/landing-pages", handler, middlewares, apirouter.ReadWriteConfig()); err != nil {
		return err
	}

	// Track endpoint public: gọi từ script nhúng trên landing page
	return apirouter.RegisterRouteWithMiddleware(v1, "/landing", fiber.MethodPost, "/track/:businessId/:slug", nil, handler.HandleTrackVisit)
}
