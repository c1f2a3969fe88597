// Package crmrouter đăng ký route cho domain CRM.
package crmrouter

import (
	"github.com/gofiber/fiber/v3"

	crmhdl "chat_grow/internal/api/crm/handler"
	"chat_grow/internal/api/middleware"
	apirouter "chat_grow/internal/api/router"
)

// Register đăng ký CRUD route cho customers vào group v1.
func Register(v1 fiber.Router) error {
	handler, err := crmhdl.NewCrmCustomerHandler()
	if err != nil {
		return err
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}
	return apirouter.RegisterCRUDRoutes(v1, "/customers", handler, middlewares, apirouter.ReadWriteConfig())
}
