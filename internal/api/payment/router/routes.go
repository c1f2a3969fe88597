// Package paymentrouter đăng ký route cho domain payment.
package paymentrouter

import (
	"github.com/gofiber/fiber/v3"

	"chat_grow/internal/api/middleware"
	paymenthdl "chat_grow/internal/api/payment/handler"
	apirouter "chat_grow/internal/api/router"
)

// Register đăng ký CRUD route cho payments vào group v1.
func Register(v1 fiber.Router) error {
	handler, err := paymenthdl.NewPaymentTransactionHandler()
	if err != nil {
		return err
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}
	return apirouter.RegisterCRUDRoutes(v1, "/payments", handler, middlewares, apirouter.ReadWriteConfig())
}
