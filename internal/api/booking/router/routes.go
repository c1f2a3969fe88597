// Package bookingrouter đăng ký route cho domain booking.
package bookingrouter

import (
	"github.com/gofiber/fiber/v3"

	bookinghdl "chat_grow/internal/api/booking/handler"
	"chat_grow/internal/api/middleware"
	apirouter "chat_grow/internal/api/router"
)

// Register đăng ký CRUD route cho events và appointments vào group v1.
func Register(v1 fiber.Router) error {
	eventHandler, err := bookinghdl.NewBookingEventHandler()
	if err != nil {
		return err
	}
	appointmentHandler, err := bookinghdl.NewBookingAppointmentHandler()
	if err != nil {
		return err
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	if err := apirouter.RegisterCRUDRoutes(v1, "/events", eventHandler, middlewares, apirouter.ReadWriteConfig()); err != nil {
		return err
	}
	if err := apirouter.RegisterRouteWithMiddleware(v1, "/events", fiber.MethodPost, "/:id/register", middlewares, eventHandler.HandleRegister); err != nil {
		return err
	}

	return apirouter.RegisterCRUDRoutes(v1, "/appointments", appointmentHandler, middlewares, apirouter.ReadWriteConfig())
}
