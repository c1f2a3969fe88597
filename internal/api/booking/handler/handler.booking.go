// Package bookinghdl xử lý các route booking (events + appointments).
package bookinghdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "chat_grow/internal/api/base/handler"
	"chat_grow/internal/api/booking/dto"
	bookingmodels "chat_grow/internal/api/booking/models"
	bookingsvc "chat_grow/internal/api/booking/service"
	"chat_grow/internal/common"
)

// BookingEventHandler dùng bộ CRUD chuẩn cho events, thêm route đăng ký tham dự.
type BookingEventHandler struct {
	basehdl.BaseHandler[bookingmodels.BookingEvent, dto.BookingEventCreateInput, dto.BookingEventUpdateInput]

	service *bookingsvc.BookingEventService
}

// NewBookingEventHandler tạo một instance mới của BookingEventHandler.
func NewBookingEventHandler() (*BookingEventHandler, error) {
	service, err := bookingsvc.NewBookingEventService()
	if err != nil {
		return nil, err
	}
	handler := &BookingEventHandler{service: service}
	handler.Service = service
	return handler, nil
}

// HandleRegister tạo lượt đăng ký tham dự cho event :id.
func (h *BookingEventHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(func(c fiber.Ctx) error {
		businessID, err := basehdl.GetBusinessID(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		eventID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Id không hợp lệ", common.StatusBadRequest, nil))
		}

		var input dto.EventRegisterInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		reg := bookingmodels.EventRegistration{
			Name:  input.Name,
			Email: input.Email,
			Phone: input.Phone,
		}
		created, err := h.service.Register(c.Context(), businessID, eventID, reg)
		return basehdl.HandleResponse(c, created, err)
	})(c)
}

// BookingAppointmentHandler dùng bộ CRUD chuẩn cho appointments.
type BookingAppointmentHandler struct {
	basehdl.BaseHandler[bookingmodels.BookingAppointment, dto.BookingAppointmentCreateInput, dto.BookingAppointmentUpdateInput]
}

// NewBookingAppointmentHandler tạo một instance mới của BookingAppointmentHandler.
func NewBookingAppointmentHandler() (*BookingAppointmentHandler, error) {
	service, err := bookingsvc.NewBookingAppointmentService()
	if err != nil {
		return nil, err
	}
	handler := &BookingAppointmentHandler{}
	handler.Service = service
	return handler, nil
}
