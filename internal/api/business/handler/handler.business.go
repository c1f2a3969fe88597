// Package businesshdl xử lý các route profile của tenant hiện tại.
package businesshdl

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	basehdl "chat_grow/internal/api/base/handler"
	"chat_grow/internal/api/business/dto"
	businesssvc "chat_grow/internal/api/business/service"
	"chat_grow/internal/common"
	"chat_grow/internal/utility"
)

// BusinessHandler xử lý các route liên quan đến business profile.
type BusinessHandler struct {
	service *businesssvc.BusinessService
}

// NewBusinessHandler tạo một instance mới của BusinessHandler.
func NewBusinessHandler() (*BusinessHandler, error) {
	service, err := businesssvc.NewBusinessService()
	if err != nil {
		return nil, err
	}
	return &BusinessHandler{service: service}, nil
}

// HandleGetMe trả về profile của tenant hiện tại.
func (h *BusinessHandler) HandleGetMe(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(func(c fiber.Ctx) error {
		businessID, err := basehdl.GetBusinessID(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		business, err := h.service.GetByID(c.Context(), businessID)
		return basehdl.HandleResponse(c, business, err)
	})(c)
}

// HandleUpdateMe cập nhật profile của tenant hiện tại (name, email, phone, timezone).
func (h *BusinessHandler) HandleUpdateMe(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(func(c fiber.Ctx) error {
		businessID, err := basehdl.GetBusinessID(c)
		if err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		var input dto.BusinessUpdateInput
		if err := basehdl.ParseRequestBody(c, &input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}
		if err := basehdl.ValidateInput(&input); err != nil {
			return basehdl.HandleResponse(c, nil, err)
		}

		// Chỉ set các field có trong body
		var rawFields map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &rawFields); err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
		}
		inputMap, err := utility.ToMap(&input)
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
		}
		set := map[string]interface{}{}
		for key, value := range inputMap {
			if _, present := rawFields[key]; present {
				set[key] = value
			}
		}
		if len(set) == 0 {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
		}

		updated, err := h.service.UpdateProfile(c.Context(), businessID, set)
		return basehdl.HandleResponse(c, updated, err)
	})(c)
}
