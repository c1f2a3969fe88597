// Package landinghdl xử lý các route landing page.
package landinghdl

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "chat_grow/internal/api/base/handler"
	"chat_grow/internal/api/landing/dto"
	landingmodels "chat_grow/internal/api/landing/models"
	landingsvc "chat_grow/internal/api/landing/service"
	"chat_grow/internal/common"
)

// LandingPageHandler dùng bộ CRUD chuẩn cho landing pages, thêm track endpoint public.
type LandingPageHandler struct {
	basehdl.BaseHandler[landingmodels.LandingPage, dto.LandingPageCreateInput, dto.LandingPageUpdateInput]

	service *landingsvc.LandingPageService
}

// NewLandingPageHandler tạo một instance mới của LandingPageHandler.
func NewLandingPageHandler() (*LandingPageHandler, error) {
	service, err := landingsvc.NewLandingPageService()
	if err != nil {
		return nil, err
	}
	handler := &LandingPageHandler{service: service}
	handler.Service = service
	return handler, nil
}

// HandleTrackVisit ghi một lượt xem landing page. Route public, không cần token:
// tenant xác định qua path param businessId, trang qua slug.
func (h *LandingPageHandler) HandleTrackVisit(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(func(c fiber.Ctx) error {
		businessID, err := primitive.ObjectIDFromHex(c.Params("businessId"))
		if err != nil {
			return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "BusinessId không hợp lệ", common.StatusBadRequest, nil))
		}
		slug := c.Params("slug")
		if slug == "" {
			return basehdl.HandleResponse(c, nil, common.ErrInvalidInput)
		}

		// Body optional: {referrer}
		var input dto.LandingVisitInput
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &input); err != nil {
				return basehdl.HandleResponse(c, nil, common.ErrInvalidFormat)
			}
		}

		visit := landingmodels.LandingPageVisit{
			Referrer:  input.Referrer,
			UserAgent: c.Get("User-Agent"),
			IP:        c.IP(),
			VisitedAt: time.Now().UnixMilli(),
		}
		created, err := h.service.TrackVisit(c.Context(), businessID, slug, visit)
		return basehdl.HandleResponse(c, fiber.Map{"visitId": created.ID}, err)
	})(c)
}
