// Package growthhdl - handler cho các endpoint growth analytics.
package growthhdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "chat_grow/internal/api/base/handler"
	"chat_grow/internal/api/growth/dto"
	growthsvc "chat_grow/internal/api/growth/service"
	"chat_grow/internal/common"
	"chat_grow/internal/logger"
)

// GrowthHandler xử lý các endpoint rollup và recompute của growth analytics.
type GrowthHandler struct {
	service *growthsvc.GrowthService
}

// NewGrowthHandler tạo mới GrowthHandler.
func NewGrowthHandler() (*GrowthHandler, error) {
	service, err := growthsvc.NewGrowthService()
	if err != nil {
		return nil, err
	}
	return &GrowthHandler{service: service}, nil
}

// HandleGetSummary GET /growth/get/summary?period=7d|30d|90d
func (h *GrowthHandler) HandleGetSummary(c fiber.Ctx) error {
	businessID, err := basehdl.GetBusinessID(c)
	if err != nil {
		return basehdl.HandleResponse(c, nil, err)
	}

	result, err := h.service.GetSummary(c.Context(), businessID, c.Query("period", "30d"))
	return basehdl.HandleResponse(c, result, err)
}

// HandleGetSources GET /growth/get/sources?period=7d|30d|90d
func (h *GrowthHandler) HandleGetSources(c fiber.Ctx) error {
	businessID, err := basehdl.GetBusinessID(c)
	if err != nil {
		return basehdl.HandleResponse(c, nil, err)
	}

	result, err := h.service.GetSources(c.Context(), businessID, c.Query("period", "30d"))
	return basehdl.HandleResponse(c, result, err)
}

// HandleGetTimeline GET /growth/get/timeline?period=7d|30d|90d
func (h *GrowthHandler) HandleGetTimeline(c fiber.Ctx) error {
	businessID, err := basehdl.GetBusinessID(c)
	if err != nil {
		return basehdl.HandleResponse(c, nil, err)
	}

	result, err := h.service.GetTimeline(c.Context(), businessID, c.Query("period", "30d"))
	return basehdl.HandleResponse(c, result, err)
}

// HandleGetAIInsights GET /growth/get/ai-insights?period=7d|30d|90d
func (h *GrowthHandler) HandleGetAIInsights(c fiber.Ctx) error {
	businessID, err := basehdl.GetBusinessID(c)
	if err != nil {
		return basehdl.HandleResponse(c, nil, err)
	}

	result, err := h.service.GetAIInsights(c.Context(), businessID, c.Query("period", "30d"))
	return basehdl.HandleResponse(c, result, err)
}

// HandleRecompute POST /growth/recompute - aggregate lại một ngày theo yêu cầu.
// Body: {"date": "YYYY-MM-DD"}, ngày hiểu theo timezone của tenant.
func (h *GrowthHandler) HandleRecompute(c fiber.Ctx) error {
	businessID, err := basehdl.GetBusinessID(c)
	if err != nil {
		return basehdl.HandleResponse(c, nil, err)
	}

	var input dto.GrowthRecomputeInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		return basehdl.HandleResponse(c, nil, err)
	}
	if err := basehdl.ValidateInput(&input); err != nil {
		return basehdl.HandleResponse(c, nil, err)
	}

	loc := h.service.Business().GetLocation(c.Context(), businessID)
	day, err := time.ParseInLocation("2006-01-02", input.Date, loc)
	if err != nil {
		return basehdl.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Ngày không hợp lệ", common.StatusBadRequest, err.Error()))
	}

	if err := h.service.AggregateDailyStats(c.Context(), businessID, day); err != nil {
		logger.WithRequest(c).WithError(err).Error("📊 [GROWTH] Recompute thất bại")
		return basehdl.HandleResponse(c, nil, err)
	}

	return basehdl.HandleResponse(c, fiber.Map{"date": input.Date, "recomputed": true}, nil)
}
