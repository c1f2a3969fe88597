// Package dto - DTO cho domain growth.
package dto

import (
	growthmodels "chat_grow/internal/api/growth/models"
)

// GrowthSummaryResponse là tổng hợp toàn bộ nguồn trong khoảng rollup.
type GrowthSummaryResponse struct {
	Period          string                       `json:"period"`
	From            int64                        `json:"from"` // Unix-milli ngày đầu khoảng
	To              int64                        `json:"to"`   // Unix-milli ngày cuối khoảng
	Totals          growthmodels.Metrics         `json:"totals"`
	ConversionRates growthmodels.ConversionRates `json:"conversionRates"`
	ConversionRate  float64                      `json:"conversionRate"` // tỉ lệ gộp payments/leads*100
	DailyTotals     []TimelinePoint              `json:"dailyTotals"`
}

// SourceBreakdownItem là tổng hợp một nguồn trong khoảng rollup.
// Danh sách trả về sort revenue giảm dần, sourceKey tăng dần khi bằng nhau.
type SourceBreakdownItem struct {
	SourceType      string                       `json:"sourceType"`
	SourceKey       string                       `json:"sourceKey"`
	SourceName      string                       `json:"sourceName,omitempty"`
	Metrics         growthmodels.Metrics         `json:"metrics"`
	ConversionRates growthmodels.ConversionRates `json:"conversionRates"`
}

// GrowthSourcesResponse là response của /growth/get/sources.
type GrowthSourcesResponse struct {
	Period  string                `json:"period"`
	Sources []SourceBreakdownItem `json:"sources"`
}

// TimelinePoint là tổng metrics của một ngày. Ngày không có dữ liệu trả 0.
type TimelinePoint struct {
	Day     int64                `json:"day"` // Unix-milli nửa đêm local
	Metrics growthmodels.Metrics `json:"metrics"`
}

// GrowthTimelineResponse là response của /growth/get/timeline.
type GrowthTimelineResponse struct {
	Period   string          `json:"period"`
	Timeline []TimelinePoint `json:"timeline"`
}

// AIInsights là nội dung narrative do AI (hoặc fallback tĩnh) sinh ra.
type AIInsights struct {
	TopSources      []string `json:"topSources"`
	WeakSources     []string `json:"weakSources"`
	Recommendations []string `json:"recommendations"`
	Summary         string   `json:"summary"`
}

// AIInsightsResponse là response của /growth/get/ai-insights.
// GeneratedBy = "ai" khi endpoint trả kết quả hợp lệ, "static" khi dùng fallback.
type AIInsightsResponse struct {
	Period      string     `json:"period"`
	GeneratedBy string     `json:"generatedBy"`
	Insights    AIInsights `json:"insights"`
}

// GrowthRecomputeInput là body của POST /growth/recompute.
type GrowthRecomputeInput struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD theo timezone của tenant
}
