package growthsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"chat_grow/internal/api/growth/dto"
	"chat_grow/internal/global"
	"chat_grow/internal/logger"
)

// GetAIInsights sinh narrative insights từ dữ liệu rollup của khoảng period.
// Gọi text-generation endpoint nếu được cấu hình; mọi lỗi (endpoint trống,
// HTTP lỗi, response không parse được) đều rơi về fallback tĩnh, endpoint
// này không bao giờ fail vì AI.
func (s *GrowthService) GetAIInsights(ctx context.Context, businessID primitive.ObjectID, period string) (*dto.AIInsightsResponse, error) {
	summary, err := s.GetSummary(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	sources, err := s.GetSources(ctx, businessID, period)
	if err != nil {
		return nil, err
	}

	if insights, err := s.callAIEndpoint(ctx, summary, sources); err == nil {
		return &dto.AIInsightsResponse{Period: period, GeneratedBy: "ai", Insights: *insights}, nil
	} else {
		logger.GetAppLogger().WithError(err).WithField("businessId", businessID.Hex()).
			Warn("🤖 [GROWTH_AI] AI endpoint lỗi, dùng insights tĩnh")
	}

	return &dto.AIInsightsResponse{
		Period:      period,
		GeneratedBy: "static",
		Insights:    buildStaticInsights(summary, sources),
	}, nil
}

// buildPrompt dựng prompt gọn từ summary và breakdown nguồn.
func buildPrompt(summary *dto.GrowthSummaryResponse, sources *dto.GrowthSourcesResponse) string {
	var b strings.Builder
	b.WriteString("Bạn là chuyên gia growth cho doanh nghiệp nhỏ. Dữ liệu acquisition ")
	fmt.Fprintf(&b, "khoảng %s: views=%d, leads=%d, appointments=%d, registrations=%d, payments=%d, revenue=%.2f.\n",
		summary.Period,
		summary.Totals.Views, summary.Totals.Leads, summary.Totals.Appointments,
		summary.Totals.Registrations, summary.Totals.Payments, summary.Totals.Revenue)
	b.WriteString("Theo nguồn:\n")
	for _, source := range sources.Sources {
		fmt.Fprintf(&b, "- %s (%s): views=%d leads=%d payments=%d revenue=%.2f overall=%.2f\n",
			source.SourceKey, source.SourceType,
			source.Metrics.Views, source.Metrics.Leads, source.Metrics.Payments,
			source.Metrics.Revenue, source.ConversionRates.OverallConversion)
	}
	b.WriteString("Trả lời CHỈ bằng một JSON object đúng schema: ")
	b.WriteString(`{"topSources":[],"weakSources":[],"recommendations":[],"summary":""}`)
	return b.String()
}

// callAIEndpoint gọi text-generation endpoint và parse JSON block đầu tiên trong response.
func (s *GrowthService) callAIEndpoint(ctx context.Context, summary *dto.GrowthSummaryResponse, sources *dto.GrowthSourcesResponse) (*dto.AIInsights, error) {
	cfg := global.ServerConfig
	if cfg == nil || cfg.AI_Endpoint == "" {
		return nil, fmt.Errorf("AI endpoint chưa được cấu hình")
	}

	payload := map[string]interface{}{
		"model": cfg.AI_Model,
		"messages": []map[string]string{
			{"role": "user", "content": buildPrompt(summary, sources)},
		},
		"temperature": 0.3,
	}
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", cfg.AI_Endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.AI_APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.AI_APIKey)
	}

	client := &http.Client{Timeout: time.Duration(cfg.AI_TimeoutS) * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("AI endpoint trả về status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	// Response dạng chat-completion: lấy content của choice đầu tiên,
	// không đúng dạng đó thì coi toàn bộ body là text
	text := string(bodyBytes)
	var completion struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(bodyBytes, &completion); err == nil && len(completion.Choices) > 0 {
		text = completion.Choices[0].Message.Content
	}

	return ParseInsightsText(text)
}

// ParseInsightsText tìm JSON object đầu tiên (block {...} cân bằng ngoặc)
// trong text và unmarshal thành AIInsights.
func ParseInsightsText(text string) (*dto.AIInsights, error) {
	block, err := extractFirstJSONBlock(text)
	if err != nil {
		return nil, err
	}

	var insights dto.AIInsights
	if err := json.Unmarshal([]byte(block), &insights); err != nil {
		return nil, fmt.Errorf("JSON insights không hợp lệ: %w", err)
	}
	if insights.Summary == "" && len(insights.Recommendations) == 0 {
		return nil, fmt.Errorf("JSON insights thiếu nội dung")
	}
	return &insights, nil
}

// extractFirstJSONBlock trả về block {...} đầu tiên cân bằng ngoặc,
// bỏ qua ngoặc nằm trong chuỗi JSON.
func extractFirstJSONBlock(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", fmt.Errorf("không tìm thấy JSON object trong response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1], nil
				}
			}
		}
	}
	return "", fmt.Errorf("JSON object trong response không đóng ngoặc")
}

// buildStaticInsights sinh insights xác định từ dữ liệu rollup khi không có AI.
func buildStaticInsights(summary *dto.GrowthSummaryResponse, sources *dto.GrowthSourcesResponse) dto.AIInsights {
	insights := dto.AIInsights{
		TopSources:      []string{},
		WeakSources:     []string{},
		Recommendations: []string{},
	}

	// sources đã sort revenue giảm dần
	for i, source := range sources.Sources {
		if i < 3 && source.Metrics.Revenue > 0 {
			insights.TopSources = append(insights.TopSources, source.SourceKey)
		}
		if source.Metrics.Views > 0 && source.ConversionRates.ViewsToLeads == 0 {
			insights.WeakSources = append(insights.WeakSources, source.SourceKey)
		}
	}

	if summary.Totals.Views > 0 && summary.ConversionRates.ViewsToLeads < 5 {
		insights.Recommendations = append(insights.Recommendations,
			"Tỉ lệ chuyển đổi từ lượt xem sang lead đang thấp, hãy xem lại nội dung và form trên landing page.")
	}
	if summary.Totals.Leads > 0 && summary.ConversionRates.LeadsToBookings < 20 {
		insights.Recommendations = append(insights.Recommendations,
			"Nhiều lead chưa đặt lịch hoặc đăng ký, hãy chủ động follow-up trong 24 giờ.")
	}
	if len(insights.TopSources) > 0 {
		insights.Recommendations = append(insights.Recommendations,
			"Tăng ngân sách cho nguồn hiệu quả nhất: "+insights.TopSources[0]+".")
	}
	if len(insights.Recommendations) == 0 {
		insights.Recommendations = append(insights.Recommendations,
			"Chưa đủ dữ liệu để đưa khuyến nghị, hãy tiếp tục thu thập thêm.")
	}

	insights.Summary = fmt.Sprintf(
		"Trong khoảng %s có %d lượt xem, %d lead và %d thanh toán với tổng doanh thu %.2f.",
		summary.Period, summary.Totals.Views, summary.Totals.Leads,
		summary.Totals.Payments, summary.Totals.Revenue)
	return insights
}
