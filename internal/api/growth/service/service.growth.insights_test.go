// Package growthsvc - Test parse JSON insights từ response text và fallback tĩnh.
package growthsvc

import (
	"testing"

	"chat_grow/internal/api/growth/dto"
	growthmodels "chat_grow/internal/api/growth/models"
)

func TestParseInsightsText_JSONThuan(t *testing.T) {
	text := `{"topSources":["landing-page:spring-sale"],"weakSources":[],"recommendations":["Tăng ngân sách"],"summary":"Tốt"}`
	insights, err := ParseInsightsText(text)
	if err != nil {
		t.Fatalf("ParseInsightsText trả lỗi: %v", err)
	}
	if len(insights.TopSources) != 1 || insights.TopSources[0] != "landing-page:spring-sale" {
		t.Errorf("topSources sai: %v", insights.TopSources)
	}
	if insights.Summary != "Tốt" {
		t.Errorf("summary sai: %q", insights.Summary)
	}
}

func TestParseInsightsText_JSONNamGiuaVanXuoi(t *testing.T) {
	text := "Đây là phân tích của tôi:\n```json\n" +
		`{"topSources":[],"weakSources":["other:walk-in"],"recommendations":["Follow-up lead"],"summary":"Cần cải thiện"}` +
		"\n```\nHy vọng hữu ích!"
	insights, err := ParseInsightsText(text)
	if err != nil {
		t.Fatalf("ParseInsightsText trả lỗi: %v", err)
	}
	if len(insights.WeakSources) != 1 || insights.WeakSources[0] != "other:walk-in" {
		t.Errorf("weakSources sai: %v", insights.WeakSources)
	}
}

func TestParseInsightsText_NgoacTrongChuoi(t *testing.T) {
	// Ngoặc } nằm trong chuỗi JSON không được làm lệch đếm ngoặc
	text := `{"topSources":[],"weakSources":[],"recommendations":["Dùng mẫu {tên khách}"],"summary":"ok {đủ} dữ liệu"}`
	insights, err := ParseInsightsText(text)
	if err != nil {
		t.Fatalf("ParseInsightsText trả lỗi: %v", err)
	}
	if insights.Summary != "ok {đủ} dữ liệu" {
		t.Errorf("summary sai: %q", insights.Summary)
	}
}

func TestParseInsightsText_KhongCoJSON(t *testing.T) {
	if _, err := ParseInsightsText("không có json nào ở đây"); err == nil {
		t.Error("text không chứa JSON phải trả lỗi")
	}
	if _, err := ParseInsightsText(`{"summary":"thiếu ngoặc đóng`); err == nil {
		t.Error("JSON không đóng ngoặc phải trả lỗi")
	}
	if _, err := ParseInsightsText(`{"khongPhaiSchema": true}`); err == nil {
		t.Error("JSON không có nội dung insights phải trả lỗi")
	}
}

func TestBuildStaticInsights_CoDayDuNoiDung(t *testing.T) {
	summary := &dto.GrowthSummaryResponse{
		Period: "30d",
		Totals: growthmodels.Metrics{Views: 100, Leads: 2, Payments: 1, Revenue: 500},
		ConversionRates: growthmodels.ConversionRates{
			ViewsToLeads:    2,
			LeadsToBookings: 10,
		},
	}
	sources := &dto.GrowthSourcesResponse{
		Period: "30d",
		Sources: []dto.SourceBreakdownItem{
			{SourceKey: "landing-page:spring-sale", Metrics: growthmodels.Metrics{Views: 80, Leads: 2, Revenue: 500}},
			{SourceKey: "other:walk-in", Metrics: growthmodels.Metrics{Views: 20}},
		},
	}

	insights := buildStaticInsights(summary, sources)

	if insights.Summary == "" {
		t.Error("fallback tĩnh phải có summary")
	}
	if len(insights.Recommendations) == 0 {
		t.Error("fallback tĩnh phải có ít nhất một khuyến nghị")
	}
	if len(insights.TopSources) != 1 || insights.TopSources[0] != "landing-page:spring-sale" {
		t.Errorf("topSources phải chứa nguồn có revenue, nhận: %v", insights.TopSources)
	}
	if len(insights.WeakSources) != 1 || insights.WeakSources[0] != "other:walk-in" {
		t.Errorf("weakSources phải chứa nguồn có views nhưng không có lead, nhận: %v", insights.WeakSources)
	}
}

func TestBuildStaticInsights_KhongCoDuLieu(t *testing.T) {
	insights := buildStaticInsights(
		&dto.GrowthSummaryResponse{Period: "7d"},
		&dto.GrowthSourcesResponse{Period: "7d"},
	)
	if len(insights.Recommendations) == 0 {
		t.Error("không có dữ liệu vẫn phải có khuyến nghị mặc định")
	}
	if insights.TopSources == nil || insights.WeakSources == nil {
		t.Error("các slice phải khởi tạo rỗng, không được nil để JSON trả [] thay vì null")
	}
}
