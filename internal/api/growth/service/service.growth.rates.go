// Package growthsvc chứa toàn bộ logic growth analytics:
// tính tỉ lệ chuyển đổi, aggregate theo ngày, rollup theo khoảng và AI insights.
package growthsvc

import (
	"math"

	growthmodels "chat_grow/internal/api/growth/models"
)

// CalcConversionRates tính các tỉ lệ chuyển đổi (phần trăm) từ metrics.
// Bookings = appointments + registrations. Mẫu số bằng 0 cho tỉ lệ 0,
// kết quả làm tròn 2 chữ số thập phân.
func CalcConversionRates(m growthmodels.Metrics) growthmodels.ConversionRates {
	bookings := m.Appointments + m.Registrations
	return growthmodels.ConversionRates{
		ViewsToLeads:       safeRate(m.Leads, m.Views),
		LeadsToBookings:    safeRate(bookings, m.Leads),
		BookingsToPayments: safeRate(m.Payments, bookings),
		OverallConversion:  safeRate(m.Payments, m.Views),
	}
}

// BlendedConversionRate là tỉ lệ chuyển đổi gộp của summary: payments/leads*100.
func BlendedConversionRate(m growthmodels.Metrics) float64 {
	return safeRate(m.Payments, m.Leads)
}

// safeRate trả về numerator/denominator*100, denominator <= 0 trả về 0.
func safeRate(numerator, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return Round2(float64(numerator) / float64(denominator) * 100)
}

// Round2 làm tròn về 2 chữ số thập phân.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
