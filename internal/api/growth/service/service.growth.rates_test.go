// Package growthsvc - Test tính tỉ lệ chuyển đổi: mẫu số 0, làm tròn, bookings gộp.
package growthsvc

import (
	"math"
	"testing"

	growthmodels "chat_grow/internal/api/growth/models"
)

func TestCalcConversionRates_ZeroDenominators(t *testing.T) {
	rates := CalcConversionRates(growthmodels.Metrics{})
	if rates.ViewsToLeads != 0 || rates.LeadsToBookings != 0 ||
		rates.BookingsToPayments != 0 || rates.OverallConversion != 0 {
		t.Errorf("metrics rỗng phải cho mọi tỉ lệ bằng 0, nhận: %+v", rates)
	}
}

func TestCalcConversionRates_NoNaNOrInf(t *testing.T) {
	// Leads > 0 nhưng views = 0: viewsToLeads không được là Inf
	rates := CalcConversionRates(growthmodels.Metrics{Leads: 5, Payments: 2})
	for name, v := range map[string]float64{
		"viewsToLeads":       rates.ViewsToLeads,
		"leadsToBookings":    rates.LeadsToBookings,
		"bookingsToPayments": rates.BookingsToPayments,
		"overallConversion":  rates.OverallConversion,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("tỉ lệ %s không được là NaN/Inf, nhận: %v", name, v)
		}
	}
	if rates.ViewsToLeads != 0 {
		t.Errorf("views = 0 thì viewsToLeads phải bằng 0, nhận: %v", rates.ViewsToLeads)
	}
}

func TestCalcConversionRates_BookingsGomAppointmentsVaRegistrations(t *testing.T) {
	m := growthmodels.Metrics{Leads: 10, Appointments: 3, Registrations: 2}
	rates := CalcConversionRates(m)
	// bookings = 3 + 2 = 5, leadsToBookings = 5/10*100 = 50
	if rates.LeadsToBookings != 50 {
		t.Errorf("leadsToBookings phải là 50 (bookings = appointments + registrations), nhận: %v", rates.LeadsToBookings)
	}
}

func TestCalcConversionRates_PhanTramLamTron2ChuSo(t *testing.T) {
	m := growthmodels.Metrics{Views: 3, Leads: 1}
	rates := CalcConversionRates(m)
	// 1/3*100 = 33.333... làm tròn thành 33.33
	if rates.ViewsToLeads != 33.33 {
		t.Errorf("viewsToLeads phải là phần trăm làm tròn 2 chữ số (33.33), nhận: %v", rates.ViewsToLeads)
	}
}

func TestBlendedConversionRate(t *testing.T) {
	cases := []struct {
		name string
		m    growthmodels.Metrics
		want float64
	}{
		{"payments/leads*100", growthmodels.Metrics{Leads: 8, Payments: 2}, 25},
		{"làm tròn 2 chữ số", growthmodels.Metrics{Leads: 3, Payments: 1}, 33.33},
		{"leads = 0 trả về 0", growthmodels.Metrics{Payments: 4}, 0},
	}
	for _, c := range cases {
		if got := BlendedConversionRate(c.m); got != c.want {
			t.Errorf("%s: BlendedConversionRate(%+v) = %v, muốn %v", c.name, c.m, got, c.want)
		}
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.13},
		{0.124, 0.12},
		{1.0, 1.0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Errorf("Round2(%v) = %v, muốn %v", c.in, got, c.want)
		}
	}
}
