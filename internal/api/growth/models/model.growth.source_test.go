// Package growthmodels - Test sourceKey: dựng key, parse key, union sourceType.
package growthmodels

import "testing"

func TestSourceKey_DungDinhDang(t *testing.T) {
	cases := []struct {
		source Source
		want   string
	}{
		{Source{Type: SourceTypeLandingPage, Ref: "spring-sale"}, "landing-page:spring-sale"},
		{Source{Type: SourceTypeEvent, Ref: "65af0000000000000000abcd"}, "event:65af0000000000000000abcd"},
		{Source{Type: SourceTypeAppointment, Ref: AppointmentsGeneralRef}, "appointments:general"},
		{Source{Type: SourceTypeManual, Ref: "zalo"}, "manual:zalo"},
		{Source{Type: SourceTypeReferral, Ref: "KH001"}, "referral:KH001"},
		{Source{Type: SourceTypeOther, Ref: "walk-in"}, "other:walk-in"},
	}
	for _, c := range cases {
		if got := c.source.Key(); got != c.want {
			t.Errorf("Key() = %q, muốn %q", got, c.want)
		}
	}
}

func TestParseSourceKey_RoundTrip(t *testing.T) {
	keys := []string{
		"landing-page:spring-sale",
		"event:65af0000000000000000abcd",
		"appointments:general",
		"manual:zalo",
		"referral:KH001",
		"other:walk-in",
	}
	for _, key := range keys {
		source, err := ParseSourceKey(key)
		if err != nil {
			t.Errorf("ParseSourceKey(%q) trả lỗi: %v", key, err)
			continue
		}
		if source.Key() != key {
			t.Errorf("round-trip %q ra %q", key, source.Key())
		}
		if !source.Type.IsValid() {
			t.Errorf("ParseSourceKey(%q) trả sourceType không thuộc union: %q", key, source.Type)
		}
	}
}

func TestParseSourceKey_KhongHopLe(t *testing.T) {
	for _, key := range []string{"", "landing-page", "unknown:abc", ":abc", "manual:", "landingpage:x"} {
		if _, err := ParseSourceKey(key); err == nil {
			t.Errorf("ParseSourceKey(%q) phải trả lỗi", key)
		}
	}
}

func TestSourceType_IsValid(t *testing.T) {
	if SourceType("facebook").IsValid() {
		t.Error("sourceType tự do ngoài union phải không hợp lệ")
	}
	if !SourceTypeLandingPage.IsValid() {
		t.Error("landing_page phải thuộc union")
	}
}

func TestMetrics_AddVaIsZero(t *testing.T) {
	var m Metrics
	if !m.IsZero() {
		t.Error("metrics mới khởi tạo phải IsZero")
	}

	m.Add(Metrics{Views: 10, Leads: 2, Revenue: 150.5})
	m.Add(Metrics{Views: 5, Payments: 1, Revenue: 49.5})

	if m.Views != 15 || m.Leads != 2 || m.Payments != 1 || m.Revenue != 200 {
		t.Errorf("Add cộng dồn sai: %+v", m)
	}
	if m.IsZero() {
		t.Error("metrics có dữ liệu không được IsZero")
	}
}
