// Package growthsvc - Test validate period và tính cửa sổ ngày theo timezone.
package growthsvc

import (
	"errors"
	"testing"
	"time"

	"chat_grow/internal/common"
)

func TestParsePeriod_HopLe(t *testing.T) {
	cases := map[string]int{"7d": 7, "30d": 30, "90d": 90}
	for period, want := range cases {
		days, err := ParsePeriod(period)
		if err != nil {
			t.Errorf("ParsePeriod(%q) trả lỗi: %v", period, err)
		}
		if days != want {
			t.Errorf("ParsePeriod(%q) = %d, muốn %d", period, days, want)
		}
	}
}

func TestParsePeriod_KhongHopLe(t *testing.T) {
	for _, period := range []string{"", "1d", "7", "30D", "365d", "week"} {
		_, err := ParsePeriod(period)
		if err == nil {
			t.Errorf("ParsePeriod(%q) phải trả lỗi", period)
			continue
		}
		if !errors.Is(err, common.ErrInvalidPeriod) {
			t.Errorf("ParsePeriod(%q) phải trả ErrInvalidPeriod, nhận: %v", period, err)
		}
	}
}

func TestDayWindow_TheoTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("không load được timezone: %v", err)
	}

	// 2026-03-15 01:30 UTC = 2026-03-15 08:30 giờ Việt Nam
	moment := time.Date(2026, 3, 15, 1, 30, 0, 0, time.UTC)
	start, end := DayWindow(moment, loc)

	wantStart := time.Date(2026, 3, 15, 0, 0, 0, 0, loc).UnixMilli()
	if start != wantStart {
		t.Errorf("start = %d, muốn nửa đêm 15/03 giờ Việt Nam (%d)", start, wantStart)
	}
	if end-start != 24*60*60*1000 {
		t.Errorf("cửa sổ ngày phải dài 24h, nhận: %d ms", end-start)
	}
}

func TestDayWindow_GanNuaDemLocal(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("không load được timezone: %v", err)
	}

	// 2026-03-15 18:30 UTC = 2026-03-16 01:30 giờ Việt Nam, phải rơi vào ngày 16
	moment := time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)
	start, _ := DayWindow(moment, loc)

	wantStart := time.Date(2026, 3, 16, 0, 0, 0, 0, loc).UnixMilli()
	if start != wantStart {
		t.Errorf("start = %d, muốn nửa đêm 16/03 giờ Việt Nam (%d)", start, wantStart)
	}
}

func TestWindowStarts_TangDanVaDuSoNgay(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 6, 10, 15, 0, 0, 0, loc)

	starts := WindowStarts(now, loc, 7)
	if len(starts) != 7 {
		t.Fatalf("WindowStarts phải trả 7 phần tử, nhận: %d", len(starts))
	}
	for i := 1; i < len(starts); i++ {
		if starts[i] <= starts[i-1] {
			t.Errorf("starts phải tăng dần, starts[%d]=%d <= starts[%d]=%d", i, starts[i], i-1, starts[i-1])
		}
	}

	// Phần tử cuối là nửa đêm hôm nay
	wantLast := time.Date(2026, 6, 10, 0, 0, 0, 0, loc).UnixMilli()
	if starts[len(starts)-1] != wantLast {
		t.Errorf("phần tử cuối = %d, muốn nửa đêm hôm nay (%d)", starts[len(starts)-1], wantLast)
	}
	// Phần tử đầu là 6 ngày trước
	wantFirst := time.Date(2026, 6, 4, 0, 0, 0, 0, loc).UnixMilli()
	if starts[0] != wantFirst {
		t.Errorf("phần tử đầu = %d, muốn nửa đêm 6 ngày trước (%d)", starts[0], wantFirst)
	}
}
