package growthsvc

import (
	"time"

	"chat_grow/internal/common"
)

// Các khoảng rollup hợp lệ của query param period.
var periodDays = map[string]int{
	"7d":  7,
	"30d": 30,
	"90d": 90,
}

// ParsePeriod validate query param period, trả về số ngày của khoảng.
// Giá trị ngoài 7d/30d/90d trả ErrInvalidPeriod (handler map thành 400).
func ParsePeriod(period string) (int, error) {
	days, ok := periodDays[period]
	if !ok {
		return 0, common.ErrInvalidPeriod
	}
	return days, nil
}

// DayStart trả về nửa đêm local của ngày chứa t theo timezone loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayWindow trả về [start, end) Unix-milli của ngày chứa t theo timezone loc.
// Dùng AddDate thay vì +24h để đúng cả ngày đổi giờ DST.
func DayWindow(t time.Time, loc *time.Location) (int64, int64) {
	start := DayStart(t, loc)
	end := start.AddDate(0, 0, 1)
	return start.UnixMilli(), end.UnixMilli()
}

// WindowStarts trả về Unix-milli nửa đêm local của N ngày gần nhất
// kết thúc tại ngày chứa now (bao gồm hôm nay), theo thứ tự tăng dần.
func WindowStarts(now time.Time, loc *time.Location, days int) []int64 {
	today := DayStart(now, loc)
	starts := make([]int64, 0, days)
	for i := days - 1; i >= 0; i-- {
		starts = append(starts, today.AddDate(0, 0, -i).UnixMilli())
	}
	return starts
}
