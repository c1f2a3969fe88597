package growthsvc

import (
	"context"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"chat_grow/internal/api/growth/dto"
	growthmodels "chat_grow/internal/api/growth/models"
)

// loadWindowRows đọc toàn bộ dòng thống kê ngày của tenant trong khoảng.
func (s *GrowthService) loadWindowRows(ctx context.Context, businessID primitive.ObjectID, starts []int64) ([]growthmodels.AcquisitionSourceStats, error) {
	filter := bson.M{
		"businessId":  businessID,
		"period":      growthmodels.PeriodDay,
		"periodStart": bson.M{"$in": starts},
	}
	opts := options.Find().SetSort(bson.D{{Key: "periodStart", Value: 1}})
	return s.stats.Find(ctx, filter, opts)
}

// GetSummary tổng hợp mọi nguồn trong khoảng period, kèm sparkline theo ngày.
// Rollup luôn tính lại từ các dòng day đã persist, không đọc collection gốc.
func (s *GrowthService) GetSummary(ctx context.Context, businessID primitive.ObjectID, period string) (*dto.GrowthSummaryResponse, error) {
	days, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	loc := s.business.GetLocation(ctx, businessID)
	starts := WindowStarts(time.Now(), loc, days)

	rows, err := s.loadWindowRows(ctx, businessID, starts)
	if err != nil {
		return nil, err
	}

	var totals growthmodels.Metrics
	byDay := map[int64]growthmodels.Metrics{}
	for _, row := range rows {
		totals.Add(row.Metrics)
		dayMetrics := byDay[row.PeriodStart]
		dayMetrics.Add(row.Metrics)
		byDay[row.PeriodStart] = dayMetrics
	}

	// Tỉ lệ của khoảng tính lại từ tổng, không trung bình các tỉ lệ ngày
	rates := CalcConversionRates(totals)

	dailyTotals := make([]dto.TimelinePoint, 0, len(starts))
	for _, dayStart := range starts {
		dailyTotals = append(dailyTotals, dto.TimelinePoint{
			Day:     dayStart,
			Metrics: byDay[dayStart],
		})
	}

	return &dto.GrowthSummaryResponse{
		Period:          period,
		From:            starts[0],
		To:              starts[len(starts)-1],
		Totals:          totals,
		ConversionRates: rates,
		ConversionRate:  BlendedConversionRate(totals),
		DailyTotals:     dailyTotals,
	}, nil
}

// GetSources tổng hợp theo từng nguồn trong khoảng period.
// Thứ tự ổn định: revenue giảm dần, sourceKey tăng dần khi revenue bằng nhau.
func (s *GrowthService) GetSources(ctx context.Context, businessID primitive.ObjectID, period string) (*dto.GrowthSourcesResponse, error) {
	days, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}

	loc := s.business.GetLocation(ctx, businessID)
	starts := WindowStarts(time.Now(), loc, days)

	rows, err := s.loadWindowRows(ctx, businessID, starts)
	if err != nil {
		return nil, err
	}

	type sourceAcc struct {
		sourceType string
		sourceName string
		metrics    growthmodels.Metrics
	}
	byKey := map[string]*sourceAcc{}
	for _, row := range rows {
		acc, ok := byKey[row.SourceKey]
		if !ok {
			acc = &sourceAcc{sourceType: row.SourceType, sourceName: row.SourceName}
			byKey[row.SourceKey] = acc
		}
		acc.metrics.Add(row.Metrics)
		// Tên hiển thị lấy của dòng mới nhất (rows sort theo periodStart tăng dần)
		if row.SourceName != "" {
			acc.sourceName = row.SourceName
		}
	}

	sources := make([]dto.SourceBreakdownItem, 0, len(byKey))
	for key, acc := range byKey {
		sources = append(sources, dto.SourceBreakdownItem{
			SourceType:      acc.sourceType,
			SourceKey:       key,
			SourceName:      acc.sourceName,
			Metrics:         acc.metrics,
			ConversionRates: CalcConversionRates(acc.metrics),
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		if sources[i].Metrics.Revenue != sources[j].Metrics.Revenue {
			return sources[i].Metrics.Revenue > sources[j].Metrics.Revenue
		}
		return sources[i].SourceKey < sources[j].SourceKey
	})

	return &dto.GrowthSourcesResponse{Period: period, Sources: sources}, nil
}

// GetTimeline trả về metrics từng ngày trong khoảng period, tăng dần theo ngày,
// ngày không có dữ liệu trả metrics 0.
func (s *GrowthService) GetTimeline(ctx context.Context, businessID primitive.ObjectID, period string) (*dto.GrowthTimelineResponse, error) {
	summary, err := s.GetSummary(ctx, businessID, period)
	if err != nil {
		return nil, err
	}
	return &dto.GrowthTimelineResponse{
		Period:   period,
		Timeline: summary.DailyTotals,
	}, nil
}
