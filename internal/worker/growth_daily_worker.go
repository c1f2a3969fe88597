package worker

import (
	"context"
	"time"

	growthsvc "chat_grow/internal/api/growth/service"
	"chat_grow/internal/logger"
)

// GrowthDailyWorker đảm bảo ngày hôm qua (theo timezone từng tenant) luôn
// được aggregate, kể cả khi không có data change event nào đánh dấu dirty.
// Chạy định kỳ (mặc định mỗi giờ), chỉ aggregate khi ngày chưa có thống kê.
type GrowthDailyWorker struct {
	growthService *growthsvc.GrowthService
	interval      time.Duration
}

// NewGrowthDailyWorker tạo mới GrowthDailyWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 1 giờ)
func NewGrowthDailyWorker(growthService *growthsvc.GrowthService, interval time.Duration) *GrowthDailyWorker {
	if interval < time.Minute {
		interval = time.Hour
	}
	return &GrowthDailyWorker{
		growthService: growthService,
		interval:      interval,
	}
}

// Start chạy worker: mỗi interval duyệt toàn bộ tenant, tính ngày hôm qua
// theo timezone của tenant và aggregate nếu ngày đó chưa có thống kê.
func (w *GrowthDailyWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("📊 [GROWTH_DAILY] Starting Growth Daily Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [GROWTH_DAILY] Growth Daily Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [GROWTH_DAILY] Panic khi chạy daily rollup, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				ids, err := w.growthService.Business().ListAllIDs(ctx)
				if err != nil {
					log.WithError(err).Error("📊 [GROWTH_DAILY] Lỗi lấy danh sách tenant")
					return
				}

				aggregated := 0
				for _, businessID := range ids {
					loc := w.growthService.Business().GetLocation(ctx, businessID)
					yesterday := growthsvc.DayStart(time.Now().In(loc), loc).AddDate(0, 0, -1)
					dayStart, _ := growthsvc.DayWindow(yesterday, loc)

					exists, err := w.growthService.HasStatsForDay(ctx, businessID, dayStart)
					if err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"businessId": businessID.Hex(),
						}).Warn("📊 [GROWTH_DAILY] Lỗi kiểm tra thống kê, bỏ qua tenant")
						continue
					}
					if exists {
						continue
					}

					if err := w.growthService.AggregateDailyStats(ctx, businessID, yesterday); err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"businessId": businessID.Hex(),
							"day":        dayStart,
						}).Warn("📊 [GROWTH_DAILY] Aggregate thất bại, bỏ qua tenant")
						continue
					}
					aggregated++
				}

				if aggregated > 0 {
					log.WithFields(map[string]interface{}{
						"aggregated": aggregated,
						"tenants":    len(ids),
					}).Info("📊 [GROWTH_DAILY] Đã aggregate ngày hôm qua cho các tenant thiếu thống kê")
				}
			}()
		}
	}
}
