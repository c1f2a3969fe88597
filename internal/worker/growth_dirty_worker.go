// Package worker chứa các background worker chạy định kỳ của hệ thống.
package worker

import (
	"context"
	"time"

	growthsvc "chat_grow/internal/api/growth/service"
	"chat_grow/internal/logger"
)

// GrowthDirtyWorker xử lý growth_dirty_days: claim batch các ngày bị đánh dấu
// dirty rồi aggregate lại thống kê ngày đó. Ngày aggregate lỗi được đánh dấu
// dirty lại để thử ở lần chạy sau.
type GrowthDirtyWorker struct {
	growthService *growthsvc.GrowthService
	interval      time.Duration // Khoảng thời gian giữa các lần chạy
	batchSize     int           // Số dirty day tối đa mỗi lần
}

// NewGrowthDirtyWorker tạo mới GrowthDirtyWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 1 phút)
//   - batchSize: Số dirty day tối đa mỗi lần (mặc định: 50)
func NewGrowthDirtyWorker(growthService *growthsvc.GrowthService, interval time.Duration, batchSize int) *GrowthDirtyWorker {
	if interval < 10*time.Second {
		interval = time.Minute
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	return &GrowthDirtyWorker{
		growthService: growthService,
		interval:      interval,
		batchSize:     batchSize,
	}
}

// Start chạy worker trong vòng lặp: mỗi interval claim batch dirty day,
// aggregate từng ngày, lỗi thì mark dirty lại và tiếp tục ngày khác.
func (w *GrowthDirtyWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval":  w.interval.String(),
		"batchSize": w.batchSize,
	}).Info("📊 [GROWTH_DIRTY] Starting Growth Dirty Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("📊 [GROWTH_DIRTY] Growth Dirty Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("📊 [GROWTH_DIRTY] Panic khi xử lý dirty days, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				batch, err := w.growthService.ClaimDirtyBatch(ctx, w.batchSize)
				if err != nil {
					log.WithError(err).Error("📊 [GROWTH_DIRTY] Lỗi claim dirty days")
					return
				}
				if len(batch) == 0 {
					return
				}

				processed := 0
				for _, d := range batch {
					loc := w.growthService.Business().GetLocation(ctx, d.BusinessID)
					day := time.UnixMilli(d.Day).In(loc)

					if err := w.growthService.AggregateDailyStats(ctx, d.BusinessID, day); err != nil {
						log.WithError(err).WithFields(map[string]interface{}{
							"businessId": d.BusinessID.Hex(),
							"day":        d.Day,
						}).Warn("📊 [GROWTH_DIRTY] Aggregate thất bại, đánh dấu dirty lại")
						_ = w.growthService.MarkDirty(ctx, d.BusinessID, d.Day)
						continue
					}
					processed++
				}

				if processed > 0 {
					log.WithFields(map[string]interface{}{
						"processed": processed,
						"total":     len(batch),
					}).Info("📊 [GROWTH_DIRTY] Đã xử lý dirty days")
				}
			}()
		}
	}
}
