package worker

import (
	"context"
	"time"

	landingsvc "chat_grow/internal/api/landing/service"
	"chat_grow/internal/logger"
)

// VisitRetentionWorker xóa các bản ghi visit của landing page cũ hơn
// retentionDays. Visit log chỉ phục vụ aggregate theo ngày nên không cần
// giữ vô hạn. Chạy mỗi 24 giờ.
type VisitRetentionWorker struct {
	landingService *landingsvc.LandingPageService
	retentionDays  int
}

// NewVisitRetentionWorker tạo mới VisitRetentionWorker.
// Tham số:
//   - retentionDays: Số ngày giữ visit log (mặc định: 180)
func NewVisitRetentionWorker(retentionDays int) (*VisitRetentionWorker, error) {
	landingService, err := landingsvc.NewLandingPageService()
	if err != nil {
		return nil, err
	}
	if retentionDays <= 0 {
		retentionDays = 180
	}
	return &VisitRetentionWorker{
		landingService: landingService,
		retentionDays:  retentionDays,
	}, nil
}

// Start chạy worker: mỗi 24 giờ xóa visit cũ hơn retentionDays.
func (w *VisitRetentionWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"retentionDays": w.retentionDays,
	}).Info("🧹 [VISIT_RETENTION] Starting Visit Retention Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🧹 [VISIT_RETENTION] Visit Retention Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🧹 [VISIT_RETENTION] Panic khi xóa visit cũ, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				cutoff := time.Now().AddDate(0, 0, -w.retentionDays).UnixMilli()
				deleted, err := w.landingService.DeleteOldVisits(ctx, cutoff)
				if err != nil {
					log.WithError(err).Error("🧹 [VISIT_RETENTION] Lỗi xóa visit cũ")
					return
				}
				if deleted > 0 {
					log.WithFields(map[string]interface{}{
						"deleted": deleted,
						"cutoff":  cutoff,
					}).Info("🧹 [VISIT_RETENTION] Đã xóa visit cũ")
				}
			}()
		}
	}
}
