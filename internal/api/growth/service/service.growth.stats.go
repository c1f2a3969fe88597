package growthsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "chat_grow/internal/api/base/service"
	businesssvc "chat_grow/internal/api/business/service"
	"chat_grow/internal/api/events"
	growthmodels "chat_grow/internal/api/growth/models"
	"chat_grow/internal/common"
	"chat_grow/internal/global"
)

// GrowthService là service trung tâm của growth analytics.
// Đọc từ các collection domain, persist kết quả vào growth_source_stats.
type GrowthService struct {
	stats *basesvc.BaseServiceMongoImpl[growthmodels.AcquisitionSourceStats]
	dirty *basesvc.BaseServiceMongoImpl[growthmodels.GrowthDirtyDay]

	business *businesssvc.BusinessService

	// Collection domain đọc trực tiếp khi aggregate
	visits        *mongo.Collection
	customers     *mongo.Collection
	eventsColl    *mongo.Collection
	registrations *mongo.Collection
	appointments  *mongo.Collection
	payments      *mongo.Collection
	pages         *mongo.Collection
}

// NewGrowthService tạo mới GrowthService từ các collection đã đăng ký.
func NewGrowthService() (*GrowthService, error) {
	business, err := businesssvc.NewBusinessService()
	if err != nil {
		return nil, err
	}

	get := func(name string) (*mongo.Collection, error) {
		coll, ok := global.RegistryCollections.Get(name)
		if !ok {
			return nil, fmt.Errorf("collection %s chưa được đăng ký", name)
		}
		return coll, nil
	}

	statsColl, err := get(global.MongoDB_ColNames.GrowthSourceStats)
	if err != nil {
		return nil, err
	}
	dirtyColl, err := get(global.MongoDB_ColNames.GrowthDirtyDays)
	if err != nil {
		return nil, err
	}

	s := &GrowthService{
		stats:    basesvc.NewBaseServiceMongo[growthmodels.AcquisitionSourceStats](statsColl),
		dirty:    basesvc.NewBaseServiceMongo[growthmodels.GrowthDirtyDay](dirtyColl),
		business: business,
	}

	for name, target := range map[string]**mongo.Collection{
		global.MongoDB_ColNames.LandingPageVisits:    &s.visits,
		global.MongoDB_ColNames.CrmCustomers:         &s.customers,
		global.MongoDB_ColNames.BookingEvents:        &s.eventsColl,
		global.MongoDB_ColNames.BookingRegistrations: &s.registrations,
		global.MongoDB_ColNames.BookingAppointments:  &s.appointments,
		global.MongoDB_ColNames.PaymentTransactions:  &s.payments,
		global.MongoDB_ColNames.LandingPages:         &s.pages,
	} {
		coll, err := get(name)
		if err != nil {
			return nil, err
		}
		*target = coll
	}

	return s, nil
}

// Business trả về business service (worker dùng để lấy timezone và danh sách tenant).
func (s *GrowthService) Business() *businesssvc.BusinessService {
	return s.business
}

// upsertDailyStat ghi một dòng thống kê ngày theo khóa duy nhất.
// Recompute cùng ngày ghi đè metrics cũ, không nhân đôi.
func (s *GrowthService) upsertDailyStat(ctx context.Context, stat growthmodels.AcquisitionSourceStats) error {
	filter := bson.M{
		"businessId":  stat.BusinessID,
		"sourceKey":   stat.SourceKey,
		"period":      growthmodels.PeriodDay,
		"periodStart": stat.PeriodStart,
	}
	update := basesvc.UpdateData{
		Set: map[string]interface{}{
			"sourceType":      stat.SourceType,
			"sourceName":      stat.SourceName,
			"metrics":         stat.Metrics,
			"conversionRates": stat.ConversionRates,
			"computedAt":      stat.ComputedAt,
		},
		SetOnInsert: map[string]interface{}{
			"businessId":  stat.BusinessID,
			"sourceKey":   stat.SourceKey,
			"period":      growthmodels.PeriodDay,
			"periodStart": stat.PeriodStart,
		},
	}
	_, err := s.stats.Upsert(ctx, filter, update)
	return err
}

// MarkDirty đánh dấu (businessId, day) cần recompute. Idempotent nhờ unique index.
func (s *GrowthService) MarkDirty(ctx context.Context, businessID primitive.ObjectID, dayStart int64) error {
	filter := bson.M{"businessId": businessID, "day": dayStart}
	update := basesvc.UpdateData{
		SetOnInsert: map[string]interface{}{
			"businessId": businessID,
			"day":        dayStart,
		},
		Set: map[string]interface{}{},
	}
	_, err := s.dirty.Upsert(ctx, filter, update)
	return err
}

// ClaimDirtyBatch lấy và xóa tối đa batchSize dirty day để worker xử lý.
// Xóa trước khi aggregate: nếu aggregate fail, ngày được mark dirty lại.
func (s *GrowthService) ClaimDirtyBatch(ctx context.Context, batchSize int) ([]growthmodels.GrowthDirtyDay, error) {
	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}}).SetLimit(int64(batchSize))
	items, err := s.dirty.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	claimed := make([]growthmodels.GrowthDirtyDay, 0, len(items))
	for _, item := range items {
		if err := s.dirty.DeleteById(ctx, item.ID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				// Worker khác đã claim
				continue
			}
			return claimed, err
		}
		claimed = append(claimed, item)
	}
	return claimed, nil
}

// HasStatsForDay kiểm tra ngày đã được aggregate chưa (worker daily dùng).
func (s *GrowthService) HasStatsForDay(ctx context.Context, businessID primitive.ObjectID, dayStart int64) (bool, error) {
	return s.stats.DocumentExists(ctx, bson.M{
		"businessId":  businessID,
		"period":      growthmodels.PeriodDay,
		"periodStart": dayStart,
	})
}

// RegisterDataChangeSubscriptions đăng ký handler đánh dấu dirty day khi
// dữ liệu nguồn thay đổi. Gọi một lần khi khởi động app.
func (s *GrowthService) RegisterDataChangeSubscriptions() {
	watched := map[string]string{
		global.MongoDB_ColNames.CrmCustomers:         "CreatedAt",
		global.MongoDB_ColNames.BookingAppointments:  "CreatedAt",
		global.MongoDB_ColNames.BookingRegistrations: "CreatedAt",
		global.MongoDB_ColNames.LandingPageVisits:    "VisitedAt",
		global.MongoDB_ColNames.PaymentTransactions:  "PaidAt",
	}

	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		timeField, ok := watched[e.CollectionName]
		if !ok {
			return
		}
		businessID := events.GetBusinessIDFromDocument(e.Document)
		if businessID.IsZero() {
			return
		}

		ts := events.GetInt64Field(e.Document, timeField)
		if ts == 0 {
			ts = events.GetInt64Field(e.Document, "CreatedAt")
		}
		if ts == 0 {
			ts = time.Now().UnixMilli()
		}

		loc := s.business.GetLocation(ctx, businessID)
		dayStart, _ := DayWindow(time.UnixMilli(ts), loc)

		// Context của request có thể đã xong, dùng context riêng có timeout
		markCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.MarkDirty(markCtx, businessID, dayStart)
	})
}
