// Package database - định nghĩa index cho từng collection.
// Index quan trọng nhất là unique compound trên growth_source_stats:
// một document duy nhất cho mỗi (businessId, sourceKey, period, periodStart).
package database

import (
	"context"
	"strings"

	"chat_grow/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes tạo toàn bộ index cho database. Gọi một lần khi khởi động.
// Index đã tồn tại không phải lỗi.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// growth_source_stats: khóa duy nhất của một dòng thống kê ngày
	stats := db.Collection(global.MongoDB_ColNames.GrowthSourceStats)
	if err := createOne(ctx, stats, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "sourceKey", Value: 1},
			{Key: "period", Value: 1},
			{Key: "periodStart", Value: 1},
		},
		Options: options.Index().SetName("growth_stats_unique_key").SetUnique(true),
	}); err != nil {
		return err
	}
	// rollup đọc theo (businessId, period, periodStart) trên cả window
	if err := createOne(ctx, stats, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "period", Value: 1},
			{Key: "periodStart", Value: 1},
		},
		Options: options.Index().SetName("growth_stats_rollup"),
	}); err != nil {
		return err
	}

	// growth_dirty_days: một dòng cho mỗi (businessId, day) đang chờ recompute
	dirty := db.Collection(global.MongoDB_ColNames.GrowthDirtyDays)
	if err := createOne(ctx, dirty, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "day", Value: 1},
		},
		Options: options.Index().SetName("growth_dirty_unique").SetUnique(true),
	}); err != nil {
		return err
	}

	// landing_pages: slug duy nhất trong phạm vi một business
	pages := db.Collection(global.MongoDB_ColNames.LandingPages)
	if err := createOne(ctx, pages, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "slug", Value: 1},
		},
		Options: options.Index().SetName("landing_page_slug_unique").SetUnique(true),
	}); err != nil {
		return err
	}

	// landing_page_visits: log visit đánh index theo thời gian để aggregate theo ngày
	visits := db.Collection(global.MongoDB_ColNames.LandingPageVisits)
	if err := createOne(ctx, visits, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "pageSlug", Value: 1},
			{Key: "visitedAt", Value: 1},
		},
		Options: options.Index().SetName("landing_visit_slug_time"),
	}); err != nil {
		return err
	}

	// crm_customers: lọc theo attribution và ngày tạo khi aggregate
	customers := db.Collection(global.MongoDB_ColNames.CrmCustomers)
	if err := createOne(ctx, customers, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "sourceKey", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("crm_customer_source_time"),
	}); err != nil {
		return err
	}

	// payment_transactions: lọc giao dịch paid theo attribution và thời gian thanh toán
	payments := db.Collection(global.MongoDB_ColNames.PaymentTransactions)
	if err := createOne(ctx, payments, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "status", Value: 1},
			{Key: "paidAt", Value: 1},
		},
		Options: options.Index().SetName("payment_status_time"),
	}); err != nil {
		return err
	}

	// booking_appointments: đếm theo ngày tạo
	appointments := db.Collection(global.MongoDB_ColNames.BookingAppointments)
	if err := createOne(ctx, appointments, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("booking_appointment_time"),
	}); err != nil {
		return err
	}

	// booking_event_registrations: đếm đăng ký theo event và ngày tạo
	registrations := db.Collection(global.MongoDB_ColNames.BookingRegistrations)
	if err := createOne(ctx, registrations, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "eventId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("booking_registration_event_time"),
	}); err != nil {
		return err
	}

	// booking_events: tra cứu theo id đã có _id, thêm index theo slug
	events := db.Collection(global.MongoDB_ColNames.BookingEvents)
	if err := createOne(ctx, events, mongo.IndexModel{
		Keys: bson.D{
			{Key: "businessId", Value: 1},
			{Key: "slug", Value: 1},
		},
		Options: options.Index().SetName("booking_event_slug").SetSparse(true),
	}); err != nil {
		return err
	}

	return nil
}

func createOne(ctx context.Context, coll *mongo.Collection, model mongo.IndexModel) error {
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil && !isIndexExistsError(err) {
		return err
	}
	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
