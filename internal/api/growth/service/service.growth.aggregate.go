package growthsvc

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	growthmodels "chat_grow/internal/api/growth/models"
	"chat_grow/internal/logger"
)

// sourceKindPrefixes ánh xạ mỗi nhánh aggregate sang các prefix sourceKey mà nó ghi.
// Nhánh lỗi thì các dòng cũ mang prefix của nó phải được giữ nguyên khi dọn dòng stale.
var sourceKindPrefixes = map[string][]string{
	"landing_page": {"landing-page:"},
	"event":        {"event:"},
	"appointment":  {"appointments:"},
	"manual":       {"manual:", "referral:", "other:"},
}

// AggregateDailyStats recompute toàn bộ thống kê của một ngày local của tenant.
// Idempotent: chạy lại cùng ngày ghi đè kết quả cũ qua upsert theo khóa duy nhất.
// Lỗi của một nguồn chỉ warn và bỏ qua nguồn đó; trả error khi không tính được
// nguồn nào hoặc không ghi được kết quả.
func (s *GrowthService) AggregateDailyStats(ctx context.Context, businessID primitive.ObjectID, day time.Time) error {
	log := logger.GetAppLogger()

	loc := s.business.GetLocation(ctx, businessID)
	startMs, endMs := DayWindow(day, loc)

	var rows []growthmodels.AcquisitionSourceStats
	var sourceErrs int
	var failedPrefixes []string

	appendRows := func(computed []growthmodels.AcquisitionSourceStats, err error, sourceKind string) {
		if err != nil {
			sourceErrs++
			failedPrefixes = append(failedPrefixes, sourceKindPrefixes[sourceKind]...)
			log.WithError(err).WithFields(map[string]interface{}{
				"businessId": businessID.Hex(),
				"day":        startMs,
				"source":     sourceKind,
			}).Warn("📊 [GROWTH] Bỏ qua nguồn lỗi khi aggregate ngày")
			return
		}
		rows = append(rows, computed...)
	}

	landingRows, knownLandingKeys, err := s.aggregateLandingPages(ctx, businessID, startMs, endMs)
	appendRows(landingRows, err, "landing_page")

	eventRows, knownEventKeys, err := s.aggregateEvents(ctx, businessID, startMs, endMs)
	appendRows(eventRows, err, "event")

	appointmentRow, err := s.aggregateAppointments(ctx, businessID, startMs, endMs)
	appendRows(appointmentRow, err, "appointment")

	manualRows, knownManualKeys, err := s.aggregateManualSources(ctx, businessID, startMs, endMs)
	appendRows(manualRows, err, "manual")

	if sourceErrs > 0 && len(rows) == 0 {
		return fmt.Errorf("aggregate ngày %d thất bại cho mọi nguồn", startMs)
	}

	// Revenue không gắn được vào nguồn nào: log để đối soát. Chỉ đối soát khi
	// mọi nguồn tính được, nguồn lỗi làm knownKeys thiếu key và log sẽ sai.
	if sourceErrs == 0 {
		knownKeys := append(append(append([]string{}, knownLandingKeys...), knownEventKeys...), knownManualKeys...)
		s.logUnattributedRevenue(ctx, businessID, startMs, endMs, knownKeys)
	}

	// Ghi các dòng có dữ liệu, xóa dòng của nguồn không còn dữ liệu trong ngày.
	// Dòng cũ thuộc nguồn lỗi không bị xóa, chúng là dữ liệu tốt nhất đang có.
	computedAt := time.Now().UnixMilli()
	keptKeys := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Metrics.IsZero() {
			continue
		}
		row.PeriodStart = startMs
		row.Period = growthmodels.PeriodDay
		row.BusinessID = businessID
		row.ComputedAt = computedAt
		row.ConversionRates = CalcConversionRates(row.Metrics)
		if err := s.upsertDailyStat(ctx, row); err != nil {
			return err
		}
		keptKeys = append(keptKeys, row.SourceKey)
	}

	if _, err := s.stats.Collection().DeleteMany(ctx, staleStatsFilter(businessID, startMs, keptKeys, failedPrefixes)); err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"businessId": businessID.Hex(),
		"day":        startMs,
		"sources":    len(keptKeys),
	}).Info("📊 [GROWTH] Aggregate ngày hoàn tất")
	return nil
}

// staleStatsFilter dựng filter xóa các dòng ngày không còn trong keptKeys.
// Key mang prefix của nguồn lỗi được loại khỏi phạm vi xóa.
func staleStatsFilter(businessID primitive.ObjectID, dayStart int64, keptKeys, failedPrefixes []string) bson.M {
	keyFilter := bson.M{"$nin": keptKeys}
	if len(failedPrefixes) > 0 {
		quoted := make([]string, 0, len(failedPrefixes))
		for _, prefix := range failedPrefixes {
			quoted = append(quoted, regexp.QuoteMeta(prefix))
		}
		keyFilter["$not"] = primitive.Regex{Pattern: "^(" + strings.Join(quoted, "|") + ")"}
	}
	return bson.M{
		"businessId":  businessID,
		"period":      growthmodels.PeriodDay,
		"periodStart": dayStart,
		"sourceKey":   keyFilter,
	}
}

// aggregateLandingPages tính metrics cho từng landing page của tenant.
func (s *GrowthService) aggregateLandingPages(ctx context.Context, businessID primitive.ObjectID, startMs, endMs int64) ([]growthmodels.AcquisitionSourceStats, []string, error) {
	cursor, err := s.pages.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var pages []struct {
		Slug  string `bson:"slug"`
		Title string `bson:"title"`
	}
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, nil, err
	}

	var rows []growthmodels.AcquisitionSourceStats
	keys := make([]string, 0, len(pages))
	for _, page := range pages {
		source := growthmodels.Source{Type: growthmodels.SourceTypeLandingPage, Ref: page.Slug, Name: page.Title}
		key := source.Key()
		keys = append(keys, key)

		views, err := s.visits.CountDocuments(ctx, bson.M{
			"businessId": businessID,
			"pageSlug":   page.Slug,
			"visitedAt":  bson.M{"$gte": startMs, "$lt": endMs},
		})
		if err != nil {
			return nil, nil, err
		}

		leads, err := s.customers.CountDocuments(ctx, bson.M{
			"businessId": businessID,
			"sourceKey":  key,
			"createdAt":  bson.M{"$gte": startMs, "$lt": endMs},
		})
		if err != nil {
			return nil, nil, err
		}

		payments, revenue, err := s.sumPaidTransactions(ctx, businessID, bson.M{"sourceKey": key}, startMs, endMs)
		if err != nil {
			return nil, nil, err
		}

		rows = append(rows, growthmodels.AcquisitionSourceStats{
			SourceType: string(growthmodels.SourceTypeLandingPage),
			SourceKey:  key,
			SourceName: page.Title,
			Metrics: growthmodels.Metrics{
				Views:    views,
				Leads:    leads,
				Payments: payments,
				Revenue:  revenue,
			},
		})
	}
	return rows, keys, nil
}

// aggregateEvents tính metrics cho từng event: registrations trong ngày + doanh thu.
func (s *GrowthService) aggregateEvents(ctx context.Context, businessID primitive.ObjectID, startMs, endMs int64) ([]growthmodels.AcquisitionSourceStats, []string, error) {
	cursor, err := s.eventsColl.Find(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return nil, nil, err
	}
	defer cursor.Close(ctx)

	var eventDocs []struct {
		ID    primitive.ObjectID `bson:"_id"`
		Title string             `bson:"title"`
	}
	if err := cursor.All(ctx, &eventDocs); err != nil {
		return nil, nil, err
	}

	var rows []growthmodels.AcquisitionSourceStats
	keys := make([]string, 0, len(eventDocs))
	for _, event := range eventDocs {
		source := growthmodels.Source{Type: growthmodels.SourceTypeEvent, Ref: event.ID.Hex(), Name: event.Title}
		key := source.Key()
		keys = append(keys, key)

		registrations, err := s.registrations.CountDocuments(ctx, bson.M{
			"businessId": businessID,
			"eventId":    event.ID,
			"createdAt":  bson.M{"$gte": startMs, "$lt": endMs},
		})
		if err != nil {
			return nil, nil, err
		}

		leads, err := s.customers.CountDocuments(ctx, bson.M{
			"businessId": businessID,
			"sourceKey":  key,
			"createdAt":  bson.M{"$gte": startMs, "$lt": endMs},
		})
		if err != nil {
			return nil, nil, err
		}

		payments, revenue, err := s.sumPaidTransactions(ctx, businessID, bson.M{"sourceKey": key}, startMs, endMs)
		if err != nil {
			return nil, nil, err
		}

		rows = append(rows, growthmodels.AcquisitionSourceStats{
			SourceType: string(growthmodels.SourceTypeEvent),
			SourceKey:  key,
			SourceName: event.Title,
			Metrics: growthmodels.Metrics{
				Registrations: registrations,
				Leads:         leads,
				Payments:      payments,
				Revenue:       revenue,
			},
		})
	}
	return rows, keys, nil
}

// aggregateAppointments gom mọi appointment vào một bucket chung "appointments:general".
func (s *GrowthService) aggregateAppointments(ctx context.Context, businessID primitive.ObjectID, startMs, endMs int64) ([]growthmodels.AcquisitionSourceStats, error) {
	appointments, err := s.appointments.CountDocuments(ctx, bson.M{
		"businessId": businessID,
		"createdAt":  bson.M{"$gte": startMs, "$lt": endMs},
		"status":     bson.M{"$ne": "cancelled"},
	})
	if err != nil {
		return nil, err
	}

	source := growthmodels.Source{
		Type: growthmodels.SourceTypeAppointment,
		Ref:  growthmodels.AppointmentsGeneralRef,
		Name: "Appointments",
	}
	key := source.Key()

	// Mọi giao dịch attribution appointment đều rơi vào bucket chung
	payments, revenue, err := s.sumPaidTransactions(ctx, businessID, bson.M{
		"sourceType": string(growthmodels.SourceTypeAppointment),
	}, startMs, endMs)
	if err != nil {
		return nil, err
	}

	leads, err := s.customers.CountDocuments(ctx, bson.M{
		"businessId": businessID,
		"sourceType": string(growthmodels.SourceTypeAppointment),
		"createdAt":  bson.M{"$gte": startMs, "$lt": endMs},
	})
	if err != nil {
		return nil, err
	}

	return []growthmodels.AcquisitionSourceStats{{
		SourceType: string(growthmodels.SourceTypeAppointment),
		SourceKey:  key,
		SourceName: "Appointments",
		Metrics: growthmodels.Metrics{
			Appointments: appointments,
			Leads:        leads,
			Payments:     payments,
			Revenue:      revenue,
		},
	}}, nil
}

// aggregateManualSources tính metrics cho các nguồn manual/referral/other
// xuất hiện trong customers hoặc payments của ngày. Trả thêm danh sách key
// parse được để đối soát revenue chưa attribution.
func (s *GrowthService) aggregateManualSources(ctx context.Context, businessID primitive.ObjectID, startMs, endMs int64) ([]growthmodels.AcquisitionSourceStats, []string, error) {
	manualTypes := []string{
		string(growthmodels.SourceTypeManual),
		string(growthmodels.SourceTypeReferral),
		string(growthmodels.SourceTypeOther),
	}

	customerKeys, err := s.customers.Distinct(ctx, "sourceKey", bson.M{
		"businessId": businessID,
		"sourceType": bson.M{"$in": manualTypes},
		"createdAt":  bson.M{"$gte": startMs, "$lt": endMs},
	})
	if err != nil {
		return nil, nil, err
	}
	paymentKeys, err := s.payments.Distinct(ctx, "sourceKey", bson.M{
		"businessId": businessID,
		"sourceType": bson.M{"$in": manualTypes},
		"status":     "paid",
		"paidAt":     bson.M{"$gte": startMs, "$lt": endMs},
	})
	if err != nil {
		return nil, nil, err
	}

	keySet := map[string]bool{}
	for _, raw := range append(customerKeys, paymentKeys...) {
		if key, ok := raw.(string); ok && key != "" {
			keySet[key] = true
		}
	}

	var rows []growthmodels.AcquisitionSourceStats
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		source, err := growthmodels.ParseSourceKey(key)
		if err != nil {
			// Key tự do không đúng union: bỏ qua, revenue của nó sẽ vào unattributed log
			continue
		}
		keys = append(keys, key)

		leads, err := s.customers.CountDocuments(ctx, bson.M{
			"businessId": businessID,
			"sourceKey":  key,
			"createdAt":  bson.M{"$gte": startMs, "$lt": endMs},
		})
		if err != nil {
			return nil, nil, err
		}
		payments, revenue, err := s.sumPaidTransactions(ctx, businessID, bson.M{"sourceKey": key}, startMs, endMs)
		if err != nil {
			return nil, nil, err
		}

		rows = append(rows, growthmodels.AcquisitionSourceStats{
			SourceType: string(source.Type),
			SourceKey:  key,
			SourceName: source.Ref,
			Metrics: growthmodels.Metrics{
				Leads:    leads,
				Payments: payments,
				Revenue:  revenue,
			},
		})
	}
	return rows, keys, nil
}

// sumPaidTransactions đếm số giao dịch paid và tổng revenue theo filter bổ sung.
func (s *GrowthService) sumPaidTransactions(ctx context.Context, businessID primitive.ObjectID, extraFilter bson.M, startMs, endMs int64) (int64, float64, error) {
	match := bson.M{
		"businessId": businessID,
		"status":     "paid",
		"paidAt":     bson.M{"$gte": startMs, "$lt": endMs},
	}
	for k, v := range extraFilter {
		match[k] = v
	}

	pipeline := []bson.M{
		{"$match": match},
		{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$amount"},
		}},
	}

	cursor, err := s.payments.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var result struct {
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, err
		}
	}
	return result.Count, result.Revenue, nil
}

// unattributedMatchFilter dựng $match cho các giao dịch paid trong ngày
// không gắn được vào nguồn nào: sourceKey rỗng, thiếu, hoặc không nằm trong
// knownKeys (gồm cả key manual/referral/other không parse được). Giao dịch
// sourceType=appointment luôn thuộc bucket chung nên không bao giờ là unattributed.
func unattributedMatchFilter(businessID primitive.ObjectID, startMs, endMs int64, knownKeys []string) bson.M {
	return bson.M{
		"businessId": businessID,
		"status":     "paid",
		"paidAt":     bson.M{"$gte": startMs, "$lt": endMs},
		"sourceType": bson.M{"$ne": string(growthmodels.SourceTypeAppointment)},
		"$or": []bson.M{
			{"sourceKey": bson.M{"$exists": false}},
			{"sourceKey": ""},
			{"sourceKey": bson.M{"$nin": knownKeys}},
		},
	}
}

// logUnattributedRevenue log tổng revenue của các giao dịch paid trong ngày
// có sourceKey rỗng hoặc không khớp nguồn nào đã biết.
func (s *GrowthService) logUnattributedRevenue(ctx context.Context, businessID primitive.ObjectID, startMs, endMs int64, knownKeys []string) {
	pipeline := []bson.M{
		{"$match": unattributedMatchFilter(businessID, startMs, endMs, knownKeys)},
		{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$amount"},
		}},
	}

	cursor, err := s.payments.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		logger.GetAppLogger().WithError(err).Warn("📊 [GROWTH] Không đếm được revenue chưa attribution")
		return
	}
	defer cursor.Close(ctx)

	var result struct {
		Count   int64   `bson:"count"`
		Revenue float64 `bson:"revenue"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return
		}
	}
	if result.Count > 0 {
		logger.GetAuditLogger().WithFields(map[string]interface{}{
			"businessId":   businessID.Hex(),
			"day":          startMs,
			"transactions": result.Count,
			"revenue":      result.Revenue,
		}).Warn("📊 [GROWTH] Revenue không attribution được vào nguồn nào")
	}
}
