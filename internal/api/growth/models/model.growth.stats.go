package growthmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PeriodDay là period duy nhất của dòng thống kê được persist.
// Các khoảng 7d/30d/90d luôn được tính lại từ các dòng day khi đọc.
const PeriodDay = "day"

// Metrics là bộ đếm acquisition của một nguồn trong một ngày.
type Metrics struct {
	Views         int64   `json:"views" bson:"views"`
	Leads         int64   `json:"leads" bson:"leads"`
	Appointments  int64   `json:"appointments" bson:"appointments"`
	Registrations int64   `json:"registrations" bson:"registrations"`
	Payments      int64   `json:"payments" bson:"payments"`
	Revenue       float64 `json:"revenue" bson:"revenue"`
}

// Add cộng dồn metrics của nhiều dòng (dùng khi rollup).
func (m *Metrics) Add(other Metrics) {
	m.Views += other.Views
	m.Leads += other.Leads
	m.Appointments += other.Appointments
	m.Registrations += other.Registrations
	m.Payments += other.Payments
	m.Revenue += other.Revenue
}

// IsZero trả về true nếu mọi bộ đếm đều bằng 0.
func (m Metrics) IsZero() bool {
	return m.Views == 0 && m.Leads == 0 && m.Appointments == 0 &&
		m.Registrations == 0 && m.Payments == 0 && m.Revenue == 0
}

// ConversionRates là các tỉ lệ chuyển đổi (phần trăm) dẫn xuất từ Metrics.
// Mẫu số bằng 0 thì tỉ lệ bằng 0, không bao giờ NaN/Inf.
type ConversionRates struct {
	ViewsToLeads       float64 `json:"viewsToLeads" bson:"viewsToLeads"`
	LeadsToBookings    float64 `json:"leadsToBookings" bson:"leadsToBookings"`
	BookingsToPayments float64 `json:"bookingsToPayments" bson:"bookingsToPayments"`
	OverallConversion  float64 `json:"overallConversion" bson:"overallConversion"`
}

// AcquisitionSourceStats là một dòng thống kê ngày của một nguồn khách.
// Khóa duy nhất (unique index): (businessId, sourceKey, period, periodStart).
type AcquisitionSourceStats struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`

	SourceType string `json:"sourceType" bson:"sourceType"`
	SourceKey  string `json:"sourceKey" bson:"sourceKey"`
	SourceName string `json:"sourceName,omitempty" bson:"sourceName,omitempty"`

	Period      string `json:"period" bson:"period"`           // luôn "day"
	PeriodStart int64  `json:"periodStart" bson:"periodStart"` // Unix-milli nửa đêm local của tenant

	Metrics         Metrics         `json:"metrics" bson:"metrics"`
	ConversionRates ConversionRates `json:"conversionRates" bson:"conversionRates"`

	ComputedAt int64 `json:"computedAt" bson:"computedAt"`
	CreatedAt  int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64 `json:"updatedAt" bson:"updatedAt"`
}

// GrowthDirtyDay đánh dấu một ngày của một tenant cần recompute.
// Unique theo (businessId, day); worker claim và xóa sau khi aggregate xong.
type GrowthDirtyDay struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`
	Day        int64              `json:"day" bson:"day"` // Unix-milli nửa đêm local
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
