// Package global chứa các biến toàn cục dùng chung: config, session MongoDB,
// registry collections và validator.
package global

import (
	"chat_grow/config"
	"chat_grow/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName định nghĩa tên các collection trong database.
type MongoDB_CollectionName struct {
	Businesses           string
	CrmCustomers         string
	BookingEvents        string
	BookingRegistrations string
	BookingAppointments  string
	PaymentTransactions  string
	LandingPages         string
	LandingPageVisits    string
	GrowthSourceStats    string
	GrowthDirtyDays      string
}

var (
	// Validate là validator singleton cho DTO input.
	Validate = validator.New()

	// MongoDB_Session là client MongoDB dùng chung.
	MongoDB_Session *mongo.Client

	// ServerConfig là cấu hình server đã load.
	ServerConfig *config.Configuration

	// MongoDB_ColNames chứa tên các collection.
	MongoDB_ColNames = MongoDB_CollectionName{
		Businesses:           "businesses",
		CrmCustomers:         "crm_customers",
		BookingEvents:        "booking_events",
		BookingRegistrations: "booking_event_registrations",
		BookingAppointments:  "booking_appointments",
		PaymentTransactions:  "payment_transactions",
		LandingPages:         "landing_pages",
		LandingPageVisits:    "landing_page_visits",
		GrowthSourceStats:    "growth_source_stats",
		GrowthDirtyDays:      "growth_dirty_days",
	}

	// RegistryCollections quản lý các *mongo.Collection đã đăng ký theo tên.
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)

// GetColl lấy collection đã đăng ký theo tên, panic nếu chưa init registry.
func GetColl(name string) *mongo.Collection {
	return RegistryCollections.MustGet(name)
}
