package bookingmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của appointment.
const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCompleted = "completed"
	AppointmentStatusCancelled = "cancelled"
)

// BookingAppointment là một lịch hẹn của tenant.
type BookingAppointment struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`

	CustomerID    primitive.ObjectID `json:"customerId,omitempty" bson:"customerId,omitempty"`
	CustomerName  string             `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerPhone string             `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`

	ScheduledAt int64  `json:"scheduledAt" bson:"scheduledAt"` // Unix-milli
	Duration    int64  `json:"duration,omitempty" bson:"duration,omitempty"` // phút
	Status      string `json:"status" bson:"status"` // pending | confirmed | completed | cancelled
	Note        string `json:"note,omitempty" bson:"note,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
