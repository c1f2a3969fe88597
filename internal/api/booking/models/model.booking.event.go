// Package bookingmodels chứa model cho domain booking.
package bookingmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingEvent là một sự kiện có đăng ký tham dự (workshop, webinar...).
type BookingEvent struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`

	Title       string `json:"title" bson:"title"`
	Slug        string `json:"slug,omitempty" bson:"slug,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	StartAt     int64  `json:"startAt" bson:"startAt"` // Unix-milli
	Capacity    int64  `json:"capacity,omitempty" bson:"capacity,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// EventRegistration là một lượt đăng ký tham dự event, lưu trong collection
// riêng theo thời gian thay vì embed mảng trong event.
type EventRegistration struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BusinessID primitive.ObjectID `json:"businessId" bson:"businessId"`
	EventID    primitive.ObjectID `json:"eventId" bson:"eventId"`

	Name  string `json:"name" bson:"name"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
