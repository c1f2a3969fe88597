// Package dto - DTO cho domain booking.
package dto

// BookingEventCreateInput input tạo mới event.
type BookingEventCreateInput struct {
	Title       string `json:"title" bson:"title" validate:"required"`
	Slug        string `json:"slug,omitempty" bson:"slug,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	StartAt     int64  `json:"startAt" bson:"startAt" validate:"required,gt=0"`
	Capacity    int64  `json:"capacity,omitempty" bson:"capacity,omitempty" validate:"omitempty,gte=0"`
}

// BookingEventUpdateInput input cập nhật event.
type BookingEventUpdateInput struct {
	Title       string `json:"title,omitempty" bson:"title,omitempty"`
	Slug        string `json:"slug,omitempty" bson:"slug,omitempty"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	StartAt     int64  `json:"startAt,omitempty" bson:"startAt,omitempty" validate:"omitempty,gt=0"`
	Capacity    int64  `json:"capacity,omitempty" bson:"capacity,omitempty" validate:"omitempty,gte=0"`
}

// EventRegisterInput input đăng ký tham dự event.
type EventRegisterInput struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Email string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// BookingAppointmentCreateInput input tạo mới appointment.
type BookingAppointmentCreateInput struct {
	CustomerName  string `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	ScheduledAt   int64  `json:"scheduledAt" bson:"scheduledAt" validate:"required,gt=0"`
	Duration      int64  `json:"duration,omitempty" bson:"duration,omitempty" validate:"omitempty,gt=0"`
	Status        string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Note          string `json:"note,omitempty" bson:"note,omitempty"`
}

// BookingAppointmentUpdateInput input cập nhật appointment.
type BookingAppointmentUpdateInput struct {
	CustomerName  string `json:"customerName,omitempty" bson:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty" bson:"customerPhone,omitempty"`
	ScheduledAt   int64  `json:"scheduledAt,omitempty" bson:"scheduledAt,omitempty" validate:"omitempty,gt=0"`
	Duration      int64  `json:"duration,omitempty" bson:"duration,omitempty" validate:"omitempty,gt=0"`
	Status        string `json:"status,omitempty" bson:"status,omitempty" validate:"omitempty,oneof=pending confirmed completed cancelled"`
	Note          string `json:"note,omitempty" bson:"note,omitempty"`
}
