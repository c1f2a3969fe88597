// Package bookingsvc chứa service cho domain booking.
package bookingsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "chat_grow/internal/api/base/service"
	bookingmodels "chat_grow/internal/api/booking/models"
	"chat_grow/internal/global"
)

// BookingEventService cung cấp CRUD trên collection booking_events.
type BookingEventService struct {
	*basesvc.BaseServiceMongoImpl[bookingmodels.BookingEvent]

	registrations *basesvc.BaseServiceMongoImpl[bookingmodels.EventRegistration]
}

// NewBookingEventService tạo mới BookingEventService.
func NewBookingEventService() (*BookingEventService, error) {
	eventColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.BookingEvents)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.BookingEvents)
	}
	regColl, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.BookingRegistrations)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.BookingRegistrations)
	}
	return &BookingEventService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bookingmodels.BookingEvent](eventColl),
		registrations:        basesvc.NewBaseServiceMongo[bookingmodels.EventRegistration](regColl),
	}, nil
}

// Register tạo một lượt đăng ký tham dự event. Event phải thuộc tenant.
func (s *BookingEventService) Register(ctx context.Context, businessID, eventID primitive.ObjectID, reg bookingmodels.EventRegistration) (bookingmodels.EventRegistration, error) {
	if _, err := s.FindOne(ctx, map[string]interface{}{"_id": eventID, "businessId": businessID}, nil); err != nil {
		return bookingmodels.EventRegistration{}, err
	}

	reg.BusinessID = businessID
	reg.EventID = eventID
	return s.registrations.InsertOne(ctx, reg)
}

// BookingAppointmentService cung cấp CRUD trên collection booking_appointments.
type BookingAppointmentService struct {
	*basesvc.BaseServiceMongoImpl[bookingmodels.BookingAppointment]
}

// NewBookingAppointmentService tạo mới BookingAppointmentService.
func NewBookingAppointmentService() (*BookingAppointmentService, error) {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.BookingAppointments)
	if !ok {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.MongoDB_ColNames.BookingAppointments)
	}
	return &BookingAppointmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[bookingmodels.BookingAppointment](coll),
	}, nil
}
