package dto

import (
	"stay/internal/domains/booking/model"
	"stay/shared/constant"
	"stay/shared/timezone"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published to the booking topic on lifecycle
// changes.
type BookingEvent struct {
	EventType  string `json:"event_type"`
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	RoomID     string `json:"room_id"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		EventType:  eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		RoomID:     booking.RoomID,
		Status:     booking.Status,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
