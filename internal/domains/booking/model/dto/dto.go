package dto

import (
	"time"

	"stay/internal/domains/booking/model"
	"stay/shared"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/failure"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID     string  `json:"room_id"     validate:"required"`
	CheckIn    string  `json:"check_in"    validate:"required"`
	CheckOut   string  `json:"check_out"   validate:"required"`
	TotalPrice float64 `json:"total_price" validate:"omitempty,gte=0"`
}

// ToModel builds the booking in its initial active state. The stay must span
// at least one night.
func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.BookingDateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_in must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	checkOut, err := time.Parse(constant.BookingDateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_out must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return model.Booking{}, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	return model.Booking{
		ID:         uuid.NewString(),
		UserID:     user,
		RoomID:     c.RoomID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: c.TotalPrice,
		Status:     model.StatusActive.String(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// Nights returns the stay length in nights, assuming a valid request.
func (c *CreateBookingRequest) Nights() int {
	checkIn, err := time.Parse(constant.BookingDateFormat, c.CheckIn)
	if err != nil {
		return 0
	}

	checkOut, err := time.Parse(constant.BookingDateFormat, c.CheckOut)
	if err != nil {
		return 0
	}

	return int(checkOut.Sub(checkIn).Hours() / 24)
}

type BookingResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	RoomID     string  `json:"room_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`

	RoomNumber    string `json:"room_number,omitempty"`
	RoomType      string `json:"room_type,omitempty"`
	HotelID       string `json:"hotel_id,omitempty"`
	HotelName     string `json:"hotel_name,omitempty"`
	HotelLocation string `json:"hotel_location,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.CheckIn = model.CheckIn.Format(constant.BookingDateFormat)
	r.CheckOut = model.CheckOut.Format(constant.BookingDateFormat)
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status

	if model.RoomNumber.Valid {
		r.RoomNumber = model.RoomNumber.String
	}

	if model.RoomType.Valid {
		r.RoomType = model.RoomType.String
	}

	if model.HotelID.Valid {
		r.HotelID = model.HotelID.String
	}

	if model.HotelName.Valid {
		r.HotelName = model.HotelName.String
	}

	if model.HotelCity.Valid {
		r.HotelLocation = model.HotelCity.String
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
