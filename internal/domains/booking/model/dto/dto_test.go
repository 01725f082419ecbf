package dto_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stay/internal/domains/booking/model"
	"stay/internal/domains/booking/model/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBookingRequest
		user    string
		wantErr bool
	}{
		{
			name: "valid request",
			req: dto.CreateBookingRequest{
				RoomID:     "room-1",
				CheckIn:    "2025-10-01",
				CheckOut:   "2025-10-03",
				TotalPrice: 200,
			},
			user:    "user-1",
			wantErr: false,
		},
		{
			name: "invalid check_in format",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "01/10/2025",
				CheckOut: "2025-10-03",
			},
			user:    "user-1",
			wantErr: true,
		},
		{
			name: "invalid check_out format",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2025-10-01",
				CheckOut: "not-a-date",
			},
			user:    "user-1",
			wantErr: true,
		},
		{
			name: "check_out before check_in",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2025-10-03",
				CheckOut: "2025-10-01",
			},
			user:    "user-1",
			wantErr: true,
		},
		{
			name: "check_out equals check_in",
			req: dto.CreateBookingRequest{
				RoomID:   "room-1",
				CheckIn:  "2025-10-01",
				CheckOut: "2025-10-01",
			},
			user:    "user-1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := tt.req.ToModel(tt.user)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, booking.ID)
			assert.Equal(t, tt.user, booking.UserID)
			assert.Equal(t, tt.req.RoomID, booking.RoomID)
			assert.Equal(t, tt.req.TotalPrice, booking.TotalPrice)
			assert.Equal(t, model.StatusActive.String(), booking.Status)
			assert.Equal(t, tt.user, booking.CreatedBy)
		})
	}
}

func TestCreateBookingRequest_Nights(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateBookingRequest
		expected int
	}{
		{
			name: "two nights",
			req: dto.CreateBookingRequest{
				CheckIn:  "2025-10-01",
				CheckOut: "2025-10-03",
			},
			expected: 2,
		},
		{
			name: "single night",
			req: dto.CreateBookingRequest{
				CheckIn:  "2025-10-01",
				CheckOut: "2025-10-02",
			},
			expected: 1,
		},
		{
			name: "invalid dates return zero",
			req: dto.CreateBookingRequest{
				CheckIn:  "invalid",
				CheckOut: "2025-10-02",
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.Nights())
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	checkIn := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)

	booking := model.Booking{
		ID:         "booking-1",
		UserID:     "user-1",
		RoomID:     "room-1",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: 200,
		Status:     model.StatusActive.String(),
		RoomNumber: sql.NullString{String: "101", Valid: true},
		RoomType:   sql.NullString{String: "deluxe", Valid: true},
		HotelID:    sql.NullString{String: "hotel-1", Valid: true},
		HotelName:  sql.NullString{String: "Grand Hotel", Valid: true},
		HotelCity:  sql.NullString{String: "Jakarta", Valid: true},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "user-1",
			ModifiedBy: "user-1",
		},
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Equal(t, "booking-1", res.ID)
	assert.Equal(t, "user-1", res.UserID)
	assert.Equal(t, "room-1", res.RoomID)
	assert.Equal(t, "2025-10-01", res.CheckIn)
	assert.Equal(t, "2025-10-03", res.CheckOut)
	assert.Equal(t, float64(200), res.TotalPrice)
	assert.Equal(t, "active", res.Status)
	assert.Equal(t, "101", res.RoomNumber)
	assert.Equal(t, "deluxe", res.RoomType)
	assert.Equal(t, "hotel-1", res.HotelID)
	assert.Equal(t, "Grand Hotel", res.HotelName)
	assert.Equal(t, "Jakarta", res.HotelLocation)
}

func TestBookingResponse_FromModelWithoutJoins(t *testing.T) {
	booking := model.Booking{
		ID:       "booking-1",
		UserID:   "user-1",
		RoomID:   "room-1",
		CheckIn:  time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
		Status:   model.StatusCancelled.String(),
	}

	res := dto.BookingResponse{}
	res.FromModel(booking)

	assert.Empty(t, res.RoomNumber)
	assert.Empty(t, res.HotelName)
	assert.Equal(t, "cancelled", res.Status)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	models := []model.Booking{
		{ID: "booking-1", Status: model.StatusActive.String()},
		{ID: "booking-2", Status: model.StatusCancelled.String()},
	}

	res := dto.GetBookingsResponse{}
	res.FromModels(models, 12, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, "booking-1", res.Bookings[0].ID)
	assert.Equal(t, "booking-2", res.Bookings[1].ID)
}
