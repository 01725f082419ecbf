package model

import (
	"database/sql"
	"time"

	"stay/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldRoomID     = "room_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldTotalPrice = "total_price"
	FieldStatus     = "status"
)

type Booking struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	RoomID     string    `db:"room_id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	TotalPrice float64   `db:"total_price"`
	Status     string    `db:"status"`

	RoomNumber sql.NullString `db:"room_number"    table:"rooms"  column:"room_number"`
	RoomType   sql.NullString `db:"room_type"      table:"rooms"  column:"type"`
	HotelID    sql.NullString `db:"hotel_id"       table:"hotels" column:"id"`
	HotelName  sql.NullString `db:"hotel_name"     table:"hotels" column:"name"`
	HotelCity  sql.NullString `db:"hotel_location" table:"hotels" column:"location"`
	model.Metadata
}

func (b Booking) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = bookings.room_id LEFT JOIN hotels ON hotels.id = rooms.hotel_id"
}
