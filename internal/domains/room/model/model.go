package model

import (
	"database/sql"

	"stay/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldHotelID     = "hotel_id"
	FieldRoomNumber  = "room_number"
	FieldType        = "type"
	FieldPrice       = "price"
	FieldImage       = "image"
	FieldIsAvailable = "is_available"
)

type Room struct {
	ID          string  `db:"id"`
	HotelID     string  `db:"hotel_id"`
	RoomNumber  string  `db:"room_number"`
	Type        string  `db:"type"`
	Price       float64 `db:"price"`
	Image       string  `db:"image"`
	IsAvailable bool    `db:"is_available"`

	HotelName sql.NullString `db:"hotel_name" table:"hotels" column:"name"`
	model.Metadata
}

func (r Room) GetJoinQuery() string {
	return "LEFT JOIN hotels ON hotels.id = rooms.hotel_id"
}
