package model

import (
	"database/sql"

	"stay/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID      = "id"
	FieldHotelID = "hotel_id"
	FieldUserID  = "user_id"
	FieldRating  = "rating"
	FieldComment = "comment"
)

type Review struct {
	ID      string `db:"id"`
	HotelID string `db:"hotel_id"`
	UserID  string `db:"user_id"`
	Rating  int    `db:"rating"`
	Comment string `db:"comment"`

	UserFullName sql.NullString `db:"user_full_name" table:"users" column:"full_name"`
	model.Metadata
}

func (r Review) GetJoinQuery() string {
	return "LEFT JOIN users ON users.id = reviews.user_id"
}
