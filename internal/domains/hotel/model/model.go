package model

import "stay/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID          = "id"
	FieldName        = "name"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldRating      = "rating"
	FieldImage       = "image"
	FieldActive      = "active"
)

type Hotel struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Location    string  `db:"location"`
	Description string  `db:"description"`
	Rating      float64 `db:"rating"`
	Image       string  `db:"image"`
	Active      bool    `db:"active"`
	model.Metadata
}
