package dto

import (
	"mime/multipart"

	"stay/internal/domains/room/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID     string                `json:"hotel_id"    validate:"required"`
	RoomNumber  string                `json:"room_number" validate:"required,max=20"`
	Type        string                `json:"type"        validate:"required,max=50"`
	Price       float64               `json:"price"       validate:"required,gte=0"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	IsAvailable *bool                 `json:"is_available" validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	available := true
	if c.IsAvailable != nil {
		available = *c.IsAvailable
	}

	return model.Room{
		ID:          uuid.NewString(),
		HotelID:     c.HotelID,
		RoomNumber:  c.RoomNumber,
		Type:        c.Type,
		Price:       c.Price,
		Image:       imageURL,
		IsAvailable: available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string                `db:"room_number"  json:"room_number"                                                          validate:"omitempty,max=20"`
	Type        string                `db:"type"         json:"type"                                                                 validate:"omitempty,max=50"`
	Price       *float64              `db:"price"        json:"price"                                                                validate:"omitempty,gte=0"`
	Image       *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	IsAvailable *bool                 `db:"is_available" json:"is_available"                                                         validate:"omitempty"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	HotelID     string  `json:"hotel_id"`
	HotelName   string  `json:"hotel_name,omitempty"`
	RoomNumber  string  `json:"room_number"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	IsAvailable bool    `json:"is_available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomNumber = model.RoomNumber
	r.Type = model.Type
	r.Price = model.Price
	r.Image = model.Image
	r.IsAvailable = model.IsAvailable

	if model.HotelName.Valid {
		r.HotelName = model.HotelName.String
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
