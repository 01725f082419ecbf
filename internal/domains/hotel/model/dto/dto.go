package dto

import (
	"mime/multipart"

	"stay/internal/domains/hotel/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Location    string                `json:"location"    validate:"required,max=100"`
	Description string                `json:"description" validate:"omitempty,max=1000"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateHotelRequest) ToModel(user string, imageURL string) model.Hotel {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Hotel{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Location:    c.Location,
		Description: c.Description,
		Image:       imageURL,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name        string                `db:"name"        json:"name"                                                                 validate:"omitempty,max=100"`
	Location    string                `db:"location"    json:"location"                                                             validate:"omitempty,max=100"`
	Description string                `db:"description" json:"description"                                                          validate:"omitempty,max=1000"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"                                                               validate:"omitempty"`
}

type HotelResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Image       string  `json:"image"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.Location = model.Location
	r.Description = model.Description
	r.Rating = model.Rating
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
