package dto

import (
	"stay/internal/domains/review/model"
	"stay/shared"
	gDto "stay/shared/dto"
	gModel "stay/shared/model"
	"stay/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(hotelID, userID string) model.Review {
	return model.Review{
		ID:      uuid.NewString(),
		HotelID: hotelID,
		UserID:  userID,
		Rating:  c.Rating,
		Comment: c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type ReviewResponse struct {
	ID           string `json:"id"`
	HotelID      string `json:"hotel_id"`
	UserID       string `json:"user_id"`
	UserFullName string `json:"user_full_name,omitempty"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.UserID = model.UserID
	r.Rating = model.Rating
	r.Comment = model.Comment

	if model.UserFullName.Valid {
		r.UserFullName = model.UserFullName.String
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
