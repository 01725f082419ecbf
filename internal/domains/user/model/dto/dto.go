package dto

import (
	"mime/multipart"

	"stay/internal/domains/user/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/timezone"
)

type UpdateProfileRequest struct {
	FullName  string                `db:"full_name" json:"full_name"                                                            validate:"omitempty,max=100"`
	Image     *multipart.FileHeader `json:"image"   validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	FullName     string `json:"full_name,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	LastLogin    string `json:"last_login,omitempty"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Role = model.Role
	r.Active = model.Active

	if model.FullName != nil {
		r.FullName = *model.FullName
	}

	if model.ProfileImage != nil {
		r.ProfileImage = *model.ProfileImage
	}

	if model.LastLogin != nil {
		r.LastLogin = timezone.Format(*model.LastLogin, constant.DateFormat)
	}

	r.Metadata.FromModel(model.Metadata)
}
