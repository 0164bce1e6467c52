package dto

import (
	"dinevibe/internal/domains/user/model"
	"dinevibe/shared"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/timezone"
)

type ProfileResponse struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Name          *string `json:"name"`
	ContactNumber *string `json:"contact_number"`
	AvatarURL     *string `json:"avatar_url"`
	Role          string  `json:"role"`
	IsAdmin       bool    `json:"is_admin"`
	SignupDate    string  `json:"signup_date"`
	LastLogin     *string `json:"last_login"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (p *ProfileResponse) FromModel(mod model.Profile) {
	p.ID = mod.ID
	p.Email = mod.Email
	p.Name = mod.Name
	p.ContactNumber = mod.ContactNumber
	p.AvatarURL = mod.AvatarURL
	p.Role = mod.Role
	p.IsAdmin = mod.IsAdmin
	p.SignupDate = timezone.Format(mod.SignupDate, constant.DateFormat)
	p.Active = mod.Active

	if mod.LastLogin != nil {
		lastLogin := timezone.Format(*mod.LastLogin, constant.DateFormat)
		p.LastLogin = &lastLogin
	}

	p.Metadata.FromModel(mod.Metadata)
}

type GetProfilesResponse struct {
	Profiles  []ProfileResponse `json:"profiles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetProfilesResponse) FromModels(models []model.Profile, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Profiles = make([]ProfileResponse, len(models))
	for i, mod := range models {
		g.Profiles[i].FromModel(mod)
	}
}

type UpdateProfileRequest struct {
	Name          string `db:"name"           json:"name"           validate:"omitempty,max=100"`
	ContactNumber string `db:"contact_number" json:"contact_number" validate:"omitempty,max=30"`
	AvatarURL     string `db:"avatar_url"     json:"avatar_url"     validate:"omitempty,url"`
}

type UpdateUserRoleRequest struct {
	Role    string `db:"role"     json:"role"     validate:"omitempty,oneof=user owner admin"`
	IsAdmin *bool  `db:"is_admin" json:"is_admin" validate:"omitempty"`
}
