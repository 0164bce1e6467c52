package dto

import (
	"time"

	"dinevibe/infras/jwt"
	userModel "dinevibe/internal/domains/user/model"
	"dinevibe/shared/constant"
	gModel "dinevibe/shared/model"
	"dinevibe/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email            string  `json:"email"                       validate:"required,email"`
	Password         string  `json:"password"                    validate:"required,min=8"`
	Name             *string `json:"name,omitempty"              validate:"omitempty,max=100"`
	ContactNumber    *string `json:"contact_number,omitempty"    validate:"omitempty,max=30"`
	Role             string  `json:"role,omitempty"              validate:"omitempty,oneof=user owner admin"`
	RegistrationCode string  `json:"registration_code,omitempty"`
}

func (r *RegisterRequest) ToProfileModel(username, hashedPassword string, isAdmin bool) userModel.Profile {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleUser
	}

	now := timezone.Now()

	return userModel.Profile{
		ID:            uuid.NewString(),
		Email:         r.Email,
		Password:      hashedPassword,
		Name:          r.Name,
		ContactNumber: r.ContactNumber,
		Role:          role,
		IsAdmin:       isAdmin,
		SignupDate:    now,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
