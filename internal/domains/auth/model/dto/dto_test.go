package dto_test

import (
	"testing"

	"dinevibe/infras/jwt"
	"dinevibe/internal/domains/auth/model/dto"
	"dinevibe/shared/constant"

	"github.com/stretchr/testify/assert"
)

func strPtr(v string) *string {
	return &v
}

func TestRegisterRequest_ToProfileModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:         "user@example.com",
		Password:      "plaintext-password",
		Name:          strPtr("Test User"),
		ContactNumber: strPtr("+62123456789"),
	}

	profile := req.ToProfileModel("user@example.com", "hashed-password", false)

	assert.NotEmpty(t, profile.ID, "expected ID to be generated")
	assert.Equal(t, req.Email, profile.Email)
	assert.Equal(t, "hashed-password", profile.Password, "profile must carry the hash, not the plain password")
	assert.Equal(t, req.Name, profile.Name)
	assert.Equal(t, req.ContactNumber, profile.ContactNumber)
	assert.Equal(t, constant.RoleUser, profile.Role, "missing role defaults to user")
	assert.False(t, profile.IsAdmin)
	assert.True(t, profile.Active)
	assert.False(t, profile.SignupDate.IsZero(), "expected SignupDate to be set")
	assert.Equal(t, "user@example.com", profile.CreatedBy)
	assert.Equal(t, "user@example.com", profile.ModifiedBy)
}

func TestRegisterRequest_ToProfileModel_ExplicitRole(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "owner@example.com",
		Password: "plaintext-password",
		Role:     constant.RoleOwner,
	}

	profile := req.ToProfileModel("owner@example.com", "hashed-password", false)

	assert.Equal(t, constant.RoleOwner, profile.Role)
	assert.False(t, profile.IsAdmin, "role does not imply admin")
}

func TestRegisterRequest_ToProfileModel_Admin(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "plaintext-password",
		Role:     constant.RoleAdmin,
	}

	profile := req.ToProfileModel("admin@example.com", "hashed-password", true)

	assert.Equal(t, constant.RoleAdmin, profile.Role)
	assert.True(t, profile.IsAdmin)
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    3600,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}
