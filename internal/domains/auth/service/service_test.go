package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"dinevibe/config"
	"dinevibe/infras/jwt"
	jwtMocks "dinevibe/infras/jwt/mocks"
	"dinevibe/infras/otel/mocks"
	adminMocks "dinevibe/internal/domains/admin/mocks"
	adminDto "dinevibe/internal/domains/admin/model/dto"
	"dinevibe/internal/domains/auth/model/dto"
	"dinevibe/internal/domains/auth/service"
	userMocks "dinevibe/internal/domains/user/mocks"
	userModel "dinevibe/internal/domains/user/model"
	"dinevibe/shared/password"
)

func newService(ctrl *gomock.Controller) (
	service.Auth,
	*userMocks.MockUser,
	*adminMocks.MockAdmin,
	*jwtMocks.MockJWT,
) {
	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockAdmin := adminMocks.NewMockAdmin(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockUserRepo, mockAdmin, cfg, mockOtel, mockJWT)

	return svc, mockUserRepo, mockAdmin, mockJWT
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, mockAdmin, _ := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful user registration",
			req: dto.RegisterRequest{
				Email:    "user@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, profile userModel.Profile) error {
						assert.Equal(t, "user", profile.Role)
						assert.False(t, profile.IsAdmin)
						assert.True(t, profile.Active)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			req: dto.RegisterRequest{
				Email:    "taken@example.com",
				Password: "password123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "first admin bootstraps without a code",
			req: dto.RegisterRequest{
				Email:    "admin@example.com",
				Password: "password123",
				Role:     "admin",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockAdmin.EXPECT().
					IsInitialSetupComplete(gomock.Any()).
					Return(false, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, profile userModel.Profile) error {
						assert.Equal(t, "admin", profile.Role)
						assert.True(t, profile.IsAdmin)

						return nil
					})

				mockAdmin.EXPECT().
					LogAction(gomock.Any(), "auth.register-admin", userModel.EntityName, gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "later admin needs the current code",
			req: dto.RegisterRequest{
				Email:            "admin2@example.com",
				Password:         "password123",
				Role:             "admin",
				RegistrationCode: "RIGHT-CODE",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockAdmin.EXPECT().
					IsInitialSetupComplete(gomock.Any()).
					Return(true, nil)

				mockAdmin.EXPECT().
					GetSettings(gomock.Any()).
					Return(adminDto.SettingsResponse{RegistrationCode: "RIGHT-CODE"}, nil)

				mockUserRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockAdmin.EXPECT().
					LogAction(gomock.Any(), "auth.register-admin", userModel.EntityName, gomock.Any(), gomock.Any())
			},
			wantErr: false,
		},
		{
			name: "wrong registration code is forbidden",
			req: dto.RegisterRequest{
				Email:            "admin3@example.com",
				Password:         "password123",
				Role:             "admin",
				RegistrationCode: "WRONG-CODE",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockAdmin.EXPECT().
					IsInitialSetupComplete(gomock.Any()).
					Return(true, nil)

				mockAdmin.EXPECT().
					GetSettings(gomock.Any()).
					Return(adminDto.SettingsResponse{RegistrationCode: "RIGHT-CODE"}, nil)
			},
			wantErr: true,
		},
		{
			name: "missing registration code is forbidden",
			req: dto.RegisterRequest{
				Email:    "admin4@example.com",
				Password: "password123",
				Role:     "admin",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockAdmin.EXPECT().
					IsInitialSetupComplete(gomock.Any()).
					Return(true, nil)

				mockAdmin.EXPECT().
					GetSettings(gomock.Any()).
					Return(adminDto.SettingsResponse{RegistrationCode: "RIGHT-CODE"}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Register(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, _, mockJWT := newService(ctrl)

	hashed, err := password.Hash("correct-password")
	assert.NoError(t, err)

	user := userModel.Profile{
		ID:       "user-id",
		Email:    "user@example.com",
		Password: hashed,
		Role:     "user",
		Active:   true,
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req: dto.LoginRequest{
				Email:    "user@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("user-id", "user@example.com", "user", false).
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown email",
			req: dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.Profile{}, nil)
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req: dto.LoginRequest{
				Email:    "user@example.com",
				Password: "wrong-password",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "deactivated account",
			req: dto.LoginRequest{
				Email:    "user@example.com",
				Password: "correct-password",
			},
			setupMock: func() {
				inactive := user
				inactive.Active = false

				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(inactive, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access", result.AccessToken)
				assert.Equal(t, "refresh", result.RefreshToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockJWT := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(nil, errors.New("token expired"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "new-access", result.AccessToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUserRepo, _, _ := newService(ctrl)

	hashed, err := password.Hash("current-password")
	assert.NoError(t, err)

	user := userModel.Profile{
		ID:       "user-id",
		Password: hashed,
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful change",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "current-password",
				NewPassword:     "new-password-123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)

				mockUserRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "wrong-password",
				NewPassword:     "new-password-123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(user, nil)
			},
			wantErr: true,
		},
		{
			name: "profile not found",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "current-password",
				NewPassword:     "new-password-123",
			},
			setupMock: func() {
				mockUserRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(userModel.Profile{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(context.Background(), tt.req, "user-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
