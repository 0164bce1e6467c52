package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"dinevibe/config"
	"dinevibe/infras/otel/mocks"
	adminMocks "dinevibe/internal/domains/admin/mocks"
	"dinevibe/internal/domains/admin/model"
	"dinevibe/internal/domains/admin/service"
	dealMocks "dinevibe/internal/domains/deal/mocks"
	reservationMocks "dinevibe/internal/domains/reservation/mocks"
	restaurantMocks "dinevibe/internal/domains/restaurant/mocks"
	userMocks "dinevibe/internal/domains/user/mocks"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/timezone"
)

type serviceMocks struct {
	settings    *adminMocks.MockSettings
	logs        *adminMocks.MockLogs
	user        *userMocks.MockUser
	restaurant  *restaurantMocks.MockRestaurant
	reservation *reservationMocks.MockReservation
	claim       *dealMocks.MockClaim
}

func newService(ctrl *gomock.Controller) (service.Admin, serviceMocks) {
	m := serviceMocks{
		settings:    adminMocks.NewMockSettings(ctrl),
		logs:        adminMocks.NewMockLogs(ctrl),
		user:        userMocks.NewMockUser(ctrl),
		restaurant:  restaurantMocks.NewMockRestaurant(ctrl),
		reservation: reservationMocks.NewMockReservation(ctrl),
		claim:       dealMocks.NewMockClaim(ctrl),
	}

	cfg := &config.Config{}

	svc := service.New(m.settings, m.logs, m.user, m.restaurant, m.reservation, m.claim, cfg, mocks.NewOtel())

	return svc, m
}

func TestAdminService_GetSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  string
	}{
		{
			name: "settings row is created lazily",
			setupMock: func() {
				m.settings.EXPECT().
					GetOrCreate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, code string) (model.Setting, error) {
						assert.NotEmpty(t, code)

						return model.Setting{ID: 1, RegistrationCode: code, UpdatedAt: timezone.Now()}, nil
					})
			},
			wantErr: false,
		},
		{
			name: "existing settings are returned",
			setupMock: func() {
				m.settings.EXPECT().
					GetOrCreate(gomock.Any(), gomock.Any()).
					Return(model.Setting{ID: 1, RegistrationCode: "EXISTING123", UpdatedAt: timezone.Now()}, nil)
			},
			wantErr:  false,
			wantCode: "EXISTING123",
		},
		{
			name: "repository error",
			setupMock: func() {
				m.settings.EXPECT().
					GetOrCreate(gomock.Any(), gomock.Any()).
					Return(model.Setting{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetSettings(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.RegistrationCode)

				if tt.wantCode != "" {
					assert.Equal(t, tt.wantCode, result.RegistrationCode)
				}
			}
		})
	}
}

func TestAdminService_RotateRegistrationCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	m.settings.EXPECT().
		GetOrCreate(gomock.Any(), gomock.Any()).
		Return(model.Setting{ID: 1, RegistrationCode: "OLD-CODE", UpdatedAt: timezone.Now()}, nil)

	var rotated string

	m.settings.EXPECT().
		UpdateCode(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, code string) error {
			rotated = code

			return nil
		})

	m.logs.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry model.Log) error {
			assert.Equal(t, "admin.rotate-registration-code", entry.Action)
			assert.Equal(t, "admin-id", entry.AdminID)

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
	result, err := svc.RotateRegistrationCode(ctx)

	assert.NoError(t, err)
	assert.Equal(t, rotated, result.RegistrationCode)
	assert.NotEqual(t, "OLD-CODE", result.RegistrationCode)
}

func TestAdminService_IsInitialSetupComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		want      bool
		wantErr   bool
	}{
		{
			name: "no bootstrap admin yet",
			setupMock: func() {
				m.user.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			want: false,
		},
		{
			name: "bootstrap admin exists",
			setupMock: func() {
				m.user.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						assert.Len(t, filter.Filters, 2)

						return true, nil
					})
			},
			want: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.user.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.IsInitialSetupComplete(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, result)
			}
		})
	}
}

func TestAdminService_LogAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	t.Run("entry carries the acting admin", func(t *testing.T) {
		m.logs.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entry model.Log) error {
				assert.Equal(t, "admin-id", entry.AdminID)
				assert.Equal(t, "restaurant.approve", entry.Action)
				assert.NotEmpty(t, entry.ID)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
		svc.LogAction(ctx, "restaurant.approve", "restaurant", nil, nil)
	})

	t.Run("insert failure is swallowed", func(t *testing.T) {
		m.logs.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
		svc.LogAction(ctx, "restaurant.approve", "restaurant", nil, nil)
	})
}

func TestAdminService_GetLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	m.logs.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.logs.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Log{
			{ID: "log-id", AdminID: "admin-id", Action: "restaurant.approve", CreatedAt: timezone.Now()},
		}, nil)

	result, err := svc.GetLogs(context.Background(), gDto.QueryParams{Limit: 10, Page: 1})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.TotalData)
	assert.Len(t, result.Logs, 1)
}

func TestAdminService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newService(ctrl)

	t.Run("counts are gathered", func(t *testing.T) {
		m.user.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(10, nil)

		m.restaurant.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				if len(filter.Filters) > 0 {
					return 2, nil
				}

				return 5, nil
			}).
			Times(2)

		m.reservation.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				if len(filter.Filters) > 0 {
					return 3, nil
				}

				return 7, nil
			}).
			Times(2)

		m.claim.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(4, nil)

		result, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 10, result.TotalUsers)
		assert.Equal(t, 5, result.TotalRestaurants)
		assert.Equal(t, 2, result.PendingRestaurants)
		assert.Equal(t, 7, result.TotalReservations)
		assert.Equal(t, 3, result.PendingReservations)
		assert.Equal(t, 4, result.TotalDealClaims)
	})

	t.Run("any failing count fails the dashboard", func(t *testing.T) {
		m.user.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		m.restaurant.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil).
			Times(2)

		m.reservation.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil).
			Times(2)

		m.claim.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil)

		_, err := svc.Dashboard(context.Background())

		assert.Error(t, err)
	})
}
