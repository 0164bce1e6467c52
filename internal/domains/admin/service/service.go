package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"dinevibe/config"
	"dinevibe/infras/otel"
	"dinevibe/internal/domains/admin/model"
	"dinevibe/internal/domains/admin/model/dto"
	"dinevibe/internal/domains/admin/repository"
	dealRepo "dinevibe/internal/domains/deal/repository"
	reservationModel "dinevibe/internal/domains/reservation/model"
	reservationRepo "dinevibe/internal/domains/reservation/repository"
	restaurantModel "dinevibe/internal/domains/restaurant/model"
	restaurantRepo "dinevibe/internal/domains/restaurant/repository"
	userModel "dinevibe/internal/domains/user/model"
	userRepo "dinevibe/internal/domains/user/repository"
	"dinevibe/shared"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const auditActionRotateCode = "admin.rotate-registration-code"

type Admin interface {
	GetSettings(ctx context.Context) (dto.SettingsResponse, error)
	RotateRegistrationCode(ctx context.Context) (dto.SettingsResponse, error)
	IsInitialSetupComplete(ctx context.Context) (bool, error)
	LogAction(ctx context.Context, action, entityType string, entityID, details *string)
	GetLogs(ctx context.Context, params gDto.QueryParams) (dto.GetLogsResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	settingsRepo    repository.Settings
	logsRepo        repository.Logs
	userRepo        userRepo.User
	restaurantRepo  restaurantRepo.Restaurant
	reservationRepo reservationRepo.Reservation
	claimRepo       dealRepo.Claim
	cfg             *config.Config
	otel            otel.Otel
}

func New(
	settingsRepo repository.Settings,
	logsRepo repository.Logs,
	userRepository userRepo.User,
	restaurantRepository restaurantRepo.Restaurant,
	reservationRepository reservationRepo.Reservation,
	claimRepository dealRepo.Claim,
	cfg *config.Config,
	otel otel.Otel,
) Admin {
	return &serviceImpl{
		settingsRepo:    settingsRepo,
		logsRepo:        logsRepo,
		userRepo:        userRepository,
		restaurantRepo:  restaurantRepository,
		reservationRepo: reservationRepository,
		claimRepo:       claimRepository,
		cfg:             cfg,
		otel:            otel,
	}
}

func (s *serviceImpl) GetSettings(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSettings")
	defer scope.End()
	defer scope.TraceIfError(err)

	setting, err := s.settingsRepo.GetOrCreate(ctx, shared.NewRegistrationCode())
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin settings")

		return res, fmt.Errorf("failed to get admin settings: %w", err)
	}

	res.FromModel(setting)

	return res, nil
}

func (s *serviceImpl) RotateRegistrationCode(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RotateRegistrationCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Make sure the settings row exists before rotating.
	if _, err = s.settingsRepo.GetOrCreate(ctx, shared.NewRegistrationCode()); err != nil {
		log.Error().Err(err).Msg("failed to get admin settings")

		return res, fmt.Errorf("failed to get admin settings: %w", err)
	}

	code := shared.NewRegistrationCode()

	if err = s.settingsRepo.UpdateCode(ctx, code); err != nil {
		log.Error().Err(err).Msg("failed to rotate registration code")

		return res, fmt.Errorf("failed to rotate registration code: %w", err)
	}

	s.LogAction(ctx, auditActionRotateCode, model.SettingsEntityName, nil, nil)

	res.RegistrationCode = code
	res.UpdatedAt = timezone.Format(timezone.Now(), constant.DateFormat)

	return res, nil
}

// IsInitialSetupComplete reports whether a bootstrap admin exists: a profile
// with role admin AND the admin flag set. Until then, admin self-registration
// does not require the registration code.
func (s *serviceImpl) IsInitialSetupComplete(ctx context.Context) (complete bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsInitialSetupComplete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldRole,
				Operator: gDto.FilterOperatorEq,
				Value:    constant.RoleAdmin,
				Table:    userModel.TableName,
			},
			gDto.Filter{
				Field:    userModel.FieldIsAdmin,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    userModel.TableName,
			},
		},
	}

	complete, err = s.userRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check initial setup status")

		return false, fmt.Errorf("failed to check initial setup status: %w", err)
	}

	return complete, nil
}

// LogAction appends an audit entry. It is best-effort: failures are logged
// and never surface to the audited action.
func (s *serviceImpl) LogAction(ctx context.Context, action, entityType string, entityID, details *string) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LogAction")
	defer scope.End()

	adminID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entry := model.Log{
		ID:         uuid.NewString(),
		AdminID:    adminID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		CreatedAt:  timezone.Now(),
	}

	if err := s.logsRepo.Insert(ctx, entry); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("action", action).Msg("failed to write audit log entry")
	}
}

func (s *serviceImpl) GetLogs(ctx context.Context, params gDto.QueryParams) (res dto.GetLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}

	total, err := s.logsRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count audit logs")

		return res, fmt.Errorf("failed to count audit logs: %w", err)
	}

	models, err := s.logsRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get audit logs")

		return res, fmt.Errorf("failed to get audit logs: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

// Dashboard gathers admin overview counts. The counts are independent reads,
// so they run concurrently.
func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	type countJob struct {
		dest  *int
		count func(ctx context.Context) (int, error)
	}

	jobs := []countJob{
		{&res.TotalUsers, func(ctx context.Context) (int, error) {
			return s.userRepo.Count(ctx, gDto.FilterGroup{})
		}},
		{&res.TotalRestaurants, func(ctx context.Context) (int, error) {
			return s.restaurantRepo.Count(ctx, gDto.FilterGroup{})
		}},
		{&res.PendingRestaurants, func(ctx context.Context) (int, error) {
			return s.restaurantRepo.Count(ctx, fieldEqFilter(restaurantModel.FieldIsApproved, false, restaurantModel.TableName))
		}},
		{&res.TotalReservations, func(ctx context.Context) (int, error) {
			return s.reservationRepo.Count(ctx, gDto.FilterGroup{})
		}},
		{&res.PendingReservations, func(ctx context.Context) (int, error) {
			return s.reservationRepo.Count(ctx, fieldEqFilter(reservationModel.FieldStatus, constant.ReservationStatusPending, reservationModel.TableName))
		}},
		{&res.TotalDealClaims, func(ctx context.Context) (int, error) {
			return s.claimRepo.Count(ctx, gDto.FilterGroup{})
		}},
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for _, job := range jobs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			count, countErr := job.count(ctx)

			mu.Lock()
			defer mu.Unlock()

			if countErr != nil && firstErr == nil {
				firstErr = countErr

				return
			}

			*job.dest = count
		}()
	}

	wg.Wait()

	if firstErr != nil {
		log.Error().Err(firstErr).Msg("failed to gather dashboard counts")

		return dto.DashboardResponse{}, fmt.Errorf("failed to gather dashboard counts: %w", firstErr)
	}

	return res, nil
}

func fieldEqFilter(field string, value any, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    table,
			},
		},
	}
}
