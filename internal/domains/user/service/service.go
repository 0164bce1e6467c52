package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"dinevibe/config"
	"dinevibe/infras/otel"
	adminService "dinevibe/internal/domains/admin/service"
	"dinevibe/internal/domains/user/model"
	"dinevibe/internal/domains/user/model/dto"
	"dinevibe/internal/domains/user/repository"
	"dinevibe/shared"
	"dinevibe/shared/cache"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfile = "user:get"

	auditActionUpdateRole = "user.update-role"
)

type User interface {
	Get(ctx context.Context, id string) (dto.ProfileResponse, error)
	GetMe(ctx context.Context) (dto.ProfileResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetProfilesResponse, error)
	Update(ctx context.Context, req dto.UpdateProfileRequest) error
	UpdateRole(ctx context.Context, id string, req dto.UpdateUserRoleRequest) error
}

type serviceImpl struct {
	repo     repository.User
	adminSvc adminService.Admin
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.User, adminSvc adminService.Admin, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:     repo,
		adminSvc: adminSvc,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProfile, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for profile")

		return res, nil
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("profile not found") //nolint:wrapcheck
	}

	res.FromModel(profile)

	if err = s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("failed to save profile cache")
	}

	return res, nil
}

func (s *serviceImpl) GetMe(ctx context.Context) (res dto.ProfileResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.Get(ctx, user)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetProfilesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count profiles")

		return res, fmt.Errorf("failed to count profiles: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profiles")

		return res, fmt.Errorf("failed to get profiles: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(user, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check profile existence")

		return fmt.Errorf("failed to check profile existence: %w", err)
	}

	if !exist {
		return failure.NotFound("profile not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.invalidate(ctx, user)

	return nil
}

// UpdateRole sets the role and the admin flag independently. An admin can hold
// role owner with is_admin still true, so neither field implies the other.
func (s *serviceImpl) UpdateRole(ctx context.Context, id string, req dto.UpdateUserRoleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRole")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check profile existence")

		return fmt.Errorf("failed to check profile existence: %w", err)
	}

	if !exist {
		return failure.NotFound("profile not found") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update user role")

		return fmt.Errorf("failed to update user role: %w", err)
	}

	details := req.Role
	s.adminSvc.LogAction(ctx, auditActionUpdateRole, model.EntityName, &id, &details)

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetProfile, id))
	}()
}
