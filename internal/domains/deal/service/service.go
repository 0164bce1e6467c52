package service

import (
	"context"
	"fmt"

	"dinevibe/config"
	"dinevibe/infras/otel"
	"dinevibe/internal/domains/deal/model"
	"dinevibe/internal/domains/deal/model/dto"
	"dinevibe/internal/domains/deal/repository"
	restaurantModel "dinevibe/internal/domains/restaurant/model"
	restaurantRepo "dinevibe/internal/domains/restaurant/repository"
	"dinevibe/shared"
	"dinevibe/shared/cache"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/failure"
	gModel "dinevibe/shared/model"
	"dinevibe/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllDeals        = "deal:gets"
	cacheGetRestaurantDeals = "deal:restaurant"
)

type Deal interface {
	Create(ctx context.Context, req dto.CreateDealRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetDealsResponse, error)
	GetByRestaurant(ctx context.Context, restaurantID string, params gDto.QueryParams) (dto.GetRestaurantDealsResponse, error)
	Claim(ctx context.Context, dealID string) error
	GetClaimedByUser(ctx context.Context, params gDto.QueryParams) (dto.GetClaimedDealsResponse, error)
}

type serviceImpl struct {
	repo           repository.Deal
	claimRepo      repository.Claim
	restaurantRepo restaurantRepo.Restaurant
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.Deal, claimRepo repository.Claim, restaurantRepository restaurantRepo.Restaurant, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Deal {
	return &serviceImpl{
		repo:           repo,
		claimRepo:      claimRepo,
		restaurantRepo: restaurantRepository,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDealRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(req.RestaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return failure.NotFound("restaurant not found") //nolint:wrapcheck
	}

	if role != constant.RoleAdmin && restaurant.OwnerID != user {
		return failure.ResourceRestrictedError
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create deal")

		return fmt.Errorf("failed to create deal: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDeals)
		shared.InvalidateCaches(c, s.cache, cacheGetRestaurantDeals)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetDealsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDeals, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for deals")

		return res, nil
	}

	total, err := s.repo.CountWithRestaurant(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count deals")

		return res, fmt.Errorf("failed to count deals: %w", err)
	}

	models, err := s.repo.GetAllWithRestaurant(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get deals")

		return res, fmt.Errorf("failed to get deals: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save deals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByRestaurant(ctx context.Context, restaurantID string, params gDto.QueryParams) (res dto.GetRestaurantDealsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRestaurant")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRestaurantID,
				Operator: gDto.FilterOperatorEq,
				Value:    restaurantID,
				Table:    model.TableName,
			},
		},
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetRestaurantDeals, restaurantID), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant deals")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurant deals")

		return res, fmt.Errorf("failed to count restaurant deals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant deals")

		return res, fmt.Errorf("failed to get restaurant deals: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant deals to cache")
		}
	}()

	return res, nil
}

// Claim records a redemption. Inventory, expiry, and duplicate claims are not
// checked; any authenticated user may claim any deal any number of times.
func (s *serviceImpl) Claim(ctx context.Context, dealID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Claim")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	deal, err := s.repo.Get(ctx, shared.FilterByID(dealID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get deal")

		return fmt.Errorf("failed to get deal: %w", err)
	}

	if deal.ID == constant.Empty {
		return failure.NotFound("deal not found") //nolint:wrapcheck
	}

	claim := model.Claim{
		ID:           uuid.NewString(),
		UserID:       user,
		DealID:       deal.ID,
		RestaurantID: deal.RestaurantID,
		Status:       constant.DealClaimStatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.claimRepo.Insert(ctx, claim); err != nil {
		log.Error().Err(err).Msg("failed to claim deal")

		return fmt.Errorf("failed to claim deal: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetClaimedByUser(ctx context.Context, params gDto.QueryParams) (res dto.GetClaimedDealsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetClaimedByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ClaimFieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    model.ClaimTableName,
			},
		},
	}

	total, err := s.claimRepo.CountClaimed(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count claimed deals")

		return res, fmt.Errorf("failed to count claimed deals: %w", err)
	}

	models, err := s.claimRepo.GetClaimed(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get claimed deals")

		return res, fmt.Errorf("failed to get claimed deals: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}
