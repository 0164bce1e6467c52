package service

import (
	"context"
	"fmt"

	"dinevibe/config"
	"dinevibe/infras/otel"
	adminService "dinevibe/internal/domains/admin/service"
	"dinevibe/internal/domains/restaurant/model"
	"dinevibe/internal/domains/restaurant/model/dto"
	"dinevibe/internal/domains/restaurant/repository"
	"dinevibe/internal/events"
	"dinevibe/shared"
	"dinevibe/shared/cache"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/failure"
	"dinevibe/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRestaurant     = "restaurant:get"
	cacheGetAllRestaurants = "restaurant:gets"
	cacheCountRestaurants  = "restaurant:count"

	auditActionApprove = "restaurant.approve"
	auditActionReject  = "restaurant.reject"
)

type Restaurant interface {
	Create(ctx context.Context, req dto.CreateRestaurantRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRestaurantsResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, query string) (dto.GetRestaurantsResponse, error)
	GetRecommended(ctx context.Context, req dto.RecommendationRequest) ([]dto.RestaurantResponse, error)
	Get(ctx context.Context, id string) (dto.RestaurantResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetRestaurantsResponse, error)
	GetPending(ctx context.Context, params gDto.QueryParams) (dto.GetPendingRestaurantsResponse, error)
	Update(ctx context.Context, req dto.UpdateRestaurantRequest, id string) error
	UpdateApprovalStatus(ctx context.Context, id string, req dto.UpdateApprovalRequest) error
}

type serviceImpl struct {
	repo      repository.Restaurant
	adminSvc  adminService.Admin
	publisher events.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Restaurant, adminSvc adminService.Admin, publisher events.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Restaurant {
	return &serviceImpl{
		repo:      repo,
		adminSvc:  adminSvc,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// approvedOnly wraps the caller's filter with the public-visibility gate.
func approvedOnly(filter gDto.FilterGroup) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldIsApproved,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		},
	}

	if len(filter.Filters) > 0 {
		filters = append(filters, filter)
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRestaurantRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	owner, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(owner)); err != nil {
		log.Error().Err(err).Msg("failed to create restaurant")

		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurants)
		shared.InvalidateCaches(c, s.cache, cacheCountRestaurants)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRestaurantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	gated := approvedOnly(filter)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRestaurants, params, gated)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurants")

		return res, nil
	}

	total, err := s.count(ctx, gated)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, gated)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurants")

		return res, fmt.Errorf("failed to get restaurants: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurants to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, query string) (res dto.GetRestaurantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}

	if query != constant.Empty {
		filter = gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_name",
					Field:    model.FieldName,
					Operator: gDto.FilterOperatorLike,
					Value:    query,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_location",
					Field:    model.FieldLocation,
					Operator: gDto.FilterOperatorLike,
					Value:    query,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_cuisine",
					Field:    model.FieldCuisine,
					Operator: gDto.FilterOperatorLike,
					Value:    query,
					Table:    model.TableName,
				},
			},
		}
	}

	return s.GetAll(ctx, params, filter)
}

func (s *serviceImpl) GetRecommended(ctx context.Context, req dto.RecommendationRequest) (res []dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRecommended")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldSeatingCapacity,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    req.GuestCount,
				Table:    model.TableName,
			},
		},
	}

	if req.Location != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    req.Location,
			Table:    model.TableName,
		})
	}

	if req.NeedsDecoration {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldOffersDecoration,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, approvedOnly(filter))
	if err != nil {
		log.Error().Err(err).Msg("failed to get recommended restaurants")

		return res, fmt.Errorf("failed to get recommended restaurants: %w", err)
	}

	// Budget matching happens in memory: a malformed or absent budget string
	// disables the filter and every candidate passes.
	queryMin, queryMax, ok := shared.ParseBudgetRange(req.Budget)

	res = make([]dto.RestaurantResponse, 0, len(models))

	for _, mod := range models {
		if ok && mod.HasBudgetRange() && !shared.BudgetRangesOverlap(*mod.BudgetMin, *mod.BudgetMax, queryMin, queryMax) {
			continue
		}

		var restaurant dto.RestaurantResponse
		restaurant.FromModel(mod)

		res = append(res, restaurant)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RestaurantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRestaurant, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for restaurant")

		return res, nil
	}

	restaurant, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return res, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return res, failure.NotFound("restaurant not found") //nolint:wrapcheck
	}

	res.FromModel(restaurant)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save restaurant to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams) (res dto.GetRestaurantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	owner, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    owner,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get owned restaurants")

		return res, fmt.Errorf("failed to get owned restaurants: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetPending(ctx context.Context, params gDto.QueryParams) (res dto.GetPendingRestaurantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPending")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsApproved,
				Operator: gDto.FilterOperatorEq,
				Value:    false,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.CountPending(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count pending restaurants")

		return res, fmt.Errorf("failed to count pending restaurants: %w", err)
	}

	models, err := s.repo.GetPending(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending restaurants")

		return res, fmt.Errorf("failed to get pending restaurants: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRestaurantRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return fmt.Errorf("failed to get restaurant: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("restaurant not found") //nolint:wrapcheck
	}

	if role != constant.RoleAdmin && current.OwnerID != user {
		return failure.ResourceRestrictedError
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update restaurant")

		return fmt.Errorf("failed to update restaurant: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateApprovalStatus(ctx context.Context, id string, req dto.UpdateApprovalRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateApprovalStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check restaurant existence")

		return fmt.Errorf("failed to check restaurant existence: %w", err)
	}

	if !exist {
		return failure.NotFound("restaurant not found") //nolint:wrapcheck
	}

	approved := *req.Approved

	updatedFields := map[string]any{
		model.FieldIsApproved:    approved,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update approval status")

		return fmt.Errorf("failed to update approval status: %w", err)
	}

	action := auditActionReject
	if approved {
		action = auditActionApprove
	}

	s.adminSvc.LogAction(ctx, action, model.EntityName, &id, nil)

	s.publisher.Publish(ctx, events.TopicRestaurantApprovalChanged, id, events.RestaurantApprovalChanged{
		RestaurantID: id,
		Approved:     approved,
		ChangedBy:    user,
		OccurredAt:   timezone.Now(),
	})

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count restaurants")

		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}

	return total, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRestaurant, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete restaurant cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRestaurants)
		shared.InvalidateCaches(c, s.cache, cacheCountRestaurants)
	}()
}
