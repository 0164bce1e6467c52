package service

import (
	"context"
	"fmt"

	"dinevibe/config"
	"dinevibe/infras/otel"
	"dinevibe/internal/domains/reservation/model"
	"dinevibe/internal/domains/reservation/model/dto"
	"dinevibe/internal/domains/reservation/repository"
	restaurantModel "dinevibe/internal/domains/restaurant/model"
	restaurantRepo "dinevibe/internal/domains/restaurant/repository"
	"dinevibe/internal/events"
	"dinevibe/shared"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/failure"
	"dinevibe/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	GetByUser(ctx context.Context, params gDto.QueryParams) (dto.GetUserReservationsResponse, error)
	GetByRestaurant(ctx context.Context, restaurantID string, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) error
}

type serviceImpl struct {
	repo           repository.Reservation
	restaurantRepo restaurantRepo.Restaurant
	publisher      events.Publisher
	cfg            *config.Config
	otel           otel.Otel
}

func New(repo repository.Reservation, restaurantRepository restaurantRepo.Restaurant, publisher events.Publisher, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:           repo,
		restaurantRepo: restaurantRepository,
		publisher:      publisher,
		cfg:            cfg,
		otel:           otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.RestaurantID != nil {
		exist, err := s.restaurantRepo.Exist(ctx, shared.FilterByID(*req.RestaurantID, restaurantModel.FieldID, restaurantModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check restaurant existence")

			return res, fmt.Errorf("failed to check restaurant existence: %w", err)
		}

		if !exist {
			return res, failure.NotFound("restaurant not found") //nolint:wrapcheck
		}
	}

	reservation := req.ToModel(user)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetByUser(ctx context.Context, params gDto.QueryParams) (res dto.GetUserReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.CountWithRestaurant(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count user reservations")

		return res, fmt.Errorf("failed to count user reservations: %w", err)
	}

	models, err := s.repo.GetAllWithRestaurant(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user reservations")

		return res, fmt.Errorf("failed to get user reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetByRestaurant(ctx context.Context, restaurantID string, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRestaurant")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireRestaurantAccess(ctx, restaurantID); err != nil {
		return res, err
	}

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

	return s.GetAll(ctx, params, filter)
}

// UpdateStatus overwrites the reservation status with any valid value. There
// is deliberately no transition guard: completed -> pending is allowed.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateReservationStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	if reservation.RestaurantID != nil {
		if err = s.requireRestaurantAccess(ctx, *reservation.RestaurantID); err != nil {
			return err
		}
	} else if role, _ := ctx.Value(constant.ContextKeyUserRole).(string); role != constant.RoleAdmin {
		return failure.ResourceRestrictedError
	}

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	s.publisher.Publish(ctx, events.TopicReservationStatusChanged, id, events.ReservationStatusChanged{
		ReservationID: id,
		Status:        req.Status,
		ChangedBy:     user,
		OccurredAt:    timezone.Now(),
	})

	return nil
}

// requireRestaurantAccess allows admins and the restaurant's owner through.
func (s *serviceImpl) requireRestaurantAccess(ctx context.Context, restaurantID string) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleAdmin {
		return nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	restaurant, err := s.restaurantRepo.Get(ctx, shared.FilterByID(restaurantID, restaurantModel.FieldID, restaurantModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get restaurant")

		return fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant.ID == constant.Empty {
		return failure.NotFound("restaurant not found") //nolint:wrapcheck
	}

	if restaurant.OwnerID != user {
		return failure.ResourceRestrictedError
	}

	return nil
}
