package restaurant

import (
	"net/http"

	"dinevibe/infras/otel"
	"dinevibe/internal/domains/restaurant/model"
	"dinevibe/internal/domains/restaurant/model/dto"
	"dinevibe/internal/domains/restaurant/service"
	"dinevibe/shared"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/validator"
	"dinevibe/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Restaurant
	otel    otel.Otel
}

func New(service service.Restaurant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/restaurants", func(r chi.Router) {
		r.Post("/", handler.CreateRestaurant)
		r.Get("/", handler.GetRestaurants)
		r.Get("/search", handler.SearchRestaurants)
		r.Get("/recommended", handler.GetRecommendedRestaurants)
		r.Get("/pending", handler.GetPendingRestaurants)
		r.Get("/mine", handler.GetMyRestaurants)
		r.Get("/{id}", handler.GetRestaurantByID)
		r.Patch("/{id}", handler.UpdateRestaurant)
		r.Patch("/{id}/approval", handler.UpdateApprovalStatus)
	})
}

func (handler *Handler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRestaurant")
	defer scope.End()

	req := dto.CreateRestaurantRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create restaurant")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Restaurant created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Restaurant submitted for approval")
}

func (handler *Handler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLocation,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldLocation),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCuisine,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCuisine),
				Table:    model.TableName,
			},
		},
	}

	restaurants, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurants retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurants)
}

func (handler *Handler) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query().Get(constant.RequestParamQuery)

	restaurants, err := handler.service.Search(ctx, queryParams, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurants searched successfully")

	response.WithJSON(w, http.StatusOK, restaurants)
}

func (handler *Handler) GetRecommendedRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecommendedRestaurants")
	defer scope.End()

	req := dto.RecommendationRequest{
		Location: r.URL.Query().Get(model.FieldLocation),
		Budget:   r.URL.Query().Get("budget"),
	}

	if guests := r.URL.Query().Get("guest_count"); guests != constant.Empty {
		if g, err := shared.ConvertStringToInt(guests); err == nil {
			req.GuestCount = g
		}
	}

	if decoration := shared.ConvertStringToBool(r.URL.Query().Get("needs_decoration")); decoration != nil {
		req.NeedsDecoration = *decoration
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	restaurants, err := handler.service.GetRecommended(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recommended restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recommendations retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurants)
}

func (handler *Handler) GetPendingRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	restaurants, err := handler.service.GetPending(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pending restaurants retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurants)
}

func (handler *Handler) GetMyRestaurants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyRestaurants")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	restaurants, err := handler.service.GetMine(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own restaurants")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Own restaurants retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurants)
}

func (handler *Handler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	restaurant, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant retrieved successfully")

	response.WithJSON(w, http.StatusOK, restaurant)
}

func (handler *Handler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRestaurant")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRestaurantRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update restaurant")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Restaurant updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Restaurant updated successfully")
}

func (handler *Handler) UpdateApprovalStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateApprovalStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateApprovalRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateApprovalStatus(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update approval status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Restaurant approval updated by " + user)

	response.WithMessage(w, http.StatusOK, "Restaurant approval status updated")
}
