package deal

import (
	"net/http"

	"dinevibe/infras/otel"
	"dinevibe/internal/domains/deal/model/dto"
	"dinevibe/internal/domains/deal/service"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/validator"
	"dinevibe/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Deal
	otel    otel.Otel
}

func New(service service.Deal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/deals", func(r chi.Router) {
		r.Post("/", handler.CreateDeal)
		r.Get("/", handler.GetDeals)
		r.Get("/claimed", handler.GetClaimedDeals)
		r.Get("/restaurant/{id}", handler.GetRestaurantDeals)
		r.Post("/{id}/claim", handler.ClaimDeal)
	})
}

func (handler *Handler) CreateDeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDeal")
	defer scope.End()

	req := dto.CreateDealRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create deal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Deal created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Deal created successfully")
}

func (handler *Handler) GetDeals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	deals, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get deals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Deals retrieved successfully")

	response.WithJSON(w, http.StatusOK, deals)
}

func (handler *Handler) GetRestaurantDeals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestaurantDeals")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	deals, err := handler.service.GetByRestaurant(ctx, id, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get restaurant deals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Restaurant deals retrieved successfully")

	response.WithJSON(w, http.StatusOK, deals)
}

func (handler *Handler) ClaimDeal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClaimDeal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Claim(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to claim deal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Deal claimed successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Deal claimed successfully")
}

func (handler *Handler) GetClaimedDeals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClaimedDeals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	deals, err := handler.service.GetClaimedByUser(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get claimed deals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Claimed deals retrieved successfully")

	response.WithJSON(w, http.StatusOK, deals)
}
