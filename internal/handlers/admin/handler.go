package admin

import (
	"net/http"

	"dinevibe/infras/otel"
	"dinevibe/internal/domains/admin/model/dto"
	"dinevibe/internal/domains/admin/service"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/settings", handler.GetSettings)
		r.Post("/settings/rotate-code", handler.RotateRegistrationCode)
		r.Get("/setup-status", handler.GetSetupStatus)
		r.Get("/dashboard", handler.GetDashboard)
		r.Get("/logs", handler.GetLogs)
	})
}

func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	settings, err := handler.service.GetSettings(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

func (handler *Handler) RotateRegistrationCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RotateRegistrationCode")
	defer scope.End()

	settings, err := handler.service.RotateRegistrationCode(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rotate registration code")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Registration code rotated by " + user)

	response.WithJSON(w, http.StatusOK, settings)
}

// GetSetupStatus is public: clients need to know whether the registration
// code field should be shown on the admin signup form.
func (handler *Handler) GetSetupStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSetupStatus")
	defer scope.End()

	complete, err := handler.service.IsInitialSetupComplete(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get setup status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Setup status retrieved successfully")

	response.WithJSON(w, http.StatusOK, dto.SetupStatusResponse{InitialSetupComplete: complete})
}

func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard retrieved successfully")

	response.WithJSON(w, http.StatusOK, dashboard)
}

func (handler *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLogs")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	logs, err := handler.service.GetLogs(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get audit logs")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Audit logs retrieved successfully")

	response.WithJSON(w, http.StatusOK, logs)
}
