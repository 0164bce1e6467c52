package dto

import (
	"dinevibe/internal/domains/admin/model"
	"dinevibe/shared"
	"dinevibe/shared/constant"
	"dinevibe/shared/timezone"
)

type SettingsResponse struct {
	RegistrationCode string `json:"registration_code"`
	UpdatedAt        string `json:"updated_at"`
}

func (s *SettingsResponse) FromModel(mod model.Setting) {
	s.RegistrationCode = mod.RegistrationCode
	s.UpdatedAt = timezone.Format(mod.UpdatedAt, constant.DateFormat)
}

type SetupStatusResponse struct {
	InitialSetupComplete bool `json:"initial_setup_complete"`
}

type LogResponse struct {
	ID         string  `json:"id"`
	AdminID    string  `json:"admin_id"`
	Action     string  `json:"action"`
	EntityType string  `json:"entity_type"`
	EntityID   *string `json:"entity_id"`
	Details    *string `json:"details"`
	CreatedAt  string  `json:"created_at"`
}

func (l *LogResponse) FromModel(mod model.Log) {
	l.ID = mod.ID
	l.AdminID = mod.AdminID
	l.Action = mod.Action
	l.EntityType = mod.EntityType
	l.EntityID = mod.EntityID
	l.Details = mod.Details
	l.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetLogsResponse struct {
	Logs      []LogResponse `json:"logs"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (g *GetLogsResponse) FromModels(models []model.Log, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Logs = make([]LogResponse, len(models))
	for i, mod := range models {
		g.Logs[i].FromModel(mod)
	}
}

type DashboardResponse struct {
	TotalUsers          int `json:"total_users"`
	TotalRestaurants    int `json:"total_restaurants"`
	PendingRestaurants  int `json:"pending_restaurants"`
	TotalReservations   int `json:"total_reservations"`
	PendingReservations int `json:"pending_reservations"`
	TotalDealClaims     int `json:"total_deal_claims"`
}
