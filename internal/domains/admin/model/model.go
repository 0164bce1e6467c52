package model

import (
	"time"
)

const (
	SettingsTableName  = "admin_settings"
	SettingsEntityName = "admin_setting"

	SettingsFieldID               = "id"
	SettingsFieldRegistrationCode = "registration_code"
	SettingsFieldUpdatedAt        = "updated_at"

	LogTableName  = "admin_logs"
	LogEntityName = "admin_log"

	LogFieldID         = "id"
	LogFieldAdminID    = "admin_id"
	LogFieldAction     = "action"
	LogFieldEntityType = "entity_type"
	LogFieldCreatedAt  = "created_at"
)

// Setting is the single-row admin configuration. The registration code gates
// admin self-registration once the first admin exists.
type Setting struct {
	ID               int       `db:"id"`
	RegistrationCode string    `db:"registration_code"`
	UpdatedAt        time.Time `db:"updated_at"`
}

// Log is one append-only audit entry. Writes are best-effort and never fail
// the action being audited.
type Log struct {
	ID         string    `db:"id"`
	AdminID    string    `db:"admin_id"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   *string   `db:"entity_id"`
	Details    *string   `db:"details"`
	CreatedAt  time.Time `db:"created_at"`
}
