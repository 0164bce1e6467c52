package model

import (
	"time"

	"dinevibe/shared/model"
)

const (
	TableName  = "profiles"
	EntityName = "profile"

	FieldID            = "id"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldName          = "name"
	FieldContactNumber = "contact_number"
	FieldAvatarURL     = "avatar_url"
	FieldRole          = "role"
	FieldIsAdmin       = "is_admin"
	FieldSignupDate    = "signup_date"
	FieldLastLogin     = "last_login"
	FieldActive        = "active"
)

// Profile is a registered account. Role and IsAdmin are independent flags:
// privileged endpoints check the role, the initial-setup bootstrap checks both.
type Profile struct {
	ID            string     `db:"id"`
	Email         string     `db:"email"`
	Password      string     `db:"password"`
	Name          *string    `db:"name"`
	ContactNumber *string    `db:"contact_number"`
	AvatarURL     *string    `db:"avatar_url"`
	Role          string     `db:"role"`
	IsAdmin       bool       `db:"is_admin"`
	SignupDate    time.Time  `db:"signup_date"`
	LastLogin     *time.Time `db:"last_login"`
	Active        bool       `db:"active"`
	model.Metadata
}
