package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dinevibe/infras/otel"
	"dinevibe/infras/postgres"
	"dinevibe/internal/domains/admin/model"
	"dinevibe/shared/constant"
	gDto "dinevibe/shared/dto"
	"dinevibe/shared/logger"
	gRepo "dinevibe/shared/repository"
)

// Settings manages the single admin_settings row. Reads lazily create the row
// so two processes racing on first read cannot both insert.
type Settings interface {
	GetOrCreate(ctx context.Context, defaultCode string) (model.Setting, error)
	UpdateCode(ctx context.Context, code string) error
}

type Logs interface {
	Insert(ctx context.Context, model model.Log) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Log, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

const settingsRowID = 1

type settingsRepositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewSettings(db *postgres.Connection, otel otel.Otel) Settings {
	return &settingsRepositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *settingsRepositoryImpl) GetOrCreate(ctx context.Context, defaultCode string) (setting model.Setting, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin_setting.GetOrCreate")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT id, registration_code, updated_at FROM %s WHERE id = $1", model.SettingsTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &setting, query, settingsRowID)
	if err == nil {
		return setting, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)

		return setting, fmt.Errorf("failed to get admin settings: %w", err)
	}

	// Single-row upsert: concurrent first reads both run this, one insert
	// wins, and the follow-up select returns the winner's row.
	insertQuery := fmt.Sprintf(
		"INSERT INTO %s (id, registration_code, updated_at) VALUES ($1, $2, NOW()) ON CONFLICT (id) DO NOTHING",
		model.SettingsTableName,
	)

	if _, err = repo.db.Write.ExecContext(ctx, insertQuery, settingsRowID, defaultCode); err != nil {
		logger.ErrorWithStack(err)

		return setting, fmt.Errorf("failed to create admin settings: %w", err)
	}

	if err = repo.db.Read.GetContext(ctx, &setting, query, settingsRowID); err != nil {
		logger.ErrorWithStack(err)

		return setting, fmt.Errorf("failed to get admin settings: %w", err)
	}

	return setting, nil
}

func (repo *settingsRepositoryImpl) UpdateCode(ctx context.Context, code string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".admin_setting.UpdateCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("UPDATE %s SET registration_code = $1, updated_at = NOW() WHERE id = $2", model.SettingsTableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = repo.db.Write.ExecContext(ctx, query, code, settingsRowID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update registration code: %w", err)
	}

	return nil
}

type logsRepositoryImpl struct {
	gRepo.Repository[model.Log]
	db   *postgres.Connection
	otel otel.Otel
}

func NewLogs(db *postgres.Connection, otel otel.Otel) Logs {
	return &logsRepositoryImpl{
		Repository: gRepo.NewRepository[model.Log](model.LogEntityName, model.LogTableName, model.LogFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
