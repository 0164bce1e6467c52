package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"dinevibe/infras/otel"
	"dinevibe/infras/postgres"
	"dinevibe/internal/domains/restaurant/model"
	gDto "dinevibe/shared/dto"
	gRepo "dinevibe/shared/repository"
)

type Restaurant interface {
	Insert(ctx context.Context, model model.Restaurant) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Restaurant, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Restaurant, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetPending(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PendingRestaurant, error)
	CountPending(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Restaurant]
	pendingRepo gRepo.Repository[model.PendingRestaurant]
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Restaurant {
	return &repositoryImpl{
		Repository:  gRepo.NewRepository[model.Restaurant](model.EntityName, model.TableName, model.FieldID, db, otel),
		pendingRepo: gRepo.NewRepository[model.PendingRestaurant](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

func (repo *repositoryImpl) GetPending(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PendingRestaurant, error) {
	return repo.pendingRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountPending(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.pendingRepo.Count(ctx, filter) //nolint:wrapcheck
}
