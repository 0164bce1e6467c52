package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"dinevibe/infras/otel"
	"dinevibe/infras/postgres"
	"dinevibe/internal/domains/reservation/model"
	gDto "dinevibe/shared/dto"
	gRepo "dinevibe/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetAllWithRestaurant(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationWithRestaurant, error)
	CountWithRestaurant(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	joinedRepo gRepo.Repository[model.ReservationWithRestaurant]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		joinedRepo: gRepo.NewRepository[model.ReservationWithRestaurant](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetAllWithRestaurant(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ReservationWithRestaurant, error) {
	return repo.joinedRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountWithRestaurant(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.joinedRepo.Count(ctx, filter) //nolint:wrapcheck
}
