package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"dinevibe/infras/otel"
	"dinevibe/infras/postgres"
	"dinevibe/internal/domains/deal/model"
	gDto "dinevibe/shared/dto"
	gRepo "dinevibe/shared/repository"
)

type Deal interface {
	Insert(ctx context.Context, model model.Deal) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Deal, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Deal, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetAllWithRestaurant(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.DealWithRestaurant, error)
	CountWithRestaurant(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type Claim interface {
	Insert(ctx context.Context, model model.Claim) error
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetClaimed(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ClaimedDeal, error)
	CountClaimed(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type dealRepositoryImpl struct {
	gRepo.Repository[model.Deal]
	joinedRepo gRepo.Repository[model.DealWithRestaurant]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Deal {
	return &dealRepositoryImpl{
		Repository: gRepo.NewRepository[model.Deal](model.EntityName, model.TableName, model.FieldID, db, otel),
		joinedRepo: gRepo.NewRepository[model.DealWithRestaurant](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *dealRepositoryImpl) GetAllWithRestaurant(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.DealWithRestaurant, error) {
	return repo.joinedRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *dealRepositoryImpl) CountWithRestaurant(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.joinedRepo.Count(ctx, filter) //nolint:wrapcheck
}

type claimRepositoryImpl struct {
	gRepo.Repository[model.Claim]
	claimedRepo gRepo.Repository[model.ClaimedDeal]
	db          *postgres.Connection
	otel        otel.Otel
}

func NewClaim(db *postgres.Connection, otel otel.Otel) Claim {
	return &claimRepositoryImpl{
		Repository:  gRepo.NewRepository[model.Claim](model.ClaimEntityName, model.ClaimTableName, model.ClaimFieldID, db, otel),
		claimedRepo: gRepo.NewRepository[model.ClaimedDeal](model.ClaimEntityName, model.ClaimTableName, model.ClaimFieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

func (repo *claimRepositoryImpl) GetClaimed(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ClaimedDeal, error) {
	return repo.claimedRepo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *claimRepositoryImpl) CountClaimed(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.claimedRepo.Count(ctx, filter) //nolint:wrapcheck
}
