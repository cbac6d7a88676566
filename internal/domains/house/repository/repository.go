package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"guestroom/infras/otel"
	"guestroom/infras/postgres"
	"guestroom/internal/domains/house/model"
	gDto "guestroom/shared/dto"
	gRepo "guestroom/shared/repository"
)

type House interface {
	Insert(ctx context.Context, model model.House) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.House, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.House, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.House]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) House {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.House](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
