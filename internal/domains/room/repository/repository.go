package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"guestroom/infras/otel"
	"guestroom/infras/postgres"
	"guestroom/internal/domains/room/model"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/logger"
	gRepo "guestroom/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	AvailableInHouse(ctx context.Context, houseID string, checkIn, checkOut time.Time) ([]model.Room, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AvailableInHouse returns the available rooms of a house that have no
// pending or confirmed booking overlapping the requested date range. Both
// endpoints are inclusive calendar dates.
func (repo *repositoryImpl) AvailableInHouse(ctx context.Context, houseID string, checkIn, checkOut time.Time) (rooms []model.Room, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.AvailableInHouse")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT id, house_id, owner_id, name, floor, rent_amount_per_day, available,
			created_at, modified_at, created_by, modified_by
		FROM rooms
		WHERE house_id = $1
			AND available = TRUE
			AND id NOT IN (
				SELECT room_id FROM room_bookings
				WHERE status IN ('pending', 'confirmed')
					AND from_date <= $3
					AND to_date >= $2
			)
		ORDER BY name ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.SelectContext(ctx, &rooms, query, houseID, checkIn, checkOut)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get available rooms (%s): %w", model.EntityName, err)
	}

	return rooms, nil
}
