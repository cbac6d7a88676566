package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"guestroom/infras/otel"
	"guestroom/infras/postgres"
	"guestroom/internal/domains/window/model"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/logger"
	gRepo "guestroom/shared/repository"
)

type Window interface {
	Insert(ctx context.Context, model model.Window) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Window, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Window, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Covering(ctx context.Context, roomID string, fromDate, toDate time.Time) (model.Window, bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Window]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Window {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Window](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Covering returns the most recently declared available window whose date
// range fully contains [fromDate, toDate]. The boolean reports whether one
// was found.
func (repo *repositoryImpl) Covering(ctx context.Context, roomID string, fromDate, toDate time.Time) (window model.Window, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".window.Covering")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT id, room_id, house_id, owner_id, from_date, to_date, from_time, to_time,
			rent_amount_per_day, minimum_booking_period, maximum_booking_period, available,
			created_at, modified_at, created_by, modified_by
		FROM room_booking_windows
		WHERE room_id = $1
			AND available = TRUE
			AND from_date <= $2
			AND to_date >= $3
		ORDER BY created_at DESC
		LIMIT 1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &window, query, roomID, fromDate, toDate)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Window{}, false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Window{}, false, fmt.Errorf("failed to get covering window (%s): %w", model.EntityName, err)
	}

	return window, true, nil
}
