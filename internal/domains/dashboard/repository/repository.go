package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"guestroom/infras/otel"
	"guestroom/infras/postgres"
	"guestroom/internal/domains/dashboard/model"
	"guestroom/shared/constant"
	"guestroom/shared/logger"
)

type Dashboard interface {
	Stats(ctx context.Context, ownerID string) (model.Stats, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Stats aggregates the owner dashboard figures in one round trip. Earnings
// count confirmed and completed bookings at their rent snapshot; an owner
// with no data gets zeros, not an error.
func (repo *repositoryImpl) Stats(ctx context.Context, ownerID string) (stats model.Stats, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT
		(SELECT COUNT(id) FROM houses
			WHERE owner_id = $1) AS total_houses,
		(SELECT COUNT(id) FROM rooms
			WHERE owner_id = $1) AS total_rooms,
		(SELECT COUNT(id) FROM room_bookings
			WHERE owner_id = $1 AND status IN ('pending', 'confirmed')) AS active_bookings,
		(SELECT COALESCE(SUM(rent_amount_per_day * ((to_date - from_date) + 1)), 0) FROM room_bookings
			WHERE owner_id = $1 AND status IN ('confirmed', 'completed')) AS total_earnings`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Read.GetContext(ctx, &stats, query, ownerID)
	if err != nil {
		logger.ErrorWithStack(err)

		return model.Stats{}, fmt.Errorf("failed to get dashboard stats (%s): %w", model.EntityName, err)
	}

	return stats, nil
}
