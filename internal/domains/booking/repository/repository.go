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
	"guestroom/internal/domains/booking/model"
	"guestroom/shared/constant"
	gDto "guestroom/shared/dto"
	"guestroom/shared/failure"
	"guestroom/shared/logger"
	gRepo "guestroom/shared/repository"
	"guestroom/shared/timezone"
)

// overlapQuery is the single source of truth for the availability predicate:
// two stays conflict when their continuous intervals touch or cross, and
// cancelled bookings never block.
const overlapQuery = `SELECT EXISTS(
	SELECT 1 FROM room_bookings
	WHERE room_id = $1
		AND status != 'cancelled'
		AND (from_date + from_time) <= $3
		AND (to_date + to_time) >= $2
)`

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	HasOverlap(ctx context.Context, roomID string, start, end time.Time) (bool, error)
	CreateAtomic(ctx context.Context, booking model.Booking) error
	Transition(ctx context.Context, bookingID, ownerID string, target model.Status, reason string) (model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// HasOverlap is the read-only availability check. It may race with
// concurrent inserts; CreateAtomic repeats it under the room lock.
func (repo *repositoryImpl) HasOverlap(ctx context.Context, roomID string, start, end time.Time) (exists bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.HasOverlap")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, overlapQuery)

	err = repo.db.Read.GetContext(ctx, &exists, overlapQuery, roomID, start, end)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check booking overlap (%s): %w", model.EntityName, err)
	}

	return exists, nil
}

// CreateAtomic inserts a booking if and only if no conflicting booking
// exists, in a single serializable transaction. A per-room advisory lock
// serializes concurrent attempts on the same room so at most one of two
// racing requests for overlapping stays wins.
func (repo *repositoryImpl) CreateAtomic(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateAtomic")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1)::bigint)", booking.RoomID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to acquire room lock (%s): %w", model.EntityName, err)
	}

	stay := booking.Stay()

	var exists bool
	if err = tx.GetContext(ctx, &exists, overlapQuery, booking.RoomID, stay.Start(), stay.End()); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check booking overlap (%s): %w", model.EntityName, err)
	}

	if exists {
		err = failure.Conflict("room is already booked for the requested period")

		return err
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

// Transition moves a booking through the status machine inside a row-locked
// transaction. The stored status is never touched unless the transition
// table allows the move and the caller owns the booking.
func (repo *repositoryImpl) Transition(ctx context.Context, bookingID, ownerID string, target model.Status, reason string) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return booking, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	lockQuery := `SELECT id, room_id, house_id, owner_id, customer_id, customer_name,
			from_date, to_date, from_time, to_time, location, occupation,
			rent_amount_per_day, status, status_reason,
			created_at, modified_at, created_by, modified_by
		FROM room_bookings
		WHERE id = $1
		FOR UPDATE`
	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	err = tx.GetContext(ctx, &booking, lockQuery, bookingID)
	if errors.Is(err, sql.ErrNoRows) {
		err = failure.NotFound("booking not found")

		return model.Booking{}, err
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model.Booking{}, fmt.Errorf("failed to lock booking (%s): %w", model.EntityName, err)
	}

	if booking.OwnerID != ownerID {
		err = failure.Unauthorized("booking does not belong to the caller")

		return model.Booking{}, err
	}

	if !booking.Status.CanTransitionTo(target) {
		err = failure.InvalidTransition(booking.Status.String(), target.String())

		return model.Booking{}, err
	}

	now := timezone.Now()

	_, err = tx.ExecContext(ctx,
		`UPDATE room_bookings
		SET status = $1, status_reason = $2, modified_at = $3, modified_by = $4
		WHERE id = $5`,
		target.String(), reason, now, ownerID, bookingID,
	)
	if err != nil {
		logger.ErrorWithStack(err)

		return model.Booking{}, fmt.Errorf("failed to update booking status (%s): %w", model.EntityName, err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return model.Booking{}, fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	booking.Status = target
	booking.StatusReason = reason
	booking.ModifiedAt = now
	booking.ModifiedBy = ownerID

	return booking, nil
}
