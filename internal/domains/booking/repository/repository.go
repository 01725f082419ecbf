package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/booking/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/logger"
	gRepo "stay/shared/repository"
	"stay/shared/timezone"
)

// ErrRoomUnavailable reports that the room's availability flag was flipped
// by a concurrent booking between read and write.
var ErrRoomUnavailable = errors.New("room is not available")

// ErrBookingNotActive reports that the booking's status was no longer
// active when the cancel tried to flip it, usually because a concurrent
// cancel won.
var ErrBookingNotActive = errors.New("booking is not active")

const (
	queryHoldRoom = `
		UPDATE rooms
		SET is_available = FALSE,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :room_id AND is_available = TRUE`

	queryReleaseRoom = `
		UPDATE rooms
		SET is_available = TRUE,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :room_id`

	queryCancelBooking = `
		UPDATE bookings
		SET status = :status,
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :booking_id AND status = :from_status`
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CreateActive(ctx context.Context, model model.Booking) error
	CancelActive(ctx context.Context, model model.Booking, user string) error
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

// CreateActive claims the room and inserts the booking in one transaction.
// The availability flip is a compare-and-swap: zero affected rows means a
// concurrent booking won the room, and the transaction rolls back with
// ErrRoomUnavailable.
func (repo *repositoryImpl) CreateActive(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	result, err := tx.NamedExecContext(ctx, queryHoldRoom, map[string]any{
		"room_id":     booking.RoomID,
		"modified_at": timezone.Now(),
		"modified_by": booking.UserID,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to hold room: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return ErrRoomUnavailable
	}

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

// CancelActive marks the booking cancelled and releases its room in one
// transaction. The status flip is a compare-and-swap on status = active, so
// only one of two concurrent cancels releases the room; the loser gets
// ErrBookingNotActive and the room is never released twice. A missing room
// row is not an error since the room may have been removed after the stay.
func (repo *repositoryImpl) CancelActive(ctx context.Context, booking model.Booking, user string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CancelActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	result, err := tx.NamedExecContext(ctx, queryCancelBooking, map[string]any{
		"booking_id":  booking.ID,
		"status":      model.StatusCancelled.String(),
		"from_status": model.StatusActive.String(),
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return ErrBookingNotActive
	}

	_, err = tx.NamedExecContext(ctx, queryReleaseRoom, map[string]any{
		"room_id":     booking.RoomID,
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to release room: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
