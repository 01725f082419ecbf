package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stay/infras/otel"
	"stay/infras/postgres"
	"stay/internal/domains/review/model"
	"stay/shared/constant"
	gDto "stay/shared/dto"
	"stay/shared/logger"
	gRepo "stay/shared/repository"
	"stay/shared/timezone"
)

const (
	queryRecalcHotelRating = `
		UPDATE hotels
		SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE hotel_id = :hotel_id), 0),
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :hotel_id`
)

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertWithRating(ctx context.Context, model model.Review) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertWithRating stores the review and recomputes the hotel's aggregate
// rating in the same transaction, so the stored rating always reflects the
// full review set.
func (repo *repositoryImpl) InsertWithRating(ctx context.Context, review model.Review) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.InsertWithRating")
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

	if err = repo.InsertTx(ctx, tx, review); err != nil {
		return err
	}

	_, err = tx.NamedExecContext(ctx, queryRecalcHotelRating, map[string]any{
		"hotel_id":    review.HotelID,
		"modified_at": timezone.Now(),
		"modified_by": review.UserID,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to recalculate hotel rating: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}
