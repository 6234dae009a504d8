package repository

import (
	"context"
	"errors"
	"time"

	"syahi/internal/models"
	"syahi/internal/observability"

	"gorm.io/gorm"
)

const backendSQL = "sql"

// NewGormStore builds a Store backed by a relational database.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Backend:  backendSQL,
		Users:    NewUserRepository(db),
		Couplets: NewCoupletRepository(db),
		Blogs:    NewBlogRepository(db),
		Problems: NewProblemRepository(db),
		Bouquets: NewBouquetRepository(db),
		Flowers:  NewFlowerRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// translate maps driver errors onto the errors services understand.
func translate(err error, resource, id string) error {
	var appErr *models.AppError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(resource, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return models.NewValidationError("Referenced document does not exist")
	default:
		return models.NewInternalError(err)
	}
}

// track records the latency of one store operation.
func track(backend, operation string) func() {
	start := time.Now()
	return func() {
		observability.StoreQueryLatency.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
	}
}
