package persistence

import (
	"context"
	"fmt"
	"time"

	"recordbook-server/internal/infra/sql"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/persistence/internal"
	"recordbook-server/internal/records/usecases"
)

func NewRowRepository(orm sql.ORM) (*SimpleRowRepository, error) {
	err := orm.AutoMigrate(&internal.SheetRow{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating sheet rows: %w", err)
	}

	return &SimpleRowRepository{
		orm: orm,
		now: time.Now,
	}, nil
}

var _ usecases.RowRepository = (*SimpleRowRepository)(nil)

type SimpleRowRepository struct {
	orm sql.ORM
	now func() time.Time
}

// SaveSnapshot replaces the stored rows of a sheet in a single transaction.
func (r *SimpleRowRepository) SaveSnapshot(ctx context.Context, kind domain.SheetKind, rows []domain.Row) error {
	entities := internal.FromRows(kind, rows, r.now())

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.Where("sheet = ?", kind.String()).Delete(&internal.SheetRow{}).Error()
		if err != nil {
			return fmt.Errorf("deleting previous snapshot: %w", err)
		}

		if len(entities) == 0 {
			return nil
		}

		err = tx.Create(&entities).Error()
		if err != nil {
			return fmt.Errorf("inserting snapshot rows: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("saving %s snapshot: %w", kind, err)
	}

	return nil
}

func (r *SimpleRowRepository) LoadSnapshot(ctx context.Context, kind domain.SheetKind) ([]domain.Row, error) {
	var entities internal.SheetRowSet
	err := r.orm.
		WithContext(ctx).
		Where("sheet = ?", kind.String()).
		Order("position asc").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return entities.ToDomain(), nil
}
