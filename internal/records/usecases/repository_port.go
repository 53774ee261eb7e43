package usecases

import (
	"context"

	"recordbook-server/internal/records/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/records/usecases/repository_port_mock.go -package=usecases -mock_names=RowRepository=MockRowRepository

type RowRepository interface {
	SaveSnapshot(ctx context.Context, kind domain.SheetKind, rows []domain.Row) error
	LoadSnapshot(ctx context.Context, kind domain.SheetKind) ([]domain.Row, error)
}
