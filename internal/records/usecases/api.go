package usecases

import (
	"context"

	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/records/usecases/api.go -package=usecases

type SheetService interface {
	ListSheets(context.Context) []SheetSummary
	GetSheet(context.Context, domain.SheetKind) (SheetSummary, error)

	ListRows(context.Context, domain.SheetKind) ([]domain.Row, error)
	GetRow(context.Context, domain.SheetKind, domain.ID) (domain.Row, int, error)
	AppendRow(context.Context, domain.SheetKind, domain.FormValues) (domain.Row, error)
	UpdateRow(context.Context, domain.SheetKind, domain.ID, domain.FormValues) (domain.Row, error)
	UpdateRowAt(context.Context, domain.SheetKind, int, domain.FormValues) (domain.Row, error)
	DeleteRow(context.Context, domain.SheetKind, domain.ID) (domain.Row, int, error)
	DeleteRowAt(context.Context, domain.SheetKind, int) (domain.Row, error)

	GetForm(context.Context, domain.SheetKind) (domain.FormState, error)
	SetFormField(context.Context, domain.SheetKind, domain.FieldName, string) (domain.FormState, error)
	BeginEdit(context.Context, domain.SheetKind, int) (domain.FormState, error)
	BeginEditByID(context.Context, domain.SheetKind, domain.ID) (domain.FormState, error)
	SubmitForm(context.Context, domain.SheetKind) (domain.Row, domain.FormState, error)
	ResetForm(context.Context, domain.SheetKind) (domain.FormState, error)

	ImportRows(context.Context, domain.SheetKind, [][]string) (int, error)
	GetChart(context.Context, domain.SheetKind, chart.Kind) (ChartView, error)
	ChartKinds(context.Context, domain.SheetKind) ([]chart.Kind, error)

	Restore(context.Context) error
	Snapshot(context.Context) error
}

type ChartView struct {
	Revision uint64
	Series   chart.Series
}
