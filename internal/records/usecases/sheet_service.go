package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/validation"
)

type SheetServiceConfig struct {
	ValidationBypass bool
	ChartMinYear     int
	StoreOptions     []domain.StoreOption
}

func NewSheetService(
	config SheetServiceConfig,
	repository RowRepository,
	broker async.InternalBroker,
) (*SimpleSheetService, error) {
	sheets := make(map[domain.SheetKind]*Sheet)
	validators := make(map[domain.SheetKind]domain.Validator)
	for _, kind := range domain.SheetKinds() {
		validator, err := validation.ForSheet(kind, config.ValidationBypass)
		if err != nil {
			return nil, fmt.Errorf("building %s validator: %w", kind, err)
		}

		sheet, err := NewSheet(kind, SheetOptions{
			Validator:    validator,
			ChartMinYear: config.ChartMinYear,
			StoreOptions: config.StoreOptions,
		})
		if err != nil {
			return nil, fmt.Errorf("building %s sheet: %w", kind, err)
		}

		sheets[kind] = sheet
		validators[kind] = validator
	}

	return &SimpleSheetService{
		sheets:     sheets,
		validators: validators,
		repository: repository,
		broker:     broker,
	}, nil
}

var _ SheetService = (*SimpleSheetService)(nil)

type SimpleSheetService struct {
	sheets     map[domain.SheetKind]*Sheet
	validators map[domain.SheetKind]domain.Validator
	repository RowRepository
	broker     async.InternalBroker
}

func (s *SimpleSheetService) sheet(kind domain.SheetKind) (*Sheet, error) {
	sheet, ok := s.sheets[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSheet, kind)
	}
	return sheet, nil
}

func (s *SimpleSheetService) ListSheets(_ context.Context) []SheetSummary {
	kinds := domain.SheetKinds()
	result := make([]SheetSummary, 0, len(kinds))
	for _, kind := range kinds {
		sheet := s.sheets[kind]
		sheet.read(func() {
			result = append(result, sheet.summary())
		})
	}
	return result
}

func (s *SimpleSheetService) GetSheet(_ context.Context, kind domain.SheetKind) (SheetSummary, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return SheetSummary{}, err
	}

	var summary SheetSummary
	sheet.read(func() {
		summary = sheet.summary()
	})
	return summary, nil
}

func (s *SimpleSheetService) ListRows(_ context.Context, kind domain.SheetKind) ([]domain.Row, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return nil, err
	}

	var rows []domain.Row
	sheet.read(func() {
		rows = sheet.store.Rows()
	})
	return rows, nil
}

// GetRow returns the row with the given ID and its current position.
func (s *SimpleSheetService) GetRow(_ context.Context, kind domain.SheetKind, id domain.ID) (domain.Row, int, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.Row{}, -1, err
	}

	var (
		row   domain.Row
		index int
	)
	sheet.read(func() {
		row, err = sheet.store.Get(id)
		index = sheet.store.IndexOf(id)
	})
	return row, index, err
}

// rowFields checks values against the sheet schema and validator and lays
// them out in canonical order.
func (s *SimpleSheetService) rowFields(sheet *Sheet, values domain.FormValues) ([]string, error) {
	for name := range values {
		if sheet.schema.IndexOf(name) < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownField, name)
		}
	}

	if errs := s.validators[sheet.kind].Validate(values.Clone()); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	return sheet.schema.RowFields(values), nil
}

func (s *SimpleSheetService) AppendRow(ctx context.Context, kind domain.SheetKind, values domain.FormValues) (domain.Row, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.Row{}, err
	}

	fields, err := s.rowFields(sheet, values)
	if err != nil {
		return domain.Row{}, err
	}

	var row domain.Row
	changes, _ := sheet.apply(func() error {
		row = sheet.store.Append(fields)
		return nil
	})
	s.publish(ctx, changes)

	return row, nil
}

func (s *SimpleSheetService) UpdateRow(ctx context.Context, kind domain.SheetKind, id domain.ID, values domain.FormValues) (domain.Row, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.Row{}, err
	}

	fields, err := s.rowFields(sheet, values)
	if err != nil {
		return domain.Row{}, err
	}

	var row domain.Row
	changes, err := sheet.apply(func() error {
		row, err = sheet.store.UpdateByID(id, fields)
		return err
	})
	s.publish(ctx, changes)

	return row, err
}

func (s *SimpleSheetService) UpdateRowAt(ctx context.Context, kind domain.SheetKind, index int, values domain.FormValues) (domain.Row, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.Row{}, err
	}

	fields, err := s.rowFields(sheet, values)
	if err != nil {
		return domain.Row{}, err
	}

	var row domain.Row
	changes, err := sheet.apply(func() error {
		row, err = sheet.store.UpdateAt(index, fields)
		return err
	})
	s.publish(ctx, changes)

	return row, err
}

// DeleteRow removes the row with the given ID and reports the index it held.
func (s *SimpleSheetService) DeleteRow(ctx context.Context, kind domain.SheetKind, id domain.ID) (domain.Row, int, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.Row{}, -1, err
	}

	var row domain.Row
	index := -1
	changes, err := sheet.apply(func() error {
		index = sheet.store.IndexOf(id)
		row, err = sheet.form.CancelOrDeleteByID(id)
		return err
	})
	s.publish(ctx, changes)
	if err != nil {
		return domain.Row{}, -1, err
	}

	return row, index, nil
}

func (s *SimpleSheetService) DeleteRowAt(ctx context.Context, kind domain.SheetKind, index int) (domain.Row, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.Row{}, err
	}

	var row domain.Row
	changes, err := sheet.apply(func() error {
		row, err = sheet.form.CancelOrDelete(index)
		return err
	})
	s.publish(ctx, changes)

	return row, err
}

func (s *SimpleSheetService) GetForm(_ context.Context, kind domain.SheetKind) (domain.FormState, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.FormState{}, err
	}

	var state domain.FormState
	sheet.read(func() {
		state = sheet.form.State()
	})
	return state, nil
}

func (s *SimpleSheetService) SetFormField(_ context.Context, kind domain.SheetKind, field domain.FieldName, value string) (domain.FormState, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.FormState{}, err
	}

	var state domain.FormState
	sheet.read(func() {
		err = sheet.form.SetField(field, value)
		state = sheet.form.State()
	})
	return state, err
}

func (s *SimpleSheetService) BeginEdit(_ context.Context, kind domain.SheetKind, index int) (domain.FormState, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.FormState{}, err
	}

	var state domain.FormState
	sheet.read(func() {
		err = sheet.form.BeginEdit(index)
		state = sheet.form.State()
	})
	return state, err
}

func (s *SimpleSheetService) BeginEditByID(_ context.Context, kind domain.SheetKind, id domain.ID) (domain.FormState, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.FormState{}, err
	}

	var state domain.FormState
	sheet.read(func() {
		err = sheet.form.BeginEditByID(id)
		state = sheet.form.State()
	})
	return state, err
}

func (s *SimpleSheetService) SubmitForm(ctx context.Context, kind domain.SheetKind) (domain.Row, domain.FormState, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.Row{}, domain.FormState{}, err
	}

	var (
		row   domain.Row
		state domain.FormState
	)
	changes, err := sheet.apply(func() error {
		var submitErr error
		row, submitErr = sheet.form.Submit()
		state = sheet.form.State()
		return submitErr
	})
	s.publish(ctx, changes)

	if err != nil {
		if errors.Is(err, domain.ErrValidationFailed) {
			slog.Debug("form rejected",
				slog.String("sheet", kind.String()),
				slog.Int("errors", len(state.Errors)),
			)
		}
		return domain.Row{}, state, err
	}

	return row, state, nil
}

func (s *SimpleSheetService) ResetForm(_ context.Context, kind domain.SheetKind) (domain.FormState, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return domain.FormState{}, err
	}

	var state domain.FormState
	sheet.read(func() {
		sheet.form.Reset()
		state = sheet.form.State()
	})
	return state, nil
}

// ImportRows replaces the whole sheet with rows. Rows are taken as they are,
// whatever their arity.
func (s *SimpleSheetService) ImportRows(ctx context.Context, kind domain.SheetKind, rows [][]string) (int, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return 0, err
	}

	var imported int
	changes, _ := sheet.apply(func() error {
		sheet.store.ReplaceAll(rows)
		imported = sheet.store.Len()
		return nil
	})
	s.publish(ctx, changes)

	slog.Info("rows imported",
		slog.String("sheet", kind.String()),
		slog.Int("rows", imported),
	)

	return imported, nil
}

func (s *SimpleSheetService) GetChart(_ context.Context, kind domain.SheetKind, chartKind chart.Kind) (ChartView, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return ChartView{}, err
	}

	var view ChartView
	sheet.read(func() {
		var instance *chart.Instance
		instance, err = sheet.projector.Current(chartKind)
		if err == nil {
			view = ChartView{Revision: instance.Revision, Series: instance.Series}
		}
	})
	return view, err
}

func (s *SimpleSheetService) ChartKinds(_ context.Context, kind domain.SheetKind) ([]chart.Kind, error) {
	sheet, err := s.sheet(kind)
	if err != nil {
		return nil, err
	}
	return sheet.projector.Kinds(), nil
}

// Restore loads the last snapshot of every sheet. Sheets without a snapshot
// are left empty.
func (s *SimpleSheetService) Restore(ctx context.Context) error {
	for _, kind := range domain.SheetKinds() {
		sheet := s.sheets[kind]

		rows, err := s.repository.LoadSnapshot(ctx, kind)
		if err != nil {
			slog.Error("loading snapshot", slog.String("sheet", kind.String()), slog.Any("error", err))
			return fmt.Errorf("loading %s snapshot: %w", kind, err)
		}

		if len(rows) == 0 {
			continue
		}

		changes, _ := sheet.apply(func() error {
			sheet.store.Restore(rows)
			sheet.saved = sheet.revision
			return nil
		})
		s.publish(ctx, changes)

		slog.Info("sheet restored", slog.String("sheet", kind.String()), slog.Int("rows", len(rows)))
	}

	return nil
}

// Snapshot persists every sheet changed since its last snapshot.
func (s *SimpleSheetService) Snapshot(ctx context.Context) error {
	var errs []error
	for _, kind := range domain.SheetKinds() {
		if err := s.snapshotSheet(ctx, s.sheets[kind]); err != nil {
			slog.Error("saving snapshot", slog.String("sheet", kind.String()), slog.Any("error", err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *SimpleSheetService) snapshotSheet(ctx context.Context, sheet *Sheet) error {
	var (
		rows     []domain.Row
		revision uint64
		dirty    bool
	)
	sheet.read(func() {
		dirty = sheet.revision != sheet.saved
		revision = sheet.revision
		if dirty {
			rows = sheet.store.Rows()
		}
	})

	if !dirty {
		return nil
	}

	if err := s.repository.SaveSnapshot(ctx, sheet.kind, rows); err != nil {
		return fmt.Errorf("saving %s snapshot: %w", sheet.kind, err)
	}

	sheet.read(func() {
		if revision > sheet.saved {
			sheet.saved = revision
		}
	})

	slog.Debug("sheet snapshot saved",
		slog.String("sheet", sheet.kind.String()),
		slog.Uint64("revision", revision),
		slog.Int("rows", len(rows)),
	)

	return nil
}

func (s *SimpleSheetService) publish(ctx context.Context, changes []SheetChange) {
	for _, change := range changes {
		err := s.broker.Publish(ctx, SheetChangesTopic, async.BrokerMessage{
			Event: string(change.Kind),
			Value: change,
		})
		if err != nil && !errors.Is(err, async.ErrTopicNotFound) {
			slog.Error("publishing sheet change",
				slog.String("sheet", change.Sheet.String()),
				slog.Any("error", err),
			)
		}
	}
}
