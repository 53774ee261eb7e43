package domain

import "fmt"

type FormValues map[FieldName]string

func (v FormValues) Clone() FormValues {
	out := make(FormValues, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// ValidationErrors maps a field to its message. An empty result means the
// values are valid.
type ValidationErrors map[FieldName]string

type Validator interface {
	Validate(values FormValues) ValidationErrors
}

const (
	SubmitLabelAdd    = "Add"
	SubmitLabelUpdate = "Update"
)

type FormState struct {
	Values       FormValues
	Errors       ValidationErrors
	EditingIndex int
	EditingID    ID
	SubmitLabel  string
}

// FormController binds the values of one form to a Store. The row under edit
// is tracked by ID, so removals of other rows never retarget the edit.
type FormController struct {
	schema    Schema
	store     *Store
	validator Validator
	values    FormValues
	errors    ValidationErrors
	editingID ID
	original  []string
}

func NewFormController(schema Schema, store *Store, validator Validator) *FormController {
	f := &FormController{
		schema:    schema,
		store:     store,
		validator: validator,
	}
	f.Reset()
	store.Observe(f.reconcile)
	return f
}

func (f *FormController) SetField(name FieldName, value string) error {
	if f.schema.IndexOf(name) < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	f.values[name] = value
	return nil
}

func (f *FormController) BeginEdit(index int) error {
	row, err := f.store.At(index)
	if err != nil {
		return err
	}
	f.load(row)
	return nil
}

func (f *FormController) BeginEditByID(id ID) error {
	row, err := f.store.Get(id)
	if err != nil {
		return err
	}
	f.load(row)
	return nil
}

// Submit validates the current values and either appends a new row or
// overwrites the row under edit. On failure nothing changes except the
// reported messages.
func (f *FormController) Submit() (Row, error) {
	errs := f.validator.Validate(f.values.Clone())
	if len(errs) > 0 {
		f.errors = errs
		return Row{}, &ValidationError{Errors: errs}
	}

	fields := f.schema.RowFields(f.values)
	var row Row
	if f.editingID == "" {
		row = f.store.Append(fields)
	} else {
		updated, err := f.store.UpdateByID(f.editingID, mergeFields(f.original, fields, f.schema.Width()))
		if err != nil {
			return Row{}, err
		}
		row = updated
	}

	f.Reset()
	return row, nil
}

// CancelOrDelete removes the row at index. When it is the row under edit the
// form is reset as well.
func (f *FormController) CancelOrDelete(index int) (Row, error) {
	return f.store.RemoveAt(index)
}

func (f *FormController) CancelOrDeleteByID(id ID) (Row, error) {
	return f.store.RemoveByID(id)
}

func (f *FormController) Reset() {
	f.values = f.schema.EmptyValues()
	f.errors = ValidationErrors{}
	f.editingID = ""
	f.original = nil
}

// EditingIndex is -1 in new-row mode, otherwise the current position of the
// row under edit.
func (f *FormController) EditingIndex() int {
	if f.editingID == "" {
		return -1
	}
	return f.store.IndexOf(f.editingID)
}

func (f *FormController) SubmitLabel() string {
	if f.editingID == "" {
		return SubmitLabelAdd
	}
	return SubmitLabelUpdate
}

func (f *FormController) State() FormState {
	errs := make(ValidationErrors, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return FormState{
		Values:       f.values.Clone(),
		Errors:       errs,
		EditingIndex: f.EditingIndex(),
		EditingID:    f.editingID,
		SubmitLabel:  f.SubmitLabel(),
	}
}

func (f *FormController) load(row Row) {
	f.values = f.schema.Values(row.Fields)
	f.errors = ValidationErrors{}
	f.editingID = row.ID
	f.original = row.Fields
}

func (f *FormController) reconcile(event ChangeEvent) {
	if f.editingID == "" {
		return
	}
	switch event.Kind {
	case ChangeRemoved:
		if event.Row.ID == f.editingID {
			f.Reset()
		}
	case ChangeReplaced, ChangeRestored:
		f.Reset()
	}
}

// mergeFields keeps a row byte-for-byte when an edit is submitted without
// changes: fields beyond the schema are carried over and blank fields the
// original row never had are dropped again.
func mergeFields(original, fields []string, width int) []string {
	switch {
	case len(original) > width:
		return append(fields, original[width:]...)
	case len(original) < width:
		for i := len(original); i < width; i++ {
			if fields[i] != "" {
				return fields
			}
		}
		return fields[:len(original)]
	default:
		return fields
	}
}
