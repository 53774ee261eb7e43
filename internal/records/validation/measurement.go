package validation

import "recordbook-server/internal/records/domain"

type measurementForm struct {
	Label string `json:"label" validate:"trimmed_required"`
	Value string `json:"value" validate:"trimmed_required,numeric_text"`
}

var measurementMessages = map[string]string{
	"label.trimmed_required": "Label is required",
	"value.trimmed_required": "Value is required",
	"value.numeric_text":     "Value must be a number",
}

type MeasurementValidator struct{}

var _ domain.Validator = MeasurementValidator{}

func (MeasurementValidator) Validate(values domain.FormValues) domain.ValidationErrors {
	return validate(measurementForm{
		Label: values[domain.LabelField],
		Value: values[domain.ValueField],
	}, measurementMessages)
}

// ForSheet returns the validator of a sheet kind. The bypass flag only
// applies to employees.
func ForSheet(kind domain.SheetKind, employeeBypass bool) (domain.Validator, error) {
	switch kind {
	case domain.SheetEmployees:
		return NewEmployeeValidator(employeeBypass), nil
	case domain.SheetMeasurements:
		return MeasurementValidator{}, nil
	default:
		return nil, domain.ErrUnknownSheet
	}
}
