package domain

import "strings"

type SheetKind string

const (
	SheetEmployees    SheetKind = "employees"
	SheetMeasurements SheetKind = "measurements"
)

func (k SheetKind) String() string {
	return string(k)
}

type FieldName string

const (
	NameField     FieldName = "name"
	AgeField      FieldName = "age"
	EmailField    FieldName = "email"
	SalaryField   FieldName = "salary"
	JoinDateField FieldName = "joinDate"
	LabelField    FieldName = "label"
	ValueField    FieldName = "value"
)

type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeEmail  FieldType = "email"
	FieldTypeDate   FieldType = "date"
)

type FieldDefinition struct {
	Name        FieldName
	DisplayName string
	Type        FieldType
}

// Schema fixes the order of the fields of a row. Submit, BeginEdit, table
// headers and chart projection all index rows through the same Schema.
type Schema struct {
	Kind   SheetKind
	Fields []FieldDefinition
}

var EmployeeSchema = Schema{
	Kind: SheetEmployees,
	Fields: []FieldDefinition{
		{Name: NameField, DisplayName: "Name", Type: FieldTypeText},
		{Name: AgeField, DisplayName: "Age", Type: FieldTypeNumber},
		{Name: EmailField, DisplayName: "Email", Type: FieldTypeEmail},
		{Name: SalaryField, DisplayName: "Salary", Type: FieldTypeNumber},
		{Name: JoinDateField, DisplayName: "Join Date", Type: FieldTypeDate},
	},
}

var MeasurementSchema = Schema{
	Kind: SheetMeasurements,
	Fields: []FieldDefinition{
		{Name: LabelField, DisplayName: "Label", Type: FieldTypeText},
		{Name: ValueField, DisplayName: "Value", Type: FieldTypeNumber},
	},
}

var schemas = map[SheetKind]Schema{
	SheetEmployees:    EmployeeSchema,
	SheetMeasurements: MeasurementSchema,
}

func SchemaFor(kind SheetKind) (Schema, bool) {
	s, ok := schemas[kind]
	return s, ok
}

func ParseSheetKind(value string) (SheetKind, error) {
	kind := SheetKind(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := schemas[kind]; !ok {
		return "", ErrUnknownSheet
	}
	return kind, nil
}

func SheetKinds() []SheetKind {
	return []SheetKind{SheetEmployees, SheetMeasurements}
}

func (s Schema) Headers() []string {
	headers := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		headers[i] = f.DisplayName
	}
	return headers
}

func (s Schema) IndexOf(name FieldName) int {
	for i, f := range s.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}

func (s Schema) Width() int {
	return len(s.Fields)
}

// Values maps a row's fields onto the schema. Missing trailing fields are
// empty and extra fields are ignored.
func (s Schema) Values(fields []string) FormValues {
	values := make(FormValues, len(s.Fields))
	for i, f := range s.Fields {
		if i < len(fields) {
			values[f.Name] = fields[i]
		} else {
			values[f.Name] = ""
		}
	}
	return values
}

// RowFields builds a row tuple in schema order.
func (s Schema) RowFields(values FormValues) []string {
	fields := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		fields[i] = values[f.Name]
	}
	return fields
}

func (s Schema) EmptyValues() FormValues {
	return s.Values(nil)
}
