package domain

type ID string

func (vo ID) String() string {
	return string(vo)
}

type Row struct {
	ID     ID
	Fields []string
}

// Field returns the field at index i, or an empty string when the row is
// shorter than i+1.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r.Fields) {
		return ""
	}
	return r.Fields[i]
}

func (r Row) Clone() Row {
	fields := make([]string, len(r.Fields))
	copy(fields, r.Fields)
	return Row{ID: r.ID, Fields: fields}
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}
