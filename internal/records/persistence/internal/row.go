package internal

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"recordbook-server/internal/records/domain"
)

type SheetRowSet []SheetRow

func (SheetRowSet) TableName() string {
	return "sheet_rows"
}

func (s SheetRowSet) ToDomain() []domain.Row {
	result := make([]domain.Row, len(s))
	for i, v := range s {
		result[i] = v.ToDomain()
	}

	return result
}

type SheetRow struct {
	Sheet     string    `json:"sheet" gorm:"primaryKey"`
	RowID     string    `json:"row_id" gorm:"primaryKey;column:row_id"`
	Position  int       `json:"position" gorm:"index"`
	Fields    RowFields `json:"fields" gorm:"type:json"`
	CreatedAt time.Time `json:"created_at"`
}

func (SheetRow) TableName() string {
	return "sheet_rows"
}

type RowFields []string

func (v RowFields) Value() (driver.Value, error) {
	if v == nil {
		v = RowFields{}
	}
	data, err := json.Marshal([]string(v))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (v *RowFields) Scan(value any) error {
	var data []byte
	switch raw := value.(type) {
	case string:
		data = []byte(raw)
	case []byte:
		data = raw
	case nil:
		*v = RowFields{}
		return nil
	default:
		return fmt.Errorf("unsupported row fields type %T", value)
	}
	return json.Unmarshal(data, (*[]string)(v))
}

func (r SheetRow) ToDomain() domain.Row {
	fields := make([]string, len(r.Fields))
	copy(fields, r.Fields)
	return domain.Row{
		ID:     domain.ID(r.RowID),
		Fields: fields,
	}
}

func FromRows(kind domain.SheetKind, rows []domain.Row, now time.Time) SheetRowSet {
	result := make(SheetRowSet, len(rows))
	for i, row := range rows {
		result[i] = SheetRow{
			Sheet:     kind.String(),
			RowID:     row.ID.String(),
			Position:  i,
			Fields:    RowFields(row.Fields),
			CreatedAt: now,
		}
	}

	return result
}
