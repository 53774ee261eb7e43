package chart

import (
	"math"

	"recordbook-server/internal/records/domain"
)

// Projection derives one series from the rows of a sheet.
type Projection interface {
	Kind() Kind
	Project(rows []domain.Row) Series
}

// SalaryByJoinDate plots salary against join date for employee rows. With a
// MinYear above zero only rows joining in or after that year are kept.
type SalaryByJoinDate struct {
	kind    Kind
	minYear int
}

func NewSalaryLine() SalaryByJoinDate {
	return SalaryByJoinDate{kind: KindLine}
}

func NewSalaryBars(minYear int) SalaryByJoinDate {
	return SalaryByJoinDate{kind: KindBar, minYear: minYear}
}

func (p SalaryByJoinDate) Kind() Kind {
	return p.kind
}

func (p SalaryByJoinDate) Project(rows []domain.Row) Series {
	dateIdx := domain.EmployeeSchema.IndexOf(domain.JoinDateField)
	salaryIdx := domain.EmployeeSchema.IndexOf(domain.SalaryField)

	series := Series{
		Kind:         p.kind,
		DatasetLabel: "Salary vs Join Date",
		XTitle:       "Join Date",
		YTitle:       "Salary",
		Labels:       make([]Label, 0, len(rows)),
		Values:       make([]Number, 0, len(rows)),
	}

	for _, row := range rows {
		raw := row.Field(dateIdx)
		joined, ok := domain.ParseCalendarDate(raw)
		if p.minYear > 0 && (!ok || joined.Year() < p.minYear) {
			continue
		}
		series.Labels = append(series.Labels, Label{Text: raw, Time: joined, Temporal: true, Valid: ok})
		series.Values = append(series.Values, Number(domain.ParseLeadingInt(row.Field(salaryIdx))))
	}

	return series
}

// ValueByLabel plots measurement values as bars labelled by their label.
type ValueByLabel struct{}

func (ValueByLabel) Kind() Kind {
	return KindBar
}

func (ValueByLabel) Project(rows []domain.Row) Series {
	labelIdx := domain.MeasurementSchema.IndexOf(domain.LabelField)
	valueIdx := domain.MeasurementSchema.IndexOf(domain.ValueField)

	series := Series{
		Kind:         KindBar,
		DatasetLabel: "Value by Label",
		XTitle:       "Label",
		YTitle:       "Value",
		Labels:       make([]Label, len(rows)),
		Values:       make([]Number, len(rows)),
	}
	for i, row := range rows {
		series.Labels[i] = Label{Text: row.Field(labelIdx)}
		series.Values[i] = parseValue(row.Field(valueIdx))
	}
	return series
}

func parseValue(s string) Number {
	v, ok := domain.ParseNumber(s)
	if !ok {
		return Number(math.NaN())
	}
	return Number(v)
}

// ProjectionsFor lists the projections available for a sheet kind.
func ProjectionsFor(kind domain.SheetKind, minYear int) []Projection {
	switch kind {
	case domain.SheetEmployees:
		return []Projection{NewSalaryLine(), NewSalaryBars(minYear)}
	case domain.SheetMeasurements:
		return []Projection{ValueByLabel{}}
	default:
		return nil
	}
}
