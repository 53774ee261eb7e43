package internal

import (
	"recordbook-server/internal/infra/utils"
	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/usecases"
)

type FieldResponse struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}

type SheetResponse struct {
	Kind       string          `json:"kind"`
	Fields     []FieldResponse `json:"fields"`
	Headers    []string        `json:"headers"`
	Rows       int             `json:"rows"`
	Revision   uint64          `json:"revision"`
	ChartKinds []string        `json:"chart_kinds"`
	UpdatedAt  utils.Time      `json:"updated_at"`
}

type SheetListResponse struct {
	Data []SheetResponse `json:"data"`
}

func ToSheetResponse(summary usecases.SheetSummary, chartKinds []chart.Kind) SheetResponse {
	fields := make([]FieldResponse, len(summary.Schema.Fields))
	for i, f := range summary.Schema.Fields {
		fields[i] = FieldResponse{
			Name:        string(f.Name),
			DisplayName: f.DisplayName,
			Type:        string(f.Type),
		}
	}

	kinds := make([]string, len(chartKinds))
	for i, k := range chartKinds {
		kinds[i] = string(k)
	}

	return SheetResponse{
		Kind:       summary.Kind.String(),
		Fields:     fields,
		Headers:    summary.Schema.Headers(),
		Rows:       summary.Rows,
		Revision:   summary.Revision,
		ChartKinds: kinds,
		UpdatedAt:  utils.Time{Time: summary.UpdatedAt},
	}
}

type RowResponse struct {
	ID     string            `json:"id" msgpack:"id"`
	Index  int               `json:"index" msgpack:"index"`
	Fields []string          `json:"fields" msgpack:"fields"`
	Values map[string]string `json:"values" msgpack:"values"`
}

func ToRowResponse(schema domain.Schema, index int, row domain.Row) RowResponse {
	values := schema.Values(row.Fields)
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[string(k)] = v
	}

	fields := row.Fields
	if fields == nil {
		fields = []string{}
	}

	return RowResponse{
		ID:     row.ID.String(),
		Index:  index,
		Fields: fields,
		Values: out,
	}
}

type RowRequest struct {
	Values map[string]string `json:"values"`
}

func (r RowRequest) ToDomain() domain.FormValues {
	values := make(domain.FormValues, len(r.Values))
	for k, v := range r.Values {
		values[domain.FieldName(k)] = v
	}
	return values
}

type DeleteRowResponse struct {
	Row  RowResponse       `json:"row"`
	Form FormStateResponse `json:"form"`
}

type ImportResponse struct {
	Rows   int    `json:"rows"`
	Format string `json:"format"`
}
