package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/httpapi/internal"
	"recordbook-server/internal/records/importer"
	"recordbook-server/internal/records/usecases"
)

func NewSheetController(service usecases.SheetService) *SheetController {
	return &SheetController{
		service: service,
	}
}

var _ httpserver.Controller = &SheetController{}

type SheetController struct {
	service usecases.SheetService
}

func (c *SheetController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/sheets", c.list())
	router.Handle("GET /v1/sheets/{sheet}", c.get())
	router.Handle("GET /v1/sheets/{sheet}/rows", c.listRows())
	router.Handle("POST /v1/sheets/{sheet}/rows", c.appendRow())
	router.Handle("GET /v1/sheets/{sheet}/rows/{id}", c.getRow())
	router.Handle("PUT /v1/sheets/{sheet}/rows/{id}", c.updateRow())
	router.Handle("DELETE /v1/sheets/{sheet}/rows/{id}", c.deleteRow())
	router.Handle("PUT /v1/sheets/{sheet}/rows/at/{index}", c.updateRowAt())
	router.Handle("DELETE /v1/sheets/{sheet}/rows/at/{index}", c.deleteRowAt())
	router.Handle("GET /v1/sheets/{sheet}/export.csv", c.exportCSV())
}

func (c *SheetController) sheetResponse(r *http.Request, summary usecases.SheetSummary) (internal.SheetResponse, error) {
	kinds, err := c.service.ChartKinds(r.Context(), summary.Kind)
	if err != nil {
		return internal.SheetResponse{}, err
	}
	return internal.ToSheetResponse(summary, kinds), nil
}

func (c *SheetController) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summaries := c.service.ListSheets(r.Context())

		response := internal.SheetListResponse{Data: make([]internal.SheetResponse, len(summaries))}
		for i, summary := range summaries {
			sheet, err := c.sheetResponse(r, summary)
			if err != nil {
				replyWithDomainError(w, err, "listing sheets")
				return
			}
			response.Data[i] = sheet
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *SheetController) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "get sheet")
			return
		}

		summary, err := c.service.GetSheet(r.Context(), kind)
		if err != nil {
			replyWithDomainError(w, err, "get sheet")
			return
		}

		response, err := c.sheetResponse(r, summary)
		if err != nil {
			replyWithDomainError(w, err, "get sheet")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *SheetController) listRows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "list rows")
			return
		}

		rows, err := c.service.ListRows(r.Context(), kind)
		if err != nil {
			replyWithDomainError(w, err, "list rows")
			return
		}

		schema, _ := domain.SchemaFor(kind)
		params := httpserver.ExtractPaginationParams(r)
		page := httpserver.Paginate(rows, params)

		responses := make([]internal.RowResponse, len(page))
		for i, row := range page {
			responses[i] = internal.ToRowResponse(schema, params.Offset()+i, row)
		}

		httpserver.ReplyNegotiated(w, r, http.StatusOK, httpserver.NewPaginatedResponse(responses, len(rows), params))
	}
}

func (c *SheetController) getRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "get row")
			return
		}

		row, index, err := c.service.GetRow(r.Context(), kind, domain.ID(r.PathValue("id")))
		if err != nil {
			replyWithDomainError(w, err, "get row")
			return
		}

		schema, _ := domain.SchemaFor(kind)
		httpserver.ReplyNegotiated(w, r, http.StatusOK, internal.ToRowResponse(schema, index, row))
	}
}

func (c *SheetController) appendRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "append row")
			return
		}

		var body internal.RowRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding json body", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		row, err := c.service.AppendRow(r.Context(), kind, body.ToDomain())
		if err != nil {
			replyWithDomainError(w, err, "append row")
			return
		}

		c.replyRow(w, r, kind, http.StatusCreated, row)
	}
}

func (c *SheetController) updateRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "update row")
			return
		}

		var body internal.RowRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding json body", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		row, err := c.service.UpdateRow(r.Context(), kind, domain.ID(r.PathValue("id")), body.ToDomain())
		if err != nil {
			replyWithDomainError(w, err, "update row")
			return
		}

		c.replyRow(w, r, kind, http.StatusOK, row)
	}
}

func (c *SheetController) updateRowAt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "update row")
			return
		}

		index, ok := indexParam(r)
		if !ok {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidIndexErrMessage)
			return
		}

		var body internal.RowRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding json body", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		row, err := c.service.UpdateRowAt(r.Context(), kind, index, body.ToDomain())
		if err != nil {
			replyWithDomainError(w, err, "update row")
			return
		}

		schema, _ := domain.SchemaFor(kind)
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRowResponse(schema, index, row))
	}
}

func (c *SheetController) deleteRow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "delete row")
			return
		}

		id := domain.ID(r.PathValue("id"))
		row, index, err := c.service.DeleteRow(r.Context(), kind, id)
		if err != nil {
			replyWithDomainError(w, err, "delete row")
			return
		}

		c.replyDeleted(w, r, kind, index, row)
	}
}

func (c *SheetController) deleteRowAt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "delete row")
			return
		}

		index, ok := indexParam(r)
		if !ok {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidIndexErrMessage)
			return
		}

		row, err := c.service.DeleteRowAt(r.Context(), kind, index)
		if err != nil {
			replyWithDomainError(w, err, "delete row")
			return
		}

		c.replyDeleted(w, r, kind, index, row)
	}
}

// exportCSV writes the rows in the same plain comma format the importer
// reads. A header line is only added on request since imports never skip one.
func (c *SheetController) exportCSV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "export rows")
			return
		}

		rows, err := c.service.ListRows(r.Context(), kind)
		if err != nil {
			replyWithDomainError(w, err, "export rows")
			return
		}

		records := make([][]string, 0, len(rows)+1)
		if httpserver.GetQueryParam(r, "header") == "true" {
			schema, _ := domain.SchemaFor(kind)
			records = append(records, schema.Headers())
		}
		for _, row := range rows {
			records = append(records, row.Fields)
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", kind.String()+".csv"))
		w.WriteHeader(http.StatusOK)

		if _, err := io.WriteString(w, importer.FormatCSVRows(records)); err != nil {
			slog.Error("writing csv export", slog.String("error", err.Error()))
		}
	}
}

func (c *SheetController) replyRow(w http.ResponseWriter, r *http.Request, kind domain.SheetKind, statusCode int, row domain.Row) {
	_, index, err := c.service.GetRow(r.Context(), kind, row.ID)
	if err != nil {
		replyWithDomainError(w, err, "reply row")
		return
	}

	schema, _ := domain.SchemaFor(kind)
	httpserver.ReplyJSONResponse(w, statusCode, internal.ToRowResponse(schema, index, row))
}

func (c *SheetController) replyDeleted(w http.ResponseWriter, r *http.Request, kind domain.SheetKind, index int, row domain.Row) {
	state, err := c.service.GetForm(r.Context(), kind)
	if err != nil {
		replyWithDomainError(w, err, "delete row")
		return
	}

	schema, _ := domain.SchemaFor(kind)
	httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DeleteRowResponse{
		Row:  internal.ToRowResponse(schema, index, row),
		Form: internal.ToFormStateResponse(state),
	})
}
