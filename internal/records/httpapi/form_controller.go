package httpapi

import (
	"log/slog"
	"net/http"

	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/httpapi/internal"
	"recordbook-server/internal/records/usecases"
)

func NewFormController(service usecases.SheetService) *FormController {
	return &FormController{
		service: service,
	}
}

var _ httpserver.Controller = &FormController{}

type FormController struct {
	service usecases.SheetService
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/sheets/{sheet}/form", c.get())
	router.Handle("PUT /v1/sheets/{sheet}/form/fields/{field}", c.setField())
	router.Handle("POST /v1/sheets/{sheet}/form/edit/{index}", c.beginEdit())
	router.Handle("POST /v1/sheets/{sheet}/form/edit/id/{id}", c.beginEditByID())
	router.Handle("POST /v1/sheets/{sheet}/form/submit", c.submit())
	router.Handle("POST /v1/sheets/{sheet}/form/reset", c.reset())
}

func (c *FormController) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "get form")
			return
		}

		state, err := c.service.GetForm(r.Context(), kind)
		if err != nil {
			replyWithDomainError(w, err, "get form")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormStateResponse(state))
	}
}

func (c *FormController) setField() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "set form field")
			return
		}

		var body internal.FieldValueRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			slog.Error("decoding json body", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		state, err := c.service.SetFormField(r.Context(), kind, domain.FieldName(r.PathValue("field")), body.Value)
		if err != nil {
			replyWithDomainError(w, err, "set form field")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormStateResponse(state))
	}
}

func (c *FormController) beginEdit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "begin edit")
			return
		}

		index, ok := indexParam(r)
		if !ok {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidIndexErrMessage)
			return
		}

		state, err := c.service.BeginEdit(r.Context(), kind, index)
		if err != nil {
			replyWithDomainError(w, err, "begin edit")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormStateResponse(state))
	}
}

func (c *FormController) beginEditByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "begin edit")
			return
		}

		state, err := c.service.BeginEditByID(r.Context(), kind, domain.ID(r.PathValue("id")))
		if err != nil {
			replyWithDomainError(w, err, "begin edit")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormStateResponse(state))
	}
}

func (c *FormController) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "submit form")
			return
		}

		row, state, err := c.service.SubmitForm(r.Context(), kind)
		if err != nil {
			replyWithDomainError(w, err, "submit form")
			return
		}

		// the row may already be gone again, index is -1 then
		_, index, _ := c.service.GetRow(r.Context(), kind, row.ID)

		schema, _ := domain.SchemaFor(kind)
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.SubmitResponse{
			Row:  internal.ToRowResponse(schema, index, row),
			Form: internal.ToFormStateResponse(state),
		})
	}
}

func (c *FormController) reset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "reset form")
			return
		}

		state, err := c.service.ResetForm(r.Context(), kind)
		if err != nil {
			replyWithDomainError(w, err, "reset form")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormStateResponse(state))
	}
}
