package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/httpapi/internal"
)

const (
	unknownSheetErrMessage = "unknown sheet"
	rowNotFoundErrMessage  = "row not found"
	unknownFieldErrMessage = "unknown field"
	unknownChartErrMessage = "unknown chart kind"
	invalidIndexErrMessage = "invalid row index"
	invalidBodyErrMessage  = "invalid request body"
	validationErrMessage   = "validation failed"
	internalErrMessage     = "internal error"
)

// replyWithDomainError maps domain failures to status codes. Anything it does
// not recognise is logged and reported as a 500.
func replyWithDomainError(w http.ResponseWriter, err error, operation string) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		slog.Debug(operation, slog.Any("error", err))
		httpserver.ReplyWithFieldErrors(w, http.StatusUnprocessableEntity, validationErrMessage, internal.ToFieldErrors(validationErr.Errors))
	case errors.Is(err, domain.ErrUnknownSheet):
		httpserver.ReplyWithError(w, http.StatusNotFound, unknownSheetErrMessage)
	case errors.Is(err, domain.ErrRowNotFound), errors.Is(err, domain.ErrRowIndexOutOfRange):
		httpserver.ReplyWithError(w, http.StatusNotFound, rowNotFoundErrMessage)
	case errors.Is(err, domain.ErrUnknownField):
		httpserver.ReplyWithError(w, http.StatusBadRequest, unknownFieldErrMessage)
	case errors.Is(err, chart.ErrUnknownKind):
		httpserver.ReplyWithError(w, http.StatusNotFound, unknownChartErrMessage)
	default:
		slog.Error(operation, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage)
	}
}

func sheetParam(r *http.Request) (domain.SheetKind, error) {
	return domain.ParseSheetKind(r.PathValue("sheet"))
}

func indexParam(r *http.Request) (int, bool) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		return 0, false
	}
	return index, true
}
