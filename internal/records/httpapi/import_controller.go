package httpapi

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/records/httpapi/internal"
	"recordbook-server/internal/records/importer"
	"recordbook-server/internal/records/usecases"
)

const (
	_multipartMemory = 8 << 20
	_uploadField     = "file"

	importFailedErrMessage      = "failed to import rows"
	unsupportedFormatErrMessage = "unsupported import format"
	uploadTooLargeErrMessage    = "upload too large"
	missingFileErrMessage       = "missing file field"
)

type ImportConfig struct {
	// MaxBytes caps the upload size. Zero means no limit.
	MaxBytes int64
}

func NewImportController(config ImportConfig, service usecases.SheetService) *ImportController {
	return &ImportController{
		maxBytes: config.MaxBytes,
		service:  service,
	}
}

var _ httpserver.Controller = &ImportController{}

type ImportController struct {
	maxBytes int64
	service  usecases.SheetService
}

func (c *ImportController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/sheets/{sheet}/import", c.importRows())
}

func (c *ImportController) importRows() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := sheetParam(r)
		if err != nil {
			replyWithDomainError(w, err, "import rows")
			return
		}

		if c.maxBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, c.maxBytes)
		}

		body, filename, contentType, err := c.upload(r)
		if err != nil {
			c.replyUploadError(w, err)
			return
		}
		defer body.Close()

		format, err := importer.DetectFormat(filename, contentType)
		if override := httpserver.GetQueryParam(r, "format"); override != "" {
			format, err = importer.ParseFormat(override)
		}
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusUnsupportedMediaType, unsupportedFormatErrMessage)
			return
		}

		rows, err := importer.Parse(format, body)
		if err != nil {
			c.replyUploadError(w, err)
			return
		}

		imported, err := c.service.ImportRows(r.Context(), kind, rows)
		if err != nil {
			replyWithDomainError(w, err, "import rows")
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ImportResponse{
			Rows:   imported,
			Format: string(format),
		})
	}
}

// upload returns the uploaded content, either the multipart "file" part or
// the raw request body.
func (c *ImportController) upload(r *http.Request) (io.ReadCloser, string, string, error) {
	contentType := r.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(contentType)
	if mediaType != "multipart/form-data" {
		return r.Body, "", contentType, nil
	}

	if err := r.ParseMultipartForm(_multipartMemory); err != nil {
		return nil, "", "", err
	}

	file, header, err := r.FormFile(_uploadField)
	if err != nil {
		return nil, "", "", err
	}

	return file, header.Filename, header.Header.Get("Content-Type"), nil
}

func (c *ImportController) replyUploadError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		httpserver.ReplyWithError(w, http.StatusRequestEntityTooLarge, uploadTooLargeErrMessage)
	case errors.Is(err, http.ErrMissingFile):
		httpserver.ReplyWithError(w, http.StatusBadRequest, missingFileErrMessage)
	case errors.Is(err, importer.ErrNoWorksheet), errors.Is(err, importer.ErrUnsupportedFormat):
		httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, importFailedErrMessage)
	default:
		slog.Error("reading upload", slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusBadRequest, importFailedErrMessage)
	}
}
