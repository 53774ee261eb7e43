package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"recordbook-server/internal/infra/cache"
	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/httpapi/internal"
	"recordbook-server/internal/records/usecases"
)

const (
	_imageTTL = 10 * time.Minute

	notEnoughPointsErrMessage = "not enough points to draw"
)

func NewChartController(service usecases.SheetService, renderer chart.Renderer, images cache.Cache) *ChartController {
	return &ChartController{
		service:  service,
		renderer: renderer,
		images:   images,
	}
}

var _ httpserver.Controller = &ChartController{}

type ChartController struct {
	service  usecases.SheetService
	renderer chart.Renderer
	images   cache.Cache
}

func (c *ChartController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/sheets/{sheet}/chart", c.get())
	router.Handle("GET /v1/sheets/{sheet}/chart.png", c.png())
}

// current resolves the sheet and chart kind of the request. Without a kind
// query parameter the first chart of the sheet is used.
func (c *ChartController) current(w http.ResponseWriter, r *http.Request) (domain.SheetKind, usecases.ChartView, bool) {
	kind, err := sheetParam(r)
	if err != nil {
		replyWithDomainError(w, err, "get chart")
		return "", usecases.ChartView{}, false
	}

	chartKind, err := c.chartKind(r, kind)
	if err != nil {
		replyWithDomainError(w, err, "get chart")
		return "", usecases.ChartView{}, false
	}

	view, err := c.service.GetChart(r.Context(), kind, chartKind)
	if err != nil {
		replyWithDomainError(w, err, "get chart")
		return "", usecases.ChartView{}, false
	}

	return kind, view, true
}

func (c *ChartController) chartKind(r *http.Request, kind domain.SheetKind) (chart.Kind, error) {
	if value := httpserver.GetQueryParam(r, "kind"); value != "" {
		return chart.ParseKind(value)
	}

	kinds, err := c.service.ChartKinds(r.Context(), kind)
	if err != nil {
		return "", err
	}
	if len(kinds) == 0 {
		return "", chart.ErrUnknownKind
	}
	return kinds[0], nil
}

func (c *ChartController) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, view, ok := c.current(w, r)
		if !ok {
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToChartResponse(view))
	}
}

func (c *ChartController) png() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, view, ok := c.current(w, r)
		if !ok {
			return
		}

		// the series of a revision never changes
		key := fmt.Sprintf("%s/%s/%d", kind, view.Series.Kind, view.Revision)
		image, err := c.images.GetOrSet(r.Context(), key, _imageTTL, func() ([]byte, error) {
			var buf bytes.Buffer
			if err := c.renderer.RenderPNG(&buf, view.Series); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		})
		if errors.Is(err, chart.ErrNotEnoughPoints) {
			httpserver.ReplyWithError(w, http.StatusUnprocessableEntity, notEnoughPointsErrMessage)
			return
		}
		if err != nil {
			slog.Error("rendering chart", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(image)
	}
}
