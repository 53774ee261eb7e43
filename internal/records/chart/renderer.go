package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	_defaultWidth  = 800
	_defaultHeight = 400
	_barWidth      = 40
)

var ErrNotEnoughPoints = errors.New("not enough plottable points")

var _seriesColor = drawing.ColorFromHex("4bc0c0")

// Renderer draws a series as PNG. Points with an invalid label or a
// non-finite value are not drawn.
type Renderer struct {
	Width  int
	Height int
}

func NewRenderer(width, height int) Renderer {
	if width <= 0 {
		width = _defaultWidth
	}
	if height <= 0 {
		height = _defaultHeight
	}
	return Renderer{Width: width, Height: height}
}

func (r Renderer) RenderPNG(w io.Writer, s Series) error {
	switch s.Kind {
	case KindLine:
		return r.renderLine(w, s)
	case KindBar:
		return r.renderBars(w, s)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, s.Kind)
	}
}

func (r Renderer) renderLine(w io.Writer, s Series) error {
	xs := make([]time.Time, 0, s.Len())
	ys := make([]float64, 0, s.Len())
	for i, label := range s.Labels {
		if !label.Temporal || !label.Valid || !s.Values[i].Finite() {
			continue
		}
		xs = append(xs, label.Time)
		ys = append(ys, float64(s.Values[i]))
	}
	if len(xs) < 2 {
		return fmt.Errorf("%w: line needs 2, have %d", ErrNotEnoughPoints, len(xs))
	}

	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x.Before(minX) {
			minX = x
		}
		if x.After(maxX) {
			maxX = x
		}
	}
	if minX.Equal(maxX) {
		minX = minX.Add(-24 * time.Hour)
		maxX = maxX.Add(24 * time.Hour)
	}

	graph := gochart.Chart{
		Width:  r.Width,
		Height: r.Height,
		XAxis: gochart.XAxis{
			Name:           s.XTitle,
			ValueFormatter: gochart.TimeDateValueFormatter,
			Range: &gochart.ContinuousRange{
				Min: gochart.TimeToFloat64(minX),
				Max: gochart.TimeToFloat64(maxX),
			},
		},
		YAxis: gochart.YAxis{
			Name:  s.YTitle,
			Range: valueRange(ys),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    s.DatasetLabel,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: _seriesColor,
					StrokeWidth: 2,
				},
			},
		},
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("rendering line chart: %w", err)
	}
	return nil
}

func (r Renderer) renderBars(w io.Writer, s Series) error {
	bars := make([]gochart.Value, 0, s.Len())
	values := make([]float64, 0, s.Len())
	for i, label := range s.Labels {
		if (label.Temporal && !label.Valid) || !s.Values[i].Finite() {
			continue
		}
		v := float64(s.Values[i])
		bars = append(bars, gochart.Value{
			Label: label.String(),
			Value: v,
			Style: gochart.Style{FillColor: _seriesColor, StrokeColor: _seriesColor},
		})
		values = append(values, v)
	}
	if len(bars) == 0 {
		return fmt.Errorf("%w: bar chart needs 1, have 0", ErrNotEnoughPoints)
	}

	graph := gochart.BarChart{
		Title:    s.DatasetLabel,
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: _barWidth,
		YAxis: gochart.YAxis{
			Name:  s.YTitle,
			Range: valueRange(append(values, 0)),
		},
		Bars: bars,
	}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("rendering bar chart: %w", err)
	}
	return nil
}

// valueRange spans ys and never collapses to a zero-width range.
func valueRange(ys []float64) *gochart.ContinuousRange {
	lo, hi := ys[0], ys[0]
	for _, y := range ys[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	if lo == hi {
		lo--
		hi++
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi}
}
