package httpserver

import (
	"bufio"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	_metricsNamespace = "recordbook_server"
	_meterName        = "recordbook-server/httpserver"
)

var (
	uuidRegex  = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	indexRegex = regexp.MustCompile(`/at/-?[0-9]+`)
	sheetRegex = regexp.MustCompile(`^/(?:v1|ws)/sheets/([^/]+)`)
)

type requestMetrics struct {
	duration metric.Float64Histogram
	total    metric.Int64Counter
	active   metric.Int64UpDownCounter
}

func newRequestMetrics(meter metric.Meter) (*requestMetrics, error) {
	duration, err := meter.Float64Histogram(
		_metricsNamespace+".http.request.duration.seconds",
		metric.WithDescription("Duration of HTTP requests per route and sheet"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	total, err := meter.Int64Counter(
		_metricsNamespace+".http.requests.total",
		metric.WithDescription("Completed HTTP requests per route, sheet and status"),
	)
	if err != nil {
		return nil, err
	}

	active, err := meter.Int64UpDownCounter(
		_metricsNamespace+".http.requests.active",
		metric.WithDescription("HTTP requests in flight per route and sheet"),
	)
	if err != nil {
		return nil, err
	}

	return &requestMetrics{duration: duration, total: total, active: active}, nil
}

// MetricsMiddleware records request counts, durations and in-flight requests
// on the global meter provider. Row IDs and indexes are collapsed in the
// route attribute and the sheet a request targets is reported separately.
func MetricsMiddleware() func(http.Handler) http.Handler {
	metrics, err := newRequestMetrics(otel.GetMeterProvider().Meter(_meterName))
	if err != nil {
		panic(err)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()
			attrs := requestAttributes(r)

			metrics.active.Add(ctx, 1, metric.WithAttributes(attrs...))
			// balanced even when next panics
			defer metrics.active.Add(ctx, -1, metric.WithAttributes(attrs...))

			wrappedWriter := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrappedWriter, r)

			completed := append(attrs, attribute.Int("http.status_code", wrappedWriter.statusCode))
			metrics.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(completed...))
			metrics.total.Add(ctx, 1, metric.WithAttributes(completed...))
		})
	}
}

func requestAttributes(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("http.method", r.Method),
		attribute.String("http.route", normalizeEndpoint(r.URL.Path)),
		attribute.String("records.sheet", sheetOf(r.URL.Path)),
	}
}

func sheetOf(path string) string {
	if match := sheetRegex.FindStringSubmatch(path); match != nil {
		return match[1]
	}
	return "none"
}

func normalizeEndpoint(path string) string {
	if path == "" || path == "/" {
		return "root"
	}

	normalizedPath := uuidRegex.ReplaceAllString(path, "_id")
	return indexRegex.ReplaceAllString(normalizedPath, "/at/_index")
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := rw.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}
	return nil, nil, fmt.Errorf("underlying ResponseWriter does not support hijacking")
}
