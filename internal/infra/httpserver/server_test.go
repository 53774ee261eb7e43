package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type pingController struct{}

func (pingController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, map[string]string{"status": "pong"})
	})
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add a span to the request context", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusTeapot)
			})

			wrappedHandler := createTracingMiddleware()(testHandler)

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rec := httptest.NewRecorder()
			wrappedHandler.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusTeapot))
			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
		})

		ginkgo.It("should continue a b3 trace", func() {
			var traceID string
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				traceID = GetSpanFromContext(r).SpanContext().TraceID().String()
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("b3", "80f198ee56343ba864fe8b2a57d3eff7-e457b5a2e4d86bd1-1")
			createTracingMiddleware()(testHandler).ServeHTTP(httptest.NewRecorder(), req)

			gomega.Expect(traceID).To(gomega.Equal("80f198ee56343ba864fe8b2a57d3eff7"))
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.It("should return a span even when no span is in context", func() {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			gomega.Expect(GetSpanFromContext(req)).NotTo(gomega.BeNil())
		})
	})

	ginkgo.Context("NewServer", func() {
		ginkgo.It("should serve controller routes and health", func() {
			server := NewServer(ServerConfig{}, pingController{})

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			rec = httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring(`"status":"success"`))
		})

		ginkgo.It("should report failing health checks", func() {
			server := NewServer(ServerConfig{
				HealthChecks: map[string]HealthCheck{
					"database": func(context.Context) error { return errors.New("connection refused") },
				},
			})

			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusServiceUnavailable))

			var body healthResponse
			gomega.Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(gomega.Succeed())
			gomega.Expect(body.Status).To(gomega.Equal("failure"))
			gomega.Expect(body.Checks).To(gomega.HaveKeyWithValue("database", "connection refused"))
		})

		ginkgo.It("should answer CORS preflight for allowed origins", func() {
			server := NewServer(ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}}, pingController{})

			req := httptest.NewRequest(http.MethodOptions, "/v1/ping", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)

			gomega.Expect(rec.Header().Get("Access-Control-Allow-Origin")).To(gomega.Equal("http://localhost:5173"))
		})
	})
})
