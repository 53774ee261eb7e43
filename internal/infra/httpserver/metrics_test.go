package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		var reader *metric.ManualReader

		ginkgo.BeforeEach(func() {
			reader = metric.NewManualReader()
			otel.SetMeterProvider(metric.NewMeterProvider(metric.WithReader(reader)))
		})

		collect := func() map[string]metricdata.Metrics {
			var rm metricdata.ResourceMetrics
			gomega.Expect(reader.Collect(context.Background(), &rm)).To(gomega.Succeed())

			out := map[string]metricdata.Metrics{}
			for _, scope := range rm.ScopeMetrics {
				for _, m := range scope.Metrics {
					out[m.Name] = m
				}
			}
			return out
		}

		activeRequests := func() int64 {
			sum, ok := collect()[_metricsNamespace+".http.requests.active"].Data.(metricdata.Sum[int64])
			gomega.Expect(ok).To(gomega.BeTrue())
			var total int64
			for _, point := range sum.DataPoints {
				total += point.Value
			}
			return total
		}

		ginkgo.It("should count requests per route and sheet", func() {
			handler := MetricsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte("created"))
			}))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/sheets/measurements/rows", nil))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusCreated))
			gomega.Expect(w.Body.String()).To(gomega.Equal("created"))

			total, ok := collect()[_metricsNamespace+".http.requests.total"].Data.(metricdata.Sum[int64])
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(total.DataPoints).To(gomega.HaveLen(1))

			point := total.DataPoints[0]
			gomega.Expect(point.Value).To(gomega.Equal(int64(1)))
			sheet, _ := point.Attributes.Value("records.sheet")
			gomega.Expect(sheet.AsString()).To(gomega.Equal("measurements"))
			route, _ := point.Attributes.Value("http.route")
			gomega.Expect(route.AsString()).To(gomega.Equal("/v1/sheets/measurements/rows"))
			status, _ := point.Attributes.Value("http.status_code")
			gomega.Expect(status.AsInt64()).To(gomega.Equal(int64(http.StatusCreated)))
			gomega.Expect(activeRequests()).To(gomega.BeZero())
		})

		ginkgo.It("should release the active request when the handler panics", func() {
			handler := MetricsMiddleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic("boom")
			}))

			gomega.Expect(func() {
				handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/sheets/employees/rows", nil))
			}).To(gomega.Panic())
			gomega.Expect(activeRequests()).To(gomega.BeZero())
		})
	})

	ginkgo.Context("SheetOf", func() {
		ginkgo.DescribeTable("should extract the sheet from the path",
			func(path, expected string) {
				gomega.Expect(sheetOf(path)).To(gomega.Equal(expected))
			},
			ginkgo.Entry("rows", "/v1/sheets/employees/rows", "employees"),
			ginkgo.Entry("sheet itself", "/v1/sheets/measurements", "measurements"),
			ginkgo.Entry("websocket", "/ws/sheets/employees/changes", "employees"),
			ginkgo.Entry("sheet list", "/v1/sheets", "none"),
			ginkgo.Entry("health", "/healthz", "none"),
		)
	})

	ginkgo.Context("NormalizeEndpoint", func() {
		ginkgo.DescribeTable("should collapse identifiers",
			func(path, expected string) {
				gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal(expected))
			},
			ginkgo.Entry("root path", "/", "root"),
			ginkgo.Entry("empty path", "", "root"),
			ginkgo.Entry("static endpoint", "/v1/sheets", "/v1/sheets"),
			ginkgo.Entry("row by ID",
				"/v1/sheets/employees/rows/0b6e3c5e-5b2a-4f0e-9d53-7f8f2a1c9e11",
				"/v1/sheets/employees/rows/_id"),
			ginkgo.Entry("row by index", "/v1/sheets/measurements/rows/at/12", "/v1/sheets/measurements/rows/at/_index"),
			ginkgo.Entry("negative index", "/v1/sheets/measurements/rows/at/-1", "/v1/sheets/measurements/rows/at/_index"),
			ginkgo.Entry("websocket endpoint", "/ws/sheets/employees/changes", "/ws/sheets/employees/changes"),
		)
	})

	ginkgo.Context("ResponseWriter", func() {
		var (
			recorder      *httptest.ResponseRecorder
			wrappedWriter *responseWriter
		)

		ginkgo.When("using response writer wrapper", func() {
			ginkgo.BeforeEach(func() {
				// Create a test response writer
				recorder = httptest.NewRecorder()
				wrappedWriter = &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}
			})

			ginkgo.It("should handle WriteHeader correctly", func() {
				wrappedWriter.WriteHeader(http.StatusNotFound)
				gomega.Expect(wrappedWriter.statusCode).To(gomega.Equal(http.StatusNotFound))
				gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusNotFound))
			})

			ginkgo.It("should handle Write correctly", func() {
				_, err := wrappedWriter.Write([]byte("test"))
				gomega.Expect(err).NotTo(gomega.HaveOccurred())
				gomega.Expect(recorder.Body.String()).To(gomega.Equal("test"))
			})
		})
	})

	ginkgo.Context("ResponseWriterHijacker", func() {
		var (
			recorder      *httptest.ResponseRecorder
			wrappedWriter *responseWriter
		)

		ginkgo.When("testing hijacker interface", func() {
			ginkgo.BeforeEach(func() {
				// Create a test response writer that implements http.Hijacker
				recorder = httptest.NewRecorder()
				wrappedWriter = &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}
			})

			ginkgo.It("should implement http.Hijacker interface", func() {
				// Test that our wrapper implements http.Hijacker interface
				_, isHijacker := interface{}(wrappedWriter).(http.Hijacker)
				gomega.Expect(isHijacker).To(gomega.BeTrue())
			})

			ginkgo.It("should return error when hijacking is not supported", func() {
				// Test calling Hijack (it should return an error since httptest.ResponseRecorder doesn't support hijacking)
				_, _, err := wrappedWriter.Hijack()
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("underlying ResponseWriter does not support hijacking"))
			})
		})
	})
})
