package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/infra/httpserver"
	"recordbook-server/internal/records/domain"
	"recordbook-server/internal/records/httpapi"
	"recordbook-server/internal/records/httpapi/internal"
	"recordbook-server/internal/records/usecases"
	mockusecases "recordbook-server/test/unit/doubles/records/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/mock/gomock"
)

type rowPage struct {
	Data       []internal.RowResponse    `json:"data" msgpack:"data"`
	Pagination httpserver.PaginationMeta `json:"pagination" msgpack:"pagination"`
}

var _ = Describe("SheetController", func() {
	var (
		ctrl    *gomock.Controller
		broker  *async.LocalBroker
		service *usecases.SimpleSheetService
		router  *http.ServeMux
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		broker = async.NewLocalBroker()
		service = newSheetService(ctrl, broker)
		router = http.NewServeMux()
		httpapi.NewSheetController(service).AddRoutes(router)
	})

	AfterEach(func() {
		broker.Stop()
		ctrl.Finish()
	})

	appendMeasurement := func(label, value string) internal.RowResponse {
		rec := doRequest(router, http.MethodPost, "/v1/sheets/measurements/rows", internal.RowRequest{
			Values: map[string]string{"label": label, "value": value},
		})
		Expect(rec.Code).To(Equal(http.StatusCreated))
		return decode[internal.RowResponse](rec)
	}

	Context("sheets", func() {
		It("should list both sheets with their schema", func() {
			rec := doRequest(router, http.MethodGet, "/v1/sheets", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			body := decode[internal.SheetListResponse](rec)
			Expect(body.Data).To(HaveLen(2))
			Expect(body.Data[0].Kind).To(Equal("employees"))
			Expect(body.Data[0].Headers).To(Equal([]string{"Name", "Age", "Email", "Salary", "Join Date"}))
			Expect(body.Data[0].ChartKinds).To(Equal([]string{"line", "bar"}))
			Expect(body.Data[1].Kind).To(Equal("measurements"))
		})

		It("should answer 404 for an unknown sheet", func() {
			rec := doRequest(router, http.MethodGet, "/v1/sheets/payroll/rows", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("rows", func() {
		It("should append and page through rows", func() {
			appendMeasurement("a", "1")
			appendMeasurement("b", "2")
			appendMeasurement("c", "3")

			rec := doRequest(router, http.MethodGet, "/v1/sheets/measurements/rows?page=2&limit=2", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			page := decode[rowPage](rec)
			Expect(page.Pagination).To(Equal(httpserver.PaginationMeta{Page: 2, Limit: 2, Total: 3, TotalPages: 2}))
			Expect(page.Data).To(HaveLen(1))
			Expect(page.Data[0].Index).To(Equal(2))
			Expect(page.Data[0].Fields).To(Equal([]string{"c", "3"}))
		})

		It("should answer an empty page far past the end", func() {
			appendMeasurement("a", "1")

			rec := doRequest(router, http.MethodGet, "/v1/sheets/measurements/rows?page=1000000000000000000&limit=10", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			page := decode[rowPage](rec)
			Expect(page.Data).To(BeEmpty())
			Expect(page.Pagination.Total).To(Equal(1))
		})

		It("should encode rows as msgpack on request", func() {
			appendMeasurement("a", "1")

			req := httptest.NewRequest(http.MethodGet, "/v1/sheets/measurements/rows", nil)
			req.Header.Set("Accept", httpserver.ContentTypeMsgpack)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			Expect(rec.Header().Get("Content-Type")).To(Equal(httpserver.ContentTypeMsgpack))
			var page rowPage
			Expect(msgpack.Unmarshal(rec.Body.Bytes(), &page)).To(Succeed())
			Expect(page.Data).To(HaveLen(1))
			Expect(page.Data[0].Values).To(HaveKeyWithValue("label", "a"))
		})

		It("should reject invalid measurements with field messages", func() {
			rec := doRequest(router, http.MethodPost, "/v1/sheets/measurements/rows", internal.RowRequest{
				Values: map[string]string{"label": "a", "value": "ten"},
			})
			Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))

			body := decode[httpserver.ErrorResponse](rec)
			Expect(body.Errors).To(Equal(map[string]string{"value": "Value must be a number"}))
		})

		It("should reject a malformed body", func() {
			rec := doRequest(router, http.MethodPost, "/v1/sheets/measurements/rows", "{")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should update and delete rows by ID", func() {
			row := appendMeasurement("a", "1")

			rec := doRequest(router, http.MethodPut, "/v1/sheets/measurements/rows/"+row.ID, internal.RowRequest{
				Values: map[string]string{"label": "a", "value": "5"},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decode[internal.RowResponse](rec).Fields).To(Equal([]string{"a", "5"}))

			rec = doRequest(router, http.MethodGet, "/v1/sheets/measurements/rows/"+row.ID, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decode[internal.RowResponse](rec).Index).To(Equal(0))

			rec = doRequest(router, http.MethodDelete, "/v1/sheets/measurements/rows/"+row.ID, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			deleted := decode[internal.DeleteRowResponse](rec)
			Expect(deleted.Row.ID).To(Equal(row.ID))
			Expect(deleted.Form.EditingIndex).To(Equal(-1))

			rec = doRequest(router, http.MethodGet, "/v1/sheets/measurements/rows/"+row.ID, nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should update and delete rows by index", func() {
			appendMeasurement("a", "1")
			appendMeasurement("b", "2")

			rec := doRequest(router, http.MethodPut, "/v1/sheets/measurements/rows/at/1", internal.RowRequest{
				Values: map[string]string{"label": "b", "value": "20"},
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decode[internal.RowResponse](rec).Index).To(Equal(1))

			rec = doRequest(router, http.MethodDelete, "/v1/sheets/measurements/rows/at/0", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))

			rec = doRequest(router, http.MethodGet, "/v1/sheets/measurements/rows", nil)
			page := decode[rowPage](rec)
			Expect(page.Data).To(HaveLen(1))
			Expect(page.Data[0].Fields).To(Equal([]string{"b", "20"}))
		})

		It("should answer 404 and keep rows for an out of range index", func() {
			appendMeasurement("a", "1")

			rec := doRequest(router, http.MethodDelete, "/v1/sheets/measurements/rows/at/3", nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))

			rec = doRequest(router, http.MethodDelete, "/v1/sheets/measurements/rows/at/x", nil)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))

			rec = doRequest(router, http.MethodGet, "/v1/sheets/measurements/rows", nil)
			Expect(decode[rowPage](rec).Pagination.Total).To(Equal(1))
		})
	})

	Context("export", func() {
		It("should write rows in the plain comma format", func() {
			appendMeasurement("a", "1")
			appendMeasurement("b", "2")

			rec := doRequest(router, http.MethodGet, "/v1/sheets/measurements/export.csv?header=true", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal("text/csv"))
			Expect(rec.Body.String()).To(Equal("Label,Value\na,1\nb,2"))
		})

		It("should export what a re-import reads back unchanged", func() {
			httpapi.NewImportController(httpapi.ImportConfig{}, service).AddRoutes(router)

			rec := doRequest(router, http.MethodPost, "/v1/sheets/measurements/import?format=csv", "a,1\nO\"Brien,2")
			Expect(rec.Code).To(Equal(http.StatusOK))
			before, err := service.ListRows(context.Background(), domain.SheetMeasurements)
			Expect(err).NotTo(HaveOccurred())

			rec = doRequest(router, http.MethodGet, "/v1/sheets/measurements/export.csv", nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			exported := rec.Body.String()
			Expect(exported).To(Equal("a,1\nO\"Brien,2"))

			rec = doRequest(router, http.MethodPost, "/v1/sheets/measurements/import?format=csv", exported)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(decode[internal.ImportResponse](rec).Rows).To(Equal(2))

			after, err := service.ListRows(context.Background(), domain.SheetMeasurements)
			Expect(err).NotTo(HaveOccurred())
			Expect(fieldsOf(after)).To(Equal(fieldsOf(before)))
			Expect(fieldsOf(after)).To(Equal([][]string{{"a", "1"}, {"O\"Brien", "2"}}))
		})
	})
})

var _ = Describe("SheetController with a failing service", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockSheetService
		router      *http.ServeMux
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSheetService(ctrl)
		router = http.NewServeMux()
		httpapi.NewSheetController(mockService).AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should report the index the service removed", func() {
		mockService.EXPECT().
			DeleteRow(gomock.Any(), domain.SheetMeasurements, domain.ID("r2")).
			Return(domain.Row{ID: "r2", Fields: []string{"b", "2"}}, 1, nil)
		mockService.EXPECT().
			GetForm(gomock.Any(), domain.SheetMeasurements).
			Return(domain.FormState{EditingIndex: -1}, nil)

		rec := doRequest(router, http.MethodDelete, "/v1/sheets/measurements/rows/r2", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(decode[internal.DeleteRowResponse](rec).Row.Index).To(Equal(1))
	})

	It("should hide unexpected errors behind a 500", func() {
		mockService.EXPECT().
			ListRows(gomock.Any(), domain.SheetEmployees).
			Return(nil, errors.New("disk on fire"))

		rec := doRequest(router, http.MethodGet, "/v1/sheets/employees/rows", nil)
		Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		Expect(rec.Body.String()).NotTo(ContainSubstring("disk on fire"))
	})

	It("should map a vanished row to 404", func() {
		mockService.EXPECT().
			DeleteRow(gomock.Any(), domain.SheetEmployees, domain.ID("r1")).
			Return(domain.Row{}, -1, domain.ErrRowNotFound)

		rec := doRequest(router, http.MethodDelete, "/v1/sheets/employees/rows/r1", nil)
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})
})
