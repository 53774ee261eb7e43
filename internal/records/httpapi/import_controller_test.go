package httpapi_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"recordbook-server/internal/infra/async"
	"recordbook-server/internal/records/httpapi"
	"recordbook-server/internal/records/httpapi/internal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func multipartUpload(filename string, content []byte) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	Expect(err).NotTo(HaveOccurred())
	_, err = part.Write(content)
	Expect(err).NotTo(HaveOccurred())
	Expect(writer.Close()).To(Succeed())

	req := httptest.NewRequest(http.MethodPost, "/v1/sheets/employees/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

var _ = Describe("ImportController", func() {
	var (
		ctrl   *gomock.Controller
		broker *async.LocalBroker
		router *http.ServeMux
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		broker = async.NewLocalBroker()
		router = http.NewServeMux()

		service := newSheetService(ctrl, broker)
		httpapi.NewSheetController(service).AddRoutes(router)
		httpapi.NewImportController(httpapi.ImportConfig{MaxBytes: 1 << 16}, service).AddRoutes(router)
	})

	AfterEach(func() {
		broker.Stop()
		ctrl.Finish()
	})

	It("should replace the rows with a raw csv body", func() {
		rec := doRequest(router, http.MethodPost, "/v1/sheets/measurements/import", "a,1\nb,2")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(decode[internal.ImportResponse](rec)).To(Equal(internal.ImportResponse{Rows: 2, Format: "csv"}))

		rec = doRequest(router, http.MethodPost, "/v1/sheets/measurements/import", "c,3")
		Expect(decode[internal.ImportResponse](rec).Rows).To(Equal(1))

		rec = doRequest(router, http.MethodGet, "/v1/sheets/measurements/rows", nil)
		page := decode[rowPage](rec)
		Expect(page.Data).To(HaveLen(1))
		Expect(page.Data[0].Fields).To(Equal([]string{"c", "3"}))
	})

	It("should read an xlsx upload", func() {
		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)
		Expect(f.SetSheetRow(sheet, "A1", &[]any{"Ann", "30", "ann@example.com", "5000", "2020-01-01"})).To(Succeed())

		var buf bytes.Buffer
		Expect(f.Write(&buf)).To(Succeed())

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload("staff.xlsx", buf.Bytes()))
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(decode[internal.ImportResponse](rec)).To(Equal(internal.ImportResponse{Rows: 1, Format: "xlsx"}))

		rec = doRequest(router, http.MethodGet, "/v1/sheets/employees/rows", nil)
		Expect(decode[rowPage](rec).Data[0].Values).To(HaveKeyWithValue("joinDate", "2020-01-01"))
	})

	It("should reject a broken xlsx upload", func() {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, multipartUpload("staff.xlsx", []byte("not a zip")))
		Expect(rec.Code).To(BeNumerically(">=", http.StatusBadRequest))
	})

	It("should reject an unknown format override", func() {
		rec := doRequest(router, http.MethodPost, "/v1/sheets/measurements/import?format=ods", "a,1")
		Expect(rec.Code).To(Equal(http.StatusUnsupportedMediaType))
	})

	It("should refuse uploads over the size limit", func() {
		rec := doRequest(router, http.MethodPost, "/v1/sheets/measurements/import", strings.Repeat("a,1\n", 1<<15))
		Expect(rec.Code).To(Equal(http.StatusRequestEntityTooLarge))
	})

	It("should answer 404 for an unknown sheet", func() {
		rec := doRequest(router, http.MethodPost, "/v1/sheets/payroll/import", "a,1")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
	})
})
