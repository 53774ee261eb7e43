package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) url(format string, args ...any) string {
	return d.baseURL + fmt.Sprintf(format, args...)
}

func (d *APIDriver) send(method, url string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return d.client.Do(req)
}

func (d *APIDriver) GetHealthz() (*http.Response, error) {
	return d.client.Get(d.url("/healthz"))
}

func (d *APIDriver) ListSheets() (*http.Response, error) {
	return d.client.Get(d.url("/v1/sheets"))
}

func (d *APIDriver) ListRows(sheet string) (*http.Response, error) {
	return d.client.Get(d.url("/v1/sheets/%s/rows?limit=100", sheet))
}

func (d *APIDriver) AppendRow(sheet string, values map[string]string) (*http.Response, error) {
	return d.send(http.MethodPost, d.url("/v1/sheets/%s/rows", sheet), map[string]any{"values": values})
}

func (d *APIDriver) UpdateRowAt(sheet string, index int, values map[string]string) (*http.Response, error) {
	return d.send(http.MethodPut, d.url("/v1/sheets/%s/rows/at/%d", sheet, index), map[string]any{"values": values})
}

func (d *APIDriver) DeleteRowAt(sheet string, index int) (*http.Response, error) {
	return d.send(http.MethodDelete, d.url("/v1/sheets/%s/rows/at/%d", sheet, index), nil)
}

func (d *APIDriver) GetForm(sheet string) (*http.Response, error) {
	return d.client.Get(d.url("/v1/sheets/%s/form", sheet))
}

func (d *APIDriver) SetFormField(sheet, field, value string) (*http.Response, error) {
	return d.send(http.MethodPut, d.url("/v1/sheets/%s/form/fields/%s", sheet, field), map[string]string{"value": value})
}

func (d *APIDriver) BeginEdit(sheet string, index int) (*http.Response, error) {
	return d.send(http.MethodPost, d.url("/v1/sheets/%s/form/edit/%d", sheet, index), nil)
}

func (d *APIDriver) SubmitForm(sheet string) (*http.Response, error) {
	return d.send(http.MethodPost, d.url("/v1/sheets/%s/form/submit", sheet), nil)
}

func (d *APIDriver) ImportCSV(sheet, content string) (*http.Response, error) {
	return d.client.Post(d.url("/v1/sheets/%s/import", sheet), "text/csv", strings.NewReader(content))
}

func (d *APIDriver) ExportCSV(sheet string) (*http.Response, error) {
	return d.client.Get(d.url("/v1/sheets/%s/export.csv", sheet))
}

func (d *APIDriver) GetChart(sheet, kind string) (*http.Response, error) {
	return d.client.Get(d.url("/v1/sheets/%s/chart?kind=%s", sheet, kind))
}

func (d *APIDriver) GetChartImage(sheet, kind string) (*http.Response, error) {
	return d.client.Get(d.url("/v1/sheets/%s/chart.png?kind=%s", sheet, kind))
}
