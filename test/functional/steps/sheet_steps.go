package steps

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

type rowsResponse struct {
	Data []struct {
		ID     string   `json:"id"`
		Index  int      `json:"index"`
		Fields []string `json:"fields"`
	} `json:"data"`
	Pagination struct {
		Total int `json:"total"`
	} `json:"pagination"`
}

// tableRecords turns a table whose first row names the fields into one value
// map per remaining row.
func tableRecords(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("table needs a header and at least one row")
	}

	header := table.Rows[0].Cells
	records := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		record := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			record[header[i].Value] = cell.Value
		}
		records = append(records, record)
	}
	return records, nil
}

func (fc *FeatureContext) theSheetContains(sheet string, table *godog.Table) error {
	records, err := tableRecords(table)
	if err != nil {
		return err
	}

	for _, record := range records {
		response, err := fc.apiDriver.AppendRow(sheet, record)
		if err != nil {
			return err
		}
		response.Body.Close()
		if response.StatusCode != http.StatusCreated {
			return fmt.Errorf("seeding %s: unexpected status %d", sheet, response.StatusCode)
		}
	}
	return nil
}

func (fc *FeatureContext) iListTheSheets() error {
	return fc.record(fc.apiDriver.ListSheets())
}

func (fc *FeatureContext) theSheetListShouldContainWithHeaders(sheet, headers string) error {
	sheets, ok := fc.data()["data"].([]any)
	fc.require.True(ok, "data should be a list")

	for _, item := range sheets {
		entry := item.(map[string]any)
		if entry["kind"] != sheet {
			continue
		}
		var got []string
		for _, header := range entry["headers"].([]any) {
			got = append(got, header.(string))
		}
		fc.require.Equal(strings.Split(headers, "|"), got)
		return nil
	}
	return fmt.Errorf("sheet %q not listed", sheet)
}

func (fc *FeatureContext) iAppendToTheRow(sheet string, table *godog.Table) error {
	records, err := tableRecords(table)
	if err != nil {
		return err
	}
	return fc.record(fc.apiDriver.AppendRow(sheet, records[0]))
}

func (fc *FeatureContext) iUpdateRowOfWith(index int, sheet string, table *godog.Table) error {
	records, err := tableRecords(table)
	if err != nil {
		return err
	}
	return fc.record(fc.apiDriver.UpdateRowAt(sheet, index, records[0]))
}

func (fc *FeatureContext) iDeleteRowOf(index int, sheet string) error {
	return fc.record(fc.apiDriver.DeleteRowAt(sheet, index))
}

func (fc *FeatureContext) sheetShouldHaveRows(sheet string, count int) error {
	response, err := fc.apiDriver.ListRows(sheet)
	rows := fetch[rowsResponse](fc, response, err)
	fc.require.Equal(count, rows.Pagination.Total)
	return nil
}

func (fc *FeatureContext) rowOfShouldBe(index int, sheet, fields string) error {
	response, err := fc.apiDriver.ListRows(sheet)
	rows := fetch[rowsResponse](fc, response, err)
	fc.require.Greater(len(rows.Data), index, "row %d does not exist", index)
	fc.require.Equal(strings.Split(fields, "|"), rows.Data[index].Fields)
	return nil
}

func (fc *FeatureContext) theResponseShouldReportFor(message, field string) error {
	errs, ok := fc.data()["errors"].(map[string]any)
	fc.require.True(ok, "errors should be present: %s", string(fc.body))
	fc.require.Equal(message, errs[field])
	return nil
}

func (fc *FeatureContext) theSheetsAreSnapshottedAndTheServerRestarts() error {
	if err := fc.server.Service.Snapshot(context.Background()); err != nil {
		return err
	}
	fc.stopServer()

	if err := fc.startServer(); err != nil {
		return err
	}
	return fc.server.Service.Restore(context.Background())
}
