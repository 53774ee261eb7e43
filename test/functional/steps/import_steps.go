package steps

import (
	"github.com/cucumber/godog"
)

func (fc *FeatureContext) iImportIntoTheCSV(sheet string, content *godog.DocString) error {
	return fc.record(fc.apiDriver.ImportCSV(sheet, content.Content))
}

func (fc *FeatureContext) rowsShouldHaveBeenImported(count int) error {
	fc.require.EqualValues(count, fc.data()["rows"])
	return nil
}

func (fc *FeatureContext) iExportAsCSV(sheet string) error {
	return fc.record(fc.apiDriver.ExportCSV(sheet))
}

func (fc *FeatureContext) iImportTheExportedCSVInto(sheet string) error {
	return fc.record(fc.apiDriver.ImportCSV(sheet, string(fc.body)))
}

func (fc *FeatureContext) theResponseBodyShouldBe(content *godog.DocString) error {
	fc.require.Equal(content.Content, string(fc.body))
	return nil
}
