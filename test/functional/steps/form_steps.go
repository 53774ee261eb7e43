package steps

import (
	"github.com/cucumber/godog"
)

type formResponse struct {
	Values       map[string]string `json:"values"`
	Errors       map[string]string `json:"errors"`
	EditingIndex int               `json:"editing_index"`
	SubmitLabel  string            `json:"submit_label"`
}

func (fc *FeatureContext) form(sheet string) formResponse {
	response, err := fc.apiDriver.GetForm(sheet)
	return fetch[formResponse](fc, response, err)
}

func (fc *FeatureContext) iSetTheFormFieldTo(sheet, field, value string) error {
	return fc.record(fc.apiDriver.SetFormField(sheet, field, value))
}

func (fc *FeatureContext) iFillTheFormWith(sheet string, table *godog.Table) error {
	records, err := tableRecords(table)
	if err != nil {
		return err
	}

	for field, value := range records[0] {
		if err := fc.iSetTheFormFieldTo(sheet, field, value); err != nil {
			return err
		}
		fc.require.Equal(200, fc.response.StatusCode, "setting %s: %s", field, string(fc.body))
	}
	return nil
}

func (fc *FeatureContext) iBeginEditingRowOf(index int, sheet string) error {
	return fc.record(fc.apiDriver.BeginEdit(sheet, index))
}

func (fc *FeatureContext) iSubmitTheForm(sheet string) error {
	return fc.record(fc.apiDriver.SubmitForm(sheet))
}

func (fc *FeatureContext) theFormShouldShowTheLabelEditingRow(sheet, label string, index int) error {
	state := fc.form(sheet)
	fc.require.Equal(label, state.SubmitLabel)
	fc.require.Equal(index, state.EditingIndex)
	return nil
}

func (fc *FeatureContext) theFormShouldHaveTheMessageFor(sheet, message, field string) error {
	fc.require.Equal(message, fc.form(sheet).Errors[field])
	return nil
}

func (fc *FeatureContext) theFormFieldShouldBe(sheet, field, value string) error {
	fc.require.Equal(value, fc.form(sheet).Values[field])
	return nil
}
