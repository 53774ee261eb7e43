package steps

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"recordbook-server/test/functional/driver"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const _importMaxBytes = 1 << 20

type FeatureContext struct {
	server       *driver.Server
	database     string
	bypass       bool
	apiDriver    *driver.APIDriver
	response     *http.Response
	body         []byte
	responseData map[string]any
	require      *require.Assertions
	t            godog.TestingT
}

func NewFeatureContext() *FeatureContext {
	return &FeatureContext{}
}

func (fc *FeatureContext) RegisterSteps(ctx *godog.ScenarioContext) {
	// Generic steps
	ctx.Step(`^wait for (.*)$`, fc.waitForDuration)
	ctx.Given(`^the record server is running$`, fc.theRecordServerIsRunning)
	ctx.Given(`^the record server is running with validation enforced$`, fc.theRecordServerIsRunningWithValidationEnforced)
	ctx.Then(`^the response status code should be (\d+)$`, fc.theResponseStatusCodeShouldBe)

	// Health steps
	ctx.When(`^I call the healthz endpoint$`, fc.iCallTheHealthzEndpoint)
	ctx.Then(`^the health status should be "([^"]*)"$`, fc.theHealthStatusShouldBe)

	// Sheet steps
	ctx.Given(`^the "([^"]*)" sheet contains:$`, fc.theSheetContains)
	ctx.When(`^I list the sheets$`, fc.iListTheSheets)
	ctx.Then(`^the sheet list should contain "([^"]*)" with headers "([^"]*)"$`, fc.theSheetListShouldContainWithHeaders)
	ctx.When(`^I append to "([^"]*)" the row:$`, fc.iAppendToTheRow)
	ctx.When(`^I update row (\d+) of "([^"]*)" with:$`, fc.iUpdateRowOfWith)
	ctx.When(`^I delete row (\d+) of "([^"]*)"$`, fc.iDeleteRowOf)
	ctx.Then(`^"([^"]*)" should have (\d+) rows?$`, fc.sheetShouldHaveRows)
	ctx.Then(`^row (\d+) of "([^"]*)" should be "([^"]*)"$`, fc.rowOfShouldBe)
	ctx.Then(`^the response should report "([^"]*)" for "([^"]*)"$`, fc.theResponseShouldReportFor)
	ctx.When(`^the sheets are snapshotted and the server restarts$`, fc.theSheetsAreSnapshottedAndTheServerRestarts)

	// Form steps
	ctx.When(`^I set the "([^"]*)" form field "([^"]*)" to "([^"]*)"$`, fc.iSetTheFormFieldTo)
	ctx.When(`^I fill the "([^"]*)" form with:$`, fc.iFillTheFormWith)
	ctx.When(`^I begin editing row (\d+) of "([^"]*)"$`, fc.iBeginEditingRowOf)
	ctx.When(`^I submit the "([^"]*)" form$`, fc.iSubmitTheForm)
	ctx.Then(`^the "([^"]*)" form should show the "([^"]*)" label editing row (-?\d+)$`, fc.theFormShouldShowTheLabelEditingRow)
	ctx.Then(`^the "([^"]*)" form should have the message "([^"]*)" for "([^"]*)"$`, fc.theFormShouldHaveTheMessageFor)
	ctx.Then(`^the "([^"]*)" form field "([^"]*)" should be "([^"]*)"$`, fc.theFormFieldShouldBe)

	// Import and export steps
	ctx.When(`^I import into "([^"]*)" the CSV:$`, fc.iImportIntoTheCSV)
	ctx.Then(`^(\d+) rows should have been imported$`, fc.rowsShouldHaveBeenImported)
	ctx.When(`^I export "([^"]*)" as CSV$`, fc.iExportAsCSV)
	ctx.When(`^I import the exported CSV into "([^"]*)"$`, fc.iImportTheExportedCSVInto)
	ctx.Then(`^the response body should be:$`, fc.theResponseBodyShouldBe)

	// Chart steps
	ctx.When(`^I request the "([^"]*)" chart of "([^"]*)"$`, fc.iRequestTheChartOf)
	ctx.When(`^I request the "([^"]*)" chart image of "([^"]*)"$`, fc.iRequestTheChartImageOf)
	ctx.Then(`^the chart labels should be "([^"]*)"$`, fc.theChartLabelsShouldBe)
	ctx.Then(`^the chart values should be "([^"]*)"$`, fc.theChartValuesShouldBe)
	ctx.Then(`^the response should be a PNG image$`, fc.theResponseShouldBeAPNGImage)

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		fc.t = godog.T(ctx)
		fc.require = require.New(fc.t)

		fc.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		fc.stopServer()
		return ctx, err
	})
}

func (fc *FeatureContext) reset() {
	fc.database = "functional-" + uuid.NewString()
	fc.bypass = true
	fc.response = nil
	fc.body = nil
	fc.responseData = nil
}

func (fc *FeatureContext) startServer() error {
	server, err := driver.StartServer(driver.ServerOptions{
		Database:         fc.database,
		ValidationBypass: fc.bypass,
		ImportMaxBytes:   _importMaxBytes,
	})
	if err != nil {
		return err
	}

	fc.server = server
	fc.apiDriver = driver.NewAPIDriver(server.URL)
	return nil
}

func (fc *FeatureContext) stopServer() {
	if fc.server != nil {
		fc.server.Stop()
		fc.server = nil
	}
}

// record keeps the response and its body so several steps can inspect it.
func (fc *FeatureContext) record(response *http.Response, err error) error {
	if err != nil {
		return err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	fc.response = response
	fc.body = body
	fc.responseData = nil
	return nil
}

func (fc *FeatureContext) data() map[string]any {
	if fc.responseData == nil {
		fc.require.NoError(json.Unmarshal(fc.body, &fc.responseData))
	}
	return fc.responseData
}

func fetch[T any](fc *FeatureContext, response *http.Response, err error) T {
	fc.require.NoError(err)
	defer response.Body.Close()
	fc.require.Equal(http.StatusOK, response.StatusCode)

	var out T
	fc.require.NoError(json.NewDecoder(response.Body).Decode(&out))
	return out
}
