package steps

import (
	"time"
)

func (fc *FeatureContext) waitForDuration(duration string) error {
	d, err := time.ParseDuration(duration)
	if err != nil {
		return err
	}
	time.Sleep(d)
	return nil
}

func (fc *FeatureContext) theRecordServerIsRunning() error {
	return fc.startServer()
}

func (fc *FeatureContext) theRecordServerIsRunningWithValidationEnforced() error {
	fc.bypass = false
	return fc.startServer()
}

func (fc *FeatureContext) theResponseStatusCodeShouldBe(code int) error {
	fc.require.Equal(code, fc.response.StatusCode, "Unexpected status code: %s", string(fc.body))
	return nil
}
