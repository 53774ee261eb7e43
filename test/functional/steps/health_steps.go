package steps

func (fc *FeatureContext) iCallTheHealthzEndpoint() error {
	return fc.record(fc.apiDriver.GetHealthz())
}

func (fc *FeatureContext) theHealthStatusShouldBe(status string) error {
	fc.require.Equal(status, fc.data()["status"])
	return nil
}
