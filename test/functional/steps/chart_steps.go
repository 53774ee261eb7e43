package steps

import (
	"bytes"
	"fmt"
	"strings"
)

var _pngMagic = []byte("\x89PNG\r\n\x1a\n")

func (fc *FeatureContext) iRequestTheChartOf(kind, sheet string) error {
	return fc.record(fc.apiDriver.GetChart(sheet, kind))
}

func (fc *FeatureContext) iRequestTheChartImageOf(kind, sheet string) error {
	return fc.record(fc.apiDriver.GetChartImage(sheet, kind))
}

// joined renders a JSON list as "a|b|null" for comparison with a step argument.
func joined(values any) string {
	list, _ := values.([]any)
	parts := make([]string, len(list))
	for i, v := range list {
		if v == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "|")
}

func (fc *FeatureContext) theChartLabelsShouldBe(labels string) error {
	fc.require.Equal(labels, joined(fc.data()["labels"]))
	return nil
}

func (fc *FeatureContext) theChartValuesShouldBe(values string) error {
	fc.require.Equal(values, joined(fc.data()["values"]))
	return nil
}

func (fc *FeatureContext) theResponseShouldBeAPNGImage() error {
	fc.require.Equal("image/png", fc.response.Header.Get("Content-Type"))
	fc.require.True(bytes.HasPrefix(fc.body, _pngMagic), "body is not a PNG")
	return nil
}
