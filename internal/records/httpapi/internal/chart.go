package internal

import (
	"recordbook-server/internal/records/chart"
	"recordbook-server/internal/records/usecases"
)

type ChartResponse struct {
	Kind         string         `json:"kind"`
	Revision     uint64         `json:"revision"`
	Labels       []chart.Label  `json:"labels"`
	Values       []chart.Number `json:"values"`
	DatasetLabel string         `json:"dataset_label"`
	XTitle       string         `json:"x_title"`
	YTitle       string         `json:"y_title"`
}

func ToChartResponse(view usecases.ChartView) ChartResponse {
	return ChartResponse{
		Kind:         string(view.Series.Kind),
		Revision:     view.Revision,
		Labels:       view.Series.Labels,
		Values:       view.Series.Values,
		DatasetLabel: view.Series.DatasetLabel,
		XTitle:       view.Series.XTitle,
		YTitle:       view.Series.YTitle,
	}
}
