// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package validator

import (
	"encoding/json"
)

// ChartTypeBar is the only chart type the page draws.
const ChartTypeBar = `bar`

// DatasetLabel labels the single dataset of the relationship chart.
const DatasetLabel = `Predictions`

type (
	// ChartConfig is the Chart.js configuration passed to the chart
	// constructor. The JSON encoding matches the object literal on the page.
	ChartConfig struct {
		Type    string       `json:"type"`
		Data    ChartData    `json:"data"`
		Options ChartOptions `json:"options"`
	}

	ChartData struct {
		Labels   []string  `json:"labels"`
		Datasets []Dataset `json:"datasets"`
	}

	Dataset struct {
		Label           string    `json:"label"`
		Data            []float64 `json:"data"`
		BackgroundColor []string  `json:"backgroundColor"`
		BorderColor     []string  `json:"borderColor"`
		BorderWidth     int       `json:"borderWidth"`
	}

	ChartOptions struct {
		Responsive          bool         `json:"responsive"`
		MaintainAspectRatio bool         `json:"maintainAspectRatio"`
		Scales              ChartScales  `json:"scales"`
		Plugins             ChartPlugins `json:"plugins"`
	}

	ChartScales struct {
		Y ChartAxis `json:"y"`
	}

	ChartAxis struct {
		BeginAtZero bool       `json:"beginAtZero"`
		Ticks       ChartTicks `json:"ticks"`
	}

	ChartTicks struct {
		Precision int `json:"precision"`
	}

	ChartPlugins struct {
		Legend ChartLegend `json:"legend"`
	}

	ChartLegend struct {
		Display bool `json:"display"`
	}
)

var (
	// BackgroundColors is the fill palette, one entry per bar, cycling.
	BackgroundColors = []string{
		`rgba(255, 99, 132, 0.6)`,
		`rgba(54, 162, 235, 0.6)`,
		`rgba(255, 206, 86, 0.6)`,
		`rgba(75, 192, 192, 0.6)`,
		`rgba(153, 102, 255, 0.6)`,
		`rgba(255, 159, 64, 0.6)`,
	}

	// BorderColors is the opaque variant of BackgroundColors.
	BorderColors = []string{
		`rgba(255, 99, 132, 1)`,
		`rgba(54, 162, 235, 1)`,
		`rgba(255, 206, 86, 1)`,
		`rgba(75, 192, 192, 1)`,
		`rgba(153, 102, 255, 1)`,
		`rgba(255, 159, 64, 1)`,
	}
)

// BuildChartConfig builds the relationship chart configuration from the
// fixture. Label and count lengths are not checked against each other.
func BuildChartConfig(fixture Fixture) *ChartConfig {
	return &ChartConfig{
		Type: ChartTypeBar,
		Data: ChartData{
			Labels: fixture.Labels,
			Datasets: []Dataset{{
				Label:           DatasetLabel,
				Data:            fixture.Counts,
				BackgroundColor: append([]string(nil), BackgroundColors...),
				BorderColor:     append([]string(nil), BorderColors...),
				BorderWidth:     1,
			}},
		},
		Options: ChartOptions{
			Responsive:          true,
			MaintainAspectRatio: false,
			Scales: ChartScales{Y: ChartAxis{
				BeginAtZero: true,
				Ticks:       ChartTicks{Precision: 0},
			}},
			Plugins: ChartPlugins{Legend: ChartLegend{Display: false}},
		},
	}
}

// String renders the config as indented JSON, which is how it appears in
// console output.
func (x *ChartConfig) String() string {
	if x == nil {
		return `null`
	}
	b, err := json.MarshalIndent(x, ``, `  `)
	if err != nil {
		return err.Error()
	}
	return string(b)
}
