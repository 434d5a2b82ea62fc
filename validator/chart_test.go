package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChartConfig(t *testing.T) {
	fixture := DefaultFixture()
	config := BuildChartConfig(fixture)

	assert.Equal(t, ChartTypeBar, config.Type)
	assert.Equal(t, fixture.Labels, config.Data.Labels)
	require.Len(t, config.Data.Datasets, 1)

	dataset := config.Data.Datasets[0]
	assert.Equal(t, DatasetLabel, dataset.Label)
	assert.Equal(t, fixture.Counts, dataset.Data)
	assert.Equal(t, BackgroundColors, dataset.BackgroundColor)
	assert.Equal(t, BorderColors, dataset.BorderColor)
	assert.Equal(t, 1, dataset.BorderWidth)

	assert.True(t, config.Options.Responsive)
	assert.False(t, config.Options.MaintainAspectRatio)
	assert.True(t, config.Options.Scales.Y.BeginAtZero)
	assert.Equal(t, 0, config.Options.Scales.Y.Ticks.Precision)
	assert.False(t, config.Options.Plugins.Legend.Display)
}

func TestBuildChartConfig_paletteIsCopied(t *testing.T) {
	config := BuildChartConfig(DefaultFixture())
	config.Data.Datasets[0].BackgroundColor[0] = `red`
	assert.Equal(t, `rgba(255, 99, 132, 0.6)`, BackgroundColors[0])
}

func TestBuildChartConfig_mismatchedLengthsUnchecked(t *testing.T) {
	config := BuildChartConfig(Fixture{Labels: []string{`a`, `b`}, Counts: []float64{1}})
	assert.Len(t, config.Data.Labels, 2)
	assert.Len(t, config.Data.Datasets[0].Data, 1)
}

func TestChartConfig_jsonShape(t *testing.T) {
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(BuildChartConfig(DefaultFixture()).String()), &decoded))

	assert.Equal(t, `bar`, decoded[`type`])

	options := decoded[`options`].(map[string]any)
	assert.Equal(t, false, options[`maintainAspectRatio`])
	legend := options[`plugins`].(map[string]any)[`legend`].(map[string]any)
	assert.Equal(t, false, legend[`display`])

	datasets := decoded[`data`].(map[string]any)[`datasets`].([]any)
	require.Len(t, datasets, 1)
	assert.Equal(t, []any{10.0, 20.0, 30.0}, datasets[0].(map[string]any)[`data`])
}

func TestChartConfig_String_nil(t *testing.T) {
	var config *ChartConfig
	assert.Equal(t, `null`, config.String())
}
