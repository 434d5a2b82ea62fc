package jinjascript_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joeycumines/go-snippetcheck/jinjascript"
	"github.com/joeycumines/go-snippetcheck/jsharness"
	"github.com/joeycumines/go-snippetcheck/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_runsInHarness(t *testing.T) {
	b, err := os.ReadFile(`testdata/extrapolation_result.html`)
	require.NoError(t, err)

	scripts, err := jinjascript.Scripts(string(b), jinjascript.DefaultBlock)
	require.NoError(t, err)
	source := jinjascript.Join(scripts)
	require.True(t, jinjascript.CheckStructure(source).Balanced())

	fixture := validator.DefaultFixture()
	source, unresolved, err := jinjascript.FixtureValues(fixture).Substitute(source)
	require.NoError(t, err)
	require.Empty(t, unresolved)

	var console validator.Recorder
	document := validator.NewMockDocument(&console)
	card := validator.NewMockElement(map[string]string{validator.ConfidenceKey: `0.85`})
	document.Elements = map[string][]validator.Element{validator.CardSelector: {card}}

	h, err := jsharness.New(
		jsharness.WithSource(`extrapolation_result.html`, source),
		jsharness.WithConsole(&console),
		jsharness.WithDocument(document),
		jsharness.WithFixture(fixture),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	report := h.Run(ctx)

	require.True(t, report.Passed, console.Lines())
	assert.Equal(t, 1, report.ChartsBuilt)
	assert.Equal(t, 1, report.CardsStyled)
	assert.Equal(t, []string{`confidence-high`}, card.Classes)

	configs := console.Find(validator.MessageChartConfig)
	require.Len(t, configs, 1)
	assert.Equal(t, validator.BuildChartConfig(fixture), configs[0].Args[1])
	assert.Len(t, console.Find(validator.MessagePassed), 1)
}
