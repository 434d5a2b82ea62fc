package jinjascript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func templateScript(t *testing.T) string {
	t.Helper()
	scripts, err := Scripts(readTemplate(t), DefaultBlock)
	require.NoError(t, err)
	return Join(scripts)
}

func TestCheckStructure_template(t *testing.T) {
	report := CheckStructure(templateScript(t))
	assert.True(t, report.Balanced(), report.String())
	assert.Equal(t, 1, report.IfTags)
	assert.Equal(t, 1, report.EndIfTags)
	assert.Positive(t, report.Braces.Open)
}

func TestCheckStructure_truncated(t *testing.T) {
	src := templateScript(t)
	i := strings.LastIndex(src, `});`)
	require.Positive(t, i)

	report := CheckStructure(src[:i])
	assert.False(t, report.Balanced())
	assert.False(t, report.Braces.Balanced())
	assert.False(t, report.Parens.Balanced())
	assert.True(t, report.Brackets.Balanced())
	assert.Equal(t, report.Braces.Open-1, report.Braces.Close)
}

func TestCheckStructure_unmatchedIf(t *testing.T) {
	report := CheckStructure(`{% if a %}x;{% if b %}y;{% endif %}`)
	assert.Equal(t, 2, report.IfTags)
	assert.Equal(t, 1, report.EndIfTags)
	assert.True(t, report.Braces.Balanced())
	assert.False(t, report.Balanced())
}

func TestStructureReport_String(t *testing.T) {
	got := CheckStructure(`f({a: [1]});`).String()
	assert.Equal(t, "braces: { 1 vs } 1\n"+
		"parens: ( 1 vs ) 1\n"+
		"brackets: [ 1 vs ] 1\n"+
		"template conditionals: if 0 vs endif 0\n"+
		"preview:\n"+
		"f({a: [1]});", got)
}

func TestPreview(t *testing.T) {
	for _, tc := range [...]struct {
		src  string
		n    int
		want string
	}{
		{``, 3, ``},
		{`abc`, 3, `abc`},
		{`abcd`, 3, `abc...`},
		{`abc`, 0, `...`},
		{`abc`, -1, `...`},
		{`héllo`, 2, `hé...`},
		{`✅✅✅`, 3, `✅✅✅`},
	} {
		assert.Equal(t, tc.want, Preview(tc.src, tc.n), "%q %d", tc.src, tc.n)
	}
}
