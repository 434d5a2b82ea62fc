package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joeycumines/go-snippetcheck/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const templatePath = `../../jinjascript/testdata/extrapolation_result.html`

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func expectedStdout() string {
	config := validator.BuildChartConfig(validator.DefaultFixture())
	return validator.MessageListenerAdded + " " + validator.EventDOMContentLoaded + "\n" +
		validator.MessageChartInitialized + "\n" +
		validator.MessageChartConfig + " " + config.String() + "\n" +
		validator.MessagePassed + "\n"
}

func TestRoot_native(t *testing.T) {
	stdout, stderr, err := execute(t, ``)
	require.NoError(t, err)
	assert.Equal(t, expectedStdout(), stdout)
	assert.Empty(t, stderr)
}

func TestRoot_harness(t *testing.T) {
	stdout, stderr, err := execute(t, ``, `--harness`)
	require.NoError(t, err)
	assert.Equal(t, expectedStdout(), stdout)
	assert.Empty(t, stderr)
}

func TestRoot_template(t *testing.T) {
	stdout, stderr, err := execute(t, ``, `--template`, templatePath, `--strict`)
	require.NoError(t, err, stderr)
	assert.Equal(t, expectedStdout(), stdout)
	assert.Empty(t, stderr)
}

func TestRoot_nativeDeferred(t *testing.T) {
	stdout, _, err := execute(t, ``, `--deferred`)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, validator.MessagePassed, lines[1])
	assert.Equal(t, validator.MessageChartInitialized, lines[2])
}

func TestRoot_jsFailure(t *testing.T) {
	path := writeFile(t, `broken.js`, `throw new Error('boom');`)

	stdout, stderr, err := execute(t, ``, `--js`, path)
	require.NoError(t, err)
	assert.NotContains(t, stdout, validator.MessagePassed)
	assert.Contains(t, stderr, validator.MessageFailed+` `)
	assert.Contains(t, stderr, `boom`)

	_, _, err = execute(t, ``, `--js`, path, `--strict`)
	assert.ErrorIs(t, err, errValidationFailed)
}

func TestRoot_jsStdin(t *testing.T) {
	stdout, _, err := execute(t, `console.log('from stdin');`, `--js`, `-`, `--strict`)
	require.NoError(t, err)
	assert.Equal(t, "from stdin\n"+validator.MessagePassed+"\n", stdout)
}

func TestRoot_timeout(t *testing.T) {
	_, stderr, err := execute(t, `for (;;) {}`, `--js`, `-`, `--timeout`, `50ms`, `--strict`)
	assert.ErrorIs(t, err, errValidationFailed)
	assert.Contains(t, stderr, validator.MessageFailed)
}

func TestRoot_logLevel(t *testing.T) {
	_, stderr, err := execute(t, ``, `--log-level`, `info`)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"snippet validation passed"`)

	_, _, err = execute(t, ``, `--log-level`, `loud`)
	assert.ErrorContains(t, err, `unknown level`)
}

func TestRoot_invalidFlags(t *testing.T) {
	_, _, err := execute(t, ``, `--js`, `a.js`, `--template`, `b.html`)
	assert.Error(t, err)

	_, _, err = execute(t, ``, `unexpected`)
	assert.Error(t, err)

	_, _, err = execute(t, ``, `--template`, filepath.Join(t.TempDir(), `missing.html`))
	assert.Error(t, err)
}

func TestStructure_template(t *testing.T) {
	stdout, _, err := execute(t, ``, `structure`, templatePath, `--strict`)
	require.NoError(t, err)
	assert.Contains(t, stdout, "template conditionals: if 1 vs endif 1\n")
	assert.Contains(t, stdout, "preview:\n")
}

func TestStructure_unbalanced(t *testing.T) {
	path := writeFile(t, `truncated.js`, `document.addEventListener('DOMContentLoaded', function() {`)

	stdout, _, err := execute(t, ``, `structure`, `--raw`, path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "braces: { 1 vs } 0\n")

	_, _, err = execute(t, ``, `structure`, `--raw`, path, `--strict`)
	assert.ErrorContains(t, err, `unbalanced`)
}

func TestParity_default(t *testing.T) {
	stdout, _, err := execute(t, ``, `parity`, `--strict`)
	require.NoError(t, err)
	assert.Equal(t, "console output identical (4 lines)\n", stdout)
}

func TestParity_template(t *testing.T) {
	stdout, _, err := execute(t, ``, `parity`, `--template`, templatePath, `--strict`)
	require.NoError(t, err)
	assert.Equal(t, "console output identical (4 lines)\n", stdout)
}

func TestParity_differs(t *testing.T) {
	path := writeFile(t, `quiet.js`, `// nothing happens`)

	stdout, _, err := execute(t, ``, `parity`, `--js`, path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "--- native\n+++ harness\n")
	assert.Contains(t, stdout, "-"+validator.MessageChartInitialized+"\n")
	assert.Contains(t, stdout, " "+validator.MessagePassed+"\n")

	_, _, err = execute(t, ``, `parity`, `--js`, path, `--strict`)
	assert.ErrorContains(t, err, `differs`)
}
