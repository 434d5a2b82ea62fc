package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for _, tc := range [...]struct {
		in   string
		want logiface.Level
	}{
		{``, DefaultLevel},
		{`off`, logiface.LevelDisabled},
		{`disabled`, logiface.LevelDisabled},
		{`ERROR`, logiface.LevelError},
		{`err`, logiface.LevelError},
		{` warn `, logiface.LevelWarning},
		{`info`, logiface.LevelInformational},
		{`Debug`, logiface.LevelDebug},
		{`trace`, logiface.LevelTrace},
	} {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseLevel_roundTrip(t *testing.T) {
	for level := logiface.LevelDisabled; level <= logiface.LevelTrace; level++ {
		got, err := ParseLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, got)
	}
}

func TestParseLevel_unknown(t *testing.T) {
	_, err := ParseLevel(`loud`)
	assert.ErrorContains(t, err, `"loud"`)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, logiface.LevelInformational)
	require.NotNil(t, logger)

	logger.Debug().Log(`hidden`)
	logger.Info().Str(`snippet`, `a.js`).Int(`charts`, 1).Log(`validated`)

	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.JSONEq(t, `{"lvl":"info","snippet":"a.js","charts":1,"msg":"validated"}`, strings.TrimSpace(buf.String()))
}

func TestNew_disabled(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, New(&buf, logiface.LevelDisabled))
	assert.Nil(t, New(nil, logiface.LevelDebug))

	// nil loggers are usable
	New(&buf, logiface.LevelDisabled).Err().Log(`nothing`)
	assert.Zero(t, buf.Len())
}
