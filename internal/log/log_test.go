package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisabledByDefault(t *testing.T) {
	var buf bytes.Buffer
	Init(nil)
	defer Init(nil)
	Info(CatEngine, "should not appear")
	require.Empty(t, buf.String())
}

func TestWritesWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)
	defer Init(nil)
	Info(CatEngine, "hello", "lang", "python")
	out := buf.String()
	require.Contains(t, out, "[INFO]")
	require.Contains(t, out, "[engine]")
	require.Contains(t, out, "hello")
	require.Contains(t, out, "lang=python")
}

func TestMinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)
	defer Init(nil)
	SetMinLevel(LevelWarn)
	defer SetMinLevel(LevelInfo)
	Info(CatEngine, "filtered out")
	Warn(CatEngine, "passes through")
	out := buf.String()
	require.False(t, strings.Contains(out, "filtered out"))
	require.True(t, strings.Contains(out, "passes through"))
}

func TestErrorErrFormatsNilAndSet(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf)
	defer Init(nil)
	ErrorErr(CatEngine, "boom", nil)
	require.Contains(t, buf.String(), "error=<nil>")
	ErrorErr(CatEngine, "boom", errors.New("disk full"))
	require.Contains(t, buf.String(), "error=disk full")
}
