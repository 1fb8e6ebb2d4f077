package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	log, err := New("warn", &buf)
	require.NoError(t, err)

	log.Info("plan computed")
	log.Warn("negative target count treated as zero", zap.Int("target", -1))

	out := buf.String()
	assert.NotContains(t, out, "plan computed")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "hellfloat")
	assert.Contains(t, out, `"target": -1`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNewWithLevel_CanBeRaisedLater(t *testing.T) {
	var buf bytes.Buffer

	lvl, err := ParseLevel("error")
	require.NoError(t, err)

	log := NewWithLevel(lvl, &buf)
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	lvl.SetLevel(zapcore.DebugLevel)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
