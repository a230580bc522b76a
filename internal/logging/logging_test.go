package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/ventflow/internal/logging"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := logging.New("debug", format)
		require.NoError(t, err, format)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel), format)
	}

	l, err := logging.New("error", "json")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New("loud", "json")
	assert.Error(t, err)

	_, err = logging.New("info", "xml")
	assert.ErrorIs(t, err, logging.ErrFormat)
}

func TestWithRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := logging.WithRun(zap.New(core), "run-1")
	l.Info("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "run-1", logs.All()[0].ContextMap()["run_id"])
}
