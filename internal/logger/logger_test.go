package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCallerReportsCallSite(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Get()
	setGlobal(&Logger{SugaredLogger: zap.New(core, zap.AddCaller()).Sugar()})
	t.Cleanup(func() { setGlobal(prev) })

	Infof("package level %d", 1)
	Get().With("component", "test").Infof("direct %d", 2)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.True(t, e.Caller.Defined, e.Message)
		assert.Equal(t, "logger_test.go", filepath.Base(e.Caller.File), e.Message)
	}
	assert.Equal(t, "package level 1", entries[0].Message)
	assert.Equal(t, "direct 2", entries[1].Message)
}

func TestInitLevels(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { setGlobal(prev) })

	require.NoError(t, Init("warn", "production"))
	assert.False(t, Get().Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Get().Desugar().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, Init("bogus", "development"))
	assert.True(t, Get().Desugar().Core().Enabled(zapcore.InfoLevel))
}
