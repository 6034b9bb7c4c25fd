package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu           sync.RWMutex
	globalLogger *Logger
)

// Logger wraps zap.SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// Init initializes the global logger. env "production" selects JSON output.
func Init(level string, env string) error {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	// No caller skip here: most call sites use *Logger directly. The
	// package-level helpers add their own frame skip.
	l, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		return err
	}
	setGlobal(&Logger{SugaredLogger: l.Sugar()})
	return nil
}

func setGlobal(l *Logger) {
	mu.Lock()
	globalLogger = l
	mu.Unlock()
}

// Get returns the global logger, falling back to a development logger.
func Get() *Logger {
	mu.RLock()
	l := globalLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if globalLogger == nil {
		dev, _ := zap.NewDevelopment()
		globalLogger = &Logger{SugaredLogger: dev.Sugar()}
	}
	return globalLogger
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// With creates a child logger with additional fields.
func (l *Logger) With(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}

// helper is the global logger skipping the package-level wrapper frame.
func helper() *zap.SugaredLogger {
	return Get().SugaredLogger.WithOptions(zap.AddCallerSkip(1))
}

// Convenience functions that use the global logger
func Debugf(template string, args ...interface{}) { helper().Debugf(template, args...) }
func Infof(template string, args ...interface{})  { helper().Infof(template, args...) }
func Warnf(template string, args ...interface{})  { helper().Warnf(template, args...) }
func Errorf(template string, args ...interface{}) { helper().Errorf(template, args...) }
func Fatalf(template string, args ...interface{}) { helper().Fatalf(template, args...) }

// Sync flushes any buffered log entries.
func Sync() error {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}
