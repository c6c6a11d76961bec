package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger_Levels(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{
		IsDevelopment:     true,
		Encoding:          "console",
		Level:             "warn",
		DisableStacktrace: true,
	})

	impl, ok := log.(*zapLogger)
	assert.True(t, ok)
	assert.False(t, impl.l.Core().Enabled(zap.InfoLevel))
	assert.True(t, impl.l.Core().Enabled(zap.WarnLevel))
}

func TestNewZapLogger_UnknownLevelKeepsDefault(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{Encoding: "json", Level: "loud"})

	impl := log.(*zapLogger)
	assert.True(t, impl.l.Core().Enabled(zap.InfoLevel))
	assert.False(t, impl.l.Core().Enabled(zap.DebugLevel))
}

func TestNop_With(t *testing.T) {
	log := NewNop().With(zap.String("component", "test"))
	log.Info("discarded")
	assert.NotNil(t, log)
}
