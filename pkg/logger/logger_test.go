package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/crewmart/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name           string
		logLvl         string
		expectedError  bool
		expectedLogLvl zapcore.Level
	}{
		{name: "Info", logLvl: "info", expectedLogLvl: zapcore.InfoLevel},
		{name: "Error", logLvl: "error", expectedLogLvl: zapcore.ErrorLevel},
		{name: "Debug", logLvl: "debug", expectedLogLvl: zapcore.DebugLevel},
		{name: "Warn in upper case", logLvl: " WARN ", expectedLogLvl: zapcore.WarnLevel},
		{name: "Invalid", logLvl: "invalid", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(&config.Config{LogLvl: tt.logLvl})

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.expectedLogLvl))
			if tt.expectedLogLvl > zapcore.DebugLevel {
				assert.False(t, zap.L().Core().Enabled(tt.expectedLogLvl-1))
			}
		})
	}
}
