package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/crewmart/internal/config"
)

const (
	timeLayout = "15:04:05 02-01-2006"
	name       = "crewmart"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// Level resolves a configured level name, case-insensitively.
func Level(raw string) (zapcore.Level, error) {
	lvl, ok := logLvlMap[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("unsupported log lvl: %s", raw)
	}
	return lvl, nil
}

// InitLogger builds the console logger and installs it as zap.L().
func InitLogger(conf *config.Config) error {
	lvl, err := Level(conf.LogLvl)
	if err != nil {
		return err
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build(zap.AddCaller())
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named(name))
	return nil
}
