package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// L is the process-wide logger, set once by Init before anything else runs.
var L *zap.SugaredLogger = zap.NewNop().Sugar()

// Init builds a production JSON logger and installs it as the package default.
func Init() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	L = base.Sugar()
	return base, nil
}
