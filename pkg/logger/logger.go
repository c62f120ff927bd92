package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var L *zap.Logger

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

func init() {
	if lv, err := zapcore.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && os.Getenv("LOG_LEVEL") != "" {
		level.SetLevel(lv)
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = level
	var err error
	L, err = config.Build()
	if err != nil {
		panic(err)
	}
}

// WithComponent returns a logger tagged with the component field (handler, service, repository, http, cli).
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}

// SetLevel changes the level of every logger derived from L.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

func Sync() {
	_ = L.Sync()
}
