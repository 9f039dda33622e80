package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L     *zap.Logger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = level
	var err error
	L, err = config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
}

// SetLevel changes the level of L and every logger derived from it.
// An unknown name leaves the level untouched.
func SetLevel(name string) error {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil {
		return err
	}
	level.SetLevel(lvl)
	return nil
}

// WithComponent tags the logger with the layer it serves (handler, service, mq, console, ...).
func WithComponent(component string) *zap.Logger {
	return L.With(zap.String("component", component))
}
