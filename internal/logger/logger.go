// Package logger builds the logr.Logger used across the generator.
package logger

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. debug switches to the
// development config and enables V(1) messages.
func New(debug bool) (logr.Logger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-1))
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = !debug
	cfg.Sampling = nil

	zl, err := cfg.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("failed to build logger: %w", err)
	}
	return zapr.NewLogger(zl).WithName("service-ts-gen"), nil
}
