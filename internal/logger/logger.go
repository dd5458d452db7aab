// Package logger holds the process-wide structured logger. Output is always
// JSON; every consumer of this connector's logs is a machine.
package logger

import (
	"go.uber.org/zap"
)

// Logger is the global sugared logger. It is a nop until Initialize runs so
// packages may log safely during early startup.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize replaces the nop logger with a JSON production logger.
func Initialize() error {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	zapLogger, err := config.Build()
	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Sync flushes buffered log entries. Called on shutdown.
func Sync() {
	_ = Logger.Sync()
}
