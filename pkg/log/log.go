// Package log wraps a package-level zap logger.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	log        *zap.SugaredLogger
	baseLogger *zap.Logger
)

// Init builds the logger. Debug selects zap's development config.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	baseLogger = zapLogger
	log = zapLogger.Sugar()
	return nil
}

// Logger returns the base logger, for libraries that want a *zap.Logger.
func Logger() *zap.Logger {
	sugared()
	return baseLogger
}

func sugared() *zap.SugaredLogger {
	if log == nil {
		baseLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
		log = baseLogger.Sugar()
	}
	return log
}

// Sync flushes buffered entries.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func Infow(msg string, keysAndValues ...interface{}) {
	sugared().Infow(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...interface{}) {
	sugared().Errorw(msg, keysAndValues...)
}

func Fatal(args ...interface{}) {
	sugared().Fatal(args...)
}
