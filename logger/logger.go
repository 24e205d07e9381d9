/*
 * Copyright 2025 The Streamwind Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package logger provides leveled logging for the Streamwind engine,
// backed by zap. The engine only depends on the Logger interface so that
// embedders can supply their own implementation.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level defines log levels.
type Level int

const (
	// DEBUG displays detailed debug information
	DEBUG Level = iota
	// INFO displays general information
	INFO
	// WARN displays warning information
	WARN
	// ERROR only displays error information
	ERROR
	// OFF disables logging
	OFF
)

// Logger is the logging interface used throughout the engine.
type Logger interface {
	// Debug records debug level logs
	Debug(format string, args ...interface{})
	// Info records info level logs
	Info(format string, args ...interface{})
	// Warn records warning level logs
	Warn(format string, args ...interface{})
	// Error records error level logs
	Error(format string, args ...interface{})
	// SetLevel sets the log level
	SetLevel(level Level)
	// Named returns a child logger with the given name segment appended.
	Named(name string) Logger
}

func zapLevel(level Level) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		// OFF: nothing below FatalLevel+1 passes
		return zapcore.FatalLevel + 1
	}
}

// zapLogger adapts a zap.SugaredLogger to the Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
}

// New creates a logger writing to stdout at the given level. The
// STREAMWIND_DEBUG environment variable switches to the development
// encoder.
func New(level Level) Logger {
	atom := zap.NewAtomicLevelAt(zapLevel(level))

	var config zap.Config
	if os.Getenv("STREAMWIND_DEBUG") == "true" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = atom
	config.OutputPaths = []string{"stdout"}

	zl, err := config.Build()
	if err != nil {
		panic(err)
	}
	return &zapLogger{sugar: zl.Named("streamwind").Sugar(), level: atom}
}

// FromZap wraps an existing SugaredLogger. SetLevel is a no-op for
// wrapped loggers; level control stays with the owner of the zap config.
func FromZap(sugar *zap.SugaredLogger) Logger {
	return &zapLogger{sugar: sugar}
}

func (l *zapLogger) Debug(format string, args ...interface{}) { l.sugar.Debugf(format, args...) }
func (l *zapLogger) Info(format string, args ...interface{})  { l.sugar.Infof(format, args...) }
func (l *zapLogger) Warn(format string, args ...interface{})  { l.sugar.Warnf(format, args...) }
func (l *zapLogger) Error(format string, args ...interface{}) { l.sugar.Errorf(format, args...) }

func (l *zapLogger) SetLevel(level Level) {
	if l.level != (zap.AtomicLevel{}) {
		l.level.SetLevel(zapLevel(level))
	}
}

func (l *zapLogger) Named(name string) Logger {
	return &zapLogger{sugar: l.sugar.Named(name), level: l.level}
}

// NewDiscardLogger creates a logger that discards all output. Used in
// tests and by embedders that bring their own logging.
func NewDiscardLogger() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// Global default logger
var defaultInstance = New(INFO)

// SetDefault sets the global default logger.
func SetDefault(logger Logger) {
	defaultInstance = logger
}

// GetDefault gets the global default logger.
func GetDefault() Logger {
	return defaultInstance
}

// Debug uses the default logger to record debug information.
func Debug(format string, args ...interface{}) {
	defaultInstance.Debug(format, args...)
}

// Info uses the default logger to record information.
func Info(format string, args ...interface{}) {
	defaultInstance.Info(format, args...)
}

// Warn uses the default logger to record warnings.
func Warn(format string, args ...interface{}) {
	defaultInstance.Warn(format, args...)
}

// Error uses the default logger to record errors.
func Error(format string, args ...interface{}) {
	defaultInstance.Error(format, args...)
}
