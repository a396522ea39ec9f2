/*
Copyright The Fileops Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package trace carries the logger of a command through its context.
package trace

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey int

// loggerKey is the associated key type for logger entry in context.
const loggerKey contextKey = iota

// NewLogger returns a logger writing to stderr with the level selected by the
// debug and verbose flags, and a context carrying it.
func NewLogger(ctx context.Context, debug bool, verbose bool) (context.Context, logrus.FieldLogger) {
	var logLevel logrus.Level
	if debug {
		logLevel = logrus.DebugLevel
	} else if verbose {
		logLevel = logrus.InfoLevel
	} else {
		logLevel = logrus.WarnLevel
	}

	logger := logrus.New()
	logger.SetFormatter(&TextFormatter{})
	logger.SetLevel(logLevel)
	entry := logger.WithContext(ctx)
	return WithLogger(ctx, entry), entry
}

// WithLogger returns a context carrying the logger.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// Logger return the logger attached to context or the standard one.
func Logger(ctx context.Context) logrus.FieldLogger {
	logger, ok := ctx.Value(loggerKey).(logrus.FieldLogger)
	if !ok {
		return logrus.StandardLogger()
	}
	return logger
}

// WithTask returns a context whose logger tags every entry with the task id.
func WithTask(ctx context.Context, taskID string) (context.Context, logrus.FieldLogger) {
	logger := Logger(ctx).WithField("task", taskID)
	return WithLogger(ctx, logger), logger
}
