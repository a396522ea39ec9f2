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

package trace

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestTextFormatter_Format(t *testing.T) {
	tests := []struct {
		name    string
		f       *TextFormatter
		entry   *logrus.Entry
		want    []byte
		wantErr bool
	}{
		{
			name: "debug log entry",
			f:    &TextFormatter{},
			entry: &logrus.Entry{
				Time:    time.Date(2024, time.December, 1, 23, 30, 1, 55, time.UTC),
				Level:   logrus.DebugLevel,
				Message: "test debug",
				Data:    logrus.Fields{},
			},
			want: []byte("[2024-12-01T23:30:01.000000055Z][DEBUG]: test debug\n"),
		},
		{
			name: "warning log entry with fields",
			f:    &TextFormatter{},
			entry: &logrus.Entry{
				Time:    time.Date(2024, time.December, 1, 23, 30, 1, 55, time.UTC),
				Level:   logrus.WarnLevel,
				Message: "test warning",
				Data: logrus.Fields{
					"task":  "42",
					"bytes": 1024,
				},
			},
			want: []byte("[2024-12-01T23:30:01.000000055Z][WARNING]: test warning bytes=1024 task=42\n"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f.Format(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("TextFormatter.Format() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TextFormatter.Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		verbose bool
		want    logrus.Level
	}{
		{name: "default", want: logrus.WarnLevel},
		{name: "verbose", verbose: true, want: logrus.InfoLevel},
		{name: "debug", debug: true, want: logrus.DebugLevel},
		{name: "debug wins over verbose", debug: true, verbose: true, want: logrus.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, logger := NewLogger(context.Background(), tt.debug, tt.verbose)
			entry, ok := logger.(*logrus.Entry)
			if !ok {
				t.Fatalf("NewLogger() logger = %T, want *logrus.Entry", logger)
			}
			if got := entry.Logger.GetLevel(); got != tt.want {
				t.Errorf("NewLogger() level = %v, want %v", got, tt.want)
			}
			if got := Logger(ctx); got != logger {
				t.Errorf("Logger() = %v, want %v", got, logger)
			}
		})
	}
}

func TestLogger_default(t *testing.T) {
	if got := Logger(context.Background()); got != logrus.StandardLogger() {
		t.Errorf("Logger() = %v, want standard logger", got)
	}
}

func TestWithTask(t *testing.T) {
	ctx, _ := NewLogger(context.Background(), false, false)
	ctx, logger := WithTask(ctx, "task-id")
	entry, ok := logger.(*logrus.Entry)
	if !ok {
		t.Fatalf("WithTask() logger = %T, want *logrus.Entry", logger)
	}
	if got := entry.Data["task"]; got != "task-id" {
		t.Errorf("WithTask() field task = %v, want %q", got, "task-id")
	}
	if got := Logger(ctx); got != logger {
		t.Errorf("Logger() = %v, want %v", got, logger)
	}
}
