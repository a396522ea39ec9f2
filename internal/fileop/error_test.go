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

package fileop

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"
)

func TestFileErrorName(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "not exist", err: &fs.PathError{Op: "open", Path: "a", Err: fs.ErrNotExist}, want: FileErrorNotFound},
		{name: "permission", err: &fs.PathError{Op: "open", Path: "a", Err: syscall.EACCES}, want: FileErrorSecurity},
		{name: "exist", err: fmt.Errorf("wrapped: %w", fs.ErrExist), want: FileErrorPathExists},
		{name: "no space", err: &fs.PathError{Op: "write", Path: "a", Err: syscall.ENOSPC}, want: FileErrorQuotaExceeded},
		{name: "read-only", err: &os.LinkError{Op: "rename", Old: "a", New: "b", Err: syscall.EROFS}, want: FileErrorNoModificationAllowed},
		{name: "unknown", err: errors.New("boom"), want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileErrorName(tt.err); got != tt.want {
				t.Errorf("FileErrorName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_toError(t *testing.T) {
	opErr := &Error{Code: ErrorTargetExists, Name: "a"}
	if got := toError(fmt.Errorf("wrapped: %w", opErr)); got != opErr {
		t.Errorf("toError() = %v, want %v", got, opErr)
	}

	pathErr := &fs.PathError{Op: "open", Path: "a", Err: fs.ErrNotExist}
	got := toError(pathErr)
	if got.Code != ErrorFilesystem || got.Name != FileErrorNotFound || !errors.Is(got, fs.ErrNotExist) {
		t.Errorf("toError() = %+v, want filesystem error", got)
	}

	got = toError(errors.New("boom"))
	if got.Code != ErrorUnexpected {
		t.Errorf("toError() code = %v, want %v", got.Code, ErrorUnexpected)
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{name: "code only", err: &Error{Code: ErrorUnexpected}, want: "UNEXPECTED"},
		{name: "with name", err: &Error{Code: ErrorTargetExists, Name: "a.txt"}, want: "TARGET_EXISTS: a.txt"},
		{name: "with cause", err: &Error{Code: ErrorFilesystem, Name: FileErrorNotFound, Err: errors.New("boom")}, want: "FILESYSTEM_ERROR: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventType_String(t *testing.T) {
	tests := map[EventType]string{
		EventBegin:    "BEGIN",
		EventProgress: "PROGRESS",
		EventSuccess:  "SUCCESS",
		EventError:    "ERROR",
		EventCanceled: "CANCELED",
		EventType(42): "EventType(42)",
	}
	for e, want := range tests {
		if got := e.String(); got != want {
			t.Errorf("EventType.String() = %q, want %q", got, want)
		}
	}
}
