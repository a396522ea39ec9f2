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
)

// ErrorCode classifies the failure of a task. Codes other than the registered
// ones are unexpected errors.
type ErrorCode string

// Registered error codes.
const (
	ErrorTargetExists   ErrorCode = "TARGET_EXISTS"
	ErrorFilesystem     ErrorCode = "FILESYSTEM_ERROR"
	ErrorDigestMismatch ErrorCode = "DIGEST_MISMATCH"
	ErrorUnexpected     ErrorCode = "UNEXPECTED"
)

// Error is the failure of a task.
type Error struct {
	Code ErrorCode

	// Name is the entry name for ErrorTargetExists and the file error name
	// for ErrorFilesystem.
	Name string

	// IsDirectory is true if the conflicting target is a directory.
	IsDirectory bool

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	case e.Name != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Name)
	default:
		return string(e.Code)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// File error names reported with ErrorFilesystem.
const (
	FileErrorNotFound              = "NotFoundError"
	FileErrorSecurity              = "SecurityError"
	FileErrorQuotaExceeded         = "QuotaExceededError"
	FileErrorPathExists            = "PathExistsError"
	FileErrorNoModificationAllowed = "NoModificationAllowedError"
	FileErrorInvalidModification   = "InvalidModificationError"
)

// FileErrorName returns the file error name describing err, or an empty
// string if err is not recognized.
func FileErrorName(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return FileErrorNotFound
	case errors.Is(err, fs.ErrPermission):
		return FileErrorSecurity
	case errors.Is(err, fs.ErrExist):
		return FileErrorPathExists
	case errors.Is(err, syscall.ENOSPC):
		return FileErrorQuotaExceeded
	case errors.Is(err, syscall.EROFS):
		return FileErrorNoModificationAllowed
	case errors.Is(err, syscall.ENOTEMPTY), errors.Is(err, syscall.EISDIR):
		return FileErrorInvalidModification
	default:
		return ""
	}
}

// toError classifies err as a task failure.
func toError(err error) *Error {
	var opErr *Error
	if errors.As(err, &opErr) {
		return opErr
	}
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	var errno syscall.Errno
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &errno) {
		return &Error{
			Code: ErrorFilesystem,
			Name: FileErrorName(err),
			Err:  err,
		}
	}
	return &Error{
		Code: ErrorUnexpected,
		Err:  err,
	}
}
