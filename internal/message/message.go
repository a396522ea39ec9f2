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

// Package message formats the localized messages shown for file operations.
package message

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	CopyFileName         = "COPY_FILE_NAME"
	CopyItemsRemaining   = "COPY_ITEMS_REMAINING"
	CopyTargetExists     = "COPY_TARGET_EXISTS_ERROR"
	CopyFilesystemError  = "COPY_FILESYSTEM_ERROR"
	CopyUnexpectedError  = "COPY_UNEXPECTED_ERROR"
	MoveFileName         = "MOVE_FILE_NAME"
	MoveItemsRemaining   = "MOVE_ITEMS_REMAINING"
	MoveTargetExists     = "MOVE_TARGET_EXISTS_ERROR"
	MoveFilesystemError  = "MOVE_FILESYSTEM_ERROR"
	MoveUnexpectedError  = "MOVE_UNEXPECTED_ERROR"
	ZipFileName          = "ZIP_FILE_NAME"
	ZipItemsRemaining    = "ZIP_ITEMS_REMAINING"
	ZipTargetExists      = "ZIP_TARGET_EXISTS_ERROR"
	ZipFilesystemError   = "ZIP_FILESYSTEM_ERROR"
	ZipUnexpectedError   = "ZIP_UNEXPECTED_ERROR"
	TransferFileName     = "TRANSFER_FILE_NAME"
	TransferItemsRemain  = "TRANSFER_ITEMS_REMAINING"
	TransferTargetExists = "TRANSFER_TARGET_EXISTS_ERROR"
	TransferFSError      = "TRANSFER_FILESYSTEM_ERROR"
	TransferUnexpected   = "TRANSFER_UNEXPECTED_ERROR"
	DeleteFileName       = "DELETE_FILE_NAME"
	DeleteItemsRemaining = "DELETE_ITEMS_REMAINING"
	DeleteError          = "DELETE_ERROR"

	FileErrorGeneric               = "FILE_ERROR_GENERIC"
	FileErrorNotFound              = "FILE_ERROR_NOT_FOUND"
	FileErrorSecurity              = "FILE_ERROR_SECURITY"
	FileErrorNoSpace               = "FILE_ERROR_NO_SPACE"
	FileErrorPathExists            = "FILE_ERROR_PATH_EXISTS"
	FileErrorInvalidModification   = "FILE_ERROR_INVALID_MODIFICATION"
	FileErrorNoModificationAllowed = "FILE_ERROR_NO_MODIFICATION_ALLOWED"
)

// Defaults returns a copy of the built-in English messages.
func Defaults() map[string]string {
	return map[string]string{
		CopyFileName:         "Copying %s...",
		CopyItemsRemaining:   "Copying %d items...",
		CopyTargetExists:     "%s already exists.",
		CopyFilesystemError:  "Copy operation failed. %s",
		CopyUnexpectedError:  "Copy operation failed. Unexpected error: %s",
		MoveFileName:         "Moving %s...",
		MoveItemsRemaining:   "Moving %d items...",
		MoveTargetExists:     "%s already exists.",
		MoveFilesystemError:  "Move operation failed. %s",
		MoveUnexpectedError:  "Move operation failed. Unexpected error: %s",
		ZipFileName:          "Zipping %s...",
		ZipItemsRemaining:    "Zipping %d items...",
		ZipTargetExists:      "%s already exists.",
		ZipFilesystemError:   "Zip operation failed. %s",
		ZipUnexpectedError:   "Zip operation failed. Unexpected error: %s",
		TransferFileName:     "Transferring %s...",
		TransferItemsRemain:  "Transferring %d items...",
		TransferTargetExists: "%s already exists.",
		TransferFSError:      "Transfer failed. %s",
		TransferUnexpected:   "Transfer failed. Unexpected error: %s",
		DeleteFileName:       "Deleting \"%s\"...",
		DeleteItemsRemaining: "Deleting %d items...",
		DeleteError:          "Deletion failed.",

		FileErrorGeneric:               "An unknown error occurred.",
		FileErrorNotFound:              "The file or directory could not be found.",
		FileErrorSecurity:              "Access denied.",
		FileErrorNoSpace:               "There is not enough space.",
		FileErrorPathExists:            "A file or directory with this name already exists.",
		FileErrorInvalidModification:   "Invalid operation.",
		FileErrorNoModificationAllowed: "The file or directory cannot be modified.",
	}
}

// fileErrorKeys maps file error names to message keys.
var fileErrorKeys = map[string]string{
	"NotFoundError":              FileErrorNotFound,
	"SecurityError":              FileErrorSecurity,
	"QuotaExceededError":         FileErrorNoSpace,
	"PathExistsError":            FileErrorPathExists,
	"InvalidModificationError":   FileErrorInvalidModification,
	"NoModificationAllowedError": FileErrorNoModificationAllowed,
}

// Catalog formats messages for a single language.
type Catalog struct {
	printer *message.Printer
}

// New creates a catalog serving messages in the given language. Messages are
// printf-style formats keyed by message key.
func New(tag language.Tag, messages map[string]string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(tag))
	for key, msg := range messages {
		if err := b.SetString(tag, key, msg); err != nil {
			return nil, err
		}
	}
	return &Catalog{
		printer: message.NewPrinter(tag, message.Catalog(b)),
	}, nil
}

// Default returns a catalog of the built-in English messages.
func Default() *Catalog {
	c, err := New(language.English, Defaults())
	if err != nil {
		// built-in messages are plain strings
		panic(err)
	}
	return c
}

// Format formats the message registered under key.
func (c *Catalog) Format(key string, args ...any) string {
	return c.printer.Sprintf(key, args...)
}

// FileError returns the message describing a file error name. Unknown names
// are described by the generic message.
func (c *Catalog) FileError(name string) string {
	key, ok := fileErrorKeys[name]
	if !ok {
		key = FileErrorGeneric
	}
	return c.Format(key)
}
