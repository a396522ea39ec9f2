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

package message

import (
	"testing"

	"golang.org/x/text/language"
)

func TestCatalog_Format(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		key  string
		args []any
		want string
	}{
		{name: "file name", key: CopyFileName, args: []any{"sample.txt"}, want: "Copying sample.txt..."},
		{name: "items remaining", key: MoveItemsRemaining, args: []any{3}, want: "Moving 3 items..."},
		{name: "grouped count", key: DeleteItemsRemaining, args: []any{1200}, want: "Deleting 1,200 items..."},
		{name: "no argument", key: DeleteError, want: "Deletion failed."},
		{name: "unexpected error", key: ZipUnexpectedError, args: []any{"EIO"}, want: "Zip operation failed. Unexpected error: EIO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Format(tt.key, tt.args...); got != tt.want {
				t.Errorf("Catalog.Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalog_FileError(t *testing.T) {
	c := Default()
	tests := []struct {
		name string
		want string
	}{
		{name: "NotFoundError", want: "The file or directory could not be found."},
		{name: "SecurityError", want: "Access denied."},
		{name: "QuotaExceededError", want: "There is not enough space."},
		{name: "sample.txt", want: "An unknown error occurred."},
		{name: "", want: "An unknown error occurred."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.FileError(tt.name); got != tt.want {
				t.Errorf("Catalog.FileError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew_custom(t *testing.T) {
	c, err := New(language.English, map[string]string{
		CopyFileName:     "Copying %s...",
		FileErrorGeneric: "File error generic.",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, want := c.Format(CopyFileName, "a.txt"), "Copying a.txt..."; got != want {
		t.Errorf("Catalog.Format() = %q, want %q", got, want)
	}
	if got, want := c.FileError("whatever"), "File error generic."; got != want {
		t.Errorf("Catalog.FileError() = %q, want %q", got, want)
	}
}
