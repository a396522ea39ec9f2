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

package argument

import "testing"

func TestCheckers(t *testing.T) {
	tests := []struct {
		name     string
		checker  func(args []string) (bool, string)
		args     []string
		wantOK   bool
		wantText string
	}{
		{"exactly one", Exactly(1), []string{"a"}, true, "exactly 1 argument"},
		{"exactly two, got one", Exactly(2), []string{"a"}, false, "exactly 2 arguments"},
		{"at least one, got none", AtLeast(1), nil, false, "at least 1 argument"},
		{"at least two, got three", AtLeast(2), []string{"a", "b", "c"}, true, "at least 2 arguments"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, text := tt.checker(tt.args)
			if ok != tt.wantOK || text != tt.wantText {
				t.Errorf("checker() = (%v, %q), want (%v, %q)", ok, text, tt.wantOK, tt.wantText)
			}
		})
	}
}
