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

package console

import (
	"testing"

	containerd "github.com/containerd/console"

	"fileops.dev/fileops/cmd/fileops/internal/display/console/testutils"
)

func givenConsole(t *testing.T) (*Console, containerd.Console) {
	pty, device, err := testutils.NewPty()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = device.Close()
		_ = pty.Close()
	})
	return &Console{Console: pty}, pty
}

func validateSize(t *testing.T, gotWidth, gotHeight, wantWidth, wantHeight int) {
	t.Helper()
	if gotWidth != wantWidth {
		t.Errorf("Console.Size() gotWidth = %v, want %v", gotWidth, wantWidth)
	}
	if gotHeight != wantHeight {
		t.Errorf("Console.Size() gotHeight = %v, want %v", gotHeight, wantHeight)
	}
}

func TestConsole_Size(t *testing.T) {
	c, pty := givenConsole(t)

	// minimal width and height
	gotWidth, gotHeight := c.Size()
	validateSize(t, gotWidth, gotHeight, MinWidth, MinHeight)

	// zero width
	_ = pty.Resize(containerd.WinSize{Width: 0, Height: MinHeight})
	gotWidth, gotHeight = c.Size()
	validateSize(t, gotWidth, gotHeight, MinWidth, MinHeight)

	// zero height
	_ = pty.Resize(containerd.WinSize{Width: MinWidth, Height: 0})
	gotWidth, gotHeight = c.Size()
	validateSize(t, gotWidth, gotHeight, MinWidth, MinHeight)

	// valid width and height
	_ = pty.Resize(containerd.WinSize{Width: 200, Height: 100})
	gotWidth, gotHeight = c.Size()
	validateSize(t, gotWidth, gotHeight, 200, 100)
}

func TestConsole_rows(t *testing.T) {
	pty, device, err := testutils.NewPty()
	if err != nil {
		t.Fatal(err)
	}
	defer pty.Close()
	c := &Console{Console: pty}

	c.Save()
	c.NewRow()
	c.NewRow()
	c.OutputTo(2, "first")
	c.OutputTo(1, "second")
	c.Restore()

	if err := testutils.MatchPty(pty, device, "2Ffirst", "1Fsecond"); err != nil {
		t.Fatal(err)
	}
}
