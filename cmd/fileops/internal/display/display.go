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

package display

import (
	"fmt"
	"io"
	"os"
	"sync"

	"fileops.dev/fileops/cmd/fileops/internal/display/humanize"
	"fileops.dev/fileops/cmd/fileops/internal/display/tty"
	"fileops.dev/fileops/internal/progress"
)

// ProgressHandler renders the progress items of a command.
type ProgressHandler interface {
	// OnItem is called with a copy of every updated item.
	OnItem(item *progress.Item)

	// Close renders the final state of every item.
	Close() error
}

// NewProgressHandler returns a handler drawing progress bars on tty, or
// printing a line per state change to out if tty is nil.
func NewProgressHandler(ttyFile *os.File, out io.Writer) (ProgressHandler, error) {
	if ttyFile == nil {
		return NewTextHandler(out), nil
	}
	return tty.NewManager(ttyFile)
}

// TextHandler prints a line every time an item changes state.
type TextHandler struct {
	out   io.Writer
	lock  sync.Mutex
	state map[string]progress.State
}

// NewTextHandler returns a handler printing to out.
func NewTextHandler(out io.Writer) *TextHandler {
	return &TextHandler{
		out:   out,
		state: make(map[string]progress.State),
	}
}

// OnItem prints the item if its state changed.
func (h *TextHandler) OnItem(item *progress.Item) {
	h.lock.Lock()
	defer h.lock.Unlock()
	if state, ok := h.state[item.ID]; ok && state == item.State {
		return
	}
	h.state[item.ID] = item.State

	id := shortID(item.ID)
	switch item.State {
	case progress.StateProgressing:
		h.printf("%s %s\n", id, item.Message)
	case progress.StateCompleted:
		h.printf("%s Completed %s (%s)\n", id, item.Type, humanize.ToBytes(item.ProgressMax))
	case progress.StateError:
		h.printf("%s Failed: %s\n", id, item.Message)
	case progress.StateCanceled:
		h.printf("%s Canceled %s at %d%%\n", id, item.Type, item.ProgressRateInPercent())
	}
}

// Close does nothing since every line is printed as it happens.
func (h *TextHandler) Close() error {
	return nil
}

func (h *TextHandler) printf(format string, a ...any) {
	// output errors do not stop the transfer
	_, _ = fmt.Fprintf(h.out, format, a...)
}

func shortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return "[" + id + "]"
}
