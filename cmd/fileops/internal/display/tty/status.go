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

package tty

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/morikuni/aec"

	"fileops.dev/fileops/cmd/fileops/internal/display/humanize"
	"fileops.dev/fileops/internal/progress"
)

const (
	barLength   = 20
	speedLength = 10 // speed_size(4) + space(1) + speed_unit(2) + "/s"(2) + padding(1)
	zeroStatus  = "loading status..."
	zeroDetail  = "  └─ loading entries..."
)

var spinnerSymbols = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

type spinner int

func (s *spinner) symbol() rune {
	r := spinnerSymbols[*s]
	*s = (*s + 1) % spinner(len(spinnerSymbols))
	return r
}

// status is the rendered view of a progress item.
type status struct {
	item *progress.Item
	// prompt is the last non-empty message of the item, kept once the
	// message is cleared on completion.
	prompt string
	mark   spinner
}

func (s *status) update(item *progress.Item) {
	s.item = item
	if item.Message != "" && item.State == progress.StateProgressing {
		s.prompt = item.Message
	}
}

// String returns the two TTY rows of the status.
//
// format:  [left-----------------------------------------][margin][right-----------------------------]
//
//	mark(1) bar(22) speed(12) prompt                          processed/total(<=19) percent(5) eta(>=6)
//	 └─ source → destination
func (s *status) String(width int) (string, string) {
	if s.item == nil {
		return zeroStatus, zeroDetail
	}
	item := s.item
	percent := item.ProgressRateInPercent()
	if item.State == progress.StateCompleted {
		percent = 100
	}

	var right string
	switch item.State {
	case progress.StateCompleted:
		right = fmt.Sprintf(" %s %4d%%", humanize.ToBytes(item.ProgressMax), percent)
	default:
		right = fmt.Sprintf(" %s/%s %4d%% %6s",
			humanize.ToBytes(item.ProgressValue), humanize.ToBytes(item.ProgressMax),
			percent, humanize.FormatRemaining(item.RemainingTime))
	}
	lenRight := utf8.RuneCountInString(right)

	var prefix, prompt string
	lenPrefix := 0
	switch item.State {
	case progress.StateProgressing:
		lenBar := percent * barLength / 100
		bar := fmt.Sprintf("[%s%s]", aec.Inverse.Apply(strings.Repeat(" ", lenBar)), strings.Repeat(".", barLength-lenBar))
		prefix = fmt.Sprintf("%c %s(%*s) ", s.mark.symbol(), bar, speedLength, humanize.Speed(item.Speed))
		// mark(1) + space(1) + bar + wrapper(2) + speed + wrapper(2) + space(1)
		lenPrefix = barLength + speedLength + 7
		prompt = s.prompt
	case progress.StateCompleted:
		prefix, lenPrefix = "✓ ", 2
		prompt = s.prompt
	case progress.StateError:
		prefix, lenPrefix = "✗ ", 2
		prompt = item.Message
	case progress.StateCanceled:
		prefix, lenPrefix = "- ", 2
		prompt = "Canceled: " + s.prompt
	}

	lenMargin := width - lenPrefix - utf8.RuneCountInString(prompt) - lenRight
	if lenMargin < 0 {
		// hide partial prompt with one space left
		prompt = truncate(prompt, utf8.RuneCountInString(prompt)+lenMargin-1) + "."
		lenMargin = 0
	}
	return prefix + prompt + strings.Repeat(" ", lenMargin) + right, detail(item)
}

func detail(item *progress.Item) string {
	source := item.SourceMessage
	if item.ItemCount > 1 {
		source = fmt.Sprintf("%s (+%d more)", source, item.ItemCount-1)
	}
	if item.DestinationMessage == "" {
		return "  └─ " + source
	}
	return fmt.Sprintf("  └─ %s → %s", source, item.DestinationMessage)
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
