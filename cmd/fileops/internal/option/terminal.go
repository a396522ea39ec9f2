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

package option

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// NoTTYFlag is the flag disabling progress bars.
const NoTTYFlag = "no-tty"

// Terminal option struct.
type Terminal struct {
	TTY *os.File

	noTTY bool
}

// ApplyFlags applies flags to a command flag set.
func (opts *Terminal) ApplyFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.noTTY, NoTTYFlag, "", false, "disable progress bars")
}

// Parse detects the terminal progress bars are rendered to.
func (opts *Terminal) Parse(*cobra.Command) error {
	// use STDERR as TTY output since STDOUT is reserved for pipeable output
	if !opts.noTTY {
		f := os.Stderr
		if term.IsTerminal(int(f.Fd())) {
			opts.TTY = f
		}
	}
	return nil
}

// DisableTTY resets the TTY if --no-tty is set or debug logs are enabled,
// since logs and progress bars share the same output.
func (opts *Terminal) DisableTTY(debugEnabled bool) {
	if debugEnabled || opts.noTTY {
		opts.TTY = nil
	}
}
