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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fileops.dev/fileops/internal/fileop"
	"fileops.dev/fileops/internal/speedometer"
)

// Task option struct.
type Task struct {
	Concurrency int
	Samples     int
}

// ApplyFlags applies flags to a command flag set.
func (opts *Task) ApplyFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&opts.Concurrency, "concurrency", "", fileop.DefaultConcurrency, "number of tasks running at once")
	fs.IntVarP(&opts.Samples, "samples", "", speedometer.DefaultMaxSamples, "number of one-second samples the remaining time is estimated from")
}

// Parse validates the task flags.
func (opts *Task) Parse(*cobra.Command) error {
	if opts.Concurrency < 1 {
		return fmt.Errorf("--concurrency must be positive, got %d", opts.Concurrency)
	}
	if opts.Samples < 2 {
		return fmt.Errorf("--samples must be at least 2, got %d", opts.Samples)
	}
	return nil
}

// ManagerOptions returns the options of a file operation manager.
func (opts *Task) ManagerOptions() fileop.Options {
	return fileop.Options{
		Concurrency: opts.Concurrency,
		MaxSamples:  opts.Samples,
	}
}

// Overwrite option struct.
type Overwrite struct {
	Overwrite bool
}

// ApplyFlags applies flags to a command flag set.
func (opts *Overwrite) ApplyFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.Overwrite, "overwrite", "", false, "replace existing targets and merge into existing directories")
}

// Verify option struct.
type Verify struct {
	Verify bool
}

// ApplyFlags applies flags to a command flag set.
func (opts *Verify) ApplyFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.Verify, "verify", "", false, "compare the sha256 digest of every copied file with its source")
}
