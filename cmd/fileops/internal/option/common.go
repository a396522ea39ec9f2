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
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"fileops.dev/fileops/internal/trace"
)

// Common option struct.
type Common struct {
	Debug   bool
	Verbose bool
}

// ApplyFlags applies flags to a command flag set.
func (opts *Common) ApplyFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&opts.Debug, "debug", "d", false, "output debug logs (implies --no-tty)")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "output task lifecycle logs")
}

// NewLogger returns a logger for the selected verbosity and a context
// carrying it.
func (opts *Common) NewLogger(ctx context.Context) (context.Context, logrus.FieldLogger) {
	return trace.NewLogger(ctx, opts.Debug, opts.Verbose)
}
