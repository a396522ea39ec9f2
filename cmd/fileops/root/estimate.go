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

package root

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"fileops.dev/fileops/cmd/fileops/internal/argument"
	"fileops.dev/fileops/cmd/fileops/internal/command"
	"fileops.dev/fileops/cmd/fileops/internal/display/humanize"
	oerrors "fileops.dev/fileops/cmd/fileops/internal/errors"
	"fileops.dev/fileops/cmd/fileops/internal/option"
	ioutil "fileops.dev/fileops/internal/io"
	"fileops.dev/fileops/internal/speedometer"
)

type estimateOptions struct {
	option.Common

	total    int64
	interval time.Duration
	samples  int
	fromFile string
	progress []int64
}

// readProgress collects the transferred bytes from the sample file, then
// from the arguments.
func (opts *estimateOptions) readProgress(cmd *cobra.Command, args []string) error {
	opts.progress = nil
	if opts.fromFile != "" {
		r := cmd.InOrStdin()
		if opts.fromFile != "-" {
			f, err := os.Open(opts.fromFile)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		samples, err := ioutil.ReadSamples(r)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", opts.fromFile, err)
		}
		opts.progress = samples
	}
	for _, arg := range args {
		n, err := ioutil.ParseSample(arg)
		if err != nil {
			return &oerrors.Error{
				Err:            err,
				Recommendation: "Please specify the transferred bytes as integers",
			}
		}
		opts.progress = append(opts.progress, n)
	}
	return nil
}

func estimateCmd() *cobra.Command {
	var opts estimateOptions
	cmd := &cobra.Command{
		Use:   "estimate [flags] --total <bytes> <bytes>...",
		Short: "Replay a transfer through the remaining time estimator",
		Long: `Replay a transfer through the remaining time estimator. Every argument is the number of bytes
transferred so far, reported one interval after the previous one

Example - Estimate a 1000 bytes transfer progressing at 10 bytes per second:
  fileops estimate --total 1000 0 10 20 30

Example - Replay the transferred bytes recorded in a file:
  fileops estimate --total 1048576 --from-file progress.txt

Example - Feed updates twice per second, half of which are dropped by the estimator:
  fileops estimate --total 1000 --interval 500ms 0 5 10 15 20
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.fromFile != "" {
				return nil
			}
			return oerrors.CheckArgs(argument.AtLeast(1), "the transferred bytes")(cmd, args)
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.total < 0 {
				return fmt.Errorf("--total must not be negative, got %d", opts.total)
			}
			if opts.samples < 2 {
				return fmt.Errorf("--samples must be at least 2, got %d", opts.samples)
			}
			if opts.interval <= 0 {
				return fmt.Errorf("--interval must be positive, got %s", opts.interval)
			}
			return opts.readProgress(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd, &opts)
		},
	}
	cmd.Flags().Int64VarP(&opts.total, "total", "", 0, "total bytes of the transfer")
	cmd.Flags().DurationVarP(&opts.interval, "interval", "", time.Second, "time between two updates")
	cmd.Flags().StringVarP(&opts.fromFile, "from-file", "f", "", "read the transferred bytes from a file, one number per line, - for stdin")
	cmd.Flags().IntVarP(&opts.samples, "samples", "", speedometer.DefaultMaxSamples, "capacity of the sample window")
	_ = cmd.MarkFlagRequired("total")
	option.ApplyFlags(&opts, cmd.Flags())
	return cmd
}

func runEstimate(cmd *cobra.Command, opts *estimateOptions) error {
	_, logger := command.GetLogger(cmd, &opts.Common)

	now := time.Unix(0, 0)
	meter := speedometer.New(opts.samples, func() time.Time { return now })
	meter.SetTotalBytes(opts.total)

	out := cmd.OutOrStdout()
	printRow(out, "Elapsed", "Bytes", "Samples", "Speed", "Remaining")
	for i, processed := range opts.progress {
		if i > 0 {
			now = now.Add(opts.interval)
		}
		before := meter.SampleCount()
		meter.Update(processed)
		if meter.SampleCount() == before && before < meter.MaxSamples() {
			logger.Infof("update at %s dropped: less than a second after the last sample", now.Sub(time.Unix(0, 0)))
		}
		printRow(out,
			now.Sub(time.Unix(0, 0)).String(),
			strconv.FormatInt(processed, 10),
			strconv.Itoa(meter.SampleCount()),
			humanize.Speed(meter.Speed()),
			formatRemaining(meter.RemainingTime()),
		)
	}
	return nil
}

// formatRemaining prints the estimate in seconds, keeping the NaN and +Inf
// sentinels readable.
func formatRemaining(seconds float64) string {
	return fmt.Sprintf("%s (%s)", strconv.FormatFloat(seconds, 'f', 2, 64), humanize.FormatRemaining(seconds))
}

func printRow(out io.Writer, elapsed, bytes, samples, speed, remaining string) {
	fmt.Fprintf(out, "%-9s %12s %8s %12s  %s\n", elapsed, bytes, samples, speed, remaining)
}
