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
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"fileops.dev/fileops/cmd/fileops/internal/command"
	"fileops.dev/fileops/cmd/fileops/internal/display"
	"fileops.dev/fileops/cmd/fileops/internal/option"
	"fileops.dev/fileops/internal/fileop"
	"fileops.dev/fileops/internal/fileop/handler"
	"fileops.dev/fileops/internal/message"
	"fileops.dev/fileops/internal/progress"
	"fileops.dev/fileops/internal/trace"
)

// taskOptions are the options shared by every command running file
// operations.
type taskOptions struct {
	option.Common
	option.Terminal
	option.Task
}

// runTasks runs the requests, renders their progress and waits for them.
// An interrupt cancels the running tasks and skips the requests not started
// yet.
func runTasks(cmd *cobra.Command, opts *taskOptions, managerOpts fileop.Options, reqs []fileop.Request) error {
	ctx, logger := command.GetLogger(cmd, &opts.Common)
	managerOpts.Logger = logger
	m := fileop.NewManager(managerOpts)

	center := progress.NewCenter()
	handler.New(m, center, message.Default(), logger)
	ph, err := display.NewProgressHandler(opts.TTY, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	center.Subscribe(ph.OnItem)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	stopWarning := context.AfterFunc(ctx, func() {
		logger.Warn("interrupted, canceling all tasks")
	})
	defer stopWarning()

	err = startTasks(ctx, m, reqs)
	if waitErr := m.Wait(); err == nil {
		err = waitErr
	}
	if closeErr := ph.Close(); err == nil {
		err = closeErr
	}
	return err
}

// startTasks starts the requests in order until ctx is done.
func startTasks(ctx context.Context, m *fileop.Manager, reqs []fileop.Request) error {
	for i, req := range reqs {
		if ctx.Err() != nil {
			trace.Logger(ctx).Debugf("skipping %d requests", len(reqs)-i)
			return nil
		}
		id, err := m.Start(ctx, req)
		if err != nil {
			return err
		}
		_, logger := trace.WithTask(ctx, id)
		logger.Debugf("started %s of %v", req.Operation, req.Sources)
	}
	return nil
}

// splitDestination splits the arguments into sources and the destination
// directory.
func splitDestination(args []string) ([]string, string) {
	return args[:len(args)-1], args[len(args)-1]
}

// perSource returns one request per source.
func perSource(op fileop.OperationType, sources []string, destination string) []fileop.Request {
	reqs := make([]fileop.Request, 0, len(sources))
	for _, src := range sources {
		reqs = append(reqs, fileop.Request{
			Operation:   op,
			Sources:     []string{src},
			Destination: destination,
		})
	}
	return reqs
}
