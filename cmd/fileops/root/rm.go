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
	"github.com/spf13/cobra"

	"fileops.dev/fileops/cmd/fileops/internal/argument"
	oerrors "fileops.dev/fileops/cmd/fileops/internal/errors"
	"fileops.dev/fileops/cmd/fileops/internal/option"
	"fileops.dev/fileops/internal/fileop"
)

type removeOptions struct {
	taskOptions

	paths []string
}

func removeCmd() *cobra.Command {
	var opts removeOptions
	cmd := &cobra.Command{
		Use:     "rm [flags] <path>...",
		Aliases: []string{"delete"},
		Short:   "Delete files and directories",
		Long: `Delete files and directories recursively in a single task

Example - Delete a file and a directory:
  fileops rm ./sample.txt ./photos
`,
		Args: oerrors.CheckArgs(argument.AtLeast(1), "the paths to delete"),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.paths = args
			if err := option.Parse(cmd, &opts.taskOptions); err != nil {
				return err
			}
			opts.DisableTTY(opts.Debug)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := fileop.Request{
				Operation: fileop.OperationDelete,
				Sources:   opts.paths,
			}
			return runTasks(cmd, &opts.taskOptions, opts.ManagerOptions(), []fileop.Request{req})
		},
	}
	option.ApplyFlags(&opts.taskOptions, cmd.Flags())
	return cmd
}
