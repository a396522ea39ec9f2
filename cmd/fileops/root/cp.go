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

type copyOptions struct {
	taskOptions
	option.Overwrite
	option.Verify

	sources     []string
	destination string
}

func copyCmd() *cobra.Command {
	var opts copyOptions
	cmd := &cobra.Command{
		Use:     "cp [flags] <source>... <directory>",
		Aliases: []string{"copy"},
		Short:   "Copy files and directories into a directory",
		Long: `Copy files and directories into a directory. Every source is copied by its own task

Example - Copy a file:
  fileops cp ./sample.txt ./backup

Example - Copy directories, two at a time, checking the content of every copied file:
  fileops cp --concurrency 2 --verify ./photos ./videos /mnt/backup

Example - Copy a file, replacing an existing copy:
  fileops cp --overwrite ./sample.txt ./backup
`,
		Args: oerrors.CheckArgs(argument.AtLeast(2), "the sources and the destination directory"),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.sources, opts.destination = splitDestination(args)
			if err := option.Parse(cmd, &opts.taskOptions); err != nil {
				return err
			}
			opts.DisableTTY(opts.Debug)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd, &opts, fileop.OperationCopy)
		},
	}
	option.ApplyFlags(&opts.taskOptions, cmd.Flags())
	option.ApplyFlags(&opts, cmd.Flags())
	return cmd
}

func moveCmd() *cobra.Command {
	var opts copyOptions
	cmd := &cobra.Command{
		Use:     "mv [flags] <source>... <directory>",
		Aliases: []string{"move"},
		Short:   "Move files and directories into a directory",
		Long: `Move files and directories into a directory. Entries are renamed when possible and copied then removed across file systems

Example - Move a file:
  fileops mv ./sample.txt ./archive

Example - Move directories to another file system, checking the content of every copied file:
  fileops mv --verify ./photos ./videos /mnt/backup
`,
		Args: oerrors.CheckArgs(argument.AtLeast(2), "the sources and the destination directory"),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			opts.sources, opts.destination = splitDestination(args)
			if err := option.Parse(cmd, &opts.taskOptions); err != nil {
				return err
			}
			opts.DisableTTY(opts.Debug)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransfer(cmd, &opts, fileop.OperationMove)
		},
	}
	option.ApplyFlags(&opts.taskOptions, cmd.Flags())
	option.ApplyFlags(&opts, cmd.Flags())
	return cmd
}

func runTransfer(cmd *cobra.Command, opts *copyOptions, op fileop.OperationType) error {
	managerOpts := opts.ManagerOptions()
	managerOpts.Overwrite = opts.Overwrite.Overwrite
	managerOpts.Verify = opts.Verify.Verify
	return runTasks(cmd, &opts.taskOptions, managerOpts, perSource(op, opts.sources, opts.destination))
}
