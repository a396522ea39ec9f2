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

type zipOptions struct {
	taskOptions
	option.Overwrite

	name        string
	sources     []string
	destination string
}

func zipCmd() *cobra.Command {
	var opts zipOptions
	cmd := &cobra.Command{
		Use:   "zip [flags] <source>... <directory>",
		Short: "Archive files and directories into a zip file",
		Long: `Archive files and directories into a zip file in a directory. A single source is archived as <source>.zip, several sources as Archive.zip

Example - Archive a directory into ./out/photos.zip:
  fileops zip ./photos ./out

Example - Archive several files into ./out/docs.zip:
  fileops zip --name docs.zip ./a.txt ./b.txt ./out
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
			return runZip(cmd, &opts)
		},
	}
	cmd.Flags().StringVarP(&opts.name, "name", "", "", "name of the archive")
	option.ApplyFlags(&opts.taskOptions, cmd.Flags())
	option.ApplyFlags(&opts, cmd.Flags())
	return cmd
}

func runZip(cmd *cobra.Command, opts *zipOptions) error {
	managerOpts := opts.ManagerOptions()
	managerOpts.Overwrite = opts.Overwrite.Overwrite
	req := fileop.Request{
		Operation:   fileop.OperationZip,
		Sources:     opts.sources,
		Destination: opts.destination,
		ArchiveName: opts.name,
	}
	return runTasks(cmd, &opts.taskOptions, managerOpts, []fileop.Request{req})
}
