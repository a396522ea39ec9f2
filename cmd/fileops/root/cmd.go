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
)

// New returns the root command of fileops.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "fileops [command]",
		Short:        "Copy, move, zip and delete files with progress and remaining time estimates",
		SilenceUsage: true,
	}
	cmd.AddCommand(
		copyCmd(),
		moveCmd(),
		zipCmd(),
		removeCmd(),
		estimateCmd(),
		versionCmd(),
	)
	return cmd
}
