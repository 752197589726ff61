/*
Copyright 2026.

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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/telekom/execution-report/pkg/output"
	"github.com/telekom/execution-report/pkg/version"
)

func NewVersionCommand() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show execreport version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := output.ParseFormat(outputFormat)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if rt, err := getRuntime(cmd); err == nil {
				w = rt.Writer()
			}

			info := version.GetBuildInfo()
			if format.Structured() {
				return output.WriteObject(w, format, info)
			}
			_, err = fmt.Fprintln(w, info)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Output format: table, json, yaml")

	return cmd
}
