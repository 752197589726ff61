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
	"os"

	"github.com/spf13/cobra"
	"github.com/telekom/execution-report/pkg/report"
)

func NewRenderCommand() *cobra.Command {
	opts := &reportOptions{}
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the HTML execution report without sending it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			opts.complete(rt)

			rep, err := buildReport(rt.log, opts.input)
			if err != nil {
				return err
			}
			if err := rep.Validate(); err != nil {
				return err
			}
			html, err := report.Render(rep, opts.subject)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprint(rt.Writer(), html)
				return err
			}
			if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
				return fmt.Errorf("writing report to %s: %w", out, err)
			}
			rt.log.Infow("Wrote HTML report", "path", out)
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&out, "out", "", "Write the HTML document to this file instead of stdout")

	return cmd
}
