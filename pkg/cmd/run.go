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
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/telekom/execution-report/pkg/mail"
	"github.com/telekom/execution-report/pkg/metrics"
	"github.com/telekom/execution-report/pkg/output"
	"github.com/telekom/execution-report/pkg/report"
	"github.com/telekom/execution-report/pkg/system"
)

// ErrMailNotSent is returned by the run command when delivery failed.
var ErrMailNotSent = errors.New("report mail was not sent")

type runOptions struct {
	reportOptions
	summaryOut   string
	attach       string
	outputFormat string
	metricsFile  string
	dryRun       bool
}

func NewRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build the execution report, write the summary CSV and mail it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := getRuntime(cmd)
			if err != nil {
				return err
			}
			format, err := output.ParseFormat(opts.outputFormat)
			if err != nil {
				return err
			}
			opts.complete(rt)
			if opts.summaryOut == "" {
				opts.summaryOut = rt.cfg.Report.SummaryPath
			}
			if opts.attach == "" {
				opts.attach = rt.cfg.Report.AttachmentPath
			}

			log := rt.log.With(system.RunFields(uuid.NewString(), opts.input)...)
			if opts.metricsFile != "" {
				defer func() {
					if err := metrics.WriteTextfile(opts.metricsFile); err != nil {
						log.Warnw("Failed to write metrics textfile", "error", err)
					}
				}()
			}

			rep, err := buildReport(log, opts.input)
			if err != nil {
				return err
			}
			if err := output.WriteReport(rt.Writer(), format, rep); err != nil {
				return err
			}

			if err := report.SaveOverallSummary(opts.summaryOut, rep.Overall); err != nil {
				return err
			}
			log.Infow("Wrote overall summary", "path", opts.summaryOut)

			if err := rep.Validate(); err != nil {
				return err
			}
			if opts.dryRun {
				log.Info("Dry run, not sending mail")
				return nil
			}

			if err := rt.cfg.Mail.Validate(); err != nil {
				return fmt.Errorf("invalid mail configuration: %w", err)
			}
			sender := rt.newSender(rt.cfg.Mail, log)
			dispatcher := mail.NewDispatcher(sender, rt.cfg.Mail.Receivers, log)

			sent, err := dispatcher.SendReport(opts.subject, rep, opts.attach)
			if err != nil {
				return err
			}
			if !sent {
				_, _ = fmt.Fprintln(rt.Writer(), "❌ Mail failed, see log for details")
				return ErrMailNotSent
			}
			_, _ = fmt.Fprintf(rt.Writer(), "✅ Mail sent successfully via %s\n", sender.GetHost())
			return nil
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.summaryOut, "summary-out", "", "Where to write the overall summary CSV (default from config)")
	cmd.Flags().StringVar(&opts.attach, "attach", "", "File to attach to the mail; skipped when missing")
	cmd.Flags().StringVarP(&opts.outputFormat, "output", "o", "", "Console output format: table, json, yaml")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Build and print the report without sending mail")

	return cmd
}
