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
	"github.com/spf13/cobra"
	"github.com/telekom/execution-report/pkg/classify"
	"github.com/telekom/execution-report/pkg/record"
	"github.com/telekom/execution-report/pkg/report"
	"go.uber.org/zap"
)

type reportOptions struct {
	input   string
	subject string
}

func (o *reportOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "Results CSV (default from config)")
	cmd.Flags().StringVar(&o.subject, "subject", "", "Mail subject and report heading (default from config)")
}

func (o *reportOptions) complete(rt *runtimeState) {
	if o.input == "" {
		o.input = rt.cfg.Report.InputPath
	}
	if o.subject == "" {
		o.subject = rt.cfg.Report.Subject
	}
}

// buildReport runs the load, classify and aggregate stages over input.
func buildReport(log *zap.SugaredLogger, input string) (report.Report, error) {
	records, err := record.Load(input)
	if err != nil {
		return report.Report{}, err
	}
	log.Debugw("Loaded results file", "records", len(records))

	rows, _ := classify.New(classify.DefaultRules(), log).Apply(records)
	return report.Build(rows), nil
}
