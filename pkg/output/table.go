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

package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/telekom/execution-report/pkg/report"
)

func WriteDetailTable(w io.Writer, rows []report.DetailRow) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "S_NO\tMODULE\tTEST_DESCRIPTION\tSTATUS\tORDER_TYPE")
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.SNo, r.Module, r.TestDescription, r.Status, dash(r.OrderType))
	}
	_ = tw.Flush()
}

func WriteModuleSummaryTable(w io.Writer, rows []report.ModuleSummaryRow) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "S_NO\tMODULE\tTOTAL\tEXECUTED\tPENDING\tPASS\tFAIL")
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\n", r.SNo, r.Module, r.Total, r.Executed, r.Pending, r.Pass, r.Fail)
	}
	_ = tw.Flush()
}

func WriteOverallSummaryTable(w io.Writer, rows []report.OverallSummaryRow) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "S_NO\tTOTAL\tEXECUTED\tPENDING\tPASS\tFAIL")
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\n", r.SNo, r.Total, r.Executed, r.Pending, r.Pass, r.Fail)
	}
	_ = tw.Flush()
}

// WriteReport prints all three tables, or the whole report as JSON or YAML.
func WriteReport(w io.Writer, format Format, rep report.Report) error {
	if format.Structured() {
		return WriteObject(w, format, rep)
	}
	WriteDetailTable(w, rep.Detail)
	_, _ = fmt.Fprintln(w)
	WriteModuleSummaryTable(w, rep.Modules)
	_, _ = fmt.Fprintln(w)
	WriteOverallSummaryTable(w, rep.Overall)
	return nil
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
