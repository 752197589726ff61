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

package report

import (
	"github.com/telekom/execution-report/pkg/classify"
	"github.com/telekom/execution-report/pkg/metrics"
	"github.com/telekom/execution-report/pkg/record"
	"golang.org/x/exp/slices"
	"k8s.io/utils/ptr"
)

// Build derives all three report tables from classified rows. The overall
// table always has exactly one row; the detail and module tables are empty
// when rows is empty, which Validate rejects.
func Build(rows []classify.Classified) Report {
	rep := Report{
		Detail:  BuildDetail(rows),
		Modules: BuildModuleSummary(rows),
		Overall: []OverallSummaryRow{BuildOverallSummary(rows)},
	}
	for _, d := range rep.Detail {
		metrics.TestStatus.WithLabelValues(d.Status).Inc()
	}
	return rep
}

// BuildDetail returns one row per classified row in input order.
func BuildDetail(rows []classify.Classified) []DetailRow {
	detail := make([]DetailRow, 0, len(rows))
	for i, row := range rows {
		detail = append(detail, DetailRow{
			SNo:             i + 1,
			Module:          row.Module,
			TestDescription: classify.Describe(row.Record),
			Status:          classify.NormalizeStatus(row.Record.Value(record.FieldStatus)),
			OrderType:       ptr.Deref(row.Record.Value(record.FieldOrderType), ""),
		})
	}
	return detail
}

// BuildModuleSummary groups rows by module. Groups are ordered by module
// name and numbered after ordering.
func BuildModuleSummary(rows []classify.Classified) []ModuleSummaryRow {
	groups := make(map[string]*Counts)
	var modules []string
	for _, row := range rows {
		c, ok := groups[row.Module]
		if !ok {
			c = &Counts{}
			groups[row.Module] = c
			modules = append(modules, row.Module)
		}
		c.add(row.Record.Value(record.FieldStatus))
	}
	slices.Sort(modules)

	summary := make([]ModuleSummaryRow, 0, len(modules))
	for i, m := range modules {
		summary = append(summary, ModuleSummaryRow{
			SNo:    i + 1,
			Module: m,
			Counts: *groups[m],
		})
	}
	return summary
}

// BuildOverallSummary counts across all rows.
func BuildOverallSummary(rows []classify.Classified) OverallSummaryRow {
	c := Counts{}
	for _, row := range rows {
		c.add(row.Record.Value(record.FieldStatus))
	}
	return OverallSummaryRow{SNo: 1, Counts: c}
}

func (c *Counts) add(status *string) {
	c.Total++
	if status != nil {
		c.Executed++
	}
	if classify.IsPass(status) {
		c.Pass++
	}
	if classify.IsFail(status) {
		c.Fail++
	}
	c.Pending = c.Total - c.Executed
}
