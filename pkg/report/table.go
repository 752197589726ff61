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

// DetailRow is one reported test case.
type DetailRow struct {
	SNo             int    `json:"sNo" yaml:"sNo"`
	Module          string `json:"module" yaml:"module"`
	TestDescription string `json:"testDescription" yaml:"testDescription"`
	Status          string `json:"status" yaml:"status"`
	// OrderType is carried through from the input; empty when absent.
	OrderType string `json:"orderType,omitempty" yaml:"orderType,omitempty"`
}

// Counts holds the execution counters shared by both summary tables.
// Pending is always Total - Executed.
type Counts struct {
	Total    int `json:"total" yaml:"total"`
	Executed int `json:"executed" yaml:"executed"`
	Pending  int `json:"pending" yaml:"pending"`
	Pass     int `json:"pass" yaml:"pass"`
	Fail     int `json:"fail" yaml:"fail"`
}

// ModuleSummaryRow aggregates the test cases of one module.
type ModuleSummaryRow struct {
	SNo    int    `json:"sNo" yaml:"sNo"`
	Module string `json:"module" yaml:"module"`
	Counts `json:",inline" yaml:",inline"`
}

// OverallSummaryRow aggregates all reported test cases.
type OverallSummaryRow struct {
	SNo    int `json:"sNo" yaml:"sNo"`
	Counts `json:",inline" yaml:",inline"`
}

// Report bundles the three tables of an execution report.
type Report struct {
	Detail  []DetailRow         `json:"detail" yaml:"detail"`
	Modules []ModuleSummaryRow  `json:"modules" yaml:"modules"`
	Overall []OverallSummaryRow `json:"overall" yaml:"overall"`
}
