// Package report aggregates classified test results into the detail,
// module-wise and overall tables, persists the overall summary as CSV and
// renders the HTML execution report.
package report
