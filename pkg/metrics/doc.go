// Package metrics defines Prometheus metrics for the execution report,
// covering loaded and classified records, test status counts, and mail
// delivery, plus a textfile export for batch runs.
package metrics
