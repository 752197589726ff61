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

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecordsLoaded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "execreport_records_loaded_total",
		Help: "Total number of result rows read from the input file",
	})
	RecordsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "execreport_records_dropped_total",
		Help: "Total number of result rows that matched no module rule",
	})
	RecordsClassified = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "execreport_records_classified_total",
		Help: "Total number of result rows assigned to a module",
	}, []string{"module"})
	// Status labels are passed through from the input, so cardinality follows
	// whatever the test runner emits.
	TestStatus = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "execreport_test_status_total",
		Help: "Total number of reported test cases grouped by status label",
	}, []string{"status"})

	// Mail metrics
	MailSendSuccess = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "execreport_mail_send_success_total",
		Help: "Total number of successful report mail sends",
	}, []string{"host"})
	MailSendFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "execreport_mail_send_failure_total",
		Help: "Total number of failed report mail sends",
	}, []string{"host"})
)

func init() {
	prometheus.MustRegister(RecordsLoaded)
	prometheus.MustRegister(RecordsDropped)
	prometheus.MustRegister(RecordsClassified)
	prometheus.MustRegister(TestStatus)
	prometheus.MustRegister(MailSendSuccess)
	prometheus.MustRegister(MailSendFailure)
}

// WriteTextfile writes all registered metrics to path in the Prometheus text
// format, for pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
