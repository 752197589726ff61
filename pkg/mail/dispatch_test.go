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

package mail

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/telekom/execution-report/pkg/config"
	"github.com/telekom/execution-report/pkg/metrics"
	"github.com/telekom/execution-report/pkg/report"
	"github.com/telekom/execution-report/pkg/system"
	"go.uber.org/zap"
)

type fakeSender struct {
	err      error
	messages []Message
}

func (f *fakeSender) Send(msg Message) error {
	f.messages = append(f.messages, msg)
	return f.err
}

func (f *fakeSender) GetHost() string { return "fake-host" }
func (f *fakeSender) GetPort() int    { return 587 }

func validReport() report.Report {
	return report.Report{
		Detail: []report.DetailRow{{SNo: 1, Module: "Watchlist", TestDescription: "Add scrip", Status: "Pass"}},
		Modules: []report.ModuleSummaryRow{
			{SNo: 1, Module: "Watchlist", Counts: report.Counts{Total: 1, Executed: 1, Pass: 1}},
		},
		Overall: []report.OverallSummaryRow{
			{SNo: 1, Counts: report.Counts{Total: 1, Executed: 1, Pass: 1}},
		},
	}
}

func TestDispatcher_SendReport_ValidationFailsWithoutNetwork(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*report.Report)
		table  string
	}{
		{name: "empty detail", mutate: func(r *report.Report) { r.Detail = nil }, table: report.TableDetail},
		{name: "empty module summary", mutate: func(r *report.Report) { r.Modules = nil }, table: report.TableModules},
		{name: "empty overall summary", mutate: func(r *report.Report) { r.Overall = nil }, table: report.TableOverall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSender{}
			d := NewDispatcher(fake, []string{"team@example.com"}, nil)
			rendered := false
			d.render = func(r report.Report, s string) (string, error) {
				rendered = true
				return report.Render(r, s)
			}

			rep := validReport()
			tt.mutate(&rep)

			sent, err := d.SendReport("subject", rep, "")
			assert.False(t, sent)
			require.Error(t, err)
			assert.ErrorIs(t, err, report.ErrEmptyTable)

			var verr *report.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.table, verr.Table)
			assert.Empty(t, fake.messages, "no network call expected")
			assert.False(t, rendered, "nothing should be rendered")
		})
	}
}

func TestDispatcher_SendReport_Success(t *testing.T) {
	fake := &fakeSender{}
	log, logs := system.NewObservedLogger(zap.InfoLevel)
	receivers := []string{"a@example.com", "b@example.com"}
	d := NewDispatcher(fake, receivers, log)
	receivers[0] = "mutated@example.com"

	sent, err := d.SendReport("Pytest Automation Execution Report", validReport(), "summary.csv")
	require.NoError(t, err)
	assert.True(t, sent)

	require.Len(t, fake.messages, 1)
	msg := fake.messages[0]
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, msg.Receivers)
	assert.Equal(t, "Pytest Automation Execution Report", msg.Subject)
	assert.Equal(t, "summary.csv", msg.AttachmentPath)
	assert.Contains(t, msg.HTMLBody, "Detailed Test Results")
	assert.Contains(t, msg.HTMLBody, "<td>Add scrip</td>")
	_, uerr := uuid.Parse(msg.ID)
	assert.NoError(t, uerr)

	require.Equal(t, 1, logs.FilterMessage("Mail sent successfully").Len())
	assert.Equal(t, msg.ID, logs.FilterMessage("Mail sent successfully").All()[0].ContextMap()["messageID"])
}

func TestDispatcher_SendReport_TransportFailureIsSwallowed(t *testing.T) {
	fake := &fakeSender{err: errors.New("535 Authentication Credentials Invalid")}
	log, logs := system.NewObservedLogger(zap.InfoLevel)
	d := NewDispatcher(fake, []string{"team@example.com"}, log)

	sent, err := d.SendReport("subject", validReport(), "")
	assert.NoError(t, err)
	assert.False(t, sent)
	require.Len(t, fake.messages, 1)

	failures := logs.FilterMessage("Mail failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "send", failures[0].ContextMap()["stage"])
	assert.Contains(t, failures[0].ContextMap()["error"], "535 Authentication Credentials Invalid")
}

func TestDispatcher_SendReport_RenderFailureIsSwallowed(t *testing.T) {
	fake := &fakeSender{}
	d := NewDispatcher(fake, []string{"team@example.com"}, system.NewTestLogger())
	d.render = func(report.Report, string) (string, error) {
		return "", errors.New("template exploded")
	}

	sent, err := d.SendReport("subject", validReport(), "")
	assert.NoError(t, err)
	assert.False(t, sent)
	assert.Empty(t, fake.messages)
}

func TestDispatcher_SendReport_EndToEnd(t *testing.T) {
	host, port, captured, stop := startTestSMTPServer(t)
	defer stop()

	attachment := filepath.Join(t.TempDir(), report.OverallSummaryFile)
	rep := validReport()
	require.NoError(t, report.SaveOverallSummary(attachment, rep.Overall))

	s := NewSender(config.Mail{Host: host, Port: port, SenderAddress: "qa@example.com"}, nil)
	d := NewDispatcher(s, []string{"team@example.com"}, nil)

	sent, err := d.SendReport("Pytest Automation Execution Report", rep, attachment)
	require.NoError(t, err)
	assert.True(t, sent)
	stop()

	_, rcpts, data := captured.snapshot()
	assert.Equal(t, []string{"<team@example.com>"}, rcpts)
	assert.Contains(t, data, "Subject: Pytest Automation Execution Report")
	assert.Contains(t, data, `filename="overall_execution_summary.csv"`)
}

func TestDispatcher_SendReport_EndToEndFailure(t *testing.T) {
	s := NewSender(config.Mail{Host: "127.0.0.1", Port: closedPort(t), SenderAddress: "qa@example.com"}, nil)
	d := NewDispatcher(s, []string{"team@example.com"}, nil)

	attachment := filepath.Join(t.TempDir(), "missing.csv")
	_, statErr := os.Stat(attachment)
	require.True(t, os.IsNotExist(statErr))

	sent, err := d.SendReport("subject", validReport(), attachment)
	assert.NoError(t, err)
	assert.False(t, sent)
}

func TestDispatcher_SendReport_ServerWithoutAuth(t *testing.T) {
	host, port, captured, stop := startTestSMTPServer(t)
	defer stop()

	s := NewSender(config.Mail{
		Host:          host,
		Port:          port,
		Username:      "AKIAEXAMPLE",
		Password:      "s3cret",
		SenderAddress: "qa@example.com",
	}, nil)
	log, logs := system.NewObservedLogger(zap.InfoLevel)
	d := NewDispatcher(s, []string{"team@example.com"}, log)

	before := testutil.ToFloat64(metrics.MailSendFailure.WithLabelValues(host))
	sent, err := d.SendReport("Pytest Automation Execution Report", validReport(), "")
	require.NoError(t, err)
	assert.False(t, sent)
	stop()

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.MailSendFailure.WithLabelValues(host)))
	assert.Equal(t, 1, logs.FilterMessage("Mail failed").Len())
	assert.Zero(t, logs.FilterMessage("Mail sent successfully").Len())
	_, rcpts, data := captured.snapshot()
	assert.Empty(t, rcpts)
	assert.Empty(t, data)
}
