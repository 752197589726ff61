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
	"github.com/google/uuid"
	"github.com/telekom/execution-report/pkg/report"
	"go.uber.org/zap"
)

// Dispatcher renders an execution report and hands it to a Sender.
type Dispatcher struct {
	sender    Sender
	receivers []string
	log       *zap.SugaredLogger
	render    func(report.Report, string) (string, error)
}

// NewDispatcher creates a Dispatcher delivering to receivers.
func NewDispatcher(sender Sender, receivers []string, log *zap.SugaredLogger) *Dispatcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Dispatcher{
		sender:    sender,
		receivers: append([]string(nil), receivers...),
		log:       log,
		render:    report.Render,
	}
}

// SendReport validates, renders and mails rep. A validation failure is
// returned as an error before anything is rendered or sent. Rendering and
// delivery failures are logged and reported as false.
func (d *Dispatcher) SendReport(subject string, rep report.Report, attachmentPath string) (bool, error) {
	if err := rep.Validate(); err != nil {
		return false, err
	}

	body, err := d.render(rep, subject)
	if err != nil {
		d.log.Errorw("Mail failed", "stage", "render", "error", err)
		return false, nil
	}

	id := uuid.NewString()
	log := d.log.With("messageID", id, "host", d.sender.GetHost())
	err = d.sender.Send(Message{
		ID:             id,
		Receivers:      d.receivers,
		Subject:        subject,
		HTMLBody:       body,
		AttachmentPath: attachmentPath,
	})
	if err != nil {
		log.Errorw("Mail failed", "stage", "send", "error", err)
		return false, nil
	}

	log.Infow("Mail sent successfully", "receivers", len(d.receivers))
	return true, nil
}
