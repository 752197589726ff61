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
	"crypto/tls"
	"fmt"
	"net/smtp"
	"os"
	"path/filepath"

	"github.com/telekom/execution-report/pkg/config"
	"github.com/telekom/execution-report/pkg/metrics"
	"github.com/telekom/execution-report/pkg/version"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Message is a single report mail.
type Message struct {
	// ID becomes the Message-ID local part when set.
	ID             string
	Receivers      []string
	Subject        string
	HTMLBody       string
	AttachmentPath string
}

type Sender interface {
	Send(msg Message) error
	GetHost() string
	GetPort() int
}

type sender struct {
	dialer        *gomail.Dialer
	senderAddress string
	senderName    string
	log           *zap.SugaredLogger
}

// NewSender creates a Sender for the configured submission endpoint. The
// dialer upgrades the connection with STARTTLS when the server offers it.
// With a username configured, PLAIN authentication is mandatory: a server
// without AUTH fails the send, and credentials are never sent over an
// unencrypted connection to a remote host.
func NewSender(cfg config.Mail, log *zap.SugaredLogger) Sender {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log.Infow("Initializing mail sender", "host", cfg.Host, "port", cfg.Port, "user", cfg.Username)
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.Username != "" {
		d.Auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	if cfg.InsecureSkipVerify {
		log.Warn("InsecureSkipVerify is enabled for mail TLS connection")
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true} // #nosec G402 -- opt-in for relays with private CAs
	}

	senderName := cfg.SenderName
	if senderName == "" {
		senderName = config.DefaultSenderName
	}

	return &sender{
		dialer:        d,
		senderAddress: cfg.SenderAddress,
		senderName:    senderName,
		log:           log,
	}
}

func (s *sender) Send(msg Message) error {
	s.log.Debugw("Preparing to send mail", "receivers", len(msg.Receivers), "subject", msg.Subject)
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderAddress, s.senderName)
	m.SetHeader("To", msg.Receivers...)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("X-Mailer", version.Mailer())
	if msg.ID != "" {
		m.SetHeader("Message-ID", fmt.Sprintf("<%s@%s>", msg.ID, s.dialer.Host))
	}
	m.SetBody("text/html", msg.HTMLBody)

	if attachable(msg.AttachmentPath) {
		name := filepath.Base(msg.AttachmentPath)
		m.Attach(msg.AttachmentPath, gomail.SetHeader(map[string][]string{
			"Content-Type": {fmt.Sprintf("application/octet-stream; name=%q", name)},
		}))
		s.log.Debugw("Attached file to mail", "path", msg.AttachmentPath)
	} else if msg.AttachmentPath != "" {
		s.log.Debugw("Skipping missing attachment", "path", msg.AttachmentPath)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		metrics.MailSendFailure.WithLabelValues(s.GetHost()).Inc()
		return fmt.Errorf("sending mail via %s:%d: %w", s.GetHost(), s.GetPort(), err)
	}
	metrics.MailSendSuccess.WithLabelValues(s.GetHost()).Inc()
	return nil
}

func (s *sender) GetHost() string {
	return s.dialer.Host
}

func (s *sender) GetPort() int {
	return s.dialer.Port
}

// attachable reports whether path names an existing regular file.
func attachable(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
