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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvConfigPath   = "EXECREPORT_CONFIG_PATH"
	EnvSMTPHost     = "SES_SMTP_HOST"
	EnvSMTPPort     = "SES_SMTP_PORT"
	EnvSMTPUsername = "SES_SMTP_USERNAME"
	EnvSMTPPassword = "SES_SMTP_PASSWORD"
	EnvSender       = "SES_SENDER"
	EnvSenderName   = "SES_SENDER_NAME"
	EnvReceivers    = "SES_RECEIVERS"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Variables already set are kept and missing files are skipped.
func LoadDotEnv(filenames ...string) error {
	for _, name := range filenames {
		if name == "" {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load environment from %s: %w", name, err)
		}
	}
	return nil
}

// ApplyEnv overrides mail settings with SES_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSMTPHost); ok && v != "" {
		c.Mail.Host = v
	}
	if v, ok := lookup(EnvSMTPPort); ok && v != "" {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSMTPPort, v, err)
		}
		c.Mail.Port = port
	}
	if v, ok := lookup(EnvSMTPUsername); ok && v != "" {
		c.Mail.Username = v
	}
	if v, ok := lookup(EnvSMTPPassword); ok && v != "" {
		c.Mail.Password = v
	}
	if v, ok := lookup(EnvSender); ok && v != "" {
		c.Mail.SenderAddress = v
	}
	if v, ok := lookup(EnvSenderName); ok && v != "" {
		c.Mail.SenderName = v
	}
	if v, ok := lookup(EnvReceivers); ok && v != "" {
		c.Mail.Receivers = SplitReceivers(v)
	}
	return nil
}

// SplitReceivers splits a comma separated receiver list, trimming entries and
// dropping empty ones.
func SplitReceivers(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
