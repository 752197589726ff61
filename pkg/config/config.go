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
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultConfigPath  = "./config.yaml"
	DefaultSMTPPort    = 587
	DefaultSenderName  = "Codifi QA Team"
	DefaultSubject     = "Pytest Automation Execution Report"
	DefaultInputPath   = "login_test_results.csv"
	DefaultSummaryPath = "overall_execution_summary.csv"
)

// Mail configures the SMTP submission endpoint and the report envelope.
type Mail struct {
	Host               string   `yaml:"host"`
	Port               int      `yaml:"port"`
	Username           string   `yaml:"username"`
	Password           string   `yaml:"password"`
	InsecureSkipVerify bool     `yaml:"insecureSkipVerify"`
	SenderAddress      string   `yaml:"senderAddress"`
	SenderName         string   `yaml:"senderName"`
	Receivers          []string `yaml:"receivers"`
}

// Report configures input and output locations of a report run.
type Report struct {
	Subject   string `yaml:"subject"`
	InputPath string `yaml:"inputPath"`
	// SummaryPath is where the overall summary CSV is written.
	SummaryPath string `yaml:"summaryPath"`
	// AttachmentPath is attached to the mail when it names an existing file.
	AttachmentPath string `yaml:"attachmentPath"`
}

type Config struct {
	Mail   Mail   `yaml:"mail"`
	Report Report `yaml:"report"`
}

// Load loads the report configuration from a file path and applies SES_*
// environment overrides. If configPath is empty, EXECREPORT_CONFIG_PATH and
// then "./config.yaml" are tried; a missing default file is not an error
// since all settings may come from the environment.
func Load(configPath ...string) (Config, error) {
	var config Config

	path := ""
	if len(configPath) > 0 {
		path = configPath[0]
	}
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvConfigPath); env != "" {
			path = env
			explicit = true
		} else {
			path = DefaultConfigPath
		}
	}

	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(content, &config); err != nil {
			return config, fmt.Errorf("error unmarshaling YAML %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return config, fmt.Errorf("trying to open report config file %s: %w", path, err)
	}

	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return config, err
	}
	return config, nil
}

// Defaults fills unset values.
func (c *Config) Defaults() {
	if c.Mail.Port == 0 {
		c.Mail.Port = DefaultSMTPPort
	}
	if c.Mail.SenderName == "" {
		c.Mail.SenderName = DefaultSenderName
	}
	if c.Report.Subject == "" {
		c.Report.Subject = DefaultSubject
	}
	if c.Report.InputPath == "" {
		c.Report.InputPath = DefaultInputPath
	}
	if c.Report.SummaryPath == "" {
		c.Report.SummaryPath = DefaultSummaryPath
	}
}

// Validate checks the settings needed to submit mail.
func (m Mail) Validate() error {
	var errs []error
	if m.Host == "" {
		errs = append(errs, errors.New("mail host is required"))
	}
	if m.Port <= 0 || m.Port > 65535 {
		errs = append(errs, fmt.Errorf("mail port %d is out of range", m.Port))
	}
	if m.SenderAddress == "" {
		errs = append(errs, errors.New("mail sender address is required"))
	}
	if len(m.Receivers) == 0 {
		errs = append(errs, errors.New("at least one mail receiver is required"))
	}
	return errors.Join(errs...)
}
