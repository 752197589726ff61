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

package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/telekom/execution-report/pkg/config"
	"github.com/telekom/execution-report/pkg/mail"
	"github.com/telekom/execution-report/pkg/system"
	"go.uber.org/zap"
)

type Config struct {
	ConfigPath   string
	EnvFile      string
	OutputWriter io.Writer
	// Logger overrides the logger built from --debug.
	Logger *zap.SugaredLogger
	// NewSender overrides how the mail sender is constructed.
	NewSender func(config.Mail, *zap.SugaredLogger) mail.Sender
}

type runtimeState struct {
	configPath string
	envFile    string
	debug      bool
	cfg        config.Config
	log        *zap.SugaredLogger
	newSender  func(config.Mail, *zap.SugaredLogger) mail.Sender
	writer     io.Writer
}

type runtimeKey struct{}

func DefaultConfig() Config {
	return Config{
		EnvFile:      ".env",
		OutputWriter: os.Stdout,
		NewSender:    mail.NewSender,
	}
}

func NewRootCommand(cfg Config) *cobra.Command {
	rt := &runtimeState{
		configPath: cfg.ConfigPath,
		envFile:    cfg.EnvFile,
		log:        cfg.Logger,
		newSender:  cfg.NewSender,
		writer:     cfg.OutputWriter,
	}

	root := &cobra.Command{
		Use:           "execreport",
		Short:         "Build and mail the automated UI test execution report",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if rt.writer == nil {
				rt.writer = os.Stdout
			}
			if rt.newSender == nil {
				rt.newSender = mail.NewSender
			}
			if !rt.debug {
				rt.debug = strings.EqualFold(os.Getenv("EXECREPORT_DEBUG"), "true")
			}
			if rt.log == nil {
				log, err := system.NewLogger(rt.debug)
				if err != nil {
					return err
				}
				rt.log = log
			}

			if cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}

			if err := config.LoadDotEnv(rt.envFile); err != nil {
				return err
			}
			loaded, err := config.Load(rt.configPath)
			if err != nil {
				return err
			}
			loaded.Defaults()
			rt.cfg = loaded
			if rt.debug {
				rt.log.Debugw("Loaded configuration",
					"host", loaded.Mail.Host,
					"port", loaded.Mail.Port,
					"receivers", len(loaded.Mail.Receivers),
					"input", loaded.Report.InputPath)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&rt.configPath, "config", rt.configPath, "Path to config file")
	root.PersistentFlags().StringVar(&rt.envFile, "env-file", rt.envFile, "Path to a .env file with SES_* settings")
	root.PersistentFlags().BoolVar(&rt.debug, "debug", false, "Enable debug level logging")

	root.SetContext(context.WithValue(context.Background(), runtimeKey{}, rt))

	root.AddCommand(
		NewRunCommand(),
		NewRenderCommand(),
		NewVersionCommand(),
	)

	return root
}

func getRuntime(cmd *cobra.Command) (*runtimeState, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*runtimeState)
	if !ok || rt == nil {
		return nil, errors.New("runtime not initialized")
	}
	return rt, nil
}

func (rt *runtimeState) Writer() io.Writer {
	if rt.writer == nil {
		return os.Stdout
	}
	return rt.writer
}
