// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/rulebook/pkg/config"
	"github.com/NVIDIA/rulebook/pkg/logging"
)

const name = "rulebook"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the rulebook CLI and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		slog.Error("command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Validate and maintain project rulebook documents",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Sources: cli.EnvVars(logging.EnvLogLevel),
				Value:   "info",
			},
			configFlag(),
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := resolveLogLevel(cmd)
			if err != nil {
				return ctx, err
			}
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
			return ctx, nil
		},
		Commands: []*cli.Command{
			checkCmd(),
			metadataCmd(),
			backupCmd(),
		},
	}
}

// resolveLogLevel prefers --log-level or LOG_LEVEL and falls back to the
// config file's logLevel.
func resolveLogLevel(cmd *cli.Command) (string, error) {
	level := strings.TrimSpace(cmd.String("log-level"))
	if cmd.IsSet("log-level") && level != "" {
		return level, nil
	}
	if env := strings.TrimSpace(os.Getenv(logging.EnvLogLevel)); env != "" {
		return env, nil
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg.LogLevel, nil
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	var w io.Writer = os.Stdout
	if cmd.Writer != nil {
		w = cmd.Writer
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}
