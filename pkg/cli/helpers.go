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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/rulebook/pkg/config"
	"github.com/NVIDIA/rulebook/pkg/serializer"
	"github.com/NVIDIA/rulebook/pkg/store"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a YAML or JSON file with command defaults",
		Sources: cli.EnvVars(config.EnvConfigFile),
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Required: true,
		Usage:    "Path to the rulebook document (e.g. CLAUDE.md)",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func outputDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "output-dir",
		Usage: "Directory receiving backups and updated documents (default: output)",
	}
}

// newStore builds the ContentStore the commands read and write through.
var newStore = func(outputDir string) store.ContentStore {
	return store.New(outputDir)
}

// parseOutputFormat returns the value of the format flag if it is supported.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// settings are the effective command defaults after merging the config
// file with explicitly set flags.
type settings struct {
	format      serializer.Format
	outputDir   string
	failOnError bool
}

func resolveSettings(cmd *cli.Command) (*settings, error) {
	var opts []config.Option
	if cmd.IsSet("format") {
		f, err := parseOutputFormat(cmd)
		if err != nil {
			return nil, err
		}
		opts = append(opts, config.WithFormat(f))
	}
	if cmd.IsSet("output-dir") {
		opts = append(opts, config.WithOutputDir(cmd.String("output-dir")))
	}
	if cmd.IsSet("fail-on-error") {
		opts = append(opts, config.WithFailOnError(cmd.Bool("fail-on-error")))
	}

	cfg, err := config.Load(cmd.String("config"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &settings{
		format:      serializer.Format(cfg.Format),
		outputDir:   cfg.OutputDir,
		failOnError: cfg.FailOnError,
	}, nil
}

func stdout(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.ErrWriter != nil {
		return root.ErrWriter
	}
	return os.Stderr
}

// serialize writes v to the output flag's file or stdout in format.
func serialize(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	ser := serializer.NewWriter(format, stdout(cmd))
	if path := cmd.String("output"); strings.TrimSpace(path) != "" {
		fw, err := serializer.NewFileWriter(format, path)
		if err != nil {
			return fmt.Errorf("failed to open report output: %w", err)
		}
		ser = fw
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	return nil
}
