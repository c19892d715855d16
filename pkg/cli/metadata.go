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
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/rulebook/pkg/defaults"
	"github.com/NVIDIA/rulebook/pkg/header"
	"github.com/NVIDIA/rulebook/pkg/metadata"
	"github.com/NVIDIA/rulebook/pkg/serializer"
	"github.com/NVIDIA/rulebook/pkg/validator"
	docversion "github.com/NVIDIA/rulebook/pkg/version"
)

// metadataResult is what the metadata commands serialize.
type metadataResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Source   string            `json:"source" yaml:"source"`
	Metadata metadata.Metadata `json:"documentMetadata" yaml:"documentMetadata"`
	Backup   string            `json:"backup,omitempty" yaml:"backup,omitempty"`
	Written  string            `json:"written,omitempty" yaml:"written,omitempty"`
}

func newMetadataResult(source string, m metadata.Metadata) *metadataResult {
	if m == nil {
		m = metadata.Metadata{}
	}
	r := &metadataResult{
		Source:   source,
		Metadata: m,
	}
	r.Init(header.KindMetadata, validator.APIVersion, version)
	return r
}

// metadataFlags maps flag names to metadata keys for the set command.
var metadataFlags = []struct {
	flag  string
	key   string
	usage string
}{
	{"doc-version", metadata.KeyVersion, "Documentation Version value"},
	{"last-updated", metadata.KeyLastUpdated, "Last Updated value (e.g. 2025-01-31)"},
	{"project", metadata.KeyProject, "Project value"},
	{"description", metadata.KeyDescription, "Description value"},
}

func metadataCmd() *cli.Command {
	return &cli.Command{
		Name:                  "metadata",
		EnableShellCompletion: true,
		Usage:                 "Show or update the metadata lines of a rulebook document",
		Description: `Work with the blockquote metadata lines of a rulebook document:

  > **Documentation Version**: 1.2
  > **Last Updated**: 2025-01-31
  > **Project**: example
  > **Description**: what the project does

Only existing lines are rewritten; missing markers are never added.
Updates back up the source first and write the result to
<output-dir>/updated_<name> unless --in-place is set.`,
		Commands: []*cli.Command{
			metadataShowCmd(),
			metadataSetCmd(),
			metadataBumpCmd(),
		},
	}
}

func metadataShowCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the metadata found in a document",
		Description: `Extract metadata from a document.

# Examples

  rulebook metadata show --file CLAUDE.md
  rulebook metadata show -f CLAUDE.md -t json`,
		Flags: []cli.Flag{
			fileFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := resolveSettings(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("file")
			st := newStore(cfg.outputDir)

			text, err := st.Read(path)
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", path, err)
			}

			return serialize(ctx, cmd, cfg.format, newMetadataResult(path, metadata.Extract(text)))
		},
	}
}

func metadataSetCmd() *cli.Command {
	flags := []cli.Flag{
		fileFlag(),
		&cli.StringFlag{
			Name:  "values",
			Usage: "YAML or JSON file mapping metadata keys (version, last_updated, project, description) to values",
		},
	}
	for _, mf := range metadataFlags {
		flags = append(flags, &cli.StringFlag{Name: mf.flag, Usage: mf.usage})
	}
	flags = append(flags, inPlaceFlag(), outputDirFlag(), outputFlag(), formatFlag())

	return &cli.Command{
		Name:  "set",
		Usage: "Rewrite metadata lines with new values",
		Description: `Rewrite existing metadata lines. Flags take precedence over --values.

# Examples

  rulebook metadata set -f CLAUDE.md --doc-version 1.3 --last-updated 2025-02-01
  rulebook metadata set -f CLAUDE.md --values values.yaml --in-place`,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			values, err := collectValues(cmd)
			if err != nil {
				return err
			}

			return rewrite(ctx, cmd, func(text string) (string, metadata.Metadata, error) {
				return metadata.Update(text, values), values, nil
			})
		},
	}
}

func metadataBumpCmd() *cli.Command {
	return &cli.Command{
		Name:  "bump",
		Usage: "Increment the documentation version and stamp the last updated date",
		Description: fmt.Sprintf(`Increment the Documentation Version and set Last Updated to today.

Parts: %s. Lower components reset to zero.

# Examples

  rulebook metadata bump -f CLAUDE.md
  rulebook metadata bump -f CLAUDE.md --part major --in-place`,
			strings.Join(docversion.SupportedParts(), ", ")),
		Flags: []cli.Flag{
			fileFlag(),
			&cli.StringFlag{
				Name:  "part",
				Value: string(docversion.PartPatch),
				Usage: fmt.Sprintf("Version component to increment (%s)", strings.Join(docversion.SupportedParts(), ", ")),
			},
			inPlaceFlag(),
			outputDirFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			part, err := docversion.ParsePart(cmd.String("part"))
			if err != nil {
				return fmt.Errorf("invalid --part: %w", err)
			}

			return rewrite(ctx, cmd, func(text string) (string, metadata.Metadata, error) {
				return metadata.Bump(text, part, time.Now())
			})
		},
	}
}

func inPlaceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "in-place",
		Usage: "Overwrite the source document instead of writing to the output directory",
	}
}

// collectValues merges the --values file with explicitly set flags.
func collectValues(cmd *cli.Command) (metadata.Metadata, error) {
	values := metadata.Metadata{}

	if path := cmd.String("values"); path != "" {
		loaded, err := serializer.FromFile[metadata.Metadata](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load values from %q: %w", path, err)
		}
		for k, v := range *loaded {
			values[k] = v
		}
	}

	for _, mf := range metadataFlags {
		if cmd.IsSet(mf.flag) {
			values[mf.key] = cmd.String(mf.flag)
		}
	}

	if unknown := metadata.UnknownKeys(values); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown metadata keys: %s", strings.Join(unknown, ", "))
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no metadata values provided")
	}
	return values, nil
}

// rewrite backs up the document, applies edit and writes the result.
func rewrite(ctx context.Context, cmd *cli.Command, edit func(string) (string, metadata.Metadata, error)) error {
	cfg, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	path := cmd.String("file")
	st := newStore(cfg.outputDir)

	text, err := st.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	updated, applied, err := edit(text)
	if err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	backup, err := st.Backup(path)
	if err != nil {
		return fmt.Errorf("failed to back up %q: %w", path, err)
	}

	target := path
	if !cmd.Bool("in-place") {
		target = st.OutputPath(defaults.UpdatedPrefix + filepath.Base(path))
	}

	if err := st.Write(target, updated); err != nil {
		return fmt.Errorf("failed to write %q: %w", target, err)
	}

	slog.Info("metadata updated",
		"source", path,
		"backup", backup,
		"written", target,
		"keys", len(applied))

	result := newMetadataResult(path, applied)
	result.Backup = backup
	result.Written = target
	return serialize(ctx, cmd, cfg.format, result)
}
