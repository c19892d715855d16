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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/rulebook/pkg/header"
	"github.com/NVIDIA/rulebook/pkg/validator"
)

// backupResult is what the backup command serializes.
type backupResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Source string `json:"source" yaml:"source"`
	Backup string `json:"backup" yaml:"backup"`
}

func backupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "backup",
		EnableShellCompletion: true,
		Usage:                 "Copy a document to a timestamped backup",
		Description: `Copy a document to <output-dir>/backup_<name>_<YYYYMMDD_HHMM><ext>,
keeping its modification time and mode. The source and backup paths are
written in the selected format.

# Examples

  rulebook backup --file CLAUDE.md
  rulebook backup -f CLAUDE.md --output-dir .backups -t json`,
		Flags: []cli.Flag{
			fileFlag(),
			outputDirFlag(),
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

			backup, err := st.Backup(path)
			if err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}

			slog.Debug("backup completed", "source", path, "backup", backup)

			result := &backupResult{Source: path, Backup: backup}
			result.Init(header.KindBackup, validator.APIVersion, version)
			return serialize(ctx, cmd, cfg.format, result)
		},
	}
}
