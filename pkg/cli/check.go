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

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/rulebook/pkg/defaults"
	"github.com/NVIDIA/rulebook/pkg/validator"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Inspect a rulebook document for structure, safety and completeness",
		Description: `Inspect a rulebook document and report:
  - Required section titles, rules, prohibitions and requirements
  - Rules that look like they weaken safety (e.g. "skip backup")
  - Completeness score over six checks
  - Heading and code fence syntax problems
  - Suggestions for missing metadata and sections

The report is written in YAML, JSON or table format. A colored summary
is printed to stderr unless --quiet is set.

# Examples

Inspect a document:
  rulebook check --file CLAUDE.md

Write a JSON report to a file:
  rulebook check -f CLAUDE.md -o report.json -t json

Fail the command when the document does not pass (useful for CI/CD):
  rulebook check -f CLAUDE.md --fail-on-error`,
		Flags: []cli.Flag{
			fileFlag(),
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit with non-zero status if the document does not pass",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not print the summary to stderr",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics for this run to a textfile collector file",
			},
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

			slog.Info("loading document", "path", path)

			text, err := st.Read(path)
			if err != nil {
				return fmt.Errorf("failed to read %q: %w", path, err)
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.InspectionTimeout)
			defer cancel()

			v := validator.New(validator.WithVersion(version))
			report, err := v.Inspect(ctx, text)
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			report.Source = path

			if err := serialize(ctx, cmd, cfg.format, report); err != nil {
				return err
			}

			if mf := cmd.String("metrics-file"); mf != "" {
				if err := validator.WriteMetrics(mf); err != nil {
					return fmt.Errorf("failed to write metrics to %q: %w", mf, err)
				}
			}

			if !cmd.Bool("quiet") {
				printSummary(stderr(cmd), report)
			}

			slog.Info("inspection completed",
				"status", report.Summary.Status,
				"score", report.Summary.Score,
				"errors", report.Summary.Errors,
				"missing", report.Summary.Missing,
				"duration", report.Summary.Duration)

			if cfg.failOnError && report.Summary.Status == validator.ValidationStatusFail {
				return fmt.Errorf("document %q did not pass: %d error(s), %d missing item(s)",
					path, report.Summary.Errors, report.Summary.Missing)
			}

			return nil
		},
	}
}

// printSummary renders the human-readable outcome of an inspection.
func printSummary(w io.Writer, r *validator.Report) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(w, "\n%s\n\n", cyan(fmt.Sprintf("=== Rulebook Inspection: %s ===", r.Source)))

	status := green("PASS")
	if r.Summary.Status == validator.ValidationStatusFail {
		status = red("FAIL")
	}
	fmt.Fprintf(w, "Status:       %s\n", status)
	fmt.Fprintf(w, "Completeness: %.1f%% (%d/%d checks)\n",
		r.Completeness.Score, r.Completeness.PassedChecks, r.Completeness.TotalChecks)

	for _, c := range r.Completeness.Checks {
		if c.Passed {
			fmt.Fprintf(w, "  %s %s\n", green("✓"), c.Name)
		} else {
			fmt.Fprintf(w, "  %s %s\n", red("✗"), c.Name)
		}
	}

	printList(w, yellow("Structure errors:"), red, r.Structure.Errors)
	printList(w, yellow("Missing rules:"), red, r.Structure.MissingRules)
	printList(w, yellow("Missing prohibitions:"), red, r.Structure.MissingProhibitions)
	printList(w, yellow("Missing requirements:"), red, r.Structure.MissingRequirements)
	printList(w, yellow("Safety errors:"), red, r.Safety.Errors)
	printList(w, yellow("Markdown errors:"), red, r.Markdown.Errors)
	printList(w, yellow("Markdown warnings:"), yellow, r.Markdown.Warnings)
	printList(w, yellow("Suggestions:"), gray, r.Suggestions)
	fmt.Fprintln(w)
}

func printList(w io.Writer, title string, paint func(a ...any) string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  %s %s\n", paint("•"), item)
	}
}
