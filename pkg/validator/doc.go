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

// Package validator checks rulebook convention documents for structural
// completeness, unsafe phrasing and basic Markdown syntax.
//
// # Overview
//
// A rulebook is a Markdown document that tells coding agents which rules to
// follow. The validator does not parse Markdown. It looks for literal
// phrases: required section labels, prohibition and requirement sentences,
// four section titles and an acknowledgment marker. Presence of the exact
// phrase is the whole contract.
//
// # Checks
//
//   - ValidateStructure: missing checklist items plus title and acknowledgment errors
//   - ValidateSafetyRules: case-insensitive regular expressions for weakened rules
//   - CheckCompleteness: six-item rubric scored 0-100
//   - SuggestImprovements: advisories for missing optional sections
//   - ValidateMarkdown: heading spacing errors and code fence tag warnings
//
// None of these fail. Any string, including the empty string, yields a report.
//
// # Usage
//
//	v := validator.New(validator.WithVersion(version))
//	report, err := v.Inspect(ctx, content)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Status: %s (%.1f%%)\n", report.Summary.Status, report.Summary.Score)
//
// A Validator holds immutable configuration. Use WithChecklist and
// WithDangerousPatterns to build an instance with a different rubric.
//
// # Metrics
//
// Inspect records rulebook_checks_total, rulebook_completeness_score and
// rulebook_inspection_duration_seconds on the default Prometheus registry.
package validator
