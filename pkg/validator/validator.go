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

package validator

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/rulebook/pkg/header"
	"github.com/NVIDIA/rulebook/pkg/metadata"
)

const (
	// APIVersion is the API version for inspection reports.
	APIVersion = "rulebook.nvidia.com/v1alpha1"
)

// Fixed structure errors.
const (
	ErrMsgTitleStructure = "missing required title structure"
	ErrMsgAcknowledgment = "missing rule acknowledgment system"
)

// Validator checks rulebook documents against a fixed Checklist and
// dangerous-pattern set. It holds only read-only configuration and is safe
// for concurrent use.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string

	checklist Checklist
	patterns  []*regexp.Regexp
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// WithChecklist replaces the default rubric. The checklist is copied.
func WithChecklist(c Checklist) Option {
	return func(v *Validator) {
		v.checklist = c.clone()
	}
}

// WithDangerousPatterns replaces the default dangerous-pattern set.
func WithDangerousPatterns(patterns ...*regexp.Regexp) Option {
	return func(v *Validator) {
		v.patterns = slices.Clone(patterns)
	}
}

// New creates a new Validator with the default rubric and the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{
		checklist: DefaultChecklist(),
		patterns:  DefaultDangerousPatterns(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Checklist returns a copy of the rubric this validator checks.
func (v *Validator) Checklist() Checklist {
	return v.checklist.clone()
}

// ValidateStructure checks that every checklist entry, every title and the
// acknowledgment marker appear in text. Missing entries are listed in
// checklist order.
func (v *Validator) ValidateStructure(text string) *StructureResult {
	result := newStructureResult()

	result.MissingRules = appendMissing(result.MissingRules, text, v.checklist.Rules)
	result.MissingProhibitions = appendMissing(result.MissingProhibitions, text, v.checklist.Prohibitions)
	result.MissingRequirements = appendMissing(result.MissingRequirements, text, v.checklist.Requirements)

	if !v.hasTitleStructure(text) {
		result.Errors = append(result.Errors, ErrMsgTitleStructure)
	}
	if !v.hasAcknowledgment(text) {
		result.Errors = append(result.Errors, ErrMsgAcknowledgment)
	}

	result.Valid = len(result.Errors) == 0 && result.MissingCount() == 0
	return result
}

func appendMissing(dst []string, text string, required []string) []string {
	for _, item := range required {
		if !strings.Contains(text, item) {
			dst = append(dst, item)
		}
	}
	return dst
}

func (v *Validator) hasTitleStructure(text string) bool {
	for _, title := range v.checklist.Titles {
		if !strings.Contains(text, title) {
			return false
		}
	}
	return true
}

func (v *Validator) hasAcknowledgment(text string) bool {
	return strings.Contains(text, v.checklist.Acknowledgment)
}

// ValidateSafetyRules searches text for each dangerous pattern. Every match
// adds an error naming the pattern. Warnings are never populated.
func (v *Validator) ValidateSafetyRules(text string) *SafetyResult {
	result := newSafetyResult()
	for _, re := range v.patterns {
		if re.MatchString(text) {
			result.Errors = append(result.Errors, fmt.Sprintf("possibly dangerous rule found: %s", re.String()))
		}
	}
	result.Valid = len(result.Errors) == 0
	return result
}

// completenessCheck is one named predicate of the completeness rubric.
type completenessCheck struct {
	name string
	pass func(text string) bool
}

func (v *Validator) completenessChecks() []completenessCheck {
	return []completenessCheck{
		{"Title structure", v.hasTitleStructure},
		{"Rule acknowledgment", v.hasAcknowledgment},
		{"Metadata", containsFunc(MarkerDocVersion)},
		{"Project description", containsFunc(MarkerProject, MarkerDescription)},
		{"Common commands", containsFunc(MarkerCommonCommands)},
		{"Workflow", containsFunc(MarkerWorkflow)},
	}
}

// containsFunc returns a predicate true when text contains any of markers.
func containsFunc(markers ...string) func(string) bool {
	return func(text string) bool {
		for _, m := range markers {
			if strings.Contains(text, m) {
				return true
			}
		}
		return false
	}
}

// CheckCompleteness scores text against the six-item completeness rubric.
func (v *Validator) CheckCompleteness(text string) *CompletenessResult {
	checks := v.completenessChecks()
	result := &CompletenessResult{
		Details: make([]string, 0, len(checks)),
		Checks:  make([]CheckOutcome, 0, len(checks)),
	}

	for _, c := range checks {
		passed := c.pass(text)
		result.TotalChecks++
		if passed {
			result.PassedChecks++
			result.Details = append(result.Details, fmt.Sprintf("✅ %s: passed", c.name))
		} else {
			result.Details = append(result.Details, fmt.Sprintf("❌ %s: missing", c.name))
		}
		result.Checks = append(result.Checks, CheckOutcome{Name: c.name, Passed: passed})
	}

	if result.TotalChecks > 0 {
		result.Score = float64(result.PassedChecks) / float64(result.TotalChecks) * 100
	}
	return result
}

// suggestion pairs an advisory with the predicate that makes it unnecessary.
type suggestion struct {
	message   string
	satisfied func(string) bool
}

var suggestions = []suggestion{
	{"Add documentation version information", containsFunc(MarkerDocVersion)},
	{"Add a last updated timestamp", containsFunc(MarkerLastUpdated)},
	{"Add a project description", containsFunc(MarkerProject, MarkerDescription)},
	{"Add a common commands section", containsFunc(MarkerCommonCommands)},
	{"Add a workflow guide", containsFunc(MarkerWorkflow)},
}

// SuggestImprovements returns advisories for missing optional sections in
// priority order. The result is empty, not nil, when nothing is missing.
func (v *Validator) SuggestImprovements(text string) []string {
	out := []string{}
	for _, s := range suggestions {
		if !s.satisfied(text) {
			out = append(out, s.message)
		}
	}
	return out
}

// Inspect runs every check against text and assembles a Report.
// It returns an error only when ctx is done before the checks complete.
func (v *Validator) Inspect(ctx context.Context, text string) (*Report, error) {
	start := time.Now()

	report := &Report{}
	report.Init(header.KindInspectionReport, APIVersion, v.Version)
	report.Set("runId", uuid.NewString())

	steps := []func(){
		func() { report.Metadata = metadata.Extract(text) },
		func() { report.Structure = v.ValidateStructure(text) },
		func() { report.Safety = v.ValidateSafetyRules(text) },
		func() { report.Completeness = v.CheckCompleteness(text) },
		func() { report.Markdown = ValidateMarkdown(text) },
		func() { report.Suggestions = v.SuggestImprovements(text) },
	}
	for _, step := range steps {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		step()
	}

	report.Summary = summarize(report)
	report.Summary.Duration = time.Since(start)
	recordInspection(report)

	slog.Debug("inspection completed",
		"status", report.Summary.Status,
		"score", report.Summary.Score,
		"errors", report.Summary.Errors,
		"missing", report.Summary.Missing,
		"warnings", report.Summary.Warnings,
		"duration", report.Summary.Duration)

	return report, nil
}

func summarize(r *Report) Summary {
	s := Summary{
		Score:    r.Completeness.Score,
		Errors:   len(r.Structure.Errors) + len(r.Safety.Errors) + len(r.Markdown.Errors),
		Warnings: len(r.Structure.Warnings) + len(r.Safety.Warnings) + len(r.Markdown.Warnings),
		Missing:  r.Structure.MissingCount(),
		Status:   ValidationStatusPass,
	}
	if !r.Structure.Valid || !r.Safety.Valid || !r.Markdown.Valid {
		s.Status = ValidationStatusFail
	}
	return s
}
