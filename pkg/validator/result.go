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
	"time"

	"github.com/NVIDIA/rulebook/pkg/header"
	"github.com/NVIDIA/rulebook/pkg/metadata"
)

// ValidationStatus represents the overall inspection outcome.
type ValidationStatus string

const (
	// ValidationStatusPass indicates every validation passed.
	ValidationStatusPass ValidationStatus = "pass"

	// ValidationStatusFail indicates at least one validation reported the document invalid.
	ValidationStatusFail ValidationStatus = "fail"
)

// StructureResult reports required sections, sentences and markers.
// Valid is true iff Errors and all three Missing slices are empty.
type StructureResult struct {
	Valid               bool     `json:"valid" yaml:"valid"`
	Errors              []string `json:"errors" yaml:"errors"`
	Warnings            []string `json:"warnings" yaml:"warnings"`
	MissingRules        []string `json:"missingRules" yaml:"missingRules"`
	MissingProhibitions []string `json:"missingProhibitions" yaml:"missingProhibitions"`
	MissingRequirements []string `json:"missingRequirements" yaml:"missingRequirements"`
}

// MissingCount returns the number of missing checklist items.
func (r *StructureResult) MissingCount() int {
	return len(r.MissingRules) + len(r.MissingProhibitions) + len(r.MissingRequirements)
}

// SafetyResult reports dangerous phrasings. Valid is true iff Errors is empty.
type SafetyResult struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// MarkdownResult reports line-level syntax problems. Warnings never affect Valid.
type MarkdownResult struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// CheckOutcome is the result of one completeness check.
type CheckOutcome struct {
	Name   string `json:"name" yaml:"name"`
	Passed bool   `json:"passed" yaml:"passed"`
}

// CompletenessResult scores a document against the six-item rubric.
type CompletenessResult struct {
	// Score is PassedChecks/TotalChecks*100, or 0 when TotalChecks is 0.
	Score        float64        `json:"score" yaml:"score"`
	TotalChecks  int            `json:"totalChecks" yaml:"totalChecks"`
	PassedChecks int            `json:"passedChecks" yaml:"passedChecks"`
	Details      []string       `json:"details" yaml:"details"`
	Checks       []CheckOutcome `json:"checks" yaml:"checks"`
}

// Summary aggregates an inspection.
type Summary struct {
	Status   ValidationStatus `json:"status" yaml:"status"`
	Score    float64          `json:"score" yaml:"score"`
	Errors   int              `json:"errors" yaml:"errors"`
	Warnings int              `json:"warnings" yaml:"warnings"`
	Missing  int              `json:"missing" yaml:"missing"`
	Duration time.Duration    `json:"duration" yaml:"duration"`
}

// Report is the complete outcome of inspecting one document.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Source is the path of the inspected document, set by the caller.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	Summary      Summary             `json:"summary" yaml:"summary"`
	Metadata     metadata.Metadata   `json:"documentMetadata" yaml:"documentMetadata"`
	Structure    *StructureResult    `json:"structure" yaml:"structure"`
	Safety       *SafetyResult       `json:"safety" yaml:"safety"`
	Completeness *CompletenessResult `json:"completeness" yaml:"completeness"`
	Markdown     *MarkdownResult     `json:"markdown" yaml:"markdown"`
	Suggestions  []string            `json:"suggestions" yaml:"suggestions"`
}

func newStructureResult() *StructureResult {
	return &StructureResult{
		Valid:               true,
		Errors:              []string{},
		Warnings:            []string{},
		MissingRules:        []string{},
		MissingProhibitions: []string{},
		MissingRequirements: []string{},
	}
}

func newSafetyResult() *SafetyResult {
	return &SafetyResult{Valid: true, Errors: []string{}, Warnings: []string{}}
}

func newMarkdownResult() *MarkdownResult {
	return &MarkdownResult{Valid: true, Errors: []string{}, Warnings: []string{}}
}
