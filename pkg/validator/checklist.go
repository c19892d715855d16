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
	"regexp"
	"slices"
)

// Markers looked up by the completeness rubric and the improvement suggestions.
const (
	MarkerDocVersion     = "Documentation Version"
	MarkerLastUpdated    = "Last Updated"
	MarkerProject        = "Project"
	MarkerDescription    = "Description"
	MarkerCommonCommands = "COMMON COMMANDS"
	MarkerWorkflow       = "WORKFLOW"
)

// Checklist is the fixed rubric a Validator checks a document against.
// Every entry is matched as a literal, case-sensitive substring.
type Checklist struct {
	// Rules are required section labels.
	Rules []string `json:"rules" yaml:"rules"`

	// Prohibitions are required prohibition sentences.
	Prohibitions []string `json:"prohibitions" yaml:"prohibitions"`

	// Requirements are required requirement sentences.
	Requirements []string `json:"requirements" yaml:"requirements"`

	// Titles must all be present for the title structure check to pass.
	Titles []string `json:"titles" yaml:"titles"`

	// Acknowledgment is the marker the document asks agents to reply with.
	Acknowledgment string `json:"acknowledgment" yaml:"acknowledgment"`
}

// DefaultChecklist returns a fresh copy of the standard rulebook rubric.
func DefaultChecklist() Checklist {
	return Checklist{
		Rules: []string{
			"RULE ACKNOWLEDGMENT REQUIRED",
			"ABSOLUTE PROHIBITIONS",
			"MANDATORY REQUIREMENTS",
			"PRE-TASK COMPLIANCE CHECK",
		},
		Prohibitions: []string{
			"NEVER create new files in root directory",
			"NEVER use git commands with -i flag",
			"NEVER create duplicate files",
			"NEVER create multiple implementations",
		},
		Requirements: []string{
			"COMMIT after every completed task",
			"GITHUB BACKUP",
			"USE TASK AGENTS",
			"TODOWRITE for complex tasks",
			"READ FILES FIRST",
		},
		Titles: []string{
			"CRITICAL RULES - READ FIRST",
			"RULE ACKNOWLEDGMENT REQUIRED",
			"ABSOLUTE PROHIBITIONS",
			"MANDATORY REQUIREMENTS",
		},
		Acknowledgment: "✅ CRITICAL RULES ACKNOWLEDGED",
	}
}

// clone returns a deep copy so a Validator never shares slices with its caller.
func (c Checklist) clone() Checklist {
	return Checklist{
		Rules:          slices.Clone(c.Rules),
		Prohibitions:   slices.Clone(c.Prohibitions),
		Requirements:   slices.Clone(c.Requirements),
		Titles:         slices.Clone(c.Titles),
		Acknowledgment: c.Acknowledgment,
	}
}

// defaultDangerousPatterns match phrasings that weaken the rulebook's safety rules.
var defaultDangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)allow.*root.*files`),
	regexp.MustCompile(`(?i)skip.*backup`),
	regexp.MustCompile(`(?i)ignore.*safety`),
	regexp.MustCompile(`(?i)disable.*validation`),
}

// DefaultDangerousPatterns returns the standard dangerous-pattern set.
func DefaultDangerousPatterns() []*regexp.Regexp {
	return slices.Clone(defaultDangerousPatterns)
}
