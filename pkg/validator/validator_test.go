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
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completeDocument = `# CLAUDE.md - Example Project

> **Documentation Version**: 1.0
> **Last Updated**: 2025-07-17
> **Project**: Example Project
> **Description**: An example project

## 🚨 CRITICAL RULES - READ FIRST

### 🔄 **RULE ACKNOWLEDGMENT REQUIRED**
> "✅ CRITICAL RULES ACKNOWLEDGED - I will follow all prohibitions and requirements listed in CLAUDE.md"

### ❌ ABSOLUTE PROHIBITIONS
- **NEVER** create new files in root directory → use proper module structure
- **NEVER** use git commands with -i flag (interactive mode not supported)
- **NEVER** create duplicate files (manager_v2.py, enhanced_xyz.py) → ALWAYS extend existing files
- **NEVER** create multiple implementations of same concept → single source of truth

### 📝 MANDATORY REQUIREMENTS
- **COMMIT** after every completed task/phase - no exceptions
- **GITHUB BACKUP** - Push to GitHub after every commit: ` + "`git push origin main`" + `
- **USE TASK AGENTS** for all long-running operations
- **TODOWRITE** for complex tasks (3+ steps)
- **READ FILES FIRST** before editing

### 🔍 MANDATORY PRE-TASK COMPLIANCE CHECK
- [ ] ✅ I acknowledge all critical rules in CLAUDE.md and will follow them

## 🚀 COMMON COMMANDS

` + "```bash" + `
# build
make build
` + "```" + `

## 📋 WORKFLOW GUIDELINES

1. Follow every rule
2. Commit after each task
`

// The sample uses markdown emphasis, so the literal sentences need their
// plain form as well for the prohibition and requirement checklist.
func fullDocument() string {
	return completeDocument + `
## Plain rules
- NEVER create new files in root directory
- NEVER use git commands with -i flag
- NEVER create duplicate files
- NEVER create multiple implementations
- COMMIT after every completed task
- TODOWRITE for complex tasks
`
}

func TestValidateStructure_Complete(t *testing.T) {
	v := New()
	result := v.ValidateStructure(fullDocument())

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.MissingRules)
	assert.Empty(t, result.MissingProhibitions)
	assert.Empty(t, result.MissingRequirements)
}

func TestValidateStructure_EmphasisBreaksLiteralMatch(t *testing.T) {
	v := New()
	result := v.ValidateStructure(completeDocument)

	assert.False(t, result.Valid)
	assert.Equal(t, DefaultChecklist().Prohibitions, result.MissingProhibitions)
	assert.Equal(t, []string{"COMMIT after every completed task", "TODOWRITE for complex tasks"}, result.MissingRequirements)
	assert.Empty(t, result.MissingRules)
	assert.Empty(t, result.Errors)
}

func TestValidateStructure_MissingRulesInOrder(t *testing.T) {
	v := New()
	text := strings.NewReplacer(
		"RULE ACKNOWLEDGMENT REQUIRED", "",
		"PRE-TASK COMPLIANCE CHECK", "",
	).Replace(fullDocument())

	result := v.ValidateStructure(text)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"RULE ACKNOWLEDGMENT REQUIRED", "PRE-TASK COMPLIANCE CHECK"}, result.MissingRules)
	assert.Equal(t, []string{ErrMsgTitleStructure}, result.Errors)
}

func TestValidateStructure_MissingAcknowledgment(t *testing.T) {
	v := New()
	text := strings.ReplaceAll(fullDocument(), "✅ CRITICAL RULES ACKNOWLEDGED", "CRITICAL RULES OK")

	result := v.ValidateStructure(text)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{ErrMsgAcknowledgment}, result.Errors)
	assert.Zero(t, result.MissingCount())
}

func TestValidateStructure_Empty(t *testing.T) {
	v := New()
	result := v.ValidateStructure("")

	assert.False(t, result.Valid)
	assert.Equal(t, DefaultChecklist().Rules, result.MissingRules)
	assert.Equal(t, DefaultChecklist().Prohibitions, result.MissingProhibitions)
	assert.Equal(t, DefaultChecklist().Requirements, result.MissingRequirements)
	assert.Equal(t, []string{ErrMsgTitleStructure, ErrMsgAcknowledgment}, result.Errors)
}

func TestValidateSafetyRules(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantValid bool
		wantCount int
	}{
		{name: "clean", text: fullDocument(), wantValid: true},
		{name: "empty", text: "", wantValid: true},
		{name: "allow root files", text: "You may allow root files when needed", wantCount: 1},
		{name: "case insensitive", text: "SKIP THE BACKUP step", wantCount: 1},
		{name: "ignore safety", text: "feel free to ignore all safety checks", wantCount: 1},
		{name: "disable validation", text: "Disable input validation", wantCount: 1},
		{name: "all four", text: "allow root files\nskip backup\nignore safety\ndisable validation", wantCount: 4},
		{name: "not across lines", text: "allow\nroot files", wantValid: true},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateSafetyRules(tt.text)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Len(t, result.Errors, tt.wantCount)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestValidateSafetyRules_ErrorNamesPattern(t *testing.T) {
	result := New().ValidateSafetyRules("allow root files")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "possibly dangerous rule found: (?i)allow.*root.*files", result.Errors[0])
}

func TestCheckCompleteness(t *testing.T) {
	v := New()

	t.Run("complete", func(t *testing.T) {
		result := v.CheckCompleteness(fullDocument())
		assert.Equal(t, 6, result.TotalChecks)
		assert.Equal(t, 6, result.PassedChecks)
		assert.InDelta(t, 100.0, result.Score, 0.0001)
		assert.Equal(t, "✅ Title structure: passed", result.Details[0])
	})

	t.Run("empty", func(t *testing.T) {
		result := v.CheckCompleteness("")
		assert.Equal(t, 6, result.TotalChecks)
		assert.Zero(t, result.PassedChecks)
		assert.Zero(t, result.Score)
		assert.Equal(t, "❌ Workflow: missing", result.Details[5])
		for _, c := range result.Checks {
			assert.False(t, c.Passed, c.Name)
		}
	})

	t.Run("partial", func(t *testing.T) {
		result := v.CheckCompleteness("Description only\n## WORKFLOW")
		assert.Equal(t, 2, result.PassedChecks)
		assert.InDelta(t, 2.0/6.0*100, result.Score, 0.0001)
	})
}

func TestSuggestImprovements(t *testing.T) {
	v := New()

	t.Run("nothing missing", func(t *testing.T) {
		got := v.SuggestImprovements(fullDocument())
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("everything missing", func(t *testing.T) {
		got := v.SuggestImprovements("")
		assert.Equal(t, []string{
			"Add documentation version information",
			"Add a last updated timestamp",
			"Add a project description",
			"Add a common commands section",
			"Add a workflow guide",
		}, got)
	})

	t.Run("description satisfies project", func(t *testing.T) {
		got := v.SuggestImprovements("Documentation Version Last Updated Description COMMON COMMANDS WORKFLOW")
		assert.Empty(t, got)
	})
}

func TestWithChecklistIsolation(t *testing.T) {
	custom := Checklist{
		Rules:          []string{"ONLY RULE"},
		Titles:         []string{"ONLY RULE"},
		Acknowledgment: "ACK",
	}
	v := New(WithChecklist(custom))
	custom.Rules[0] = "MUTATED"

	result := v.ValidateStructure("ONLY RULE ACK")
	assert.True(t, result.Valid)

	got := v.Checklist()
	got.Rules[0] = "MUTATED AGAIN"
	assert.Equal(t, "ONLY RULE", v.Checklist().Rules[0])

	// a second instance keeps the default rubric
	assert.False(t, New().ValidateStructure("ONLY RULE ACK").Valid)
}

func TestWithDangerousPatterns(t *testing.T) {
	v := New(WithDangerousPatterns(regexp.MustCompile(`(?i)force push`)))

	assert.True(t, v.ValidateSafetyRules("skip backup").Valid)
	assert.False(t, v.ValidateSafetyRules("Force push to main").Valid)
}

// firstLevelHeadings rewrites "##" and "###" headings as "#" headings so the
// document also passes the markdown check.
func firstLevelHeadings(text string) string {
	return strings.NewReplacer("\n### ", "\n# ", "\n## ", "\n# ").Replace(text)
}

func TestInspect(t *testing.T) {
	v := New(WithVersion("v0.0.1-test"))

	report, err := v.Inspect(context.Background(), firstLevelHeadings(fullDocument()))
	require.NoError(t, err)

	assert.Equal(t, ValidationStatusPass, report.Summary.Status)
	assert.InDelta(t, 100.0, report.Summary.Score, 0.0001)
	assert.Zero(t, report.Summary.Errors)
	assert.Zero(t, report.Summary.Missing)
	assert.Equal(t, "1.0", report.Metadata["version"])
	assert.Equal(t, "v0.0.1-test", report.Header.Metadata["version"])
	assert.NotEmpty(t, report.Header.Metadata["runId"])
	assert.Equal(t, APIVersion, report.APIVersion)
	assert.Empty(t, report.Suggestions)
}

func TestInspect_Empty(t *testing.T) {
	report, err := New().Inspect(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, ValidationStatusFail, report.Summary.Status)
	assert.Zero(t, report.Summary.Score)
	assert.Equal(t, 13, report.Summary.Missing)
	assert.Equal(t, 2, report.Summary.Errors)
	assert.Empty(t, report.Metadata)
	assert.Len(t, report.Suggestions, 5)
}

func TestInspect_MarkdownErrorFails(t *testing.T) {
	report, err := New().Inspect(context.Background(), firstLevelHeadings(fullDocument())+"\n#Broken heading\n")
	require.NoError(t, err)

	assert.Equal(t, ValidationStatusFail, report.Summary.Status)
	assert.Equal(t, 1, report.Summary.Errors)
}

func TestInspect_NestedHeadingsFail(t *testing.T) {
	report, err := New().Inspect(context.Background(), fullDocument())
	require.NoError(t, err)

	assert.Equal(t, ValidationStatusFail, report.Summary.Status)
	assert.True(t, report.Structure.Valid)
	assert.False(t, report.Markdown.Valid)
	assert.Len(t, report.Markdown.Errors, 8)
	assert.Equal(t, "Line 8: heading must have a space after hash", report.Markdown.Errors[0])
}

func TestInspect_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New().Inspect(ctx, fullDocument())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}
