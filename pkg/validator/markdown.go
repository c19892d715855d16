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
	"fmt"
	"strings"
	"unicode"
)

const codeFence = "```"

// ValidateMarkdown performs a line-by-line syntax check. A line starting
// with '#' is an error unless it is exactly "#" or starts with "# ", so
// deeper headings such as "## Section" are reported too. A code fence followed
// by anything other than a purely alphanumeric language tag is a warning.
// Line numbers in messages are 1-based.
func ValidateMarkdown(text string) *MarkdownResult {
	result := newMarkdownResult()

	for i, line := range strings.Split(text, "\n") {
		n := i + 1
		if strings.HasPrefix(line, "#") && !isWellFormedHeading(line) {
			result.Errors = append(result.Errors, fmt.Sprintf("Line %d: heading must have a space after hash", n))
		}

		if strings.HasPrefix(line, codeFence) && len(line) > len(codeFence) {
			tag := strings.TrimSpace(line[len(codeFence):])
			if !isAlphanumeric(tag) {
				result.Warnings = append(result.Warnings, fmt.Sprintf("Line %d: code block language tag may be malformed", n))
			}
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// isWellFormedHeading reports whether line, which starts with '#', is a
// single bare hash or a first-level heading followed by a space. Lines are
// compared as-is, so a trailing carriage return counts as content.
func isWellFormedHeading(line string) bool {
	return line == "#" || strings.HasPrefix(line, "# ")
}

// isAlphanumeric is true for a non-empty string of letters and numbers only.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
