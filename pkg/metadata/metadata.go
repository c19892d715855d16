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

// Package metadata reads and rewrites the metadata block of a rulebook.
//
// Metadata lives in marker lines of the form
//
//	> **Documentation Version**: 1.0
//	> **Last Updated**: 2025-07-17
//	> **Project**: Example
//	> **Description**: What the project does
//
// Extract and Update work line by line on these four markers only. Every
// other line passes through Update byte for byte.
package metadata

import (
	"slices"
	"strings"
	"time"

	"github.com/NVIDIA/rulebook/pkg/defaults"
	"github.com/NVIDIA/rulebook/pkg/errors"
	"github.com/NVIDIA/rulebook/pkg/version"
)

// Recognized metadata keys.
const (
	KeyVersion     = "version"
	KeyLastUpdated = "last_updated"
	KeyProject     = "project"
	KeyDescription = "description"
)

// Metadata maps recognized keys to values. Absent keys were not found.
type Metadata map[string]string

// Field ties a metadata key to the label used in its marker line.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// marker is the substring identifying the field's line.
func (f Field) marker() string {
	return "**" + f.Label + "**:"
}

// render returns the canonical marker line for value.
func (f Field) render(value string) string {
	return "> **" + f.Label + "**: " + value
}

// fields are tried in order; the first marker found on a line owns it.
var fields = []Field{
	{Key: KeyVersion, Label: "Documentation Version"},
	{Key: KeyLastUpdated, Label: "Last Updated"},
	{Key: KeyProject, Label: "Project"},
	{Key: KeyDescription, Label: "Description"},
}

// Fields returns the recognized fields in marker priority order.
func Fields() []Field {
	return slices.Clone(fields)
}

// UnknownKeys returns the keys of m that are not recognized, sorted.
func UnknownKeys(m Metadata) []string {
	var unknown []string
	for k := range m {
		if !slices.ContainsFunc(fields, func(f Field) bool { return f.Key == k }) {
			unknown = append(unknown, k)
		}
	}
	slices.Sort(unknown)
	return unknown
}

// match returns the first field whose marker appears on line and the marker's
// end offset, or false when the line carries no marker.
func match(line string) (Field, int, bool) {
	for _, f := range fields {
		m := f.marker()
		if idx := strings.Index(line, m); idx >= 0 {
			return f, idx + len(m), true
		}
	}
	return Field{}, 0, false
}

// Extract collects the value after each marker's colon, trimmed of
// surrounding whitespace. When a marker repeats, the last line wins.
func Extract(text string) Metadata {
	md := Metadata{}
	for _, line := range strings.Split(text, "\n") {
		f, end, ok := match(line)
		if !ok {
			continue
		}
		md[f.Key] = strings.TrimSpace(line[end:])
	}
	return md
}

// Update replaces every marker line whose key is present in values with the
// canonical "> **Label**: value" form. Markers are tried in priority order
// and the first one that is both on the line and in values wins, so a line
// carrying two markers is rewritten for the second when only its key is
// given. Line count and all other lines are preserved exactly.
func Update(text string, values Metadata) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, f := range fields {
			v, present := values[f.Key]
			if present && strings.Contains(line, f.marker()) {
				lines[i] = f.render(v)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// Bump increments the documented version by part and stamps Last Updated
// with now's date. It returns the rewritten text and the values applied.
func Bump(text string, part version.Part, now time.Time) (string, Metadata, error) {
	current, ok := Extract(text)[KeyVersion]
	if !ok {
		return "", nil, errors.New(errors.ErrCodeInvalidRequest, "document has no Documentation Version marker")
	}

	v, err := version.ParseVersion(current)
	if err != nil {
		return "", nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"cannot parse documentation version", err, map[string]any{"version": current})
	}

	next, err := v.Bump(part)
	if err != nil {
		return "", nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"cannot bump documentation version", err, map[string]any{"part": part})
	}

	applied := Metadata{
		KeyVersion:     next.String(),
		KeyLastUpdated: now.Format(defaults.DateLayout),
	}
	return Update(text, applied), applied, nil
}
