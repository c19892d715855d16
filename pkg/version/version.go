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

// Package version parses and increments dotted document versions such as
// the "Documentation Version" field of a rulebook ("1.0", "v2.3.1").
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
	ErrUnknownPart       = errors.New("unknown version part")
)

// Part names a version component that can be bumped.
type Part string

const (
	PartMajor Part = "major"
	PartMinor Part = "minor"
	PartPatch Part = "patch"
)

// SupportedParts returns the part names accepted by ParsePart.
func SupportedParts() []string {
	return []string{string(PartMajor), string(PartMinor), string(PartPatch)}
}

// ParsePart converts a case-insensitive name into a Part.
func ParsePart(s string) (Part, error) {
	p := Part(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PartMajor, PartMinor, PartPatch:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPart, s)
	}
}

// Version is a dotted version with one to three numeric components.
// Precision records how many components were written so that "1.0" bumps
// to "1.1" rather than "1.1.0".
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	// Precision indicates how many components are significant (1, 2, or 3)
	Precision int `json:"precision" yaml:"precision"`

	// Prefix holds a leading "v" when the source had one.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`

	// Extras stores trailing metadata such as "-draft" or "+build.7".
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// String renders the version with its original prefix and precision.
// Extras are not included.
func (v Version) String() string {
	var s string
	switch v.Precision {
	case 1:
		s = strconv.Itoa(v.Major)
	case 2:
		s = fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		s = fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return v.Prefix + s
}

// ParseVersion parses "1", "1.2", "1.2.3", optionally prefixed with "v" and
// followed by "-suffix" or "+metadata". Surrounding whitespace is ignored.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	var v Version
	if strings.HasPrefix(s, "v") {
		v.Prefix = "v"
		s = s[1:]
	}

	// extras start at the first '-' or '+' that follows a digit
	mainPart := s
	for i, ch := range s {
		if (ch == '-' || ch == '+') && i > 0 {
			prev := s[i-1]
			if prev >= '0' && prev <= '9' {
				mainPart = s[:i]
				v.Extras = s[i:]
				break
			}
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// Bump returns the version with the given part incremented and all lower
// parts reset to zero. Precision grows when bumping a part the version did
// not spell out, so "1" bumped by minor becomes "1.1". Extras are dropped.
func (v Version) Bump(part Part) (Version, error) {
	next := Version{
		Major:     v.Major,
		Minor:     v.Minor,
		Patch:     v.Patch,
		Precision: v.Precision,
		Prefix:    v.Prefix,
	}

	switch part {
	case PartMajor:
		next.Major++
		next.Minor, next.Patch = 0, 0
	case PartMinor:
		next.Minor++
		next.Patch = 0
		next.Precision = max(next.Precision, 2)
	case PartPatch:
		next.Patch++
		next.Precision = 3
	default:
		return Version{}, fmt.Errorf("%w: %q", ErrUnknownPart, part)
	}
	return next, nil
}
