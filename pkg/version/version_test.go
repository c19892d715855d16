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

package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr error
	}{
		{name: "major only", input: "2", want: Version{Major: 2, Precision: 1}},
		{name: "major minor", input: "1.0", want: Version{Major: 1, Minor: 0, Precision: 2}},
		{name: "full", input: "1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3, Precision: 3}},
		{name: "v prefix", input: "v1.4", want: Version{Major: 1, Minor: 4, Precision: 2, Prefix: "v"}},
		{name: "extras", input: "1.2-draft", want: Version{Major: 1, Minor: 2, Precision: 2, Extras: "-draft"}},
		{name: "whitespace", input: "  1.1  ", want: Version{Major: 1, Minor: 1, Precision: 2}},
		{name: "empty", input: "", wantErr: ErrEmptyVersion},
		{name: "too many", input: "1.2.3.4", wantErr: ErrTooManyComponents},
		{name: "non numeric", input: "one.two", wantErr: ErrNonNumeric},
		{name: "empty component", input: "1..2", wantErr: ErrNonNumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "1"},
		{"1.0", "1.0"},
		{"v2.3.4", "v2.3.4"},
		{"1.2-draft", "1.2"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		in   string
		part Part
		want string
	}{
		{"1.0", PartMinor, "1.1"},
		{"1.9", PartMinor, "1.10"},
		{"1.4", PartMajor, "2.0"},
		{"1.4.7", PartMajor, "2.0.0"},
		{"1.4.7", PartMinor, "1.5.0"},
		{"1.4", PartPatch, "1.4.1"},
		{"3", PartMinor, "3.1"},
		{"3", PartMajor, "4"},
		{"v1.0-rc1", PartMinor, "v1.1"},
	}
	for _, tt := range tests {
		t.Run(tt.in+"/"+string(tt.part), func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			require.NoError(t, err)
			next, err := v.Bump(tt.part)
			require.NoError(t, err)
			assert.Equal(t, tt.want, next.String())
		})
	}
}

func TestBumpUnknownPart(t *testing.T) {
	v := Version{Major: 1, Precision: 1}
	_, err := v.Bump("build")
	assert.ErrorIs(t, err, ErrUnknownPart)
}

func TestParsePart(t *testing.T) {
	p, err := ParsePart(" Minor ")
	require.NoError(t, err)
	assert.Equal(t, PartMinor, p)

	_, err = ParsePart("build")
	assert.ErrorIs(t, err, ErrUnknownPart)
}

