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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/rulebook/pkg/errors"
	"github.com/NVIDIA/rulebook/pkg/serializer"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew(t *testing.T) {
	c := New()
	assert.Equal(t, "output", c.OutputDir)
	assert.Equal(t, "yaml", c.Format)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.FailOnError)

	c = New(
		WithOutputDir("out"),
		WithFormat(serializer.FormatJSON),
		WithFailOnError(true),
		WithLogLevel("debug"),
	)
	assert.Equal(t, &Config{OutputDir: "out", Format: "json", FailOnError: true, LogLevel: "debug"}, c)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		opts     []Option
		want     *Config
		wantCode errors.ErrorCode
	}{
		{
			name:    "partial yaml keeps defaults",
			file:    "rulebook.yaml",
			content: "failOnError: true\nformat: json\n",
			want:    &Config{OutputDir: "output", Format: "json", FailOnError: true, LogLevel: "info"},
		},
		{
			name:    "json file",
			file:    "rulebook.json",
			content: `{"outputDir":"backups","logLevel":"warn"}`,
			want:    &Config{OutputDir: "backups", Format: "yaml", LogLevel: "warn"},
		},
		{
			name:    "options override file",
			file:    "rulebook.yml",
			content: "outputDir: from-file\n",
			opts:    []Option{WithOutputDir("from-flag")},
			want:    &Config{OutputDir: "from-flag", Format: "yaml", LogLevel: "info"},
		},
		{
			name:     "unknown format",
			file:     "rulebook.yaml",
			content:  "format: xml\n",
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "unknown log level",
			file:     "rulebook.yaml",
			content:  "logLevel: loud\n",
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "malformed yaml",
			file:     "rulebook.yaml",
			content:  "format: [json\n",
			wantCode: errors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			got, err := Load(path, tt.opts...)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	got, err := Load("  ")
	require.NoError(t, err)
	assert.Equal(t, New(), got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.CodeOf(err))
}
