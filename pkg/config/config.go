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
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/NVIDIA/rulebook/pkg/defaults"
	"github.com/NVIDIA/rulebook/pkg/errors"
	"github.com/NVIDIA/rulebook/pkg/logging"
	"github.com/NVIDIA/rulebook/pkg/serializer"
)

// EnvConfigFile names the environment variable pointing at the config file.
const EnvConfigFile = "RULEBOOK_CONFIG"

// Config holds command defaults.
type Config struct {
	OutputDir   string `json:"outputDir" yaml:"outputDir"`
	Format      string `json:"format" yaml:"format"`
	FailOnError bool   `json:"failOnError" yaml:"failOnError"`
	LogLevel    string `json:"logLevel" yaml:"logLevel"`
}

// Option is a functional option for configuring Config instances.
type Option func(*Config)

// WithOutputDir sets the directory for backups and updated documents.
func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.OutputDir = dir
	}
}

// WithFormat sets the default output format.
func WithFormat(format serializer.Format) Option {
	return func(c *Config) {
		c.Format = string(format)
	}
}

// WithFailOnError makes check fail when the document does not pass.
func WithFailOnError(fail bool) Option {
	return func(c *Config) {
		c.FailOnError = fail
	}
}

// WithLogLevel sets the default log level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// New returns a Config with built-in defaults, then applies opts.
func New(opts ...Option) *Config {
	c := &Config{
		OutputDir: defaults.OutputDir,
		Format:    string(serializer.FormatYAML),
		LogLevel:  "info",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load reads the config file at path over the built-in defaults and then
// applies opts. An empty path returns the defaults.
func Load(path string, opts ...Option) (*Config, error) {
	c := New()

	if path = strings.TrimSpace(path); path != "" {
		r, err := serializer.NewFileReader(serializer.FormatFromPath(path), path)
		if err != nil {
			if stderrors.Is(err, fs.ErrNotExist) {
				return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
					"config file not found", err, map[string]any{"path": path})
			}
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"cannot open config file", err, map[string]any{"path": path})
		}
		defer r.Close()

		if err := r.Deserialize(c); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"invalid config file", err, map[string]any{"path": path})
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the values a config file can get wrong.
func (c *Config) Validate() error {
	if c.Format != "" && serializer.Format(c.Format).IsUnknown() {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unsupported output format",
			map[string]any{"format": c.Format, "supported": serializer.SupportedFormats()})
	}
	if c.LogLevel != "" && !isKnownLevel(c.LogLevel) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest, "unsupported log level",
			map[string]any{"logLevel": c.LogLevel})
	}
	return nil
}

func isKnownLevel(level string) bool {
	for _, l := range logging.Levels() {
		if strings.EqualFold(l, level) {
			return true
		}
	}
	return false
}
