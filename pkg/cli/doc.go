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

// Package cli implements the rulebook command-line interface.
//
// # Commands
//
// check - Inspect a rulebook document:
//
//	rulebook check --file CLAUDE.md [--output report.yaml] [--format yaml] [--fail-on-error]
//
// Checks required titles, rules, prohibitions and requirements, flags rules
// that weaken safety, scores completeness, checks heading and code fence
// syntax and lists suggestions. A colored summary goes to stderr.
//
// metadata - Show or update the blockquote metadata lines:
//
//	rulebook metadata show --file CLAUDE.md
//	rulebook metadata set --file CLAUDE.md --doc-version 1.3 [--values values.yaml] [--in-place]
//	rulebook metadata bump --file CLAUDE.md [--part minor] [--in-place]
//
// Updates back up the document first and write to
// <output-dir>/updated_<name> unless --in-place is set.
//
// backup - Copy a document to a timestamped backup:
//
//	rulebook backup --file CLAUDE.md [--output-dir output]
//
// # Global Flags
//
//	--log-level    Log level: debug, info, warn, error (env LOG_LEVEL)
//	--config, -c   YAML or JSON file with defaults (env RULEBOOK_CONFIG)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default), JSON and table. Table output flattens the report into
// dotted FIELD/VALUE rows for terminal viewing.
//
// # Exit Codes
//
//	0  Success
//	1  Failure, including a failed check with --fail-on-error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/rulebook/pkg/cli.version=1.0.0'"
package cli
