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

package defaults

import (
	"os"
	"time"
)

// Content store defaults.
const (
	// OutputDir is the directory receiving backups and updated documents.
	OutputDir = "output"

	// BackupPrefix is prepended to every backup file name.
	BackupPrefix = "backup_"

	// UpdatedPrefix is prepended to documents written by metadata commands
	// when they do not overwrite the source.
	UpdatedPrefix = "updated_"

	// BackupTimeLayout stamps backups with minute granularity (YYYYMMDD_HHMM).
	BackupTimeLayout = "20060102_1504"

	// DateLayout renders the Last Updated metadata field.
	DateLayout = "2006-01-02"
)

// File system permissions.
const (
	// DirMode is used when creating the output directory.
	DirMode os.FileMode = 0o755

	// FileMode is used for written documents.
	FileMode os.FileMode = 0o644
)

// Document limits.
const (
	// MaxDocumentSize caps how much of a document the store will read.
	MaxDocumentSize = 8 << 20 // 8MB
)

// InspectionTimeout bounds a full CLI run of the check command.
const InspectionTimeout = 30 * time.Second
