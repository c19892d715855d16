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

// Package store reads, writes and backs up rulebook documents on disk.
//
// Backups and derived documents go to an output directory that the store
// creates when it first writes there. A backup of CLAUDE.md taken at 09:05 on
// 17 July 2025 is written as
//
//	output/backup_CLAUDE_20250717_0905.md
//
// Backups have minute granularity; a second backup of the same file within
// the same minute replaces the first.
package store

import (
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/NVIDIA/rulebook/pkg/defaults"
	"github.com/NVIDIA/rulebook/pkg/errors"
)

// ContentStore is the document I/O the commands depend on.
type ContentStore interface {
	Read(path string) (string, error)
	Write(path, text string) error
	Backup(path string) (string, error)
	OutputPath(name string) string
}

var _ ContentStore = (*FileStore)(nil)

// FileStore is a ContentStore backed by the local file system.
type FileStore struct {
	outputDir string
	maxSize   int64
	now       func() time.Time
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithClock sets the time source used to stamp backups.
func WithClock(now func() time.Time) Option {
	return func(s *FileStore) {
		s.now = now
	}
}

// WithMaxSize sets the largest document Read accepts, in bytes.
func WithMaxSize(size int64) Option {
	return func(s *FileStore) {
		s.maxSize = size
	}
}

// New returns a FileStore writing backups under outputDir. The directory is
// created on the first backup or write into it, so reading never touches the
// file system. An empty outputDir uses defaults.OutputDir.
func New(outputDir string, opts ...Option) *FileStore {
	if strings.TrimSpace(outputDir) == "" {
		outputDir = defaults.OutputDir
	}
	s := &FileStore{
		outputDir: outputDir,
		maxSize:   defaults.MaxDocumentSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OutputDir returns the directory receiving backups.
func (s *FileStore) OutputDir() string {
	return s.outputDir
}

// OutputPath returns name joined under the output directory.
func (s *FileStore) OutputPath(name string) string {
	return filepath.Join(s.outputDir, name)
}

// Read returns the content of the document at path.
func (s *FileStore) Read(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", ioError("failed to read document", path, err)
	}
	if info.IsDir() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"document path is a directory", map[string]any{"path": path})
	}
	if info.Size() > s.maxSize {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"document exceeds maximum size", map[string]any{"path": path, "size": info.Size(), "max": s.maxSize})
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", ioError("failed to read document", path, err)
	}
	if !utf8.Valid(data) {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"document is not valid UTF-8", map[string]any{"path": path})
	}

	slog.Debug("document read", "path", path, "bytes", len(data))
	return string(data), nil
}

// Write replaces the document at path with text, creating parent
// directories as needed.
func (s *FileStore) Write(path, text string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, defaults.DirMode); err != nil {
			return ioError("failed to create parent directory", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(text), defaults.FileMode); err != nil {
		return ioError("failed to write document", path, err)
	}

	slog.Debug("document written", "path", path, "bytes", len(text))
	return nil
}

// Backup copies the document at path into the output directory under a
// timestamped name and returns the backup path. Mode and modification time
// are preserved.
func (s *FileStore) Backup(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", ioError("backup source does not exist", path, err)
	}

	if err := os.MkdirAll(s.outputDir, defaults.DirMode); err != nil {
		return "", ioError("failed to create output directory", s.outputDir, err)
	}

	dst := s.OutputPath(BackupName(path, s.now()))
	if err := copyFile(path, dst, info); err != nil {
		return "", ioError("failed to create backup", dst, err)
	}

	slog.Info("backup created", "source", path, "backup", dst)
	return dst, nil
}

// BackupName returns backup_<stem>_<YYYYMMDD_HHMM><ext> for path at ts.
func BackupName(path string, ts time.Time) string {
	stem, ext := splitName(filepath.Base(path))
	return defaults.BackupPrefix + stem + "_" + ts.Format(defaults.BackupTimeLayout) + ext
}

// splitName separates the final extension from base. A leading dot alone
// does not start an extension, so ".rules" has no extension.
func splitName(base string) (stem, ext string) {
	ext = filepath.Ext(base)
	if ext == base {
		return base, ""
	}
	return strings.TrimSuffix(base, ext), ext
}

func copyFile(src, dst string, info fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// ioError classifies a file system error into a StructuredError.
func ioError(message, path string, err error) error {
	code := errors.ErrCodeInternal
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		code = errors.ErrCodeNotFound
	case stderrors.Is(err, fs.ErrPermission):
		code = errors.ErrCodePermission
	}
	return errors.WrapWithContext(code, message, err, map[string]any{"path": path})
}
