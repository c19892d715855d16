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

// Package errors provides structured error types for rulebook.
//
// Every failure that crosses a package boundary (reading or writing a
// document, creating a backup, parsing a metadata value file) is reported
// as a *StructuredError carrying an ErrorCode, a message, the wrapped cause
// and optional key/value context.
//
// Validation outcomes are not errors: a document that is missing required
// sections produces a report whose Valid flag is false.
//
// # Usage
//
//	content, err := os.ReadFile(path)
//	if err != nil {
//	    return "", errors.WrapWithContext(errors.ErrCodeInternal,
//	        "failed to read document", err, map[string]any{"path": path})
//	}
//
// Callers can branch on the code:
//
//	if errors.CodeOf(err) == errors.ErrCodeNotFound {
//	    ...
//	}
//
// StructuredError implements Unwrap so the standard library errors.Is and
// errors.As work through it.
package errors
