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

// Package serializer writes rulebook reports and reads metadata value files.
//
// Three output formats are supported:
//   - JSON: Machine-readable structured data with two-space indentation
//   - YAML: Human-readable configuration format (default for the CLI)
//   - Table: Flattened FIELD/VALUE listing for terminals
//
// # Writing
//
//	w, err := serializer.NewFileWriter(serializer.FormatYAML, "report.yaml")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, report); err != nil {
//	    return err
//	}
//
// NewWriter wraps any io.Writer; a nil writer means stdout.
//
// # Reading
//
// JSON and YAML files can be loaded into any type, with the format taken
// from the file extension:
//
//	values, err := serializer.FromFile[metadata.Metadata]("values.yaml")
//
// Table output is write-only.
package serializer
