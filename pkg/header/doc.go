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

// Package header provides the common header embedded in rulebook reports.
//
// Every serialized resource starts with kind, apiVersion and a metadata map
// so that consumers can tell an inspection report from a metadata dump:
//
//	kind: InspectionReport
//	apiVersion: rulebook.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-07-17T09:05:00Z"
//	  version: v0.3.0
//	  runId: 5b0c...
//
// # Usage
//
//	var r Report
//	r.Init(header.KindInspectionReport, APIVersion, version)
//	r.Set("runId", uuid.NewString())
package header
