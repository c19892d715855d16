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

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rulebook_checks_total",
			Help: "Total number of rulebook checks by outcome",
		},
		[]string{"check", "result"}, // structure, safety, markdown / pass, fail
	)

	completenessScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rulebook_completeness_score",
			Help: "Completeness score of the last inspected document",
		},
	)

	inspectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rulebook_inspection_duration_seconds",
			Help:    "Time taken to inspect a document",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		},
	)
)

func recordInspection(r *Report) {
	checksTotal.WithLabelValues("structure", outcome(r.Structure.Valid)).Inc()
	checksTotal.WithLabelValues("safety", outcome(r.Safety.Valid)).Inc()
	checksTotal.WithLabelValues("markdown", outcome(r.Markdown.Valid)).Inc()
	completenessScore.Set(r.Completeness.Score)
	inspectionDuration.Observe(r.Summary.Duration.Seconds())
}

func outcome(valid bool) string {
	if valid {
		return "pass"
	}
	return "fail"
}

// WriteMetrics writes the registered metrics to path in the Prometheus
// text exposition format, for collection by a node exporter textfile
// collector.
func WriteMetrics(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
