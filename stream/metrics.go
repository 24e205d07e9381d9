/*
 * Copyright 2025 The Streamwind Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package stream

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// labelQuery identifies the query instance a metric belongs to.
const labelQuery = "query"

// rowsIngestedCount counts rows read from the source.
var rowsIngestedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "streamwind",
	Subsystem: "query",
	Name:      "rows_ingested_total",
	Help:      "Total number of rows read from the source",
}, []string{labelQuery})

// lateDroppedCount counts events dropped because they arrived behind the
// watermark. Late drops are expected behavior, not errors.
var lateDroppedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "streamwind",
	Subsystem: "query",
	Name:      "late_events_dropped_total",
	Help:      "Total number of events dropped as late against the watermark",
}, []string{labelQuery})

// malformedDroppedCount counts rows dropped because their event time or
// group columns could not be resolved.
var malformedDroppedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "streamwind",
	Subsystem: "query",
	Name:      "malformed_rows_dropped_total",
	Help:      "Total number of rows dropped as malformed",
}, []string{labelQuery})

// filteredCount counts rows rejected by the WHERE predicate.
var filteredCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "streamwind",
	Subsystem: "query",
	Name:      "rows_filtered_total",
	Help:      "Total number of rows rejected by the row filter",
}, []string{labelQuery})

// resultsEmittedCount counts finalized window result rows forwarded to
// the sink.
var resultsEmittedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "streamwind",
	Subsystem: "query",
	Name:      "results_emitted_total",
	Help:      "Total number of finalized window results emitted",
}, []string{labelQuery})

// Stats is a point-in-time snapshot of one query's counters, for tests
// and embedders that do not scrape prometheus.
type Stats struct {
	Ingested  int64
	Late      int64
	Malformed int64
	Filtered  int64
	Emitted   int64
}

// counters holds the per-stream atomic counters backing Stats.
type counters struct {
	ingested  atomic.Int64
	late      atomic.Int64
	malformed atomic.Int64
	filtered  atomic.Int64
	emitted   atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Ingested:  c.ingested.Load(),
		Late:      c.late.Load(),
		Malformed: c.malformed.Load(),
		Filtered:  c.filtered.Load(),
		Emitted:   c.emitted.Load(),
	}
}
