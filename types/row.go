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

package types

import "time"

// Row is a single event or result record, a mapping from column name to
// value. Rows handed to the engine are not mutated by it.
type Row map[string]interface{}

// Copy returns a shallow copy of the row.
func (r Row) Copy() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// EventEnvelope wraps a source row together with its extracted event time.
// Envelopes are immutable once constructed; they are created at ingestion
// and discarded after window assignment.
type EventEnvelope struct {
	Data      Row
	EventTime time.Time
}

// NewEventEnvelope builds an envelope for a row whose event time has
// already been resolved.
func NewEventEnvelope(data Row, eventTime time.Time) EventEnvelope {
	return EventEnvelope{Data: data, EventTime: eventTime}
}
