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

package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/streamwind/streamwind/types"
)

// WindowKey uniquely identifies one aggregation bucket: a window slot
// plus the encoded grouping key.
type WindowKey struct {
	Slot     types.TimeSlot
	GroupKey string
}

// Result is one finalized aggregation group produced by ExpireUpTo. Row
// carries the group field values and the aggregate outputs under their
// aliases; the originating slot is kept alongside so the emitter can tag
// the output with the window boundaries.
type Result struct {
	Slot     types.TimeSlot
	GroupKey string
	Row      types.Row
}

// groupState is the accumulator set of one (window, group) pair.
type groupState struct {
	// values holds the group field values as seen on the first event
	values map[string]interface{}
	// aggs maps output alias to its accumulator
	aggs map[string]AggregatorFunction
}

// windowBucket holds all group states of one window slot.
type windowBucket struct {
	slot   types.TimeSlot
	groups map[string]*groupState
}

// Table holds partial aggregation state per (window, grouping-key) pair.
// Entries are created lazily on the first event assigned to a window,
// mutated by subsequent events, and removed exactly once when the
// watermark passes the window end. An expired entry is never re-opened:
// late events are dropped upstream before they reach the table.
//
// Expiry is driven by a slice of open slots kept sorted by end time
// (ties by start time), so finding expirable windows is a binary search
// over open windows rather than a full scan per watermark tick. A Table
// belongs to a single query instance and is not safe for concurrent use.
type Table struct {
	groupFields  []string
	aggregations []types.AggregationField

	// buckets maps a slot identity to its group states
	buckets map[types.SlotKey]*windowBucket
	// index keeps open slots sorted by (end, start) ascending
	index []types.TimeSlot
	// entries counts open (window, group) pairs
	entries int
}

// NewTable creates an aggregation table for the given grouping columns
// and aggregate expressions. Unknown aggregate function names are
// rejected here, at setup time.
func NewTable(groupFields []string, aggregations []types.AggregationField) (*Table, error) {
	aggs := make([]types.AggregationField, len(aggregations))
	copy(aggs, aggregations)
	for i := range aggs {
		if !Exists(aggs[i].Function) {
			return nil, types.NewConfigurationError("aggregations", "unknown aggregate function %q", aggs[i].Function)
		}
		if aggs[i].OutputAlias == "" {
			aggs[i].OutputAlias = aggs[i].InputField
		}
	}
	return &Table{
		groupFields:  groupFields,
		aggregations: aggs,
		buckets:      make(map[types.SlotKey]*windowBucket),
	}, nil
}

// groupKeyOf encodes the grouping column values of a row into a stable
// string key. Rows missing a grouping column are rejected so the caller
// can drop them with a diagnostic.
func (t *Table) groupKeyOf(data types.Row) (string, error) {
	key := ""
	for _, field := range t.groupFields {
		val, ok := data[field]
		if !ok {
			return "", fmt.Errorf("group field %q not found", field)
		}
		key += fmt.Sprintf("%v|", val)
	}
	return key, nil
}

// Apply merges one event's contribution into the accumulator set of the
// given window slot, creating the (window, group) entry on first use.
func (t *Table) Apply(slot types.TimeSlot, env types.EventEnvelope) error {
	groupKey, err := t.groupKeyOf(env.Data)
	if err != nil {
		return err
	}

	bucket, ok := t.buckets[slot.Key()]
	if !ok {
		bucket = &windowBucket{slot: slot, groups: make(map[string]*groupState)}
		t.buckets[slot.Key()] = bucket
		t.insertSlot(slot)
	}

	state, ok := bucket.groups[groupKey]
	if !ok {
		state = &groupState{
			values: make(map[string]interface{}, len(t.groupFields)),
			aggs:   make(map[string]AggregatorFunction, len(t.aggregations)),
		}
		for _, field := range t.groupFields {
			state.values[field] = env.Data[field]
		}
		for _, agg := range t.aggregations {
			fn, err := Create(agg.Function)
			if err != nil {
				return err
			}
			state.aggs[agg.OutputAlias] = fn
		}
		bucket.groups[groupKey] = state
		t.entries++
	}

	for _, agg := range t.aggregations {
		if agg.InputField == "*" {
			state.aggs[agg.OutputAlias].Add(1)
			continue
		}
		val, ok := env.Data[agg.InputField]
		if !ok || val == nil {
			continue
		}
		state.aggs[agg.OutputAlias].Add(val)
	}
	return nil
}

// insertSlot adds a slot into the sorted index at its (end, start)
// position.
func (t *Table) insertSlot(slot types.TimeSlot) {
	i := sort.Search(len(t.index), func(i int) bool {
		return !t.index[i].Before(slot)
	})
	t.index = append(t.index, types.TimeSlot{})
	copy(t.index[i+1:], t.index[i:])
	t.index[i] = slot
}

// ExpireUpTo removes and finalizes every entry whose window end is at or
// before the watermark. Results are ordered by window end ascending, ties
// broken by group key, so emission order is deterministic. Finalize and
// purge happen together: once returned, a window's state is gone.
func (t *Table) ExpireUpTo(watermark time.Time) []Result {
	cut := sort.Search(len(t.index), func(i int) bool {
		return t.index[i].End.After(watermark)
	})
	if cut == 0 {
		return nil
	}

	expired := t.index[:cut]
	t.index = t.index[cut:]

	results := make([]Result, 0, len(expired))
	for _, slot := range expired {
		bucket := t.buckets[slot.Key()]
		delete(t.buckets, slot.Key())

		keys := make([]string, 0, len(bucket.groups))
		for k := range bucket.groups {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, groupKey := range keys {
			state := bucket.groups[groupKey]
			row := make(types.Row, len(state.values)+len(state.aggs))
			for field, val := range state.values {
				row[field] = val
			}
			for alias, fn := range state.aggs {
				row[alias] = fn.Result()
			}
			results = append(results, Result{Slot: slot, GroupKey: groupKey, Row: row})
			t.entries--
		}
	}
	return results
}

// Size returns the number of open (window, group) entries.
func (t *Table) Size() int {
	return t.entries
}

// OpenWindows returns the number of distinct open window slots.
func (t *Table) OpenWindows() int {
	return len(t.index)
}

// Clear discards all pending aggregation state without emission. Used
// when a query is cancelled or its source disconnects: windows that never
// reached their watermark deadline are never emitted.
func (t *Table) Clear() {
	t.buckets = make(map[types.SlotKey]*windowBucket)
	t.index = nil
	t.entries = 0
}
