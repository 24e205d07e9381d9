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

import (
	"fmt"
	"time"
)

// TimeSlot is a half-open time interval [Start, End) identifying one
// window instance. Slots produced by the assigners are normalized to UTC
// so that equal intervals compare equal.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// NewTimeSlot creates a time slot for the given boundaries.
func NewTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{Start: start, End: end}
}

// Contains checks whether t falls inside the slot. The start boundary is
// inclusive, the end boundary exclusive.
func (ts TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.Start) && t.Before(ts.End)
}

// Before orders slots by end time first, then start time. The aggregation
// table expires slots in this order.
func (ts TimeSlot) Before(other TimeSlot) bool {
	if !ts.End.Equal(other.End) {
		return ts.End.Before(other.End)
	}
	return ts.Start.Before(other.Start)
}

// Equal reports whether two slots cover the same interval.
func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.Start.Equal(other.Start) && ts.End.Equal(other.End)
}

// WindowStart returns the slot start as Unix nanoseconds.
func (ts TimeSlot) WindowStart() int64 {
	return ts.Start.UnixNano()
}

// WindowEnd returns the slot end as Unix nanoseconds.
func (ts TimeSlot) WindowEnd() int64 {
	return ts.End.UnixNano()
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s, %s)", ts.Start.Format(time.RFC3339Nano), ts.End.Format(time.RFC3339Nano))
}

// Key returns a stable identity for the slot usable as a map key. Slots
// are compared by their interval, not by time.Time internals.
func (ts TimeSlot) Key() SlotKey {
	return SlotKey{Start: ts.Start.UnixNano(), End: ts.End.UnixNano()}
}

// SlotKey is the comparable form of a TimeSlot.
type SlotKey struct {
	Start int64
	End   int64
}
