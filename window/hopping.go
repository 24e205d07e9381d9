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

package window

import (
	"time"

	"github.com/streamwind/streamwind/types"
)

// Hopping is a fixed-length window spec advancing by a hop interval.
// Successive windows are phased out by Hop; when Hop < Length they
// overlap and one event belongs to ceil(Length/Hop) windows.
type Hopping struct {
	// Length is the temporal length of the window.
	Length time.Duration
	// Hop is the offset between successive window starts.
	Hop time.Duration
}

var _ Spec = (*Hopping)(nil)

// NewHopping creates a hopping window spec. Length and hop must be
// positive. A hop larger than the length is allowed and yields gaps.
func NewHopping(length, hop time.Duration) (*Hopping, error) {
	if length <= 0 {
		return nil, types.NewConfigurationError("window.size", "hopping window length must be positive, got %v", length)
	}
	if hop <= 0 {
		return nil, types.NewConfigurationError("window.hop", "hop interval must be positive, got %v", hop)
	}
	return &Hopping{Length: length, Hop: hop}, nil
}

// AssignWindows returns every window [k*Hop, k*Hop+Length) containing the
// event time, ordered by end time ascending.
//
// The highest hop multiple not after the event time is the start of the
// latest matching window; earlier matches are found by stepping the start
// back one hop at a time while the window still covers the event. When
// Hop > Length an event can fall into a gap and the result is empty.
func (h *Hopping) AssignWindows(eventTime time.Time) []types.TimeSlot {
	start := floorAlign(eventTime, h.Hop)
	end := start.Add(h.Length)

	slots := make([]types.TimeSlot, 0)
	for !start.After(eventTime) && end.After(eventTime) {
		slots = append(slots, types.NewTimeSlot(start, end))
		start = start.Add(-h.Hop)
		end = end.Add(-h.Hop)
	}

	// walked from latest to earliest; callers expect ascending end times
	for i, j := 0, len(slots)-1; i < j; i, j = i+1, j-1 {
		slots[i], slots[j] = slots[j], slots[i]
	}
	return slots
}
