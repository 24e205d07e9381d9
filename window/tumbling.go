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

// Tumbling is a fixed-length, non-overlapping window spec. For any event
// time exactly one window contains it.
type Tumbling struct {
	// Length is the temporal length of the window.
	Length time.Duration
}

var _ Spec = (*Tumbling)(nil)

// NewTumbling creates a tumbling window spec. The length must be
// positive.
func NewTumbling(length time.Duration) (*Tumbling, error) {
	if length <= 0 {
		return nil, types.NewConfigurationError("window.size", "tumbling window length must be positive, got %v", length)
	}
	return &Tumbling{Length: length}, nil
}

// AssignWindows returns the single window [floor(t/L)*L, floor(t/L)*L+L)
// containing the event time. Windows are aligned to the epoch so that
// boundaries are consistent across data sources; an event exactly on a
// boundary falls into the window to the right of it.
func (t *Tumbling) AssignWindows(eventTime time.Time) []types.TimeSlot {
	start := floorAlign(eventTime, t.Length)
	return []types.TimeSlot{types.NewTimeSlot(start, start.Add(t.Length))}
}
