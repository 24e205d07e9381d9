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

// Spec assigns event times to window slots. Implementations are immutable
// and validated at construction time, never per event.
type Spec interface {
	// AssignWindows computes the set of slots the event time belongs to.
	// The returned slots are ordered by end time ascending.
	AssignWindows(eventTime time.Time) []types.TimeSlot
}

// FromConfig builds a window spec from the configuration surface.
func FromConfig(cfg types.WindowConfig) (Spec, error) {
	switch cfg.Type {
	case types.WindowTypeTumbling:
		return NewTumbling(cfg.Size)
	case types.WindowTypeHopping:
		return NewHopping(cfg.Size, cfg.Hop)
	default:
		return nil, types.NewConfigurationError("window.type", "unsupported window type %q", cfg.Type)
	}
}

// floorAlign aligns t downward to the closest multiple of unit from the
// Unix epoch. Works for pre-epoch times as well, where plain integer
// division would round toward zero instead of down.
func floorAlign(t time.Time, unit time.Duration) time.Time {
	nanos := t.UnixNano()
	unitNanos := unit.Nanoseconds()
	aligned := (nanos / unitNanos) * unitNanos
	if nanos < 0 && nanos%unitNanos != 0 {
		aligned -= unitNanos
	}
	return time.Unix(0, aligned).UTC()
}
