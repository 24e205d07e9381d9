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
	"time"

	"github.com/streamwind/streamwind/aggregator"
)

// TriggerState is the lifecycle state of a query's window trigger.
type TriggerState int

const (
	// StateOpen means the trigger is waiting for the watermark to
	// advance.
	StateOpen TriggerState = iota
	// StateEmitting means expirable windows are being drained.
	StateEmitting
	// StateClosed is terminal: further events are rejected and pending
	// window state has been discarded without emission.
	StateClosed
)

func (s TriggerState) String() string {
	switch s {
	case StateOpen:
		return "Open"
	case StateEmitting:
		return "Emitting"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// Trigger finalizes and emits windows as the watermark passes their end
// time. It starts Open with no watermark (minus infinity) and moves to
// Closed on query cancellation or upstream disconnect. Because the stream
// is unbounded, windows the watermark never reaches are never emitted;
// closing discards their state.
type Trigger struct {
	state        TriggerState
	watermark    time.Time
	hasWatermark bool
	table        *aggregator.Table
}

// NewTrigger creates an open trigger over the given aggregation table.
func NewTrigger(table *aggregator.Table) *Trigger {
	return &Trigger{state: StateOpen, table: table}
}

// OnWatermark drains every window whose end time is at or before the
// advanced watermark and returns the finalized results in deterministic
// order (ascending window end, ties by group key). No-op when closed.
func (t *Trigger) OnWatermark(wm time.Time) []aggregator.Result {
	if t.state == StateClosed {
		return nil
	}
	t.state = StateEmitting
	results := t.table.ExpireUpTo(wm)
	t.watermark = wm
	t.hasWatermark = true
	t.state = StateOpen
	return results
}

// Close transitions to the terminal state and discards all pending
// window state without emission. Safe to call more than once.
func (t *Trigger) Close() {
	if t.state == StateClosed {
		return
	}
	t.state = StateClosed
	t.table.Clear()
}

// State returns the current lifecycle state.
func (t *Trigger) State() TriggerState {
	return t.state
}

// Watermark returns the last watermark handed to the trigger. The boolean
// is false while no watermark has been observed.
func (t *Trigger) Watermark() (time.Time, bool) {
	return t.watermark, t.hasWatermark
}
