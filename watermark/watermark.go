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

// Package watermark implements a maximum-event-lag watermark generator.
//
// The watermark asserts that no more on-time events with an event time
// below it will arrive. It trails the maximum observed event time by a
// fixed allowed lag and never decreases. Events older than the current
// watermark are classified late and must be dropped by the caller.
package watermark

import "time"

// Status classifies an observed event relative to the watermark.
type Status int

const (
	// OnTime means the event may be assigned to windows.
	OnTime Status = iota
	// Late means the event arrived behind the watermark and must be
	// dropped. Late classification is not an error.
	Late
)

func (s Status) String() string {
	switch s {
	case OnTime:
		return "OnTime"
	case Late:
		return "Late"
	default:
		return "Unknown"
	}
}

// Action is the outcome of observing one event.
type Action struct {
	// Status classifies the event.
	Status Status
	// Watermark is the current watermark after the observation. Only
	// meaningful when the generator is initialized.
	Watermark time.Time
	// Advanced is true when this observation strictly increased the
	// watermark and expirable windows should be drained.
	Advanced bool
}

// Generator tracks the maximum event time of one logical stream and
// derives the watermark from it. A Generator is owned by exactly one
// query instance and mutated by a single processing goroutine; it is not
// safe for concurrent use. Concurrent query instances each get their own
// Generator and never share watermark state.
type Generator struct {
	// maxEventTime is the maximum event time seen so far
	maxEventTime time.Time
	// allowedLag is the maximum allowed out-of-orderness
	allowedLag time.Duration
	// current is the current watermark, maxEventTime - allowedLag
	current time.Time
	// initialized flips on the first observed event
	initialized bool
}

// NewGenerator creates a watermark generator with the given allowed lag.
// The lag is fixed for the lifetime of the query.
func NewGenerator(allowedLag time.Duration) *Generator {
	return &Generator{allowedLag: allowedLag}
}

// Observe classifies one event and advances the watermark.
//
// The late test compares the event time against the watermark as it stood
// before this event: an event is late when eventTime < watermark, so an
// event exactly at the watermark boundary is kept. On-time events raise
// the maximum event time and with it the watermark; Advanced reports a
// strict increase. The watermark never moves backwards.
func (g *Generator) Observe(eventTime time.Time) Action {
	if g.initialized && eventTime.Before(g.current) {
		return Action{Status: Late, Watermark: g.current}
	}

	if !g.initialized || eventTime.After(g.maxEventTime) {
		g.maxEventTime = eventTime
	}

	advanced := false
	next := g.maxEventTime.Add(-g.allowedLag)
	if !g.initialized || next.After(g.current) {
		g.current = next
		advanced = true
	}
	g.initialized = true

	return Action{Status: OnTime, Watermark: g.current, Advanced: advanced}
}

// Current returns the current watermark. The boolean is false before the
// first event has been observed, when no watermark exists yet.
func (g *Generator) Current() (time.Time, bool) {
	return g.current, g.initialized
}

// MaxEventTime returns the maximum event time observed so far.
func (g *Generator) MaxEventTime() (time.Time, bool) {
	return g.maxEventTime, g.initialized
}
