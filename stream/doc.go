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

// Package stream drives one continuous query: it pulls rows from a
// source, extracts event times, classifies events against the watermark,
// assigns on-time events to windows, maintains the windowed aggregation
// state, and emits finalized window results to sinks whenever the
// watermark advances.
//
// A stream processes its source strictly sequentially. Out-of-order
// arrival is handled by the watermark lag, not by reordering, and all
// mutable state (watermark generator, aggregation table, trigger) has a
// single writer. The result channel applies backpressure: a slow consumer
// suspends the whole pipeline instead of causing drops or unbounded
// buffering.
package stream
