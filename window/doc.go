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

// Package window implements event-time window specifications and
// assignment.
//
// Two window kinds are supported:
//
//   - Tumbling windows partition the time axis into fixed-length,
//     non-overlapping intervals. Every event time belongs to exactly one
//     tumbling window.
//   - Hopping windows have a fixed length and advance by a hop interval.
//     When the hop is smaller than the length, windows overlap and one
//     event is assigned to several concurrent windows. A hop larger than
//     the length is allowed and leaves gaps; events falling into a gap
//     are assigned to no window.
//
// All windows are aligned to the Unix epoch and are half-open intervals,
// left inclusive and right exclusive: an event exactly on a boundary
// belongs to the window starting at that boundary.
package window
