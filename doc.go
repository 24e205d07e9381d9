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

// Package streamwind is a windowing and watermark engine for continuous
// queries over unbounded, out-of-order event streams.
//
// Events carry their own timestamps (event time). A maximum-event-lag
// watermark trails the highest observed event time by a configured
// allowance; events older than the watermark are dropped as late, and
// everything else is assigned to tumbling or hopping windows. Partial
// aggregation state is held per (window, group) pair and finalized
// exactly once, when the watermark passes the window end, producing
// result rows in deterministic order. A slow result consumer applies
// backpressure to the whole pipeline instead of causing drops.
//
// The engine deliberately stops at its edges: producing the operator
// graph (SQL parsing and planning), distributing work across a cluster,
// and connecting to concrete transports are the caller's concern.
package streamwind
