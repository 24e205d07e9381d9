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

package streamwind

import (
	"context"

	"github.com/streamwind/streamwind/logger"
	"github.com/streamwind/streamwind/stream"
	"github.com/streamwind/streamwind/types"
)

// Query is one continuous windowed aggregation over an unbounded event
// source. It owns its watermark generator and window state; independent
// queries never share state.
//
// Usage:
//
//	cfg := types.NewConfig()
//	cfg.WindowConfig = types.WindowConfig{
//	    Type:        types.WindowTypeTumbling,
//	    Size:        time.Minute,
//	    TsProp:      "ts",
//	    MaxEventLag: 500 * time.Millisecond,
//	}
//	cfg.Aggregations = []types.AggregationField{
//	    {InputField: "*", Function: "count", OutputAlias: "trades"},
//	}
//	q, err := streamwind.New(cfg)
//	...
//	go func() {
//	    for row := range q.Results() {
//	        // consume finalized windows
//	    }
//	}()
//	err = q.Run(ctx, source)
type Query struct {
	stream *stream.Stream
	name   string
	log    logger.Logger
}

// New validates the configuration and builds a query. Invalid window or
// watermark parameters surface as a *types.ConfigurationError before any
// event is processed; such an error is fatal to this query instance only.
func New(config types.Config, options ...Option) (*Query, error) {
	q := &Query{
		name: "default",
		log:  logger.GetDefault(),
	}
	for _, option := range options {
		option(q)
	}

	s, err := stream.NewStream(config, q.name, q.log)
	if err != nil {
		return nil, err
	}
	q.stream = s
	return q, nil
}

// Run drives the query loop on the calling goroutine until the source
// ends, the source fails, or ctx is cancelled. Cancellation is observed
// between events; pending unexpired window state is discarded without
// emission, matching the unbounded-stream semantics where a window that
// never meets its watermark deadline is never emitted.
func (q *Query) Run(ctx context.Context, source stream.Source) error {
	return q.stream.Process(ctx, source)
}

// Results returns the channel of finalized window result rows, emitted
// in ascending window-end order with ties broken by group key. Each row
// carries the window boundaries under "window_start" and "window_end".
// The consumer must drain the channel; backpressure from a full channel
// suspends the query loop.
func (q *Query) Results() <-chan types.Row {
	return q.stream.Results()
}

// AddSink registers a synchronous result callback. Must be called before
// Run.
func (q *Query) AddSink(sink func(types.Row)) {
	q.stream.AddSink(sink)
}

// Stats returns a snapshot of the query's processing counters.
func (q *Query) Stats() stream.Stats {
	return q.stream.Stats()
}

// Name returns the query's name, used in logs and metric labels.
func (q *Query) Name() string {
	return q.name
}
