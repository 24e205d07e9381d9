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
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cast"

	"github.com/streamwind/streamwind/aggregator"
	"github.com/streamwind/streamwind/condition"
	"github.com/streamwind/streamwind/logger"
	"github.com/streamwind/streamwind/types"
	"github.com/streamwind/streamwind/watermark"
	"github.com/streamwind/streamwind/window"
)

// Result column names carrying the window boundaries.
const (
	WindowStartField = "window_start"
	WindowEndField   = "window_end"
)

// Stream executes one continuous windowed query. All processing happens
// on the goroutine calling Process; the watermark generator, aggregation
// table and trigger have that single writer.
type Stream struct {
	config    types.Config
	name      string
	spec      window.Spec
	generator *watermark.Generator
	table     *aggregator.Table
	trigger   *Trigger
	filter    condition.Condition

	resultChan chan types.Row
	sinks      []func(types.Row)

	log   logger.Logger
	stats counters
}

// NewStream wires up a stream from a validated configuration. Returns a
// *types.ConfigurationError for invalid window, watermark or aggregation
// parameters, before any event is processed.
func NewStream(config types.Config, name string, log logger.Logger) (*Stream, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	spec, err := window.FromConfig(config.WindowConfig)
	if err != nil {
		return nil, err
	}

	table, err := aggregator.NewTable(config.GroupFields, config.Aggregations)
	if err != nil {
		return nil, err
	}

	var filter condition.Condition
	if config.Where != "" {
		filter, err = condition.New(config.Where)
		if err != nil {
			return nil, types.NewConfigurationError("where", "%v", err)
		}
	}

	if name == "" {
		name = "default"
	}
	if log == nil {
		log = logger.GetDefault()
	}

	bufSize := config.BufferConfig.ResultChannelSize
	if bufSize == 0 {
		bufSize = types.DefaultBufferConfig().ResultChannelSize
	}

	return &Stream{
		config:     config,
		name:       name,
		spec:       spec,
		generator:  watermark.NewGenerator(config.WindowConfig.MaxEventLag),
		table:      table,
		trigger:    NewTrigger(table),
		filter:     filter,
		resultChan: make(chan types.Row, bufSize),
		log:        log,
	}, nil
}

// Results returns the channel of finalized window results, in emission
// order. The channel is closed when the query terminates. It must be
// drained by the consumer: once its buffer fills, emission blocks and the
// slow consumer throttles the whole pipeline.
func (s *Stream) Results() <-chan types.Row {
	return s.resultChan
}

// AddSink registers a callback invoked synchronously for every emitted
// result, in emission order. A slow sink throttles the pipeline the same
// way a slow Results consumer does. Sinks must be registered before
// Process starts.
func (s *Stream) AddSink(sink func(types.Row)) {
	s.sinks = append(s.sinks, sink)
}

// Stats returns a snapshot of the query's counters.
func (s *Stream) Stats() Stats {
	return s.stats.snapshot()
}

// Trigger exposes the window trigger, mainly for observability and
// tests.
func (s *Stream) Trigger() *Trigger {
	return s.trigger
}

// Table exposes the aggregation table for observability (Size reports
// open window state).
func (s *Stream) Table() *aggregator.Table {
	return s.table
}

// Process runs the query loop until the source ends, the source fails,
// or the context is cancelled. It is the single processing path of the
// query and must not be called concurrently or more than once.
//
// On end of stream (io.EOF) the trigger closes, pending unexpired window
// state is discarded without emission, and Process returns nil. On
// cancellation it returns the context error. Any other source error is
// an abnormal disconnect and is returned after closing. The result
// channel is closed in all cases.
func (s *Stream) Process(ctx context.Context, source Source) error {
	defer close(s.resultChan)
	defer s.trigger.Close()

	for {
		// cancellation is observed between events, after completing
		// in-flight processing
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		row, err := source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Info("query %s: source end of stream, discarding %d open entries", s.name, s.table.Size())
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.log.Error("query %s: source disconnected: %v", s.name, err)
			return fmt.Errorf("source disconnected: %w", err)
		}

		if err := s.processRow(ctx, row); err != nil {
			return err
		}
	}
}

// processRow pushes one row through filter, watermark, window assignment
// and aggregation, then drains expirable windows if the watermark
// advanced. The only returned error is cancellation during emission;
// per-row faults are logged, counted and swallowed.
func (s *Stream) processRow(ctx context.Context, row types.Row) error {
	s.stats.ingested.Add(1)
	rowsIngestedCount.WithLabelValues(s.name).Inc()

	eventTime, err := s.extractEventTime(row)
	if err != nil {
		s.stats.malformed.Add(1)
		malformedDroppedCount.WithLabelValues(s.name).Inc()
		s.log.Warn("query %s: dropping malformed row: %v", s.name, err)
		return nil
	}

	// the filter runs before window assignment; it never references
	// aggregate results
	if s.filter != nil && !s.filter.Evaluate(map[string]interface{}(row)) {
		s.stats.filtered.Add(1)
		filteredCount.WithLabelValues(s.name).Inc()
		return nil
	}

	action := s.generator.Observe(eventTime)
	if action.Status == watermark.Late {
		s.stats.late.Add(1)
		lateDroppedCount.WithLabelValues(s.name).Inc()
		s.log.Debug("query %s: dropping late event at %s, watermark %s",
			s.name, eventTime.Format(time.RFC3339Nano), action.Watermark.Format(time.RFC3339Nano))
		return nil
	}

	env := types.NewEventEnvelope(row, eventTime)
	for _, slot := range s.spec.AssignWindows(eventTime) {
		if err := s.table.Apply(slot, env); err != nil {
			s.stats.malformed.Add(1)
			malformedDroppedCount.WithLabelValues(s.name).Inc()
			s.log.Warn("query %s: dropping row: %v", s.name, err)
			return nil
		}
	}

	if action.Advanced {
		for _, result := range s.trigger.OnWatermark(action.Watermark) {
			if err := s.emit(ctx, result); err != nil {
				return err
			}
		}
	}
	return nil
}

// emit forwards one finalized window result to the sinks and the result
// channel. The channel send blocks until the consumer accepts the row or
// the context is cancelled; there is deliberately no timeout.
func (s *Stream) emit(ctx context.Context, result aggregator.Result) error {
	row := result.Row
	row[WindowStartField] = result.Slot.Start
	row[WindowEndField] = result.Slot.End

	for _, sink := range s.sinks {
		sink(row)
	}

	select {
	case s.resultChan <- row:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.stats.emitted.Add(1)
	resultsEmittedCount.WithLabelValues(s.name).Inc()
	return nil
}

// extractEventTime resolves the configured event time column of a row.
// time.Time values pass through; numeric values are epochs in the
// configured time unit (millisecond by default); strings are parsed as
// timestamps. Anything else makes the row malformed.
func (s *Stream) extractEventTime(row types.Row) (time.Time, error) {
	tsProp := s.config.WindowConfig.TsProp
	val, ok := row[tsProp]
	if !ok || val == nil {
		return time.Time{}, fmt.Errorf("event time column %q not found", tsProp)
	}

	switch v := val.(type) {
	case time.Time:
		return v, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		unit := s.config.WindowConfig.TimeUnit
		if unit <= 0 {
			unit = time.Millisecond
		}
		n, err := cast.ToInt64E(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("event time column %q: %w", tsProp, err)
		}
		return time.Unix(0, n*int64(unit)).UTC(), nil
	default:
		t, err := cast.ToTimeE(val)
		if err != nil {
			return time.Time{}, fmt.Errorf("event time column %q is not timestamp-typed: %w", tsProp, err)
		}
		return t, nil
	}
}
