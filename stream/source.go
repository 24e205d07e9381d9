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
	"io"

	"github.com/streamwind/streamwind/types"
)

// Source is the feed of raw rows consumed by a query. Next blocks until a
// row is available, the stream ends, or the context is cancelled. End of
// stream is signaled with io.EOF; any other error is treated as an
// abnormal disconnect.
//
// Connecting an actual transport (topic consumer, file tailer) is the
// source connector's concern, outside this engine.
type Source interface {
	Next(ctx context.Context) (types.Row, error)
}

// SliceSource serves a fixed set of rows and then ends the stream. Meant
// for tests and bounded replays.
type SliceSource struct {
	rows []types.Row
	pos  int
}

// NewSliceSource creates a source over the given rows.
func NewSliceSource(rows []types.Row) *SliceSource {
	return &SliceSource{rows: rows}
}

func (s *SliceSource) Next(ctx context.Context) (types.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.pos >= len(s.rows) {
		return nil, io.EOF
	}
	row := s.rows[s.pos]
	s.pos++
	return row, nil
}

// ChannelSource adapts a row channel to the Source interface. Closing the
// channel ends the stream.
type ChannelSource struct {
	ch <-chan types.Row
}

// NewChannelSource creates a source reading from ch.
func NewChannelSource(ch <-chan types.Row) *ChannelSource {
	return &ChannelSource{ch: ch}
}

func (c *ChannelSource) Next(ctx context.Context) (types.Row, error) {
	select {
	case row, ok := <-c.ch:
		if !ok {
			return nil, io.EOF
		}
		return row, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
