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
	"github.com/streamwind/streamwind/logger"
)

// Option configures a Query at construction time.
type Option func(*Query)

// WithName sets the query name used in logs and metric labels.
func WithName(name string) Option {
	return func(q *Query) {
		if name != "" {
			q.name = name
		}
	}
}

// WithLogger sets the query's logger.
func WithLogger(log logger.Logger) Option {
	return func(q *Query) {
		if log != nil {
			q.log = log
		}
	}
}

// WithDiscardLog disables the query's log output.
func WithDiscardLog() Option {
	return func(q *Query) {
		q.log = logger.NewDiscardLogger()
	}
}

// WithLogLevel sets the level on the query's logger.
func WithLogLevel(level logger.Level) Option {
	return func(q *Query) {
		q.log.SetLevel(level)
	}
}
