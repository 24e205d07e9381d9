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

package types

import (
	"errors"
	"fmt"
)

// ConfigurationError reports an invalid window or watermark parameter. It
// is detected at query setup time, before any event is processed, and is
// fatal to that query instance only.
type ConfigurationError struct {
	// Param names the offending configuration parameter.
	Param string
	// Message describes why the value was rejected.
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Param == "" {
		return "configuration error: " + e.Message
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Param, e.Message)
}

// NewConfigurationError builds a ConfigurationError for the given
// parameter with a formatted message.
func NewConfigurationError(param, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Param: param, Message: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is (or wraps) a
// ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
