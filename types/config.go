package types

import (
	"time"
)

// Window type names accepted by WindowConfig.Type.
const (
	WindowTypeTumbling = "tumbling"
	WindowTypeHopping  = "hopping"
)

// Config is the full configuration surface of one continuous query. It is
// supplied once at query setup and is not mutated afterwards.
type Config struct {
	// WindowConfig describes the window function invocation.
	WindowConfig WindowConfig
	// GroupFields lists the grouping columns, in output order.
	GroupFields []string
	// Aggregations lists the aggregate expressions of the SELECT list.
	Aggregations []AggregationField
	// Where holds the optional pre-aggregation row filter expression.
	Where string
	// BufferConfig tunes channel capacities.
	BufferConfig BufferConfig
}

// WindowConfig describes a window function invocation together with the
// watermark parameters of its ordered input.
type WindowConfig struct {
	// Type is the window kind, tumbling or hopping.
	Type string
	// Size is the temporal length of the window.
	Size time.Duration
	// Hop is the advance interval between successive hopping windows.
	// Ignored for tumbling windows. A hop larger than Size is allowed and
	// yields gaps on the time axis.
	Hop time.Duration
	// TsProp names the column carrying the event time.
	TsProp string
	// TimeUnit is the unit of numeric event-time values (defaults to
	// millisecond). time.Time and string values are used as-is.
	TimeUnit time.Duration
	// MaxEventLag is the allowed lag between the maximum observed event
	// time and the watermark. Events older than the watermark are dropped.
	MaxEventLag time.Duration
}

// AggregationField defines one aggregate expression of the SELECT list.
type AggregationField struct {
	// InputField is the aggregated column, or "*" for count(*).
	InputField string
	// Function is the registered aggregate function name, e.g. "sum".
	Function string
	// OutputAlias is the result column name. Defaults to InputField.
	OutputAlias string
}

// BufferConfig tunes the engine's channel capacities. The result channel
// is deliberately small: once it fills, emission blocks and the whole
// pipeline is throttled by the consumer.
type BufferConfig struct {
	// ResultChannelSize is the capacity of the result channel.
	ResultChannelSize int
}

// DefaultBufferConfig returns the default channel sizing.
func DefaultBufferConfig() BufferConfig {
	return BufferConfig{
		ResultChannelSize: 64,
	}
}

// NewConfig creates a configuration with defaults applied.
func NewConfig() Config {
	return Config{
		BufferConfig: DefaultBufferConfig(),
	}
}

// Validate checks the configuration and returns a *ConfigurationError on
// the first invalid parameter. Validation happens once at query setup,
// never per event.
func (c *Config) Validate() error {
	wc := &c.WindowConfig
	switch wc.Type {
	case WindowTypeTumbling:
		if wc.Size <= 0 {
			return NewConfigurationError("window.size", "tumbling window length must be positive, got %v", wc.Size)
		}
	case WindowTypeHopping:
		if wc.Size <= 0 {
			return NewConfigurationError("window.size", "hopping window length must be positive, got %v", wc.Size)
		}
		if wc.Hop <= 0 {
			return NewConfigurationError("window.hop", "hop interval must be positive, got %v", wc.Hop)
		}
	case "":
		return NewConfigurationError("window.type", "window type is required")
	default:
		return NewConfigurationError("window.type", "unsupported window type %q", wc.Type)
	}
	if wc.TsProp == "" {
		return NewConfigurationError("window.tsProp", "event time column is required")
	}
	if wc.MaxEventLag < 0 {
		return NewConfigurationError("window.maxEventLag", "max event lag must not be negative, got %v", wc.MaxEventLag)
	}
	if len(c.Aggregations) == 0 {
		return NewConfigurationError("aggregations", "at least one aggregate expression is required")
	}
	for i := range c.Aggregations {
		if c.Aggregations[i].Function == "" {
			return NewConfigurationError("aggregations", "aggregate function name is required for field %q", c.Aggregations[i].InputField)
		}
	}
	if c.BufferConfig.ResultChannelSize < 0 {
		return NewConfigurationError("buffer.resultChannelSize", "must not be negative, got %d", c.BufferConfig.ResultChannelSize)
	}
	return nil
}
