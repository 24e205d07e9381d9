package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	cfg := NewConfig()
	cfg.WindowConfig = WindowConfig{
		Type:        WindowTypeTumbling,
		Size:        time.Minute,
		TsProp:      "ts",
		MaxEventLag: time.Second,
	}
	cfg.Aggregations = []AggregationField{
		{InputField: "*", Function: "count", OutputAlias: "n"},
	}
	return cfg
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadWindows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing type", func(c *Config) { c.WindowConfig.Type = "" }},
		{"unknown type", func(c *Config) { c.WindowConfig.Type = "session" }},
		{"zero length", func(c *Config) { c.WindowConfig.Size = 0 }},
		{"negative length", func(c *Config) { c.WindowConfig.Size = -time.Second }},
		{"hopping zero hop", func(c *Config) {
			c.WindowConfig.Type = WindowTypeHopping
			c.WindowConfig.Hop = 0
		}},
		{"missing event time column", func(c *Config) { c.WindowConfig.TsProp = "" }},
		{"negative lag", func(c *Config) { c.WindowConfig.MaxEventLag = -time.Second }},
		{"no aggregations", func(c *Config) { c.Aggregations = nil }},
		{"unnamed function", func(c *Config) { c.Aggregations[0].Function = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, IsConfigurationError(err), "want ConfigurationError, got %T", err)
		})
	}
}

func TestHopLargerThanLengthIsAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.WindowConfig.Type = WindowTypeHopping
	cfg.WindowConfig.Size = time.Second
	cfg.WindowConfig.Hop = time.Minute
	assert.NoError(t, cfg.Validate())
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := NewConfigurationError("window.size", "must be positive, got %v", -1)
	assert.Equal(t, "configuration error: window.size: must be positive, got -1", err.Error())
}

func TestTimeSlot(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	slot := NewTimeSlot(start, start.Add(time.Minute))

	assert.True(t, slot.Contains(start), "start boundary is inclusive")
	assert.True(t, slot.Contains(start.Add(59*time.Second)))
	assert.False(t, slot.Contains(start.Add(time.Minute)), "end boundary is exclusive")
	assert.False(t, slot.Contains(start.Add(-time.Nanosecond)))

	other := NewTimeSlot(start.Add(30*time.Second), start.Add(90*time.Second))
	assert.True(t, slot.Before(other))
	assert.False(t, other.Before(slot))
	assert.Equal(t, slot.Key(), NewTimeSlot(start, start.Add(time.Minute)).Key())
}
