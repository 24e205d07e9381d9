package streamwind

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamwind/streamwind/stream"
	"github.com/streamwind/streamwind/types"
)

func TestQueryEndToEnd(t *testing.T) {
	cfg := types.NewConfig()
	cfg.WindowConfig = types.WindowConfig{
		Type:        types.WindowTypeTumbling,
		Size:        time.Minute,
		TsProp:      "ts",
		MaxEventLag: 0,
	}
	cfg.GroupFields = []string{"sym"}
	cfg.Aggregations = []types.AggregationField{
		{InputField: "*", Function: "count", OutputAlias: "trades"},
		{InputField: "price", Function: "avg", OutputAlias: "avg_price"},
	}
	cfg.Where = "price > 0"

	q, err := New(cfg, WithName("trades-1m"), WithDiscardLog())
	require.NoError(t, err)
	assert.Equal(t, "trades-1m", q.Name())

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	rows := []types.Row{
		{"ts": base, "sym": "BTC", "price": 100.0},
		{"ts": base.Add(20 * time.Second), "sym": "BTC", "price": 110.0},
		{"ts": base.Add(40 * time.Second), "sym": "BTC", "price": -1.0}, // filtered
		{"ts": base.Add(time.Minute), "sym": "BTC", "price": 120.0},
	}

	var results []types.Row
	done := make(chan struct{})
	go func() {
		defer close(done)
		for row := range q.Results() {
			results = append(results, row)
		}
	}()

	require.NoError(t, q.Run(context.Background(), stream.NewSliceSource(rows)))
	<-done

	require.Len(t, results, 1)
	assert.Equal(t, "BTC", results[0]["sym"])
	assert.Equal(t, int64(2), results[0]["trades"])
	assert.Equal(t, float64(105), results[0]["avg_price"])
	assert.True(t, base.Equal(results[0][stream.WindowStartField].(time.Time)))
	assert.True(t, base.Add(time.Minute).Equal(results[0][stream.WindowEndField].(time.Time)))

	stats := q.Stats()
	assert.Equal(t, int64(4), stats.Ingested)
	assert.Equal(t, int64(1), stats.Filtered)
	assert.Equal(t, int64(1), stats.Emitted)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := types.NewConfig()
	cfg.WindowConfig = types.WindowConfig{
		Type:   types.WindowTypeTumbling,
		TsProp: "ts",
		// Size missing
	}
	cfg.Aggregations = []types.AggregationField{
		{InputField: "*", Function: "count"},
	}

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, types.IsConfigurationError(err))
}

func TestQueriesAreIndependent(t *testing.T) {
	cfg := types.NewConfig()
	cfg.WindowConfig = types.WindowConfig{
		Type:        types.WindowTypeTumbling,
		Size:        time.Minute,
		TsProp:      "ts",
		MaxEventLag: time.Second,
	}
	cfg.Aggregations = []types.AggregationField{
		{InputField: "*", Function: "count", OutputAlias: "n"},
	}

	q1, err := New(cfg, WithName("q1"), WithDiscardLog())
	require.NoError(t, err)
	q2, err := New(cfg, WithName("q2"), WithDiscardLog())
	require.NoError(t, err)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	// q1's watermark sits far ahead of q2's; the same old event is late
	// for q1 but on time for q2
	go func() {
		for range q1.Results() {
		}
	}()
	go func() {
		for range q2.Results() {
		}
	}()

	require.NoError(t, q1.Run(context.Background(), stream.NewSliceSource([]types.Row{
		{"ts": base.Add(time.Hour)},
		{"ts": base},
	})))
	require.NoError(t, q2.Run(context.Background(), stream.NewSliceSource([]types.Row{
		{"ts": base},
	})))

	assert.Equal(t, int64(1), q1.Stats().Late)
	assert.Equal(t, int64(0), q2.Stats().Late)
}

func TestSinkReceivesResults(t *testing.T) {
	cfg := types.NewConfig()
	cfg.WindowConfig = types.WindowConfig{
		Type:   types.WindowTypeTumbling,
		Size:   30 * time.Second,
		TsProp: "ts",
	}
	cfg.Aggregations = []types.AggregationField{
		{InputField: "v", Function: "max", OutputAlias: "peak"},
	}

	q, err := New(cfg, WithDiscardLog())
	require.NoError(t, err)

	var peaks []interface{}
	q.AddSink(func(row types.Row) {
		peaks = append(peaks, row["peak"])
	})
	go func() {
		for range q.Results() {
		}
	}()

	base := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	require.NoError(t, q.Run(context.Background(), stream.NewSliceSource([]types.Row{
		{"ts": base, "v": 3},
		{"ts": base.Add(10 * time.Second), "v": 7},
		{"ts": base.Add(30 * time.Second), "v": 1},
		{"ts": base.Add(time.Minute), "v": 2},
	})))

	require.Len(t, peaks, 2)
	assert.Equal(t, float64(7), peaks[0])
	assert.Equal(t, float64(1), peaks[1])
}
