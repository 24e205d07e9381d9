package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamwind/streamwind/aggregator"
	"github.com/streamwind/streamwind/types"
)

func newTestTable(t *testing.T) *aggregator.Table {
	t.Helper()
	table, err := aggregator.NewTable(nil, []types.AggregationField{
		{InputField: "*", Function: aggregator.Count, OutputAlias: "n"},
	})
	require.NoError(t, err)
	return table
}

func TestTriggerLifecycle(t *testing.T) {
	table := newTestTable(t)
	trigger := NewTrigger(table)

	require.Equal(t, StateOpen, trigger.State())
	_, ok := trigger.Watermark()
	require.False(t, ok, "initial watermark is minus infinity")

	slot := types.NewTimeSlot(time.Unix(0, 0).UTC(), time.Unix(60, 0).UTC())
	require.NoError(t, table.Apply(slot, types.NewEventEnvelope(types.Row{}, time.Unix(1, 0).UTC())))

	// watermark below the window end: back to Open with nothing emitted
	results := trigger.OnWatermark(time.Unix(30, 0).UTC())
	assert.Empty(t, results)
	assert.Equal(t, StateOpen, trigger.State())

	results = trigger.OnWatermark(time.Unix(60, 0).UTC())
	require.Len(t, results, 1)
	assert.Equal(t, StateOpen, trigger.State())

	wm, ok := trigger.Watermark()
	require.True(t, ok)
	assert.Equal(t, time.Unix(60, 0).UTC(), wm)
}

func TestCloseDiscardsPendingState(t *testing.T) {
	// a cancelled query never emits windows still short of their deadline
	table := newTestTable(t)
	trigger := NewTrigger(table)

	slot := types.NewTimeSlot(time.Unix(300, 0).UTC(), time.Unix(360, 0).UTC())
	for i := 0; i < 3; i++ {
		require.NoError(t, table.Apply(slot, types.NewEventEnvelope(types.Row{}, time.Unix(310, 0).UTC())))
	}
	trigger.OnWatermark(time.Unix(240, 0).UTC())
	require.Equal(t, 1, table.Size())

	trigger.Close()
	assert.Equal(t, StateClosed, trigger.State())
	assert.Equal(t, 0, table.Size())

	// closed is terminal
	assert.Empty(t, trigger.OnWatermark(time.Unix(500, 0).UTC()))
	trigger.Close()
	assert.Equal(t, StateClosed, trigger.State())
}
