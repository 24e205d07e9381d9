package watermark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(seconds float64) time.Time {
	return time.Unix(0, int64(seconds*float64(time.Second))).UTC()
}

func TestFirstEventIsNeverLate(t *testing.T) {
	g := NewGenerator(500 * time.Millisecond)

	_, ok := g.Current()
	require.False(t, ok, "no watermark before the first event")

	action := g.Observe(ts(59.9))
	require.Equal(t, OnTime, action.Status)
	require.True(t, action.Advanced)
	assert.Equal(t, ts(59.4), action.Watermark)
}

func TestAllowedLagScenario(t *testing.T) {
	// allowed_lag = 0.5s, events at 59.9s, 59.6s, 60.4s
	g := NewGenerator(500 * time.Millisecond)

	a1 := g.Observe(ts(59.9))
	require.Equal(t, OnTime, a1.Status)
	require.Equal(t, ts(59.4), a1.Watermark)

	// 59.6 >= 59.4: on time, watermark unchanged
	a2 := g.Observe(ts(59.6))
	require.Equal(t, OnTime, a2.Status)
	require.False(t, a2.Advanced)
	require.Equal(t, ts(59.4), a2.Watermark)

	a3 := g.Observe(ts(60.4))
	require.Equal(t, OnTime, a3.Status)
	require.True(t, a3.Advanced)
	require.Equal(t, ts(59.9), a3.Watermark)
}

func TestBoundaryEventIsKept(t *testing.T) {
	g := NewGenerator(time.Second)
	g.Observe(ts(10))

	wm, ok := g.Current()
	require.True(t, ok)
	require.Equal(t, ts(9), wm)

	// exactly at the watermark: kept
	action := g.Observe(ts(9))
	assert.Equal(t, OnTime, action.Status)

	// strictly behind the watermark: dropped
	action = g.Observe(ts(8.999))
	assert.Equal(t, Late, action.Status)
}

func TestLateEventDoesNotMoveWatermark(t *testing.T) {
	g := NewGenerator(time.Second)
	g.Observe(ts(100))

	action := g.Observe(ts(50))
	require.Equal(t, Late, action.Status)
	require.False(t, action.Advanced)

	wm, _ := g.Current()
	assert.Equal(t, ts(99), wm)

	maxSeen, _ := g.MaxEventTime()
	assert.Equal(t, ts(100), maxSeen)
}

func TestWatermarkIsMonotonic(t *testing.T) {
	g := NewGenerator(2 * time.Second)

	eventTimes := []float64{10, 13, 11, 9.5, 20, 18.5, 15, 30}
	var last time.Time
	for _, et := range eventTimes {
		action := g.Observe(ts(et))
		require.False(t, action.Watermark.Before(last),
			"watermark decreased after event at %vs", et)
		if action.Status == OnTime {
			last = action.Watermark
		}
	}

	wm, ok := g.Current()
	require.True(t, ok)
	assert.Equal(t, ts(28), wm)
}

func TestZeroLag(t *testing.T) {
	g := NewGenerator(0)

	a := g.Observe(ts(5))
	require.Equal(t, ts(5), a.Watermark)

	// equal to the watermark is still on time
	a = g.Observe(ts(5))
	require.Equal(t, OnTime, a.Status)
	require.False(t, a.Advanced)

	a = g.Observe(ts(4))
	require.Equal(t, Late, a.Status)
}
