package aggregator

import (
	"fmt"
	"sync"

	"github.com/spf13/cast"
)

// Aggregate function names built into the engine.
const (
	Count     = "count"
	Sum       = "sum"
	Avg       = "avg"
	Min       = "min"
	Max       = "max"
	LastValue = "last_value"
)

// AggregatorFunction is an incremental accumulator. One instance holds
// the partial state for a single (window, group, field) combination:
// New creates a fresh accumulator, Add merges one value, Result finalizes
// the output value.
type AggregatorFunction interface {
	New() AggregatorFunction
	Add(value interface{})
	Result() interface{}
}

// CountAggregator counts added values regardless of their type.
type CountAggregator struct {
	count int64
}

func (c *CountAggregator) New() AggregatorFunction { return &CountAggregator{} }
func (c *CountAggregator) Add(_ interface{})       { c.count++ }
func (c *CountAggregator) Result() interface{}     { return c.count }

// SumAggregator sums numeric values.
type SumAggregator struct {
	value float64
}

func (s *SumAggregator) New() AggregatorFunction { return &SumAggregator{} }

func (s *SumAggregator) Add(v interface{}) {
	if f, err := cast.ToFloat64E(v); err == nil {
		s.value += f
	}
}

func (s *SumAggregator) Result() interface{} { return s.value }

// AvgAggregator computes the arithmetic mean of numeric values.
type AvgAggregator struct {
	sum   float64
	count int
}

func (a *AvgAggregator) New() AggregatorFunction { return &AvgAggregator{} }

func (a *AvgAggregator) Add(v interface{}) {
	if f, err := cast.ToFloat64E(v); err == nil {
		a.sum += f
		a.count++
	}
}

func (a *AvgAggregator) Result() interface{} {
	if a.count == 0 {
		return float64(0)
	}
	return a.sum / float64(a.count)
}

// MinAggregator tracks the minimum numeric value.
type MinAggregator struct {
	value float64
	seen  bool
}

func (m *MinAggregator) New() AggregatorFunction { return &MinAggregator{} }

func (m *MinAggregator) Add(v interface{}) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return
	}
	if !m.seen || f < m.value {
		m.value = f
		m.seen = true
	}
}

func (m *MinAggregator) Result() interface{} {
	if !m.seen {
		return nil
	}
	return m.value
}

// MaxAggregator tracks the maximum numeric value.
type MaxAggregator struct {
	value float64
	seen  bool
}

func (m *MaxAggregator) New() AggregatorFunction { return &MaxAggregator{} }

func (m *MaxAggregator) Add(v interface{}) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return
	}
	if !m.seen || f > m.value {
		m.value = f
		m.seen = true
	}
}

func (m *MaxAggregator) Result() interface{} {
	if !m.seen {
		return nil
	}
	return m.value
}

// LastValueAggregator keeps the most recently added value of any type.
type LastValueAggregator struct {
	value interface{}
}

func (l *LastValueAggregator) New() AggregatorFunction { return &LastValueAggregator{} }
func (l *LastValueAggregator) Add(v interface{})       { l.value = v }
func (l *LastValueAggregator) Result() interface{}     { return l.value }

var (
	registry      = make(map[string]func() AggregatorFunction)
	registryMutex sync.RWMutex
)

func init() {
	Register(Count, func() AggregatorFunction { return &CountAggregator{} })
	Register(Sum, func() AggregatorFunction { return &SumAggregator{} })
	Register(Avg, func() AggregatorFunction { return &AvgAggregator{} })
	Register(Min, func() AggregatorFunction { return &MinAggregator{} })
	Register(Max, func() AggregatorFunction { return &MaxAggregator{} })
	Register(LastValue, func() AggregatorFunction { return &LastValueAggregator{} })
}

// Register adds a custom aggregate function to the global registry,
// replacing any previous registration under the same name.
func Register(name string, constructor func() AggregatorFunction) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	registry[name] = constructor
}

// Create instantiates a registered aggregate function by name.
func Create(name string) (AggregatorFunction, error) {
	registryMutex.RLock()
	constructor, exists := registry[name]
	registryMutex.RUnlock()
	if !exists {
		return nil, fmt.Errorf("aggregate function %q not found", name)
	}
	return constructor(), nil
}

// Exists reports whether an aggregate function is registered.
func Exists(name string) bool {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	_, ok := registry[name]
	return ok
}
