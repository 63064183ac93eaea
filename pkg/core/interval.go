package core

import "math"

// Interval is a closed range [Min, Max] of ray parameters or values.
// An empty interval has Min = +Inf and Max = -Inf and contains nothing.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval returns the interval that contains nothing
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval returns the interval that contains every value
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains checks Min <= x <= Max (inclusive). Use Surrounds for the exclusive check.
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds checks Min < x < Max (exclusive)
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Clamp bounds x into the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}
