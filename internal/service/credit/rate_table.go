package credit

import "sort"

// DefaultFallbackRate is applied to any duration the table does not
// know. An unsupported duration degrades to a conservative estimate
// instead of failing the checkout flow.
const DefaultFallbackRate = 0.15

// RateTable maps a financing duration in months to the interest-rate
// fraction applied once to the principal. The table is immutable after
// construction and total over all positive durations through the
// fallback rate.
type RateTable struct {
	rates       map[int]float64
	defaultRate float64
}

// NewRateTable copies the given rates. A non-positive defaultRate falls
// back to DefaultFallbackRate.
func NewRateTable(rates map[int]float64, defaultRate float64) RateTable {
	if defaultRate <= 0 {
		defaultRate = DefaultFallbackRate
	}
	copied := make(map[int]float64, len(rates))
	for duration, rate := range rates {
		copied[duration] = rate
	}
	return RateTable{rates: copied, defaultRate: defaultRate}
}

// DefaultRateTable is the canonical table of the store: short
// durations, one to six months.
func DefaultRateTable() RateTable {
	return NewRateTable(map[int]float64{
		1: 0.01,
		2: 0.02,
		3: 0.05,
		4: 0.06,
		5: 0.07,
		6: 0.08,
	}, DefaultFallbackRate)
}

// RateFor returns the rate for the requested duration, or the default
// rate for durations outside the table. Pure lookup, never fails.
func (t RateTable) RateFor(duration int) float64 {
	if rate, ok := t.rates[duration]; ok {
		return rate
	}
	return t.defaultRate
}

// Supports reports whether the duration is part of the declared domain.
func (t RateTable) Supports(duration int) bool {
	_, ok := t.rates[duration]
	return ok
}

// Durations lists the declared domain in ascending order.
func (t RateTable) Durations() []int {
	durations := make([]int, 0, len(t.rates))
	for duration := range t.rates {
		durations = append(durations, duration)
	}
	sort.Ints(durations)
	return durations
}
