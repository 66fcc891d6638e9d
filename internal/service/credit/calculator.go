package credit

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPrincipal is returned when the principal is negative or not
// a finite number.
var ErrInvalidPrincipal = errors.New("principal must be a non-negative finite amount")

// InvalidDurationError marks a precondition violation: durations must
// be positive month counts. Unsupported-but-positive durations are not
// an error; they use the table's default rate.
type InvalidDurationError struct {
	Duration int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid credit duration: %d months", e.Duration)
}

// Breakdown is the full financing picture for one (principal, duration)
// pair. Derived on demand, never persisted; the backend recomputes the
// charged amount authoritatively.
type Breakdown struct {
	Principal          float64 `json:"principal"`
	Duration           int     `json:"duration"`
	InterestRate       float64 `json:"interestRate"`
	TotalWithInterest  float64 `json:"totalWithInterest"`
	MonthlyInstallment float64 `json:"monthlyInstallment"`
	TotalInterest      float64 `json:"totalInterest"`
}

// Calculator converts a cash principal and a financing duration into a
// Breakdown using an injected RateTable.
type Calculator struct {
	table RateTable
}

func NewCalculator(table RateTable) *Calculator {
	return &Calculator{table: table}
}

// ComputeBreakdown applies the store's simple-interest formula:
//
//	totalWithInterest  = principal * (1 + rate)
//	monthlyInstallment = totalWithInterest / duration
//	totalInterest      = totalWithInterest - principal
//
// No rounding happens here; formatting is a presentation concern.
func (c *Calculator) ComputeBreakdown(principal float64, duration int) (Breakdown, error) {
	if duration <= 0 {
		return Breakdown{}, &InvalidDurationError{Duration: duration}
	}
	if principal < 0 || math.IsNaN(principal) || math.IsInf(principal, 0) {
		return Breakdown{}, ErrInvalidPrincipal
	}

	rate := c.table.RateFor(duration)
	totalWithInterest := principal * (1 + rate)
	monthlyInstallment := totalWithInterest / float64(duration)

	return Breakdown{
		Principal:          principal,
		Duration:           duration,
		InterestRate:       rate,
		TotalWithInterest:  totalWithInterest,
		MonthlyInstallment: monthlyInstallment,
		TotalInterest:      totalWithInterest - principal,
	}, nil
}

// Options computes a Breakdown for every supported duration, ascending.
// Feeds the installment-options listing shown next to a price.
func (c *Calculator) Options(principal float64) ([]Breakdown, error) {
	durations := c.table.Durations()
	options := make([]Breakdown, 0, len(durations))
	for _, duration := range durations {
		breakdown, err := c.ComputeBreakdown(principal, duration)
		if err != nil {
			return nil, err
		}
		options = append(options, breakdown)
	}
	return options, nil
}

// Table exposes the injected rate table.
func (c *Calculator) Table() RateTable {
	return c.table
}
