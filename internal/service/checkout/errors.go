package checkout

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Laminito/ameublement-market/internal/pkg/consts"
)

// Precondition failures, caught before any network call.
var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("authentication required")
)

// Fence outcomes.
var (
	// ErrSubmissionInFlight means a submission for this attempt is
	// already running; the trigger is a no-op.
	ErrSubmissionInFlight = errors.New("order submission already in flight")
	// ErrAttemptCompleted means this attempt already succeeded; a new
	// cart state starts a new attempt.
	ErrAttemptCompleted = errors.New("checkout attempt already completed")
	// ErrPaymentModeNotSelected means Submit ran before Select.
	ErrPaymentModeNotSelected = errors.New("payment mode not selected")
)

// InsufficientStockError is recoverable: the shopper lowers the
// quantity and retries. Available carries the remaining-stock hint when
// the backend message exposed one.
type InsufficientStockError struct {
	Message      string
	Available    int
	HasAvailable bool
}

func (e *InsufficientStockError) Error() string {
	if e.HasAvailable {
		return fmt.Sprintf("Stock insuffisant. %d article(s) seulement disponible(s). Veuillez réduire la quantité.", e.Available)
	}
	return e.Message
}

// ValidationError carries field-level details when the backend rejected
// the request data.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "invalid order data"
}

// NetworkError wraps a transport-level failure; the cart is preserved
// so retry costs nothing.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure during order submission: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UnknownOrderError is the fallback for backend rejections that match
// nothing more specific; the original message is surfaced unchanged.
type UnknownOrderError struct {
	Message string
}

func (e *UnknownOrderError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "order creation failed"
}

var availableQuantityRe = regexp.MustCompile(`Available:\s*(\d+)`)

// parseStockError extracts the remaining-quantity hint out of the known
// backend stock-rejection message pattern.
func parseStockError(message string) *InsufficientStockError {
	stockErr := &InsufficientStockError{Message: message}
	if match := availableQuantityRe.FindStringSubmatch(message); match != nil {
		if available, err := strconv.Atoi(match[1]); err == nil {
			stockErr.Available = available
			stockErr.HasAvailable = true
		}
	}
	return stockErr
}

// IsStockMessage reports whether a backend message is the known
// insufficient-stock rejection.
func IsStockMessage(message string) bool {
	return strings.Contains(message, consts.InsufficientStockMarker)
}
