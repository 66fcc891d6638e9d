package checkout

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Laminito/ameublement-market/internal/pkg/backend"
	"github.com/Laminito/ameublement-market/internal/pkg/consts"
	"github.com/Laminito/ameublement-market/internal/pkg/log_messages"
	"github.com/Laminito/ameublement-market/internal/pkg/logger"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/credit"
	"github.com/Laminito/ameublement-market/internal/service/interfaces"

	"github.com/google/uuid"
)

// State of one checkout attempt.
type State string

const (
	StateIdle       State = "idle"
	StateReady      State = "ready"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Flow owns one checkout attempt: payment-terms selection, the one-shot
// submission fence, and the cart-clearing side effect on success. There
// is no cancellation: once a submission is in flight it resolves to
// Succeeded or Failed. After a failure the fence resets, allowing
// exactly one retry per trigger; after success the attempt is terminal.
type Flow struct {
	mu        sync.Mutex
	state     State
	attemptID string
	mode      consts.PaymentMode
	duration  int

	cart   interfaces.CartStoreInterface
	orders interfaces.OrderAPIInterface
}

func NewFlow(cart interfaces.CartStoreInterface, orders interfaces.OrderAPIInterface) *Flow {
	return &Flow{
		state:     StateIdle,
		attemptID: uuid.New().String(),
		cart:      cart,
		orders:    orders,
	}
}

// AttemptID identifies this attempt in logs.
func (f *Flow) AttemptID() string {
	return f.attemptID
}

// State returns the current attempt state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Select records the payment terms: Idle -> Ready. Reselecting while
// Ready or after a failure is allowed; while a submission is in flight
// or after success it is not.
func (f *Flow) Select(mode consts.PaymentMode, duration int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateSucceeded:
		return ErrAttemptCompleted
	}

	if _, ok := consts.PaymentMethodForMode[mode]; !ok {
		return &ValidationError{Message: "unknown payment mode: " + string(mode)}
	}
	if mode == consts.PaymentModeCredit && duration <= 0 {
		return &credit.InvalidDurationError{Duration: duration}
	}

	f.mode = mode
	if mode == consts.PaymentModeCredit {
		f.duration = duration
	} else {
		f.duration = 0
	}
	f.state = StateReady
	return nil
}

// Reset returns a failed attempt to Idle after the shopper edits the
// cart. A submission in flight cannot be reset.
func (f *Flow) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateSubmitting:
		return ErrSubmissionInFlight
	case StateSucceeded:
		return ErrAttemptCompleted
	}
	f.state = StateIdle
	f.mode = ""
	f.duration = 0
	return nil
}

// Submit performs exactly one order submission for this trigger.
// Repeated triggers while a submission is in flight are no-ops. On
// success the cart is cleared; on failure the cart is left untouched
// and the fence resets so the shopper can adjust and retry.
func (f *Flow) Submit(ctx context.Context, token, userID string, defaults UserDefaults) (*models.OrderCreated, error) {
	f.mu.Lock()
	switch f.state {
	case StateSubmitting:
		f.mu.Unlock()
		return nil, ErrSubmissionInFlight
	case StateSucceeded:
		f.mu.Unlock()
		return nil, ErrAttemptCompleted
	case StateIdle:
		f.mu.Unlock()
		return nil, ErrPaymentModeNotSelected
	}
	if token == "" {
		f.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	mode, duration := f.mode, f.duration
	f.state = StateSubmitting
	f.mu.Unlock()

	created, err := f.submit(ctx, token, userID, mode, duration, defaults)

	f.mu.Lock()
	if err != nil {
		f.state = StateFailed
	} else {
		f.state = StateSucceeded
	}
	f.mu.Unlock()

	return created, err
}

func (f *Flow) submit(
	ctx context.Context,
	token, userID string,
	mode consts.PaymentMode,
	duration int,
	defaults UserDefaults,
) (*models.OrderCreated, error) {
	lines, err := f.cart.Get(ctx, userID)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFetchingCartFromStore, err)
		return nil, &NetworkError{Err: err}
	}

	req, err := BuildRequest(lines, mode, duration, defaults)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			logger.CtxWarn(ctx, log_messages.EmptyCartOnCheckout, slog.String("attempt_id", f.attemptID))
		}
		return nil, err
	}

	created, err := f.orders.CreateOrder(ctx, token, req)
	if err != nil {
		classified := ClassifyBackendError(err)
		logger.CtxError(ctx, log_messages.ErrorCreatingBackendOrder, classified,
			slog.String("attempt_id", f.attemptID))
		return nil, classified
	}

	// The only cart mutation this component performs: a wholesale clear
	// after the backend confirmed the order.
	if err := f.cart.Clear(ctx, userID); err != nil {
		logger.CtxError(ctx, log_messages.ErrorClearingCart, err,
			slog.String("attempt_id", f.attemptID))
	}

	logger.CtxInfo(ctx, "order created",
		slog.String("attempt_id", f.attemptID),
		slog.String("order_id", created.Order.ID),
		slog.String("payment_method", req.PaymentMethod),
	)
	return created, nil
}

// ClassifyBackendError converts raw transport/backend errors into the
// checkout taxonomy before they reach the presentation layer.
func ClassifyBackendError(err error) error {
	var apiErr *backend.APIError
	if !errors.As(err, &apiErr) {
		return &NetworkError{Err: err}
	}

	switch {
	case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
		return ErrNotAuthenticated
	case IsStockMessage(apiErr.Message):
		return parseStockError(apiErr.Message)
	case apiErr.StatusCode == 400 || apiErr.StatusCode == 422:
		return &ValidationError{Message: apiErr.Message, Fields: apiErr.Fields}
	default:
		return &UnknownOrderError{Message: apiErr.Message}
	}
}
