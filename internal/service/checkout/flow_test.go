package checkout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Laminito/ameublement-market/internal/pkg/backend"
	"github.com/Laminito/ameublement-market/internal/pkg/consts"
	"github.com/Laminito/ameublement-market/internal/pkg/models"
	"github.com/Laminito/ameublement-market/internal/service/credit"
)

type mockCartStore struct {
	mock.Mock
}

func (m *mockCartStore) Get(ctx context.Context, userID string) ([]models.CartLine, error) {
	args := m.Called(ctx, userID)
	if lines, ok := args.Get(0).([]models.CartLine); ok {
		return lines, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartStore) AddItem(ctx context.Context, userID string, line models.CartLine) error {
	return m.Called(ctx, userID, line).Error(0)
}

func (m *mockCartStore) UpdateQuantity(ctx context.Context, userID, productRef string, quantity int) error {
	return m.Called(ctx, userID, productRef, quantity).Error(0)
}

func (m *mockCartStore) RemoveItem(ctx context.Context, userID, productRef string) error {
	return m.Called(ctx, userID, productRef).Error(0)
}

func (m *mockCartStore) Clear(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type mockOrderAPI struct {
	mock.Mock

	createCalls atomic.Int32
	entered     chan struct{}
	release     chan struct{}
}

func (m *mockOrderAPI) CreateOrder(ctx context.Context, token string, req models.OrderCreationRequest) (*models.OrderCreated, error) {
	m.createCalls.Add(1)
	if m.entered != nil {
		close(m.entered)
	}
	if m.release != nil {
		<-m.release
	}
	args := m.Called(ctx, token, req)
	if created, ok := args.Get(0).(*models.OrderCreated); ok {
		return created, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderAPI) ListOrders(ctx context.Context, token string, page, limit int) ([]models.Order, *models.Pagination, error) {
	args := m.Called(ctx, token, page, limit)
	return nil, nil, args.Error(2)
}

func (m *mockOrderAPI) GetOrder(ctx context.Context, token, orderID string) (*models.Order, error) {
	args := m.Called(ctx, token, orderID)
	return nil, args.Error(1)
}

func (m *mockOrderAPI) CancelOrder(ctx context.Context, token, orderID, reason string) (*models.Order, error) {
	args := m.Called(ctx, token, orderID, reason)
	return nil, args.Error(1)
}

func (m *mockOrderAPI) GetTracking(ctx context.Context, token, orderID string) (*models.OrderTracking, error) {
	args := m.Called(ctx, token, orderID)
	return nil, args.Error(1)
}

func stubCart(lines []models.CartLine) *mockCartStore {
	cart := &mockCartStore{}
	cart.On("Get", mock.Anything, mock.Anything).Return(lines, nil)
	cart.On("Clear", mock.Anything, mock.Anything).Return(nil)
	return cart
}

func readyFlow(t *testing.T, cart *mockCartStore, orders *mockOrderAPI) *Flow {
	t.Helper()
	flow := NewFlow(cart, orders)
	require.NoError(t, flow.Select(consts.PaymentModeCredit, 6))
	return flow
}

func TestFlow_SelectValidatesTerms(t *testing.T) {
	flow := NewFlow(&mockCartStore{}, &mockOrderAPI{})

	var durErr *credit.InvalidDurationError
	err := flow.Select(consts.PaymentModeCredit, 0)
	require.True(t, errors.As(err, &durErr))
	assert.Equal(t, 0, durErr.Duration)

	var valErr *ValidationError
	err = flow.Select(consts.PaymentMode("cheque"), 0)
	require.True(t, errors.As(err, &valErr))

	require.NoError(t, flow.Select(consts.PaymentModeCash, 0))
	assert.Equal(t, StateReady, flow.State())
}

func TestFlow_SubmitBeforeSelectFails(t *testing.T) {
	flow := NewFlow(&mockCartStore{}, &mockOrderAPI{})

	_, err := flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})

	assert.ErrorIs(t, err, ErrPaymentModeNotSelected)
}

func TestFlow_SubmitWithoutTokenFails(t *testing.T) {
	flow := readyFlow(t, &mockCartStore{}, &mockOrderAPI{})

	_, err := flow.Submit(context.Background(), "", "u-1", UserDefaults{})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
	// The anonymous attempt keeps its terms for after login.
	assert.Equal(t, StateReady, flow.State())
}

func TestFlow_EmptyCartFailsWithoutNetworkCall(t *testing.T) {
	cart := &mockCartStore{}
	cart.On("Get", mock.Anything, "u-1").Return([]models.CartLine{}, nil)
	orders := &mockOrderAPI{}
	flow := readyFlow(t, cart, orders)

	_, err := flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, int32(0), orders.createCalls.Load())
}

func TestFlow_SuccessClearsCartAndIsTerminal(t *testing.T) {
	cart := stubCart([]models.CartLine{cartLine("p-1", 1)})
	orders := &mockOrderAPI{}
	orders.On("CreateOrder", mock.Anything, "tok", mock.Anything).
		Return(&models.OrderCreated{Order: models.Order{ID: "ord-1"}}, nil)
	flow := readyFlow(t, cart, orders)

	created, err := flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})

	require.NoError(t, err)
	assert.Equal(t, "ord-1", created.Order.ID)
	assert.Equal(t, StateSucceeded, flow.State())
	cart.AssertCalled(t, "Clear", mock.Anything, "u-1")

	// Further submits and reselects are refused.
	_, err = flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})
	assert.ErrorIs(t, err, ErrAttemptCompleted)
	assert.ErrorIs(t, flow.Select(consts.PaymentModeCash, 0), ErrAttemptCompleted)
}

func TestFlow_FailureKeepsCartAndAllowsRetry(t *testing.T) {
	cart := stubCart([]models.CartLine{cartLine("p-1", 1)})
	orders := &mockOrderAPI{}
	orders.On("CreateOrder", mock.Anything, "tok", mock.Anything).
		Return(nil, &backend.APIError{StatusCode: 500, Message: "internal error"}).Once()
	orders.On("CreateOrder", mock.Anything, "tok", mock.Anything).
		Return(&models.OrderCreated{Order: models.Order{ID: "ord-2"}}, nil).Once()
	flow := readyFlow(t, cart, orders)

	_, err := flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})
	require.Error(t, err)
	assert.Equal(t, StateFailed, flow.State())
	cart.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)

	created, err := flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})
	require.NoError(t, err)
	assert.Equal(t, "ord-2", created.Order.ID)
	assert.Equal(t, int32(2), orders.createCalls.Load())
}

func TestFlow_ConcurrentSubmitTriggersOneNetworkCall(t *testing.T) {
	cart := stubCart([]models.CartLine{cartLine("p-1", 1)})
	orders := &mockOrderAPI{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	orders.On("CreateOrder", mock.Anything, "tok", mock.Anything).
		Return(&models.OrderCreated{Order: models.Order{ID: "ord-1"}}, nil)
	flow := readyFlow(t, cart, orders)

	done := make(chan error, 1)
	go func() {
		_, err := flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})
		done <- err
	}()

	// Wait until the first submission is inside the backend call, then
	// trigger again: the second trigger must be a silent no-op.
	<-orders.entered
	_, err := flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.ErrorIs(t, flow.Reset(), ErrSubmissionInFlight)

	close(orders.release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), orders.createCalls.Load())
}

func TestFlow_ResetAfterFailureReturnsToIdle(t *testing.T) {
	cart := stubCart([]models.CartLine{cartLine("p-1", 1)})
	orders := &mockOrderAPI{}
	orders.On("CreateOrder", mock.Anything, "tok", mock.Anything).
		Return(nil, errors.New("connection refused"))
	flow := readyFlow(t, cart, orders)

	_, err := flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})
	require.Error(t, err)

	require.NoError(t, flow.Reset())
	assert.Equal(t, StateIdle, flow.State())

	_, err = flow.Submit(context.Background(), "tok", "u-1", UserDefaults{})
	assert.ErrorIs(t, err, ErrPaymentModeNotSelected)
}
