package log_messages

const (
	FailedLoadingConfiguration      = "failed to load configuration"
	FailedConnectingToRedis         = "failed to connect to Redis"
	ErrorFetchingCartFromStore      = "error fetching cart from store"
	ErrorSavingCartToStore          = "error saving cart to store"
	ErrorClearingCart               = "error clearing cart"
	ErrorAcquiringCheckoutFence     = "error acquiring checkout fence"
	ErrorReleasingCheckoutFence     = "error releasing checkout fence"
	ErrorCreatingBackendOrder       = "error creating order on backend"
	ErrorFetchingBackendProfile     = "error fetching user profile from backend"
	ErrorDecodingBackendResponse    = "error decoding backend response"
	ErrorFetchingBackendProducts    = "error fetching products from backend"
	ErrorFetchingBackendOrders      = "error fetching orders from backend"
	CheckoutAlreadyInProgress       = "checkout already in progress for this cart"
	EmptyCartOnCheckout             = "checkout attempted with an empty cart"
	MissingAuthenticationToken      = "missing authentication token"
	InvalidCreditDurationRequested  = "invalid credit duration requested"
	UnsupportedCreditDurationUsed   = "unsupported credit duration, default rate applied"
	CleanupStarted                  = "cleaning up resources"
	CleanupCompleted                = "resource cleanup completed"
)
