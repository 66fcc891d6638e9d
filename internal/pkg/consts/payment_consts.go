package consts

type PaymentMode string

const (
	PaymentModeCash   PaymentMode = "cash"
	PaymentModeCredit PaymentMode = "credit"
)

// Backend-level payment method identifiers. The storefront never sends
// the UI-level mode to the backend; it is translated through
// PaymentMethodForMode.
const (
	PaymentMethodCard     = "card"
	PaymentMethodKredika  = "kredika"
	PaymentMethodTransfer = "transfer"
)

// PaymentMethodForMode is the fixed mapping from the shopper-facing
// payment mode to the backend payment-method identifier.
var PaymentMethodForMode = map[PaymentMode]string{
	PaymentModeCash:   PaymentMethodCard,
	PaymentModeCredit: PaymentMethodKredika,
}
