package checkout

import (
	"errors"
	"strings"

	"github.com/Laminito/ameublement-market/internal/pkg/consts"
	"github.com/Laminito/ameublement-market/internal/pkg/models"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate = validator.New()

// UserDefaults is the address material available when assembling an
// order: the stored profile, the shipping address of a previous order,
// and an optional explicit address entered for this attempt.
type UserDefaults struct {
	Profile      *models.UserProfile
	LastShipping *models.ShippingAddress
	Entered      *models.ShippingAddress
}

// BuildRequest turns the cart, the chosen payment terms and the
// shopper's address material into the exact order-creation body the
// backend expects. The payload carries mode and duration only; the
// backend recomputes pricing authoritatively.
func BuildRequest(
	lines []models.CartLine,
	mode consts.PaymentMode,
	duration int,
	defaults UserDefaults,
) (models.OrderCreationRequest, error) {
	if len(lines) == 0 {
		return models.OrderCreationRequest{}, ErrEmptyCart
	}

	items := make([]models.OrderItemRequest, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItemRequest{
			ProductID: line.ProductRef(),
			Quantity:  line.Quantity,
		})
	}

	req := models.OrderCreationRequest{
		Items:           items,
		ShippingAddress: resolveShippingAddress(defaults),
		PaymentMethod:   consts.PaymentMethodForMode[mode],
	}
	if mode == consts.PaymentModeCredit {
		req.Installments = duration
	}

	// The fallback chain fills every field, so this only trips on
	// malformed entered values, e.g. a phone number that is too short.
	if err := validate.Struct(req.ShippingAddress); err != nil {
		fields := map[string]string{}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		return models.OrderCreationRequest{}, &ValidationError{
			Message: "adresse de livraison invalide",
			Fields:  fields,
		}
	}
	return req, nil
}

// resolveShippingAddress applies the fallback chain per field: the
// address entered for this attempt, then the profile, then the last
// shipping address on record, then the literal default. Fields fall
// back independently so a profile missing only a phone number keeps
// its city.
func resolveShippingAddress(defaults UserDefaults) models.ShippingAddress {
	profile := defaults.Profile

	var profileAddr models.ProfileAddress
	var profilePhone string
	firstName, lastName := "", ""
	if profile != nil {
		if profile.Address != nil {
			profileAddr = *profile.Address
		}
		profilePhone = profile.Phone
		firstName = profile.FirstName
		lastName = profile.LastName
		if firstName == "" || lastName == "" {
			nameParts := strings.Fields(profile.Name)
			if firstName == "" && len(nameParts) > 0 {
				firstName = nameParts[0]
			}
			if lastName == "" && len(nameParts) > 1 {
				lastName = nameParts[1]
			}
		}
	}

	var last models.ShippingAddress
	if defaults.LastShipping != nil {
		last = *defaults.LastShipping
	}
	var entered models.ShippingAddress
	if defaults.Entered != nil {
		entered = *defaults.Entered
	}

	return models.ShippingAddress{
		FirstName:  firstNonEmpty(entered.FirstName, firstName, last.FirstName, consts.DefaultFirstName),
		LastName:   firstNonEmpty(entered.LastName, lastName, last.LastName, consts.DefaultLastName),
		Street:     firstNonEmpty(entered.Street, profileAddr.Street, last.Street, consts.DefaultStreet),
		City:       firstNonEmpty(entered.City, profileAddr.City, last.City, consts.DefaultCity),
		PostalCode: firstNonEmpty(entered.PostalCode, profileAddr.PostalCode, last.PostalCode, consts.DefaultPostalCode),
		Country:    firstNonEmpty(entered.Country, profileAddr.Country, last.Country, consts.DefaultCountry),
		Phone:      firstNonEmpty(entered.Phone, profilePhone, last.Phone, consts.DefaultPhone),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
