package models

// ProfileAddress is the address block stored on the user profile.
type ProfileAddress struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// UserProfile is the authenticated shopper as returned by the backend
// profile endpoint. ShippingAddress holds the last shipping address the
// user submitted with an order, when the backend has one.
type UserProfile struct {
	ID              string           `json:"id"`
	Name            string           `json:"name,omitempty"`
	FirstName       string           `json:"firstName,omitempty"`
	LastName        string           `json:"lastName,omitempty"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Role            string           `json:"role,omitempty"`
	CreditLimit     float64          `json:"creditLimit,omitempty"`
	AvailableCredit float64          `json:"availableCredit,omitempty"`
	Address         *ProfileAddress  `json:"address,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
}

// IsAdmin reports whether the profile may use the admin passthrough.
func (u UserProfile) IsAdmin() bool {
	return u.Role == "admin"
}

// AuthSession is the result of a successful login or registration.
type AuthSession struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}
