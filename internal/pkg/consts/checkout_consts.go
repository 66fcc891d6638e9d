package consts

// Literal fallbacks for shipping address fields. Each field falls back
// independently: a profile missing only a phone number keeps its city.
const (
	DefaultFirstName  = "Client"
	DefaultLastName   = "Default"
	DefaultStreet     = "Non spécifiée"
	DefaultCity       = "Non spécifiée"
	DefaultPostalCode = "00000"
	DefaultCountry    = "Senegal"
	DefaultPhone      = "00000000"
)

// Marker the backend puts in stock rejection messages, e.g.
// "Insufficient stock for Sofa XL. Available: 3".
const InsufficientStockMarker = "Insufficient stock"
