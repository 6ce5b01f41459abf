package domain

// DefaultCurrencyPrecision is used when a currency's minor-unit precision is unknown.
const DefaultCurrencyPrecision = 2

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "INR")
	Symbol       string `json:"symbol"`       // e.g., "₹"
	Name         string `json:"name"`         // e.g., "Indian Rupee"
	Precision    int    `json:"precision"`    // Number of minor-unit digits, 2 for INR, 0 for JPY
	AuditFields
}
