package utils

import (
	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// FormatMoney renders m in major units using the currency's precision.
// Example: 105000 INR with precision 2 returns "1050.00 INR"
// A nil currency falls back to domain.DefaultCurrencyPrecision.
func FormatMoney(m domain.Money, currency *domain.Currency) string {
	if currency == nil {
		return m.Format(domain.DefaultCurrencyPrecision)
	}
	return m.Format(currency.Precision)
}
