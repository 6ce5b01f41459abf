package repositories

import (
	"context"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
)

// CurrencyReader serves the currency master table. Leases may only use a
// currency found here, and its precision drives display formatting.
type CurrencyReader interface {
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	// ListCurrencies returns every currency ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter upserts by currency code.
type CurrencyWriter interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
