package domain

import (
	"fmt"

	"github.com/SscSPs/lease_management_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money is an amount in integer minor units (e.g. paise) of an ISO 4217 currency.
// It is never represented as floating point.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney returns amount minor units of currency.
func NewMoney(amount int64, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// Zero returns zero in the given currency.
func Zero(currency string) Money {
	return Money{Currency: currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount < 0
}

func (m Money) sameCurrency(o Money) error {
	if m.Currency != o.Currency {
		return &apperrors.CurrencyMismatchError{Left: m.Currency, Right: o.Currency}
	}
	return nil
}

// Add returns a+b. Both operands must share a currency.
func Add(a, b Money) (Money, error) {
	if err := a.sameCurrency(b); err != nil {
		return Money{}, err
	}
	return Money{Amount: a.Amount + b.Amount, Currency: a.Currency}, nil
}

// Multiply scales a by an integer factor.
func Multiply(a Money, scalar int64) Money {
	return Money{Amount: a.Amount * scalar, Currency: a.Currency}
}

// Percentage returns pct percent of a, rounded half away from zero to whole minor units.
func Percentage(a Money, pct decimal.Decimal) Money {
	v := decimal.NewFromInt(a.Amount).Mul(pct).Div(hundred).Round(0)
	return Money{Amount: v.IntPart(), Currency: a.Currency}
}

// Max returns the greater of a and b. Both must share a currency.
func Max(a, b Money) (Money, error) {
	if err := a.sameCurrency(b); err != nil {
		return Money{}, err
	}
	if b.Amount > a.Amount {
		return b, nil
	}
	return a, nil
}

// Format renders the amount in major units using the currency precision,
// e.g. 105000 INR with precision 2 becomes "1050.00 INR".
func (m Money) Format(precision int) string {
	return decimal.New(m.Amount, -int32(precision)).StringFixed(int32(precision)) + " " + m.Currency
}
