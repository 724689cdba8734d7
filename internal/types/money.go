// README: Common value objects shared across modules.
package types

// ID is an opaque identifier (uuid string for quotes).
type ID string

type Money struct {
	Amount   int64
	Currency string
}

// CurrencyEUR is the only currency quotes are issued in.
const CurrencyEUR = "EUR"

// EUR wraps a whole-euro amount.
func EUR(amount int) Money {
	return Money{Amount: int64(amount), Currency: CurrencyEUR}
}
