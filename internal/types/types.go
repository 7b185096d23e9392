// README: Common value objects shared across modules.
package types

// ID is an opaque identifier (32-char hex from the generator).
type ID string

// Point is a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Money is a whole-dollar amount. All estimates in this service round to
// the nearest dollar, so there is no fractional unit.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// USD wraps a dollar amount in the service's only currency.
func USD(amount int64) Money {
	return Money{Amount: amount, Currency: "USD"}
}
