// README: Common money value object used across modules.
package types

// Money is an amount in a specific ISO-4217 currency. Amounts are real
// numbers because provider cost estimates are not integer cents.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
