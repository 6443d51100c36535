// README: Static USD exchange-rate table behind a freshness-windowed cache.
package currency

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const snapshotKey = "currency:rates"

// baseRates maps ISO-4217 codes to units per USD. The table is static; the
// cache in front of it exists so a live source can slot in later behind the
// same freshness window without touching any caller.
var baseRates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.50,
	"CNY": 7.24,
	"KRW": 1330.00,
	"TWD": 31.50,
	"HKD": 7.82,
	"SGD": 1.34,
	"THB": 35.60,
	"VND": 24500.00,
	"IDR": 15600.00,
	"MYR": 4.70,
	"PHP": 56.00,
	"INR": 83.10,
	"AUD": 1.52,
	"NZD": 1.64,
	"CAD": 1.36,
	"MXN": 17.10,
	"BRL": 4.97,
	"CHF": 0.88,
	"SEK": 10.40,
	"NOK": 10.50,
	"DKK": 6.87,
	"PLN": 3.98,
	"CZK": 22.90,
	"HUF": 355.00,
	"TRY": 30.80,
	"AED": 3.67,
	"SAR": 3.75,
	"ILS": 3.68,
	"ZAR": 18.70,
	"EGP": 30.90,
}

// Table serves exchange-rate snapshots. An expired snapshot is rebuilt
// synchronously on the next read; concurrent rebuilds overwrite each other
// with identical data, so no extra locking is layered on top of the cache.
type Table struct {
	cache *gocache.Cache
}

// NewTable creates a Table whose snapshot is considered fresh for the given
// window.
func NewTable(freshness time.Duration) *Table {
	return &Table{cache: gocache.New(freshness, 2*freshness)}
}

// Rate returns the units-per-USD rate for code. Unknown codes fall back to
// rate 1 so an unrecognized currency degrades to USD-equivalent display
// instead of failing the request.
func (t *Table) Rate(code string) float64 {
	if r, ok := t.snapshot()[strings.ToUpper(code)]; ok && r > 0 {
		return r
	}
	return 1
}

// Known reports whether the table carries a real rate for code.
func (t *Table) Known(code string) bool {
	_, ok := t.snapshot()[strings.ToUpper(code)]
	return ok
}

// FromUSD converts a USD amount into the target currency.
func (t *Table) FromUSD(amountUSD float64, code string) float64 {
	return amountUSD * t.Rate(code)
}

// ToUSD converts an amount in the given currency into USD.
func (t *Table) ToUSD(amount float64, code string) float64 {
	return amount / t.Rate(code)
}

func (t *Table) snapshot() map[string]float64 {
	if v, ok := t.cache.Get(snapshotKey); ok {
		return v.(map[string]float64)
	}
	rates := make(map[string]float64, len(baseRates))
	for k, v := range baseRates {
		rates[k] = v
	}
	t.cache.SetDefault(snapshotKey, rates)
	return rates
}
