package converter

import (
	"sort"
)

// Currency a three-letter currency code
type Currency string

// Rate units of a currency per one unit of the base currency
type Rate float64

// Rates maps a currency code to its rate against the base currency.
// A table is filled once and must not be mutated afterwards.
type Rates map[Currency]Rate

// Has reports whether c has a usable rate in the table
func (r Rates) Has(c Currency) bool {
	rate, ok := r[c]
	return ok && rate > 0
}

// Currencies returns the codes of the table in ascending order
func (r Rates) Currencies() []Currency {
	codes := make([]Currency, 0, len(r))
	for c := range r {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
