package convert

import (
	"errors"
	"fmt"
	"go-currency-converter"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Side names one of the two amount fields
type Side int

const (
	// Source the "from" amount drives the conversion
	Source Side = iota
	// Destination the "to" amount drives the conversion
	Destination
)

// ErrUnknownSide a side other than Source or Destination
var ErrUnknownSide = errors.New("unknown driving side")

func (s Side) String() string {
	switch s {
	case Source:
		return "source"
	case Destination:
		return "destination"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide the inverse of Side.String. An empty string is Source.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(s) {
	case "", "source", "from":
		return Source, nil
	case "destination", "to":
		return Destination, nil
	}
	return Source, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

// Zero the derived amount shown for an empty or zero input
const Zero = "0"

// places decimal places of a derived amount
const places = 2

// plainAmount digits with an optional decimal point; no sign, no exponent
var plainAmount = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

// ParseAmount reads amount text. Empty, malformed, negative and exponent
// notation text count as zero.
func ParseAmount(text string) decimal.Decimal {
	text = strings.TrimSpace(text)
	if !plainAmount.MatchString(text) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(text)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CrossRate units of destination per unit of source. ok is false when
// either currency has no rate.
func CrossRate(rates converter.Rates, source, destination converter.Currency) (rate decimal.Decimal, ok bool) {
	if !rates.Has(source) || !rates.Has(destination) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(float64(rates[destination])).
		Div(decimal.NewFromFloat(float64(rates[source]))), true
}

// Convert derives the non-driving amount from the driving one.
//
// An empty or zero amount yields Zero whatever the table holds. Otherwise, ok
// is false when either currency is missing from rates and the caller must
// leave both amounts as they are. The derived amount has exactly two decimals.
func Convert(rates converter.Rates, source, destination converter.Currency, amount string, driving Side) (derived string, ok bool, err error) {
	if driving != Source && driving != Destination {
		return "", false, fmt.Errorf("convert: %w: %v", ErrUnknownSide, driving)
	}

	value := ParseAmount(amount)
	if value.IsZero() {
		return Zero, true, nil
	}

	if !rates.Has(source) || !rates.Has(destination) {
		return "", false, nil
	}

	from := decimal.NewFromFloat(float64(rates[source]))
	to := decimal.NewFromFloat(float64(rates[destination]))

	var result decimal.Decimal
	if driving == Source {
		result = value.Mul(to).Div(from)
	} else {
		// amount / (to / from), without rounding the cross rate first
		result = value.Mul(from).Div(to)
	}
	return result.StringFixed(places), true, nil
}
