package convert

import (
	"go-currency-converter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewForm(t *testing.T) {
	f := NewForm()

	assert.Equal(t, State{
		Source:      "USD",
		Destination: "PKR",
		AmountFrom:  "0",
		AmountTo:    "0",
		Driving:     Source,
	}, f.State())
	assert.False(t, f.Loaded())
	assert.Empty(t, f.Currencies())
}

func TestForm_EditFrom(t *testing.T) {
	f := NewForm()
	f.LoadRates(rates)

	f.EditFrom("10")

	assert.Equal(t, "10", f.State().AmountFrom)
	assert.Equal(t, "2785.00", f.State().AmountTo)
	assert.Equal(t, Source, f.State().Driving)
}

func TestForm_EditTo(t *testing.T) {
	f := NewFormWith("USD", "EUR")
	f.LoadRates(converter.Rates{"USD": 1, "EUR": 0.92})

	f.EditTo("92")

	assert.Equal(t, "100.00", f.State().AmountFrom)
	assert.Equal(t, "92", f.State().AmountTo)
	assert.Equal(t, Destination, f.State().Driving)
}

func TestForm_DrivingAmountKeptVerbatim(t *testing.T) {
	f := NewForm()
	f.LoadRates(rates)

	f.EditFrom("1.23456")

	assert.Equal(t, "1.23456", f.State().AmountFrom)
	assert.Equal(t, "343.82", f.State().AmountTo)
}

func TestForm_LastEditedWins(t *testing.T) {
	f := NewForm()
	f.LoadRates(rates)

	f.EditFrom("10")
	f.EditTo("557")
	assert.Equal(t, "2.00", f.State().AmountFrom)

	// a currency change recomputes from the "to" side, which was edited last
	f.SelectSource("EUR")
	assert.Equal(t, "557", f.State().AmountTo)
	assert.Equal(t, "1.84", f.State().AmountFrom)
}

func TestForm_SelectDestination(t *testing.T) {
	f := NewForm()
	f.LoadRates(rates)
	f.EditFrom("100")

	f.SelectDestination("EUR")

	assert.Equal(t, converter.Currency("EUR"), f.State().Destination)
	assert.Equal(t, "92.00", f.State().AmountTo)
}

func TestForm_ZeroInput(t *testing.T) {
	for _, text := range []string{"", "0"} {
		t.Run(text, func(t *testing.T) {
			f := NewForm()
			f.LoadRates(rates)
			f.EditFrom("10")

			f.EditFrom(text)
			assert.Equal(t, "0", f.State().AmountTo)

			f.EditTo("10")
			f.EditTo(text)
			assert.Equal(t, "0", f.State().AmountFrom)
		})
	}

	f := NewForm()
	f.EditFrom("")
	assert.Equal(t, "0", f.State().AmountTo, "no rates loaded")
}

func TestForm_MissingCurrency(t *testing.T) {
	f := NewForm()
	f.LoadRates(rates)
	f.EditFrom("10")
	before := f.State()

	f.SelectSource("XXX")
	f.EditFrom("20")

	assert.Equal(t, "20", f.State().AmountFrom)
	assert.Equal(t, before.AmountTo, f.State().AmountTo)

	f.EditTo("30")
	assert.Equal(t, "20", f.State().AmountFrom)
	assert.Equal(t, "30", f.State().AmountTo)
}

func TestForm_BeforeRatesLoaded(t *testing.T) {
	f := NewForm()

	f.EditFrom("10")
	assert.Equal(t, "0", f.State().AmountTo)

	f.LoadRates(converter.Rates{})
	assert.False(t, f.Loaded())

	f.LoadRates(rates)
	assert.True(t, f.Loaded())
	assert.Equal(t, "2785.00", f.State().AmountTo)
}

func TestForm_Swap(t *testing.T) {
	f := NewForm()
	f.LoadRates(rates)
	f.EditFrom("10")
	before := f.State()

	f.Swap()

	assert.Equal(t, State{
		Source:      "PKR",
		Destination: "USD",
		AmountFrom:  "2785.00",
		AmountTo:    "10",
		Driving:     Destination,
	}, f.State())

	f.Swap()
	assert.Equal(t, before, f.State())
}

func TestSwap_Idempotence(t *testing.T) {
	states := []State{
		NewState("USD", "PKR"),
		{Source: "EUR", Destination: "GBP", AmountFrom: "1.2345", AmountTo: "garbage", Driving: Destination},
		{Source: "", Destination: "JPY", AmountFrom: "", AmountTo: "7", Driving: Source},
	}
	for _, s := range states {
		assert.Equal(t, s, Swap(Swap(s)))
	}
}

func TestForm_Summary(t *testing.T) {
	f := NewForm()
	f.LoadRates(rates)

	_, ok := f.Summary()
	assert.False(t, ok)

	f.EditFrom("0.5")
	_, ok = f.Summary()
	assert.False(t, ok)

	f.EditFrom("10")
	summary, ok := f.Summary()
	assert.True(t, ok)
	assert.Equal(t, "10 USD = 2785.00 PKR", summary)
}

func TestForm_Currencies(t *testing.T) {
	f := NewForm()
	f.LoadRates(rates)

	assert.Equal(t, []converter.Currency{"EUR", "GBP", "JPY", "PKR", "USD"}, f.Currencies())
	assert.Equal(t, rates, f.Rates())
}
