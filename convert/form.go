package convert

import (
	"fmt"
	"go-currency-converter"
)

// Default currency pair of a new form
const (
	DefaultSource      converter.Currency = "USD"
	DefaultDestination converter.Currency = "PKR"
)

// State the two currency selections, the two displayed amounts, and which
// amount was edited last.
type State struct {
	Source      converter.Currency
	Destination converter.Currency
	AmountFrom  string
	AmountTo    string
	Driving     Side
}

// NewState the state shown at launch for the given pair
func NewState(source, destination converter.Currency) State {
	return State{
		Source:      source,
		Destination: destination,
		AmountFrom:  Zero,
		AmountTo:    Zero,
		Driving:     Source,
	}
}

// Input the text of the driving amount
func (s State) Input() string {
	if s.Driving == Destination {
		return s.AmountTo
	}
	return s.AmountFrom
}

// Recompute applies Convert to s and returns the updated state. ok is false
// when the conversion was skipped, in which case s is returned unchanged.
func Recompute(rates converter.Rates, s State) (State, bool, error) {
	derived, ok, err := Convert(rates, s.Source, s.Destination, s.Input(), s.Driving)
	if err != nil || !ok {
		return s, false, err
	}
	if s.Driving == Destination {
		s.AmountFrom = derived
	} else {
		s.AmountTo = derived
	}
	return s, true, nil
}

// Swap exchanges the currencies and the amounts verbatim. The driving side
// follows its text so the same amount stays the input.
func Swap(s State) State {
	s.Source, s.Destination = s.Destination, s.Source
	s.AmountFrom, s.AmountTo = s.AmountTo, s.AmountFrom
	if s.Driving == Destination {
		s.Driving = Source
	} else {
		s.Driving = Destination
	}
	return s
}

// Form a single conversion screen. It is not safe for concurrent use; events
// are expected from one loop.
type Form struct {
	rates converter.Rates
	state State
}

// NewForm a form on the default pair with no rates loaded
func NewForm() *Form {
	return NewFormWith(DefaultSource, DefaultDestination)
}

// NewFormWith a form on the given pair with no rates loaded
func NewFormWith(source, destination converter.Currency) *Form {
	return &Form{
		rates: converter.Rates{},
		state: NewState(source, destination),
	}
}

// State a copy of the current state
func (f *Form) State() State {
	return f.state
}

// Rates the table the form converts with
func (f *Form) Rates() converter.Rates {
	return f.rates
}

// Loaded reports whether any rates have been loaded
func (f *Form) Loaded() bool {
	return len(f.rates) > 0
}

// Currencies the selectable codes, in ascending order
func (f *Form) Currencies() []converter.Currency {
	return f.rates.Currencies()
}

// LoadRates installs the fetched table and recomputes. An empty table is ignored.
func (f *Form) LoadRates(rates converter.Rates) {
	if len(rates) == 0 {
		return
	}
	f.rates = rates
	f.recompute()
}

// EditFrom sets the "from" amount text and makes it the driving side
func (f *Form) EditFrom(text string) {
	f.state.AmountFrom = text
	f.state.Driving = Source
	f.recompute()
}

// EditTo sets the "to" amount text and makes it the driving side
func (f *Form) EditTo(text string) {
	f.state.AmountTo = text
	f.state.Driving = Destination
	f.recompute()
}

// SelectSource changes the "from" currency
func (f *Form) SelectSource(c converter.Currency) {
	f.state.Source = c
	f.recompute()
}

// SelectDestination changes the "to" currency
func (f *Form) SelectDestination(c converter.Currency) {
	f.state.Destination = c
	f.recompute()
}

// Swap exchanges currencies and amounts without recomputing
func (f *Form) Swap() {
	f.state = Swap(f.state)
}

// Summary the result line, present only once at least one whole unit is entered
func (f *Form) Summary() (string, bool) {
	if ParseAmount(f.state.AmountFrom).IntPart() <= 0 {
		return "", false
	}
	return fmt.Sprintf("%s %s = %s %s",
		f.state.AmountFrom, f.state.Source, f.state.AmountTo, f.state.Destination), true
}

func (f *Form) recompute() {
	// Driving is always Source or Destination here, so there is no error to report.
	f.state, _, _ = Recompute(f.rates, f.state)
}
