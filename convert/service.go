package convert

import (
	"context"
	"fmt"
	"go-currency-converter"

	"github.com/shopspring/decimal"
)

// RateSource supplies the current rate table. Implementations must be
// concurrency-safe and must not mutate a table once returned.
type RateSource interface {
	Rates() converter.Rates
}

// Result a recomputed state
type Result struct {
	State State
	// Converted false when the conversion was skipped for a missing rate
	Converted bool
	// Rate the cross rate used, zero when not known
	Rate decimal.Decimal
}

// Service interface for recomputing conversion forms
type Service interface {
	Convert(ctx context.Context, s State) (Result, error)
	Swap(ctx context.Context, s State) (State, error)
	Currencies(ctx context.Context) ([]converter.Currency, error)
}

// service recomputes forms against a shared rate table
type service struct {
	// rates source of the rate table
	rates RateSource
}

// NewService constructs a valid Service
func NewService(rates RateSource) Service {
	return &service{
		rates: rates,
	}
}

// Convert recomputes the non-driving amount of s with the current rates.
func (s *service) Convert(_ context.Context, st State) (Result, error) {
	rates := s.rates.Rates()
	next, ok, err := Recompute(rates, st)
	if err != nil {
		return Result{State: st}, fmt.Errorf("convert [%v -> %v]: %w", st.Source, st.Destination, err)
	}
	rate, _ := CrossRate(rates, st.Source, st.Destination)
	return Result{
		State:     next,
		Converted: ok,
		Rate:      rate,
	}, nil
}

// Swap exchanges the pair and the amounts of s
func (s *service) Swap(_ context.Context, st State) (State, error) {
	return Swap(st), nil
}

// Currencies the known codes in ascending order, empty until rates are loaded
func (s *service) Currencies(_ context.Context) ([]converter.Currency, error) {
	return s.rates.Rates().Currencies(), nil
}
