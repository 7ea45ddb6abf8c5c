package convert

import (
	"context"
	"go-currency-converter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// instrumentingService counts conversions by outcome
type instrumentingService struct {
	conversions *prometheus.CounterVec
	next        Service
}

// NewInstrumentingService registers the conversion counter on reg and
// decorates s with it
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	return &instrumentingService{
		conversions: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "converter_conversions_total",
				Help: "Conversions by driving side and result",
			},
			[]string{"driving", "result"},
		),
		next: s,
	}
}

func (s *instrumentingService) Convert(ctx context.Context, st State) (res Result, err error) {
	defer func() {
		result := "converted"
		switch {
		case err != nil:
			result = "error"
		case !res.Converted:
			result = "skipped"
		case ParseAmount(st.Input()).IsZero():
			result = "zero"
		}
		s.conversions.WithLabelValues(st.Driving.String(), result).Inc()
	}()
	return s.next.Convert(ctx, st)
}

func (s *instrumentingService) Swap(ctx context.Context, st State) (State, error) {
	return s.next.Swap(ctx, st)
}

func (s *instrumentingService) Currencies(ctx context.Context) ([]converter.Currency, error) {
	return s.next.Currencies(ctx)
}
