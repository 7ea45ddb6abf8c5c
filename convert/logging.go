package convert

import (
	"context"
	"github.com/go-kit/log"
	"go-currency-converter"
	"time"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, st State) (res Result, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"from", st.Source,
			"to", st.Destination,
			"driving", st.Driving,
			"amount", st.Input(),
			"rate", res.Rate,
			"amount_from", res.State.AmountFrom,
			"amount_to", res.State.AmountTo,
			"converted", res.Converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, st)
}

func (s *loggingService) Swap(ctx context.Context, st State) (swapped State, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "swap",
			"from", st.Source,
			"to", st.Destination,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Swap(ctx, st)
}

func (s *loggingService) Currencies(ctx context.Context) (codes []converter.Currency, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "currencies",
			"count", len(codes),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Currencies(ctx)
}
