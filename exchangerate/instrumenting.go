package exchangerate

import (
	"context"
	"go-currency-converter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics collectors for the rates fetch
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	Currencies      prometheus.Gauge
}

// NewMetrics registers the rates collectors on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchangerate_requests_total",
				Help: "Requests made to the exchange rate API by result",
			},
			[]string{"result"},
		),
		RequestDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "exchangerate_request_duration_seconds",
				Help:    "Duration of requests to the exchange rate API",
				Buckets: prometheus.DefBuckets,
			},
		),
		Currencies: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "exchangerate_currencies",
				Help: "Number of currencies in the loaded rate table",
			},
		),
	}
}

// instrumentingService decorates an exchangerate.Service with metrics
type instrumentingService struct {
	next    Service
	metrics *Metrics
}

// NewInstrumentingService returns a new instrumenting Service
func NewInstrumentingService(metrics *Metrics, s Service) Service {
	return &instrumentingService{
		next:    s,
		metrics: metrics,
	}
}

func (s *instrumentingService) LatestRates(ctx context.Context, base converter.Currency) (rates converter.Rates, err error) {
	defer func(begin time.Time) {
		result := "ok"
		if err != nil {
			result = "error"
		}
		s.metrics.RequestsTotal.WithLabelValues(result).Inc()
		s.metrics.RequestDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())
	return s.next.LatestRates(ctx, base)
}
