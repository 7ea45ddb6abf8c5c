package exchangerate

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter"
	"sync"
)

// Provider holds the rate table of a session. The table starts empty and is
// replaced only by a successful Load; a failed Load leaves it untouched.
// Provider is concurrency safe.
type Provider struct {
	// next the service the table is fetched from
	next Service

	// base currency every rate is expressed against
	base converter.Currency

	// rates the current table, never mutated once stored
	rates converter.Rates

	// lock synchronizes access to rates
	lock sync.RWMutex

	// metrics optional, may be nil
	metrics *Metrics

	logger log.Logger
}

// NewProvider returns an empty Provider fetching from s
func NewProvider(base converter.Currency, logger log.Logger, s Service) *Provider {
	return &Provider{
		next:   s,
		base:   base,
		rates:  converter.Rates{},
		logger: logger,
	}
}

// WithMetrics reports the size of the loaded table to m
func (p *Provider) WithMetrics(m *Metrics) *Provider {
	p.metrics = m
	return p
}

// Load fetches the rate table once. Errors are logged and returned; the
// previously held table is kept.
func (p *Provider) Load(ctx context.Context) (converter.Rates, error) {
	rates, err := p.next.LatestRates(ctx, p.base)
	if err != nil {
		level.Error(p.logger).Log("msg", "fetching exchange rates failed", "base", p.base, "err", err)
		return p.Rates(), fmt.Errorf("load [%v]: %w", p.base, err)
	}

	p.lock.Lock()
	p.rates = rates
	p.lock.Unlock()

	if p.metrics != nil {
		p.metrics.Currencies.Set(float64(len(rates)))
	}
	level.Info(p.logger).Log("msg", "exchange rates loaded", "base", p.base, "currencies", len(rates))
	return rates, nil
}

// Rates returns the current table, empty until a Load succeeds
func (p *Provider) Rates() converter.Rates {
	p.lock.RLock()
	defer p.lock.RUnlock()
	return p.rates
}

// Loaded reports whether a Load has succeeded
func (p *Provider) Loaded() bool {
	return len(p.Rates()) > 0
}

// Base the currency the table is expressed against
func (p *Provider) Base() converter.Currency {
	return p.base
}
