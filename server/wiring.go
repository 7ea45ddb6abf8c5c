package main

import (
	"fmt"
	"go-currency-converter/config"
	"go-currency-converter/exchangerate"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
)

// newLogger a logfmt logger filtered at lvl: debug, info, warn, error or none
func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var allow level.Option
	squelch := false
	switch strings.ToLower(lvl) {
	case "debug":
		allow = level.AllowDebug()
	case "", "info":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	case "none":
		allow = level.AllowNone()
		squelch = true
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return level.NewFilter(logger, allow, level.SquelchNoLevel(squelch)), nil
}

// setup loads the configuration and the logger every command starts from
func setup(opts *options, w io.Writer) (*config.Config, log.Logger, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot load a config: %w", err)
	}
	logger, err := newLogger(w, cfg.Logger.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot build logger: %w", err)
	}
	return cfg, logger, nil
}

// newProvider the rate provider with logging and metrics around the REST client
func newProvider(cfg *config.Config, logger log.Logger, reg prometheus.Registerer) *exchangerate.Provider {
	metrics := exchangerate.NewMetrics(reg)

	ratesService := exchangerate.NewService(cfg.Rates.URL, log.With(logger, "component", "exchangerate_rest"))
	ratesService = exchangerate.NewLoggingService(log.With(logger, "component", "exchangerate_rest"), ratesService)
	ratesService = exchangerate.NewInstrumentingService(metrics, ratesService)

	return exchangerate.NewProvider(cfg.Rates.Base, log.With(logger, "component", "exchangerate_provider"), ratesService).
		WithMetrics(metrics)
}
