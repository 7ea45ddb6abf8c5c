package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter"
	"io"
	"net/http"
	"strings"
	"time"
)

const ApiUrlBase = "https://api.exchangerate-api.com/v4/latest"

var (
	// ErrUnexpectedStatus the rates API answered with something other than 200
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrNoRates the response carried no positive rate at all
	ErrNoRates = errors.New("no rates in response")
)

// Service wraps the exchangerate-api REST API
type Service interface {
	LatestRates(ctx context.Context, base converter.Currency) (converter.Rates, error)
}

// service exchangerate-api client
type service struct {
	// url base API url, the base currency is appended as the last path segment
	url string

	// logger for skipped rates
	logger log.Logger

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid exchangerate Service.
// An empty url selects ApiUrlBase.
func NewService(url string, logger log.Logger) Service {
	if url == "" {
		url = ApiUrlBase
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &service{
		url:    strings.TrimSuffix(url, "/"),
		logger: logger,
		client: http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// LatestRates loads the latest rates of every known currency against base.
func (s *service) LatestRates(ctx context.Context, base converter.Currency) (converter.Rates, error) {
	type Response struct {
		Base  string
		Rates map[string]float64 // maps currency codes to rates
	}

	url := fmt.Sprintf("%v/%v", s.url, base)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http get [%v]: %w: %d", base, ErrUnexpectedStatus, httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	var response Response
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}

	rates := make(converter.Rates, len(response.Rates))
	for k, v := range response.Rates {
		if v <= 0 {
			// the currency stays unknown, every other pair still converts
			level.Warn(s.logger).Log("msg", "skipping bad rate", "base", base, "currency", k, "rate", v)
			continue
		}
		rates[converter.Currency(k)] = converter.Rate(v)
	}

	if len(rates) == 0 {
		return nil, fmt.Errorf("decoding json [%v]: %w", base, ErrNoRates)
	}

	return rates, nil
}
