package http

import (
	"encoding/json"
	"go-currency-converter"
	"go-currency-converter/convert"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Config for the HTTP server
type Config struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server dependencies for HTTP Server functions
type Server struct {
	Service  convert.Service
	Gatherer prometheus.Gatherer
	Logger   log.Logger

	origins  []string
	router   chi.Router
	validate *validator.Validate
}

// NewServer routes the API of s. A nil gatherer serves the default registry.
func NewServer(s convert.Service, gatherer prometheus.Gatherer, logger log.Logger, origins ...string) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	server := &Server{
		Service:  s,
		Gatherer: gatherer,
		Logger:   logger,
		origins:  origins,
		router:   chi.NewRouter(),
		validate: validator.New(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.convert())
		r.Post("/swap", s.swap())
		r.Get("/currencies", s.currencies())
	})
	s.router.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// form the JSON shape of a conversion form, as posted by clients
type form struct {
	Source      converter.Currency `json:"source" validate:"required,len=3,alpha"`
	Destination converter.Currency `json:"destination" validate:"required,len=3,alpha"`
	AmountFrom  string             `json:"amountFrom" validate:"max=64"`
	AmountTo    string             `json:"amountTo" validate:"max=64"`
	Driving     string             `json:"driving" validate:"omitempty,oneof=source destination"`
}

func (f form) state() convert.State {
	// validated by oneof, so the side parses
	driving, _ := convert.ParseSide(f.Driving)
	return convert.State{
		Source:      upper(f.Source),
		Destination: upper(f.Destination),
		AmountFrom:  f.AmountFrom,
		AmountTo:    f.AmountTo,
		Driving:     driving,
	}
}

// upper rate tables key currencies by upper-case code
func upper(c converter.Currency) converter.Currency {
	return converter.Currency(strings.ToUpper(string(c)))
}

func fromState(st convert.State) form {
	return form{
		Source:      st.Source,
		Destination: st.Destination,
		AmountFrom:  st.AmountFrom,
		AmountTo:    st.AmountTo,
		Driving:     st.Driving.String(),
	}
}

// decode reads and validates a posted form, answering 400 itself on failure
func (s *Server) decode(rw http.ResponseWriter, r *http.Request) (form, bool) {
	defer r.Body.Close()

	var request form
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		s.fail(rw, http.StatusBadRequest, "invalid json")
		return form{}, false
	}

	err = s.validate.Struct(request)
	if err != nil {
		level.Debug(s.Logger).Log("msg", "rejected form", "err", err)
		s.fail(rw, http.StatusBadRequest, "invalid request")
		return form{}, false
	}
	return request, true
}

// convert produces HTTP handler for recomputing a conversion form
func (s *Server) convert() http.HandlerFunc {

	// response for marshalling JSON responses to return to clients
	type response struct {
		form
		Converted bool   `json:"converted"`
		Rate      string `json:"rate"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		request, ok := s.decode(rw, r)
		if !ok {
			return
		}

		result, err := s.Service.Convert(r.Context(), request.state())
		if err != nil {
			s.fail(rw, http.StatusBadRequest, "failed conversion")
			return
		}

		rate := ""
		if result.Converted && !result.Rate.IsZero() {
			rate = result.Rate.String()
		}
		s.encode(rw, response{
			form:      fromState(result.State),
			Converted: result.Converted,
			Rate:      rate,
		})
	}
}

// swap produces HTTP handler exchanging the pair of a conversion form
func (s *Server) swap() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		request, ok := s.decode(rw, r)
		if !ok {
			return
		}

		swapped, err := s.Service.Swap(r.Context(), request.state())
		if err != nil {
			s.fail(rw, http.StatusBadRequest, "failed swap")
			return
		}
		s.encode(rw, fromState(swapped))
	}
}

// currencies produces HTTP handler listing the selectable currencies
func (s *Server) currencies() http.HandlerFunc {

	type currency struct {
		Code converter.Currency `json:"code"`
		Flag string             `json:"flag"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		codes, err := s.Service.Currencies(r.Context())
		if err != nil {
			s.fail(rw, http.StatusInternalServerError, "failed listing currencies")
			return
		}

		response := make([]currency, 0, len(codes))
		for _, c := range codes {
			response = append(response, currency{Code: c, Flag: converter.FlagURL(c)})
		}
		s.encode(rw, response)
	}
}

func (s *Server) encode(rw http.ResponseWriter, v interface{}) {
	bytes, err := json.Marshal(v)
	if err != nil {
		level.Error(s.Logger).Log("msg", "encoding response", "err", err)
		s.fail(rw, http.StatusInternalServerError, "failed json encoding")
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	_, _ = rw.Write(append(bytes, '\n'))
}

func (s *Server) fail(rw http.ResponseWriter, status int, msg string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": msg})
}
