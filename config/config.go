package config

import (
	"errors"
	"fmt"
	"go-currency-converter"
	httpapi "go-currency-converter/http"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefix of every environment variable read, e.g. CONVERTER_HTTP_ADDRESS
const EnvPrefix = "CONVERTER"

// RatesConfig where the rate table is fetched from
type RatesConfig struct {
	URL  string             `mapstructure:"url"`
	Base converter.Currency `mapstructure:"base"`
}

// DefaultsConfig the currency pair a new form starts on
type DefaultsConfig struct {
	Source      converter.Currency `mapstructure:"source"`
	Destination converter.Currency `mapstructure:"destination"`
}

// LoggerConfig logging options
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// Config the converter configuration
type Config struct {
	HTTP     httpapi.Config `mapstructure:"http"`
	Rates    RatesConfig    `mapstructure:"rates"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

var currencyCode = regexp.MustCompile(`^[A-Z]{3}$`)

// ErrInvalid the configuration failed validation
var ErrInvalid = errors.New("invalid configuration")

// Load reads the optional TOML file cfgFile, then environment variables,
// which take precedence, on top of the defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.address", ":8080")
	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("rates.url", "https://api.exchangerate-api.com/v4/latest")
	v.SetDefault("rates.base", "USD")
	v.SetDefault("defaults.source", "USD")
	v.SetDefault("defaults.destination", "PKR")
	v.SetDefault("logger.level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file [%v]: %w", cfgFile, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	config.Rates.Base = normalize(config.Rates.Base)
	config.Defaults.Source = normalize(config.Defaults.Source)
	config.Defaults.Destination = normalize(config.Defaults.Destination)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the values Load cannot default
func (c *Config) Validate() error {
	if c.Rates.URL == "" {
		return fmt.Errorf("%w: rates.url is empty", ErrInvalid)
	}
	for key, code := range map[string]converter.Currency{
		"rates.base":           c.Rates.Base,
		"defaults.source":      c.Defaults.Source,
		"defaults.destination": c.Defaults.Destination,
	} {
		if !currencyCode.MatchString(string(code)) {
			return fmt.Errorf("%w: %v=%q is not a currency code", ErrInvalid, key, code)
		}
	}
	return nil
}

func normalize(c converter.Currency) converter.Currency {
	return converter.Currency(strings.ToUpper(strings.TrimSpace(string(c))))
}
