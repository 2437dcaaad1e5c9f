package spf

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

// Config defines how a [Calculator] integrates and searches.
type Config struct {
	Method  integrate.Method
	Search  SearchParams
	Workers int
	Logger  zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the trapezoid rule, the default search parameters,
// one worker per CPU and a disabled logger.
func DefaultConfig() Config {
	return Config{
		Method:  integrate.Trapezoid,
		Search:  DefaultSearchParams(),
		Workers: runtime.NumCPU(),
		Logger:  zerolog.Nop(),
	}
}

// WithMethod sets the integration rule.
func WithMethod(m integrate.Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithSearchParams sets the search step and iteration budget.
func WithSearchParams(p SearchParams) Option {
	return func(cfg *Config) {
		cfg.Search = p
	}
}

// WithWorkers bounds the number of concurrent searches.
func WithWorkers(workers int) Option {
	return func(cfg *Config) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithLogger sets the logger used for search diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate rejects unknown methods and incomplete search parameters.
func (c Config) Validate() error {
	if !c.Method.Valid() {
		return fmt.Errorf("%w: %v", integrate.ErrMethod, c.Method)
	}
	return c.Search.Validate()
}
