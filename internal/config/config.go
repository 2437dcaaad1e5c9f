// Package config holds the photoprot command configuration and logger setup.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/santiagohigareda/photoprotection/measure/spf"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Log formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalid is returned by [Config.Validate].
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the YAML configuration of the command.
type Config struct {
	Method  string        `yaml:"method"`
	Search  SearchConfig  `yaml:"search"`
	Workers int           `yaml:"workers"`
	Logging LoggingConfig `yaml:"logging"`
	Output  string        `yaml:"output"`
}

// SearchConfig mirrors [spf.SearchParams].
type SearchConfig struct {
	Step          float64 `yaml:"step"`
	MaxIterations int     `yaml:"max_iterations"`
}

// LoggingConfig selects the log level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := spf.DefaultSearchParams()
	return Config{
		Method:  integrate.Trapezoid.String(),
		Search:  SearchConfig{Step: p.Step, MaxIterations: p.MaxIterations},
		Logging: LoggingConfig{Level: "info", Format: FormatAuto},
		Output:  OutputTable,
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults. Keys missing from the file keep their default values, except
// that search.step and search.max_iterations must be given together.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := checkSearchKeys(data); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// checkSearchKeys rejects a search section that sets only one of its keys.
func checkSearchKeys(data []byte) error {
	var present struct {
		Search struct {
			Step          *float64 `yaml:"step"`
			MaxIterations *int     `yaml:"max_iterations"`
		} `yaml:"search"`
	}
	if err := yaml.Unmarshal(data, &present); err != nil {
		return err
	}
	if (present.Search.Step == nil) != (present.Search.MaxIterations == nil) {
		return fmt.Errorf("%w: search.step and search.max_iterations must be set together", spf.ErrSearchParams)
	}
	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := integrate.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.SearchParams(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalid, c.Output)
	}
	switch c.Logging.Format {
	case "", FormatAuto, FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// SearchParams returns the validated coefficient search parameters.
func (c Config) SearchParams() (spf.SearchParams, error) {
	return spf.NewSearchParams(c.Search.Step, c.Search.MaxIterations)
}

// EffectiveWorkers resolves 0 to the number of CPUs.
func (c Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Options converts the configuration into calculator options.
func (c Config) Options() ([]spf.Option, error) {
	m, err := integrate.ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	p, err := c.SearchParams()
	if err != nil {
		return nil, err
	}
	return []spf.Option{
		spf.WithMethod(m),
		spf.WithSearchParams(p),
		spf.WithWorkers(c.EffectiveWorkers()),
	}, nil
}
