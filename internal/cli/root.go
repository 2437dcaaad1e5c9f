// Package cli implements the photoprot command tree.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/santiagohigareda/photoprotection/internal/config"
	"github.com/santiagohigareda/photoprotection/internal/ingest"
	"github.com/santiagohigareda/photoprotection/measure/spf"
	"github.com/santiagohigareda/photoprotection/measure/uvapf"
	"github.com/santiagohigareda/photoprotection/spectral/integrate"
)

// app carries the resolved configuration and logger to the subcommands.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
}

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(version string) *cobra.Command {
	a := &app{cfg: config.Default(), logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "photoprot",
		Short:         "Sunscreen photoprotection metrics from absorbance spectra",
		Long:          "photoprot computes in-vitro SPF, the adjustment coefficient C, UVA-PF, the UV exposure dose and the critical wavelength from absorbance spectra.",
		Version:       version,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "YAML configuration file")
	pf.Bool("debug", false, "enable debug logging")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.StringP("output", "o", "", "output format (table, json)")
	pf.Int("workers", 0, "parallel coefficient searches (0 = number of CPUs)")
	pf.String("method", "", "integration rule (trapezoid, simpson)")

	cmd.AddCommand(
		newISPFCmd(a),
		newAdjSPFCmd(a),
		newUVAPFCmd(a),
		newDoseCmd(a),
		newCWCmd(a),
		newProtocolCmd(a),
		newTablesCmd(a),
	)
	return cmd
}

const rootCmdExample = `  # Unadjusted SPF of every column in a plate export
  photoprot ispf --input plates.csv

  # Find C for a labelled SPF of 30 and apply it
  photoprot adjspf --input plates.csv --values 30 --batch true

  # UVA-PF0 with the coefficients found above
  photoprot uvapf --input plates.csv --coefficients 1.21,1.18

  # Full protocol with post-exposure spectra, as JSON
  photoprot protocol --pre pre.csv --post post.csv --spf 30 -o json`

// setup loads the configuration file, applies flag overrides and builds the
// logger. Flags win over the file.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("method") {
		cfg.Method, _ = flags.GetString("method")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if debug, _ := flags.GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = config.FormatConsole
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = config.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()).
		With().Str("command", cmd.Name()).Logger()
	a.logger.Debug().
		Str("method", cfg.Method).
		Int("workers", cfg.EffectiveWorkers()).
		Float64("step", cfg.Search.Step).
		Int("max_iterations", cfg.Search.MaxIterations).
		Msg("configuration resolved")
	return nil
}

// calculator builds an SPF calculator from the configuration plus extra
// options.
func (a *app) calculator(extra ...spf.Option) (*spf.Calculator, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts, spf.WithLogger(a.logger))
	opts = append(opts, extra...)
	return spf.New(opts...)
}

// readTable reads a CSV table from path, or from the command input when
// path is "-".
func (a *app) readTable(cmd *cobra.Command, path string) (ingest.Table, error) {
	if path == "" {
		return ingest.Table{}, fmt.Errorf("an input table is required")
	}
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return ingest.Table{}, err
		}
		defer f.Close()
		r = f
	}
	t, err := ingest.ReadCSV(r)
	if err != nil {
		return ingest.Table{}, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug().
		Str("path", path).
		Int("samples", len(t.Batch)).
		Int("wavelengths", len(t.Batch[0])).
		Msg("table loaded")
	return t, nil
}

func (a *app) method() (integrate.Method, error) {
	return integrate.ParseMethod(a.cfg.Method)
}

func (a *app) uvapfCalculator() (*uvapf.Calculator, error) {
	m, err := a.method()
	if err != nil {
		return nil, err
	}
	calc, err := uvapf.New(m)
	if err != nil {
		return nil, err
	}
	return calc.WithLogger(a.logger), nil
}
