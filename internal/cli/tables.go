package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/santiagohigareda/photoprotection/spectral/integrate"
	"github.com/santiagohigareda/photoprotection/spectral/reference"
)

func newTablesCmd(a *app) *cobra.Command {
	var list, values bool
	cmd := &cobra.Command{
		Use:   "tables [name ...]",
		Short: "Print properties of the built-in reference spectra",
		Long: `Without arguments every reference table is summarized.
Names: erythema, ppd, ssr (standard sun spectrum), uva (UVA source).`,
		Example: `  photoprot tables
  photoprot tables --list
  photoprot tables --values erythema`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, t := range reference.Tables() {
					fmt.Fprintln(out, t.Name())
				}
				return nil
			}

			tables, err := resolveTables(args)
			if err != nil {
				return err
			}
			if values {
				return printValues(out, tables)
			}
			m, err := a.method()
			if err != nil {
				return err
			}
			return printTableInfo(out, tables, m)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list table names")
	cmd.Flags().BoolVar(&values, "values", false, "print the value at every wavelength")
	return cmd
}

func resolveTables(names []string) ([]reference.Table, error) {
	if len(names) == 0 {
		return reference.Tables(), nil
	}
	out := make([]reference.Table, 0, len(names))
	for _, name := range names {
		t, err := reference.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w (use --list to see available)", err)
		}
		out = append(out, t)
	}
	return out, nil
}

func printTableInfo(w io.Writer, tables []reference.Table, m integrate.Method) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Table\tBand\tSamples\tMin\tMax\tPeak [nm]\tIntegral")
	fmt.Fprintln(tw, "-----\t----\t-------\t---\t---\t---------\t--------")
	for _, t := range tables {
		v := t.Values()
		area, err := integrate.Integrate(v, t.Band().Wavelengths(), m)
		if err != nil {
			return fmt.Errorf("%s: %w", t.Name(), err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.4g\t%.4g\t%d\t%.6g\n",
			t.Name(),
			t.Band(),
			t.Len(),
			floats.Min(v),
			floats.Max(v),
			t.Band().Start+floats.MaxIdx(v),
			area,
		)
	}
	return tw.Flush()
}

func printValues(w io.Writer, tables []reference.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, t := range tables {
		fmt.Fprintf(tw, "# %s %s\n", t.Name(), t.Band())
		for wl := t.Band().Start; wl <= t.Band().End; wl++ {
			v, _ := t.At(wl)
			fmt.Fprintf(tw, "%d\t%.6g\n", wl, v)
		}
	}
	return tw.Flush()
}
