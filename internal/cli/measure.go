package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santiagohigareda/photoprotection/internal/ingest"
	"github.com/santiagohigareda/photoprotection/measure/cw"
	"github.com/santiagohigareda/photoprotection/measure/spf"
	"github.com/santiagohigareda/photoprotection/measure/uvapf"
	"github.com/santiagohigareda/photoprotection/spectral"
)

func newISPFCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "ispf",
		Short: "Unadjusted in-vitro SPF of each spectrum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.readTable(cmd, input)
			if err != nil {
				return err
			}
			calc, err := a.calculator()
			if err != nil {
				return err
			}
			values, err := calc.Initial(t.Batch)
			if err != nil {
				return err
			}

			rep := newReport(cmd.Name(), a.cfg.Method, colName, colSPF)
			for i, v := range values {
				rep.add(t.Names[i], v)
			}
			return rep.render(cmd.OutOrStdout(), a.cfg.Output)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "absorbance table (CSV, - for stdin)")
	return cmd
}

func newAdjSPFCmd(a *app) *cobra.Command {
	var input, modeName, values, batch, search string
	cmd := &cobra.Command{
		Use:   "adjspf",
		Short: "Determine the adjustment coefficient C and/or the adjusted SPF",
		Long: `Modes:
  calc  find C for each labelled SPF given in --values
  adj   compute the adjusted SPF with the coefficients given in --values
  all   find C, then compute the adjusted SPF with it`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := spf.ParseMode(modeName)
			if err != nil {
				return err
			}
			flag, err := spectral.ParseBatchFlag(batch)
			if err != nil {
				return err
			}
			vals, err := ingest.ParseValues(values)
			if err != nil {
				return err
			}
			var extra []spf.Option
			if search != "" {
				raw, err := ingest.ParseValues(search)
				if err != nil {
					return err
				}
				p, err := spf.ParseSearchParams(raw)
				if err != nil {
					return err
				}
				extra = append(extra, spf.WithSearchParams(p))
			}

			t, err := a.readTable(cmd, input)
			if err != nil {
				return err
			}
			calc, err := a.calculator(extra...)
			if err != nil {
				return err
			}
			adj, err := calc.Adjust(t.Batch, mode, vals, flag)
			if err != nil {
				return err
			}

			var rep *report
			switch mode {
			case spf.ModeDetermine:
				rep = newReport(cmd.Name(), a.cfg.Method, colName, colC)
				for i, c := range adj.Coefficients {
					rep.add(t.Names[i], c)
				}
			case spf.ModeApply:
				rep = newReport(cmd.Name(), a.cfg.Method, colName, colAdjSPF)
				for i, v := range adj.SPF {
					rep.add(t.Names[i], v)
				}
			default:
				rep = newReport(cmd.Name(), a.cfg.Method, colName, colC, colAdjSPF)
				for i := range adj.SPF {
					rep.add(t.Names[i], adj.Coefficients[i], adj.SPF[i])
				}
			}
			return rep.render(cmd.OutOrStdout(), a.cfg.Output)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "absorbance table (CSV, - for stdin)")
	f.StringVar(&modeName, "mode", "all", "calc, adj or all")
	f.StringVar(&values, "values", "", "comma-separated labelled SPFs (calc, all) or coefficients (adj)")
	f.StringVar(&batch, "batch", "", "true applies a single value to every spectrum, false requires one value per spectrum")
	f.StringVar(&search, "search", "", "coefficient search as step,max_iterations (overrides the configuration)")
	return cmd
}

func newUVAPFCmd(a *app) *cobra.Command {
	var input, coefficients, batch string
	cmd := &cobra.Command{
		Use:   "uvapf",
		Short: "UVA protection factor with given adjustment coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flag, err := spectral.ParseBatchFlag(batch)
			if err != nil {
				return err
			}
			coeffs, err := ingest.ParseValues(coefficients)
			if err != nil {
				return err
			}
			t, err := a.readTable(cmd, input)
			if err != nil {
				return err
			}
			calc, err := a.uvapfCalculator()
			if err != nil {
				return err
			}
			values, err := calc.Compute(t.Batch, coeffs, flag)
			if err != nil {
				return err
			}

			rep := newReport(cmd.Name(), a.cfg.Method, colName, colUVAPF)
			for i, v := range values {
				rep.add(t.Names[i], v)
			}
			return rep.render(cmd.OutOrStdout(), a.cfg.Output)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "absorbance table (CSV, - for stdin)")
	f.StringVar(&coefficients, "coefficients", "", "comma-separated adjustment coefficients C")
	f.StringVar(&batch, "batch", "", "true applies a single coefficient to every spectrum")
	return cmd
}

func newDoseCmd(a *app) *cobra.Command {
	var values string
	cmd := &cobra.Command{
		Use:   "dose",
		Short: "UV exposure dose from initial UVA-PF values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pf0, err := ingest.ParseValues(values)
			if err != nil {
				return err
			}
			if len(pf0) == 0 {
				return fmt.Errorf("%w: no UVA-PF0 values", spectral.ErrInsufficientValues)
			}
			doses := uvapf.Dose(pf0)

			rep := newReport(cmd.Name(), "", colUVAPF0, colDose)
			for i, d := range doses {
				rep.add(pf0[i], d)
			}
			return rep.render(cmd.OutOrStdout(), a.cfg.Output)
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "comma-separated UVA-PF0 values")
	return cmd
}

func newCWCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "cw",
		Short: "Critical wavelength of each spectrum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.readTable(cmd, input)
			if err != nil {
				return err
			}
			m, err := a.method()
			if err != nil {
				return err
			}
			wavelengths, err := cw.Compute(t.Batch, m)
			if err != nil {
				return err
			}

			rep := newReport(cmd.Name(), a.cfg.Method, colName, colCW)
			for i, wl := range wavelengths {
				rep.add(t.Names[i], wl)
			}
			return rep.render(cmd.OutOrStdout(), a.cfg.Output)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "absorbance table over 290-400 nm (CSV, - for stdin)")
	return cmd
}
