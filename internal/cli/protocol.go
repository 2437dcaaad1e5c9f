package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/santiagohigareda/photoprotection/internal/ingest"
	"github.com/santiagohigareda/photoprotection/measure/protocol"
	"github.com/santiagohigareda/photoprotection/measure/spf"
	"github.com/santiagohigareda/photoprotection/spectral"
)

func newProtocolCmd(a *app) *cobra.Command {
	var pre, post, targets, batch string
	cmd := &cobra.Command{
		Use:   "protocol",
		Short: "Run the in-vitro UVA-PF protocol on pre- and post-exposure spectra",
		Long: `Determines C from the pre-exposure spectra and the labelled SPF, then
reports the adjusted SPF, UVA-PF0 and exposure dose per plate. With
--post the final UVA-PF is computed from the post-exposure spectra and
the critical wavelength is taken from them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flag, err := spectral.ParseBatchFlag(batch)
			if err != nil {
				return err
			}
			spfs, err := ingest.ParseValues(targets)
			if err != nil {
				return err
			}

			preTable, err := a.readTable(cmd, pre)
			if err != nil {
				return err
			}
			in := protocol.Input{Pre: preTable.Batch, Targets: spfs, Batch: flag}
			if post != "" {
				postTable, err := a.readTable(cmd, post)
				if err != nil {
					return err
				}
				in.Post = postTable.Batch
			}

			opts, err := a.cfg.Options()
			if err != nil {
				return err
			}
			opts = append(opts, spf.WithLogger(a.logger))
			res, err := protocol.Run(in, opts...)
			if err != nil {
				return fmt.Errorf("protocol: %w", err)
			}
			return protocolReport(cmd.Name(), a.cfg.Method, preTable.Names, res).
				render(cmd.OutOrStdout(), a.cfg.Output)
		},
	}
	f := cmd.Flags()
	f.StringVar(&pre, "pre", "", "absorbance table before UV exposure (CSV, - for stdin)")
	f.StringVar(&post, "post", "", "absorbance table after UV exposure (CSV)")
	f.StringVar(&targets, "spf", "", "comma-separated labelled SPF values")
	f.StringVar(&batch, "batch", "", "true applies a single labelled SPF to every plate")
	return cmd
}

func protocolReport(command, method string, names []string, res protocol.Report) *report {
	cols := []column{colName, colC, colSPF, colAdjSPF, colUVAPF0, colDose}
	if res.Exposed {
		cols = append(cols, colUVAPF)
	}
	cols = append(cols, colCW)

	rep := newReport(command, method, cols...)
	for _, s := range res.Samples {
		values := []any{names[s.Index], s.Coefficient, s.InitialSPF, s.AdjustedSPF, s.UVAPF0, s.Dose}
		if res.Exposed {
			values = append(values, s.UVAPF)
		}
		values = append(values, s.CriticalWavelength)
		rep.add(values...)
	}

	sum := res.Summary
	rep.summarize(colC.title, sum.Coefficient)
	rep.summarize(colSPF.title, sum.InitialSPF)
	rep.summarize(colAdjSPF.title, sum.AdjustedSPF)
	rep.summarize(colUVAPF0.title, sum.UVAPF0)
	rep.summarize(colDose.title, sum.Dose)
	if res.Exposed {
		rep.summarize(colUVAPF.title, sum.UVAPF)
	}
	rep.summarize(colCW.title, sum.CriticalWavelength)
	return rep
}
