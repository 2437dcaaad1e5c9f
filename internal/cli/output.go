package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/oklog/ulid/v2"

	"github.com/santiagohigareda/photoprotection/internal/config"
	"github.com/santiagohigareda/photoprotection/measure/protocol"
)

type column struct {
	key    string
	title  string
	format string
}

var (
	colName   = column{"name", "Sample", "%s"}
	colSPF    = column{"spf", "SPF", "%.2f"}
	colC      = column{"coefficient", "C", "%.5f"}
	colAdjSPF = column{"adjusted_spf", "Adjusted SPF", "%.2f"}
	colUVAPF0 = column{"uvapf0", "UVA-PF0", "%.2f"}
	colUVAPF  = column{"uvapf", "UVA-PF", "%.2f"}
	colDose   = column{"dose", "Dose [J/cm2]", "%.2f"}
	colCW     = column{"critical_wavelength", "CW [nm]", "%d"}
)

// summaryRow is one metric of a protocol summary.
type summaryRow struct {
	Metric string  `json:"metric"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	CV     float64 `json:"cv"`
}

// report is the result of one command, rendered as a table or JSON.
type report struct {
	RunID   string           `json:"run_id"`
	Command string           `json:"command"`
	Method  string           `json:"method,omitempty"`
	Rows    []map[string]any `json:"rows"`
	Summary []summaryRow     `json:"summary,omitempty"`

	columns []column
}

func newReport(command, method string, columns ...column) *report {
	return &report{
		RunID:   ulid.Make().String(),
		Command: command,
		Method:  method,
		Rows:    []map[string]any{},
		columns: columns,
	}
}

// add appends a row. values follow the column order.
func (r *report) add(values ...any) {
	row := make(map[string]any, len(r.columns))
	for i, c := range r.columns {
		if i < len(values) {
			row[c.key] = values[i]
		}
	}
	r.Rows = append(r.Rows, row)
}

func (r *report) summarize(metric string, st protocol.Stats) {
	r.Summary = append(r.Summary, summaryRow{Metric: metric, Mean: st.Mean, StdDev: st.StdDev, CV: st.CV})
}

func (r *report) render(w io.Writer, format string) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return r.renderTable(w)
}

func (r *report) renderTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, c := range r.columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c.title)
	}
	fmt.Fprintln(tw)
	for _, row := range r.Rows {
		for i, c := range r.columns {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			if v, ok := row[c.key]; ok {
				fmt.Fprintf(tw, c.format, v)
			} else {
				fmt.Fprint(tw, "-")
			}
		}
		fmt.Fprintln(tw)
	}

	if len(r.Summary) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "Metric\tMean\tSD\tCV [%]")
		for _, s := range r.Summary {
			fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.2f\n", s.Metric, s.Mean, s.StdDev, 100*s.CV)
		}
	}
	return tw.Flush()
}
