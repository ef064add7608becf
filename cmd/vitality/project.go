package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lg/vitality-twin-api/vitality"
)

// projectReport is what `vitality project` prints.
type projectReport struct {
	BiologicalAge float64                 `json:"biologicalAge" yaml:"biologicalAge"`
	FutureSelf    vitality.FutureSelfView `json:"futureSelf"    yaml:"futureSelf"`
	Trend         []vitality.TrendPoint   `json:"trend"         yaml:"trend"`
	Horizon       vitality.HorizonView    `json:"horizon"       yaml:"horizon"`
}

func newProjectCmd() *cobra.Command {
	var (
		answers metricFlags
		years   int
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project biological age along the current and optimized paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			if years < 1 || years > vitality.MaxYearsAhead {
				return fmt.Errorf("years must be between 1 and %d", vitality.MaxYearsAhead)
			}
			m, err := answers.resolve(cmd)
			if err != nil {
				return err
			}

			// The prescription is not shown here, so any fixed pick will do.
			r := vitality.Compute(m, vitality.FixedPicker(0))
			baseYear := now().Year()
			report := projectReport{
				BiologicalAge: r.BiologicalAge,
				FutureSelf:    vitality.FutureSelf(r, m.ChronologicalAge, years),
				Trend:         vitality.Trend(r, m.ChronologicalAge, baseYear, years),
				Horizon:       vitality.Horizon(r, m.ChronologicalAge, baseYear),
			}
			return render(cmd.OutOrStdout(), format, report, func(w io.Writer) {
				writeProjectText(w, report)
			})
		},
	}

	answers.register(cmd)
	cmd.Flags().IntVar(&years, "years", vitality.DefaultTrendYears, "years to project ahead (1-15)")
	return cmd
}

func writeProjectText(w io.Writer, r projectReport) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "YEAR\tCURRENT\tOPTIMIZED")
	for _, p := range r.Trend {
		fmt.Fprintf(tw, "%d\t%.1f\t%.1f\n", p.Year, p.Current, p.Optimized)
	}
	tw.Flush()

	fs := r.FutureSelf
	fmt.Fprintln(w)
	fmt.Fprintf(w, "In %d years:\n", fs.YearsAhead)
	fmt.Fprintf(w, "  current path:   age %d (%s)\n", fs.Current.DisplayAge, fs.Current.Label)
	fmt.Fprintf(w, "  optimized path: age %d (%s)\n", fs.Optimized.DisplayAge, fs.Optimized.Label)
	fmt.Fprintf(w, "  acceleration %.1f years, advantage %.1f years\n", fs.Acceleration, fs.Advantage)

	h := r.Horizon
	fmt.Fprintln(w)
	fmt.Fprintf(w, "By %d: %d on the current path, %d optimized\n", h.Year, h.CurrentBioAge, h.OptimizedBioAge)
}
