package main

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"lg/vitality-twin-api/vitality"
)

// assessReport is what `vitality assess` prints.
type assessReport struct {
	Metrics   vitality.HealthMetrics `json:"metrics"   yaml:"metrics"`
	Result    vitality.Result        `json:"results"   yaml:"results"`
	Dashboard vitality.DashboardView `json:"dashboard" yaml:"dashboard"`
}

func newAssessCmd() *cobra.Command {
	var (
		answers      metricFlags
		seed         uint64
		prescription int
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score the questionnaire and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			m, err := answers.resolve(cmd)
			if err != nil {
				return err
			}
			picker, err := pickerFor(cmd, seed, prescription)
			if err != nil {
				return err
			}

			r := vitality.Compute(m, picker)
			report := assessReport{Metrics: m, Result: r, Dashboard: vitality.Dashboard(m, r)}
			return render(cmd.OutOrStdout(), format, report, func(w io.Writer) {
				writeAssessText(w, report)
			})
		},
	}

	answers.register(cmd)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the fallback prescription pick")
	cmd.Flags().IntVar(&prescription, "prescription", -1, "index of the fallback prescription to use")
	return cmd
}

// pickerFor chooses the fallback prescription source. An explicit
// --prescription wins over --seed; with neither, picks are random.
func pickerFor(cmd *cobra.Command, seed uint64, prescription int) (vitality.Picker, error) {
	if cmd.Flags().Changed("prescription") {
		if prescription < 0 || prescription >= len(vitality.Prescriptions) {
			return nil, fmt.Errorf("prescription must be between 0 and %d", len(vitality.Prescriptions)-1)
		}
		return vitality.FixedPicker(prescription), nil
	}
	if cmd.Flags().Changed("seed") {
		return rand.New(rand.NewPCG(seed, seed)), nil
	}
	return nil, nil
}

func writeAssessText(w io.Writer, r assessReport) {
	res := r.Result
	fmt.Fprintf(w, "Biological age:  %.1f (chronological %d)\n", res.BiologicalAge, r.Metrics.ChronologicalAge)
	fmt.Fprintf(w, "Age gap:         %s (%s)\n", r.Dashboard.AgeSummary, r.Dashboard.AgeVerdict)
	fmt.Fprintf(w, "Vitality score:  %d (%s)\n", res.VitalityScore, title(string(res.HealthStatus)))
	fmt.Fprintf(w, "Confidence:      %d%% (%s)\n", r.Dashboard.Confidence, r.Dashboard.ConfidenceLevel)
	fmt.Fprintf(w, "Bio-nodes:       heart %s, brain %s, lungs %s\n", res.BioNodes.Heart, res.BioNodes.Brain, res.BioNodes.Lungs)
	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Dashboard.StatusMessage)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Prediction:   %s\n", res.Prediction)
	fmt.Fprintf(w, "Prescription: %s\n", res.DubaiPrescription)

	if len(res.ActionableTriumphs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Actionable triumphs:")
		for _, t := range res.ActionableTriumphs {
			fmt.Fprintf(w, "  - %s\n", t)
		}
	}

	fmt.Fprintln(w)
	for _, card := range r.Dashboard.Cards {
		fmt.Fprintf(w, "%-10s %-14s %s\n", card.Label, card.Value, card.Status)
	}
}
