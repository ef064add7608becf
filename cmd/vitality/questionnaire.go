package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lg/vitality-twin-api/vitality"
)

// metricFlags holds the questionnaire answers given on the command line.
type metricFlags struct {
	age         int
	sleep       float64
	vitaminD    string
	steps       int
	stress      string
	uv          string
	hydration   string
	interactive bool
}

func (f *metricFlags) register(cmd *cobra.Command) {
	d := vitality.DefaultMetrics()
	flags := cmd.Flags()
	flags.IntVar(&f.age, "age", d.ChronologicalAge, "chronological age in years (18-100)")
	flags.Float64Var(&f.sleep, "sleep", d.SleepHours, "average hours of sleep per night")
	flags.StringVar(&f.vitaminD, "vitamin-d", string(d.VitaminD), "vitamin D level: low, normal or high")
	flags.IntVar(&f.steps, "steps", d.DailySteps, "average daily steps")
	flags.StringVar(&f.stress, "stress", string(d.StressLevel), "stress level: low, medium or high")
	flags.StringVar(&f.uv, "uv", string(d.UVExposure), "UV exposure: low, moderate or high")
	flags.StringVar(&f.hydration, "hydration", string(d.Hydration), "hydration: poor, good or excellent")
	flags.BoolVarP(&f.interactive, "interactive", "i", false, "answer the questionnaire on the terminal")
}

func (f *metricFlags) metrics() vitality.HealthMetrics {
	return vitality.HealthMetrics{
		ChronologicalAge: f.age,
		SleepHours:       f.sleep,
		VitaminD:         vitality.VitaminD(f.vitaminD),
		DailySteps:       f.steps,
		StressLevel:      vitality.StressLevel(f.stress),
		UVExposure:       vitality.UVExposure(f.uv),
		Hydration:        vitality.Hydration(f.hydration),
	}
}

// resolve returns the answers from flags, or from prompts when interactive.
// Flag values become the prompt defaults.
func (f *metricFlags) resolve(cmd *cobra.Command) (vitality.HealthMetrics, error) {
	m := f.metrics()
	if f.interactive {
		var err error
		m, err = prompt(cmd.InOrStdin(), cmd.ErrOrStderr(), m)
		if err != nil {
			return vitality.HealthMetrics{}, err
		}
	}
	if err := validate(m); err != nil {
		return vitality.HealthMetrics{}, err
	}
	return m, nil
}

// validate applies the same bounds the HTTP API enforces.
func validate(m vitality.HealthMetrics) error {
	var errs []error
	if m.ChronologicalAge < 18 || m.ChronologicalAge > 100 {
		errs = append(errs, fmt.Errorf("age must be between 18 and 100, got %d", m.ChronologicalAge))
	}
	if math.IsNaN(m.SleepHours) || m.SleepHours < 0 || m.SleepHours > 24 {
		errs = append(errs, fmt.Errorf("sleep must be between 0 and 24 hours, got %g", m.SleepHours))
	}
	if m.DailySteps < 0 {
		errs = append(errs, fmt.Errorf("steps must not be negative, got %d", m.DailySteps))
	}
	if !m.VitaminD.Valid() {
		errs = append(errs, fmt.Errorf("vitamin-d must be one of: low, normal, high, got %q", m.VitaminD))
	}
	if !m.StressLevel.Valid() {
		errs = append(errs, fmt.Errorf("stress must be one of: low, medium, high, got %q", m.StressLevel))
	}
	if !m.UVExposure.Valid() {
		errs = append(errs, fmt.Errorf("uv must be one of: low, moderate, high, got %q", m.UVExposure))
	}
	if !m.Hydration.Valid() {
		errs = append(errs, fmt.Errorf("hydration must be one of: poor, good, excellent, got %q", m.Hydration))
	}
	return errors.Join(errs...)
}

// prompt asks each question in turn on out, reading answers from in. An
// empty answer keeps the default shown in brackets.
func prompt(in io.Reader, out io.Writer, def vitality.HealthMetrics) (vitality.HealthMetrics, error) {
	reader := bufio.NewReader(in)
	ask := func(question, current string) (string, error) {
		fmt.Fprintf(out, "%s [%s]: ", question, current)
		answer, err := reader.ReadString('\n')
		// EOF with no answer keeps the default, so piped input may stop early.
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return current, nil
		}
		return answer, nil
	}

	m := def
	var raw string
	var err error

	if raw, err = ask("Age", strconv.Itoa(m.ChronologicalAge)); err != nil {
		return m, err
	}
	if m.ChronologicalAge, err = strconv.Atoi(raw); err != nil {
		return m, fmt.Errorf("age: %w", err)
	}

	if raw, err = ask("Hours of sleep", strconv.FormatFloat(m.SleepHours, 'f', -1, 64)); err != nil {
		return m, err
	}
	if m.SleepHours, err = strconv.ParseFloat(raw, 64); err != nil {
		return m, fmt.Errorf("sleep: %w", err)
	}

	if raw, err = ask("Vitamin D (low/normal/high)", string(m.VitaminD)); err != nil {
		return m, err
	}
	m.VitaminD = vitality.VitaminD(strings.ToLower(raw))

	if raw, err = ask("Daily steps", strconv.Itoa(m.DailySteps)); err != nil {
		return m, err
	}
	if m.DailySteps, err = strconv.Atoi(strings.ReplaceAll(raw, ",", "")); err != nil {
		return m, fmt.Errorf("steps: %w", err)
	}

	if raw, err = ask("Stress (low/medium/high)", string(m.StressLevel)); err != nil {
		return m, err
	}
	m.StressLevel = vitality.StressLevel(strings.ToLower(raw))

	if raw, err = ask("UV exposure (low/moderate/high)", string(m.UVExposure)); err != nil {
		return m, err
	}
	m.UVExposure = vitality.UVExposure(strings.ToLower(raw))

	if raw, err = ask("Hydration (poor/good/excellent)", string(m.Hydration)); err != nil {
		return m, err
	}
	m.Hydration = vitality.Hydration(strings.ToLower(raw))

	fmt.Fprintln(out)
	return m, nil
}
