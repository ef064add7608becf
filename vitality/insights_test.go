package vitality

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfidence(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(m *HealthMetrics)
		want  int
	}{
		// 65 + 15 (sleep & steps) + 10 (stress & hydration)
		{"defaults", nil, 90},
		{"lab vitamin D caps at 95", func(m *HealthMetrics) { m.VitaminD = VitaminDLow }, 95},
		{"no steps", func(m *HealthMetrics) { m.DailySteps = 0 }, 75},
		{"missing hydration", func(m *HealthMetrics) { m.Hydration = "" }, 80},
		{"bare minimum", func(m *HealthMetrics) {
			m.SleepHours = 0
			m.StressLevel = ""
		}, 65},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Confidence(makeMetrics(tc.mutFn)); got != tc.want {
				t.Errorf("Confidence = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestConfidenceLevel(t *testing.T) {
	for c, want := range map[int]string{95: "High", 85: "High", 84: "Medium", 70: "Medium", 69: "Moderate"} {
		if got := confidenceLevel(c); got != want {
			t.Errorf("confidenceLevel(%d) = %q, want %q", c, got, want)
		}
	}
}

func TestDashboard_Cards(t *testing.T) {
	m := makeMetrics(func(m *HealthMetrics) {
		m.SleepHours = 7.5
		m.DailySteps = 12000
		m.StressLevel = StressHigh
		m.UVExposure = UVLow
	})
	d := Dashboard(m, Compute(m, FixedPicker(0)))

	want := []MetricCard{
		{Label: "Sleep", Value: "7.5 hrs", Status: NodeGood},
		{Label: "Activity", Value: "12,000 steps", Status: NodeGood},
		{Label: "Stress", Value: "High", Status: NodeCritical},
		{Label: "Dubai UV", Value: "Low", Status: NodeGood},
	}
	if diff := cmp.Diff(want, d.Cards); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
	// stress high: +1 year, steps > 10000: -3 years
	if d.AgeDifference != -2 {
		t.Errorf("AgeDifference = %v, want -2", d.AgeDifference)
	}
}

// TestDashboard_ActivityBandsDifferFromHeart: 8001 steps is a good heart but
// only a warning on the activity card.
func TestDashboard_ActivityBandsDifferFromHeart(t *testing.T) {
	m := makeMetrics(func(m *HealthMetrics) { m.DailySteps = 8001 })
	r := Compute(m, FixedPicker(0))
	d := Dashboard(m, r)
	if r.BioNodes.Heart != NodeGood {
		t.Errorf("heart = %q, want good", r.BioNodes.Heart)
	}
	if d.Cards[1].Status != NodeWarning {
		t.Errorf("activity card = %q, want warning", d.Cards[1].Status)
	}
	if d.Cards[1].Value != "8,001 steps" {
		t.Errorf("activity value = %q, want 8,001 steps", d.Cards[1].Value)
	}
}

func TestDashboard_StatusMessageBands(t *testing.T) {
	if statusMessage(75) == statusMessage(74) {
		t.Error("75 and 74 should select different messages")
	}
	if statusMessage(50) == statusMessage(49) {
		t.Error("50 and 49 should select different messages")
	}
	if statusMessage(50) != statusMessage(74) {
		t.Error("50 and 74 should share the average message")
	}
}

func TestDashboard_AgeSummary(t *testing.T) {
	cases := []struct {
		name        string
		mutFn       func(m *HealthMetrics)
		wantSummary string
		wantVerdict string
	}{
		// steps > 10000: -3 years, stress medium: +0.5
		{"younger", func(m *HealthMetrics) { m.DailySteps = 12000 }, "2.5 years younger!", "Biologically Younger"},
		// sleep < 6: +2, stress high: +1
		{"older", func(m *HealthMetrics) {
			m.SleepHours = 5
			m.StressLevel = StressHigh
		}, "+3.0 years", "Accelerated Aging Detected"},
		{"defaults", nil, "+0.5 years", "Accelerated Aging Detected"},
		{"on track", func(m *HealthMetrics) { m.StressLevel = StressLow }, "On track", "Age-Appropriate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := makeMetrics(tc.mutFn)
			d := Dashboard(m, Compute(m, FixedPicker(0)))
			if d.AgeSummary != tc.wantSummary {
				t.Errorf("AgeSummary = %q, want %q", d.AgeSummary, tc.wantSummary)
			}
			if d.AgeVerdict != tc.wantVerdict {
				t.Errorf("AgeVerdict = %q, want %q", d.AgeVerdict, tc.wantVerdict)
			}
		})
	}
}

func TestAgeVerdict_OnTrack(t *testing.T) {
	if got := ageSummary(0); got != "On track" {
		t.Errorf("ageSummary(0) = %q, want On track", got)
	}
	verdict, advice := ageVerdict(0)
	if verdict != "Age-Appropriate" || advice != "Small optimizations can make you younger." {
		t.Errorf("ageVerdict(0) = %q, %q", verdict, advice)
	}
}
