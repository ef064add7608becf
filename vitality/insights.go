package vitality

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Casers and printers carry state, so each call builds its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

func groupDigits(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// MetricCard is one tile of the dashboard's metric grid.
type MetricCard struct {
	Label  string     `json:"label"  yaml:"label"`
	Value  string     `json:"value"  yaml:"value"`
	Status NodeStatus `json:"status" yaml:"status"`
}

// DashboardView is everything the dashboard renders beyond the Result.
type DashboardView struct {
	Confidence      int          `json:"confidence"      yaml:"confidence"`
	ConfidenceLevel string       `json:"confidenceLevel" yaml:"confidenceLevel"`
	StatusMessage   string       `json:"statusMessage"   yaml:"statusMessage"`
	AgeDifference   float64      `json:"ageDifference"   yaml:"ageDifference"`
	AgeSummary      string       `json:"ageSummary"      yaml:"ageSummary"`
	AgeVerdict      string       `json:"ageVerdict"      yaml:"ageVerdict"`
	AgeAdvice       string       `json:"ageAdvice"       yaml:"ageAdvice"`
	Cards           []MetricCard `json:"cards"           yaml:"cards"`
}

// Dashboard derives the dashboard view from the submitted metrics and their
// scored result.
func Dashboard(m HealthMetrics, r Result) DashboardView {
	confidence := Confidence(m)
	diff := round1(r.BiologicalAge - float64(m.ChronologicalAge))
	verdict, advice := ageVerdict(diff)
	return DashboardView{
		Confidence:      confidence,
		ConfidenceLevel: confidenceLevel(confidence),
		StatusMessage:   statusMessage(r.VitalityScore),
		AgeDifference:   diff,
		AgeSummary:      ageSummary(diff),
		AgeVerdict:      verdict,
		AgeAdvice:       advice,
		Cards:           metricCards(m),
	}
}

// ageSummary is the gauge caption for a biological minus chronological
// difference.
func ageSummary(diff float64) string {
	switch {
	case diff < 0:
		return fmt.Sprintf("%.1f years younger!", -diff)
	case diff > 0:
		return fmt.Sprintf("+%.1f years", diff)
	default:
		return "On track"
	}
}

func ageVerdict(diff float64) (verdict, advice string) {
	switch {
	case diff < 0:
		return "Biologically Younger", "Your lifestyle is working! Keep it up."
	case diff > 0:
		return "Accelerated Aging Detected", "Focus on the recommendations below."
	default:
		return "Age-Appropriate", "Small optimizations can make you younger."
	}
}

// Confidence estimates how much data backs the result, in percent (65-95).
func Confidence(m HealthMetrics) int {
	c := 65
	if m.SleepHours != 0 && m.DailySteps != 0 {
		c += 15
	}
	// anything other than "normal" is treated as coming from a lab result
	if m.VitaminD != VitaminDNormal {
		c += 10
	}
	if m.StressLevel != "" && m.Hydration != "" {
		c += 10
	}
	return min(c, 95)
}

func confidenceLevel(c int) string {
	switch {
	case c >= 85:
		return "High"
	case c >= 70:
		return "Medium"
	default:
		return "Moderate"
	}
}

func statusMessage(score int) string {
	switch {
	case score >= healthyThreshold:
		return "Excellent! Your cellular health indicators show optimal longevity potential for the Dubai climate."
	case score >= averageThreshold:
		return "Good foundations, but there's room for biological optimization—especially considering Dubai's environmental factors."
	default:
		return "Immediate intervention needed to reverse accelerated aging patterns. Dubai's climate requires extra attention to hydration and Vitamin D."
	}
}

func metricCards(m HealthMetrics) []MetricCard {
	return []MetricCard{
		{
			Label:  "Sleep",
			Value:  strconv.FormatFloat(m.SleepHours, 'f', -1, 64) + " hrs",
			Status: brainStatus(m.SleepHours),
		},
		{
			Label:  "Activity",
			Value:  groupDigits(m.DailySteps) + " steps",
			Status: activityStatus(m.DailySteps),
		},
		{
			Label:  "Stress",
			Value:  titleCase(string(m.StressLevel)),
			Status: lungsStatus(m.StressLevel),
		},
		{
			Label:  "Dubai UV",
			Value:  titleCase(string(m.UVExposure)),
			Status: uvStatus(m.UVExposure),
		},
	}
}

// activityStatus uses the daily-goal bands, which are stricter than the
// heart node's.
func activityStatus(steps int) NodeStatus {
	switch {
	case steps >= 10000:
		return NodeGood
	case steps >= 5000:
		return NodeWarning
	default:
		return NodeCritical
	}
}

func uvStatus(uv UVExposure) NodeStatus {
	switch uv {
	case UVLow:
		return NodeGood
	case UVModerate:
		return NodeWarning
	default:
		return NodeCritical
	}
}
