package vitality

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Picker chooses an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Picker interface {
	IntN(n int) int
}

// FixedPicker always returns the same index, wrapped into range.
type FixedPicker int

func (f FixedPicker) IntN(n int) int {
	i := int(f) % n
	if i < 0 {
		i += n
	}
	return i
}

// globalPicker draws from the process-wide math/rand/v2 source, which is safe
// for concurrent use.
type globalPicker struct{}

func (globalPicker) IntN(n int) int { return rand.IntN(n) }

// Prescriptions is the fixed list the fallback prescription is drawn from.
// Indexes 1-3 double as the priority prescriptions.
var Prescriptions = []string{
	"Visit Cryotherapy Dubai in JLT for a 3-minute -110°C session to boost cellular recovery and reduce inflammation.",
	"Join the sunrise outdoor yoga sessions at Kite Beach (6:00 AM) to maximize Vitamin D absorption during cooler hours.",
	"Book a Himalayan salt cave session at Talise Spa to improve respiratory health and combat indoor air quality issues.",
	"Take morning walks through Mushrif Park's shaded trails between 6-7 AM when UV index is below 3.",
	"Try the NAD+ IV therapy at Nova Clinic Dubai Healthcare City to support cellular energy and longevity.",
	"Visit the wellness hub at Museum of the Future for biometric screening and personalized longevity insights.",
}

const (
	prescriptionVitaminD = 1
	prescriptionStress   = 2
	prescriptionSteps    = 3
)

const (
	triumphSleep    = "Set a 10 PM screen-off alarm tonight and aim for 7.5 hours of sleep in a cool room (18-20°C)."
	triumphVitaminD = "Get 15 minutes of early morning sun exposure (before 9 AM) and supplement with 4000 IU Vitamin D3 daily."
	triumphSteps    = "Add a 15-minute evening walk after dinner in air-conditioned malls during peak heat hours."
	triumphHydrate  = "Drink 3L of water daily—Dubai's dry climate increases dehydration risk by 40%."
)

const (
	predictionAcceleratedFmt = "Without intervention, your current lifestyle patterns could accelerate cellular aging by %d additional years by 2035. Dubai's intense heat and indoor lifestyle are contributing factors—focus on Vitamin D optimization and consistent hydration to prevent premature metabolic dysfunction."
	predictionFavorableFmt   = "Your habits are exceptional! By 2035, you could maintain the biological resilience of someone %d years younger. Continue optimizing for Dubai's climate with early morning activity and strategic sun exposure to preserve peak vitality."
	predictionNeutral        = "You're aging at a normal rate, but strategic optimizations could shift you into accelerated longevity territory. By optimizing Vitamin D and deep sleep, you can reclaim 4.2 years of cellular health by 2035."
)

// Status thresholds on the clamped vitality score.
const (
	healthyThreshold = 75
	averageThreshold = 50
)

/* ─── Scoring ────────────────────────────────────────────────────────── */

// Compute scores m. Every dimension is bucketed independently against the
// same inputs; within a dimension the buckets are disjoint. The score is
// clamped to [0,100] before classification and the biological age is rounded
// to one decimal only after all deltas are applied.
//
// Compute never fails. Negative steps or sleep are treated as zero and
// unrecognised enum values contribute no delta. pick is only consulted when
// no priority prescription applies; nil uses the global math/rand/v2 source.
func Compute(m HealthMetrics, pick Picker) Result {
	if pick == nil {
		pick = globalPicker{}
	}
	m = normalize(m)

	bioAge := float64(m.ChronologicalAge)
	score := 100

	switch {
	case m.SleepHours < 6:
		bioAge += 2
		score -= 10
	case m.SleepHours < 7:
		bioAge += 0.5
		score -= 5
	}

	if m.VitaminD == VitaminDLow {
		bioAge += 1.5
		score -= 12
	}

	switch {
	case m.DailySteps > 10000:
		bioAge -= 3
		score += 5
	case m.DailySteps < 5000:
		bioAge += 1
		score -= 15
	}

	switch m.StressLevel {
	case StressHigh:
		bioAge += 1
		score -= 15
	case StressMedium:
		bioAge += 0.5
		score -= 8
	}

	if m.UVExposure == UVHigh {
		bioAge += 0.5
		score -= 5
	}

	switch m.Hydration {
	case HydrationPoor:
		bioAge += 0.5
		score -= 8
	case HydrationExcellent:
		score += 3
	}

	score = clampScore(score)
	gap := bioAge - float64(m.ChronologicalAge)

	return Result{
		BiologicalAge:      round1(bioAge),
		VitalityScore:      score,
		HealthStatus:       Classify(score),
		YearsGainedOrLost:  float64(m.ChronologicalAge) - bioAge,
		BioNodes:           nodesFor(m),
		Prediction:         predict(gap),
		DubaiPrescription:  prescribe(m, pick),
		ActionableTriumphs: triumphs(m),
	}
}

// Classify maps a clamped vitality score to its health status.
func Classify(score int) HealthStatus {
	switch {
	case score >= healthyThreshold:
		return StatusHealthy
	case score >= averageThreshold:
		return StatusAverage
	default:
		return StatusUnhealthy
	}
}

func normalize(m HealthMetrics) HealthMetrics {
	if m.DailySteps < 0 {
		m.DailySteps = 0
	}
	if m.SleepHours < 0 || math.IsNaN(m.SleepHours) {
		m.SleepHours = 0
	}
	return m
}

func clampScore(score int) int {
	return max(0, min(100, score))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

/* ─── Derived fields ─────────────────────────────────────────────────── */

func nodesFor(m HealthMetrics) BioNodes {
	return BioNodes{
		Heart: heartStatus(m.DailySteps),
		Brain: brainStatus(m.SleepHours),
		Lungs: lungsStatus(m.StressLevel),
	}
}

func heartStatus(steps int) NodeStatus {
	switch {
	case steps > 8000:
		return NodeGood
	case steps > 5000:
		return NodeWarning
	default:
		return NodeCritical
	}
}

func brainStatus(sleep float64) NodeStatus {
	switch {
	case sleep >= 7:
		return NodeGood
	case sleep >= 6:
		return NodeWarning
	default:
		return NodeCritical
	}
}

func lungsStatus(stress StressLevel) NodeStatus {
	switch stress {
	case StressLow:
		return NodeGood
	case StressMedium:
		return NodeWarning
	default:
		return NodeCritical
	}
}

// predict selects the narrative for the unrounded age gap. Both boundaries
// are open: a gap of exactly 2 or exactly -1 is neutral.
func predict(gap float64) string {
	switch {
	case gap > 2:
		return fmt.Sprintf(predictionAcceleratedFmt, int(math.Round(gap*3)))
	case gap < -1:
		return fmt.Sprintf(predictionFavorableFmt, int(math.Round(math.Abs(gap*2))))
	default:
		return predictionNeutral
	}
}

// prescribe applies the priority rules, first match wins.
func prescribe(m HealthMetrics, pick Picker) string {
	switch {
	case m.VitaminD == VitaminDLow:
		return Prescriptions[prescriptionVitaminD]
	case m.StressLevel == StressHigh:
		return Prescriptions[prescriptionStress]
	case m.DailySteps < 5000:
		return Prescriptions[prescriptionSteps]
	default:
		n := len(Prescriptions)
		return Prescriptions[((pick.IntN(n)%n)+n)%n]
	}
}

func triumphs(m HealthMetrics) []string {
	out := []string{}
	if m.SleepHours < 7 {
		out = append(out, triumphSleep)
	}
	if m.VitaminD == VitaminDLow {
		out = append(out, triumphVitaminD)
	}
	if m.DailySteps < 10000 {
		out = append(out, triumphSteps)
	}
	if m.Hydration == HydrationPoor {
		out = append(out, triumphHydrate)
	}
	return out
}
