// Package vitality scores a wellness questionnaire into a biological age,
// a 0-100 vitality score and the insight texts shown alongside them, and
// projects that result forward in time.
package vitality

// VitaminD is the self-reported vitamin D level.
type VitaminD string

const (
	VitaminDLow    VitaminD = "low"
	VitaminDNormal VitaminD = "normal"
	VitaminDHigh   VitaminD = "high"
)

type StressLevel string

const (
	StressLow    StressLevel = "low"
	StressMedium StressLevel = "medium"
	StressHigh   StressLevel = "high"
)

type UVExposure string

const (
	UVLow      UVExposure = "low"
	UVModerate UVExposure = "moderate"
	UVHigh     UVExposure = "high"
)

type Hydration string

const (
	HydrationPoor      Hydration = "poor"
	HydrationGood      Hydration = "good"
	HydrationExcellent Hydration = "excellent"
)

// HealthStatus is derived solely from the clamped vitality score.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusAverage   HealthStatus = "average"
	StatusUnhealthy HealthStatus = "unhealthy"
)

// NodeStatus is the state of a single bio-node or metric card.
type NodeStatus string

const (
	NodeGood     NodeStatus = "good"
	NodeWarning  NodeStatus = "warning"
	NodeCritical NodeStatus = "critical"
)

// Valid reports whether v is one of the known vitamin D levels.
func (v VitaminD) Valid() bool {
	return v == VitaminDLow || v == VitaminDNormal || v == VitaminDHigh
}

func (s StressLevel) Valid() bool {
	return s == StressLow || s == StressMedium || s == StressHigh
}

func (u UVExposure) Valid() bool {
	return u == UVLow || u == UVModerate || u == UVHigh
}

func (h Hydration) Valid() bool {
	return h == HydrationPoor || h == HydrationGood || h == HydrationExcellent
}

/* ─── Records ────────────────────────────────────────────────────────── */

// HealthMetrics is one questionnaire submission. It is never edited after
// scoring; a new submission produces a new record.
type HealthMetrics struct {
	ChronologicalAge int         `json:"chronologicalAge" yaml:"chronologicalAge"`
	SleepHours       float64     `json:"sleepHours"       yaml:"sleepHours"`
	VitaminD         VitaminD    `json:"vitaminD"         yaml:"vitaminD"`
	DailySteps       int         `json:"dailySteps"       yaml:"dailySteps"`
	StressLevel      StressLevel `json:"stressLevel"      yaml:"stressLevel"`
	UVExposure       UVExposure  `json:"uvExposure"       yaml:"uvExposure"`
	Hydration        Hydration   `json:"hydration"        yaml:"hydration"`
}

// DefaultMetrics returns the questionnaire's pre-filled answers.
func DefaultMetrics() HealthMetrics {
	return HealthMetrics{
		ChronologicalAge: 30,
		SleepHours:       7,
		VitaminD:         VitaminDNormal,
		DailySteps:       8000,
		StressLevel:      StressMedium,
		UVExposure:       UVModerate,
		Hydration:        HydrationGood,
	}
}

// BioNodes holds one status per organ system. Each field depends on exactly
// one input: steps for the heart, sleep for the brain, stress for the lungs.
type BioNodes struct {
	Heart NodeStatus `json:"heart" yaml:"heart"`
	Brain NodeStatus `json:"brain" yaml:"brain"`
	Lungs NodeStatus `json:"lungs" yaml:"lungs"`
}

// Result is the scored outcome of a HealthMetrics record. Treat it as
// read-only once returned.
type Result struct {
	BiologicalAge      float64      `json:"biologicalAge"      yaml:"biologicalAge"`
	VitalityScore      int          `json:"vitalityScore"      yaml:"vitalityScore"`
	HealthStatus       HealthStatus `json:"healthStatus"       yaml:"healthStatus"`
	YearsGainedOrLost  float64      `json:"yearsGainedOrLost"  yaml:"yearsGainedOrLost"`
	BioNodes           BioNodes     `json:"bioNodes"           yaml:"bioNodes"`
	Prediction         string       `json:"prediction"         yaml:"prediction"`
	DubaiPrescription  string       `json:"dubaiPrescription"  yaml:"dubaiPrescription"`
	ActionableTriumphs []string     `json:"actionableTriumphs" yaml:"actionableTriumphs"`
}
