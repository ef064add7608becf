package vitality

import "math"

const (
	// optimizationGain is the years an optimized lifestyle claws back.
	optimizationGain = 4.2
	// optimizedPace is biological years per calendar year on the optimized path.
	optimizedPace = 0.7
	// accelerationFactor scales the current path's extra aging per year of gap.
	accelerationFactor = 0.3

	// MaxYearsAhead is the furthest future-self snapshot.
	MaxYearsAhead = 15
	// DefaultTrendYears is the span of the trend chart and the horizon headline.
	DefaultTrendYears = 10
)

// agingRate is the positive part of the gap between biological and
// chronological age.
func agingRate(bioAge, chronoAge float64) float64 {
	return math.Max(0, bioAge-chronoAge)
}

// CurrentPathAge projects bioAge forward assuming nothing changes: every
// year of existing gap speeds aging up by 30%.
func CurrentPathAge(bioAge, chronoAge, yearsAhead float64) float64 {
	return bioAge + yearsAhead*(1+agingRate(bioAge, chronoAge)*accelerationFactor)
}

// OptimizedPathAge projects bioAge forward with the optimized lifestyle. It
// never drops below chronological age.
func OptimizedPathAge(bioAge, chronoAge, yearsAhead float64) float64 {
	return math.Max(chronoAge, bioAge-optimizationGain+yearsAhead*optimizedPace)
}

/* ─── Trend ──────────────────────────────────────────────────────────── */

// TrendPoint is one year on the trend chart, ages rounded to one decimal.
type TrendPoint struct {
	Year      int     `json:"year"      yaml:"year"`
	Current   float64 `json:"current"   yaml:"current"`
	Optimized float64 `json:"optimized" yaml:"optimized"`
}

// Trend returns years+1 points starting at baseYear for both paths.
func Trend(r Result, chronoAge int, baseYear, years int) []TrendPoint {
	if years < 0 {
		years = 0
	}
	points := make([]TrendPoint, 0, years+1)
	for i := 0; i <= years; i++ {
		ahead := float64(i)
		points = append(points, TrendPoint{
			Year:      baseYear + i,
			Current:   round1(CurrentPathAge(r.BiologicalAge, float64(chronoAge), ahead)),
			Optimized: round1(OptimizedPathAge(r.BiologicalAge, float64(chronoAge), ahead)),
		})
	}
	return points
}

/* ─── Future self ────────────────────────────────────────────────────── */

// PathSnapshot is one path's state at a point in the future.
type PathSnapshot struct {
	Age          float64      `json:"age"          yaml:"age"`
	DisplayAge   int          `json:"displayAge"   yaml:"displayAge"`
	AvatarStatus HealthStatus `json:"avatarStatus" yaml:"avatarStatus"`
	Label        string       `json:"label"        yaml:"label"`
}

// FutureSelfView compares both paths yearsAhead years from now.
type FutureSelfView struct {
	YearsAhead int          `json:"yearsAhead" yaml:"yearsAhead"`
	Current    PathSnapshot `json:"current"    yaml:"current"`
	Optimized  PathSnapshot `json:"optimized"  yaml:"optimized"`
	// Acceleration is how far the current path runs ahead of the calendar.
	Acceleration float64 `json:"acceleration" yaml:"acceleration"`
	// Advantage is how much younger the optimized path stays.
	Advantage float64 `json:"advantage" yaml:"advantage"`
}

// FutureSelf builds the snapshot for yearsAhead, clamped to [0, MaxYearsAhead].
func FutureSelf(r Result, chronoAge, yearsAhead int) FutureSelfView {
	yearsAhead = max(0, min(MaxYearsAhead, yearsAhead))
	ahead := float64(yearsAhead)
	chrono := float64(chronoAge)

	current := CurrentPathAge(r.BiologicalAge, chrono, ahead)
	optimized := OptimizedPathAge(r.BiologicalAge, chrono, ahead)

	return FutureSelfView{
		YearsAhead: yearsAhead,
		Current: PathSnapshot{
			Age:          current,
			DisplayAge:   int(math.Round(current)),
			AvatarStatus: currentAvatar(r, yearsAhead),
			Label:        currentLabel(r, yearsAhead),
		},
		Optimized: PathSnapshot{
			Age:          optimized,
			DisplayAge:   int(math.Round(optimized)),
			AvatarStatus: optimizedAvatar(r, yearsAhead),
			Label:        optimizedLabel(yearsAhead),
		},
		Acceleration: round1(current - (chrono + ahead)),
		Advantage:    round1(current - optimized),
	}
}

func currentAvatar(r Result, yearsAhead int) HealthStatus {
	switch {
	case yearsAhead == 0:
		return r.HealthStatus
	case yearsAhead <= 3:
		return StatusAverage
	default:
		return StatusUnhealthy
	}
}

func optimizedAvatar(r Result, yearsAhead int) HealthStatus {
	switch {
	case yearsAhead == 0:
		return r.HealthStatus
	case r.VitalityScore >= healthyThreshold, yearsAhead <= 5:
		return StatusHealthy
	default:
		return StatusAverage
	}
}

func currentLabel(r Result, yearsAhead int) string {
	switch {
	case yearsAhead == 0:
		return titleCase(string(r.HealthStatus))
	case yearsAhead <= 3:
		return "Declining"
	default:
		return "At Risk"
	}
}

func optimizedLabel(yearsAhead int) string {
	if yearsAhead <= 5 {
		return "Optimal"
	}
	return "Excellent"
}

/* ─── Horizon ────────────────────────────────────────────────────────── */

// Milestone is one step of the optimization timeline.
type Milestone struct {
	Year        int    `json:"year"        yaml:"year"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Progress    int    `json:"progress"    yaml:"progress"`
}

// HorizonView is the long-range headline: where each path lands after
// DefaultTrendYears, plus the timeline to get there.
type HorizonView struct {
	Year            int         `json:"year"            yaml:"year"`
	CurrentBioAge   int         `json:"currentBioAge"   yaml:"currentBioAge"`
	OptimizedBioAge int         `json:"optimizedBioAge" yaml:"optimizedBioAge"`
	Milestones      []Milestone `json:"milestones"      yaml:"milestones"`
}

// Horizon uses the headline approximations (three years of extra aging per
// year of gap; the full optimization gain at once) rather than the per-year
// path formulas.
func Horizon(r Result, chronoAge, baseYear int) HorizonView {
	chrono := float64(chronoAge)
	target := baseYear + DefaultTrendYears
	return HorizonView{
		Year:            target,
		CurrentBioAge:   int(math.Round(r.BiologicalAge + agingRate(r.BiologicalAge, chrono)*3)),
		OptimizedBioAge: max(chronoAge, int(math.Round(r.BiologicalAge-optimizationGain))),
		Milestones: []Milestone{
			{Year: baseYear, Title: "Start Today", Description: "Begin implementing actionable triumphs", Progress: 100},
			{Year: baseYear + 2, Title: "Early Wins", Description: "Vitality Score improves by 15-20 points", Progress: 75},
			{Year: baseYear + 5, Title: "Mid-Point", Description: "Bio-Age reduced by 2-3 years", Progress: 50},
			{Year: target, Title: "Target Achieved", Description: "Reclaim 4.2 years of cellular health", Progress: 25},
		},
	}
}
