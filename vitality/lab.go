package vitality

import (
	"fmt"
	"strings"
)

// BiomarkerStatus is how a lab value compares with its reference range.
type BiomarkerStatus string

const (
	BiomarkerGood    BiomarkerStatus = "good"
	BiomarkerWarning BiomarkerStatus = "warning"
	BiomarkerLow     BiomarkerStatus = "low"
)

// Biomarker is one line of a lab report.
type Biomarker struct {
	Name        string          `json:"name"        yaml:"name"`
	Value       string          `json:"value"       yaml:"value"`
	Status      BiomarkerStatus `json:"status"      yaml:"status"`
	Highlighted bool            `json:"highlighted" yaml:"highlighted"`
	NormalRange string          `json:"normalRange" yaml:"normalRange"`
}

// Recommendation is one follow-up suggested from a lab report.
type Recommendation struct {
	Icon string `json:"icon" yaml:"icon"`
	Text string `json:"text" yaml:"text"`
}

const (
	labVitaminD    = "Vitamin D deficiency detected. Get 15-20 minutes of early morning sun (6-8 AM) and supplement with 4000 IU D3 daily."
	labCortisol    = "Elevated cortisol suggests chronic stress. Try daily meditation, breathing exercises, or book a session at Talise Spa."
	labFollowUpFmt = "%d biomarkers need attention. Consider booking a follow-up consultation with a DHA-certified physician."
	labIntegrated  = "Your lab data has been integrated into your Vitality Twin for personalized health tracking."
)

// LabRecommendations turns a lab report into follow-ups, in a fixed order:
// low vitamin D, cortisol in the warning band, the count of highlighted
// markers, then a closing line that is always present.
func LabRecommendations(markers []Biomarker) []Recommendation {
	var (
		lowVitaminD  bool
		highCortisol bool
		flagged      int
	)
	for _, b := range markers {
		if strings.Contains(b.Name, "Vitamin D") && b.Status == BiomarkerLow {
			lowVitaminD = true
		}
		if strings.Contains(b.Name, "Cortisol") && b.Status == BiomarkerWarning {
			highCortisol = true
		}
		if b.Highlighted {
			flagged++
		}
	}

	out := make([]Recommendation, 0, 4)
	if lowVitaminD {
		out = append(out, Recommendation{Icon: "☀️", Text: labVitaminD})
	}
	if highCortisol {
		out = append(out, Recommendation{Icon: "🧘", Text: labCortisol})
	}
	if flagged > 0 {
		out = append(out, Recommendation{Icon: "💊", Text: fmt.Sprintf(labFollowUpFmt, flagged)})
	}
	return append(out, Recommendation{Icon: "📊", Text: labIntegrated})
}
