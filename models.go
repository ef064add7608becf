package main

import (
	"lg/vitality-twin-api/vitality"
)

// createAssessmentRequest is the request body for POST /api/assessments.
// All fields are pointers so an omitted field can take the questionnaire's
// default answer instead of a zero value.
type createAssessmentRequest struct {
	ChronologicalAge *int     `json:"chronologicalAge" binding:"omitempty,gte=18,lte=100"`
	SleepHours       *float64 `json:"sleepHours"       binding:"omitempty,gte=0,lte=24"`
	VitaminD         *string  `json:"vitaminD"         binding:"omitempty,oneof=low normal high"`
	DailySteps       *int     `json:"dailySteps"       binding:"omitempty,gte=0"`
	StressLevel      *string  `json:"stressLevel"      binding:"omitempty,oneof=low medium high"`
	UVExposure       *string  `json:"uvExposure"       binding:"omitempty,oneof=low moderate high"`
	Hydration        *string  `json:"hydration"        binding:"omitempty,oneof=poor good excellent"`
}

// metrics overlays the provided fields on the questionnaire defaults.
func (r createAssessmentRequest) metrics() vitality.HealthMetrics {
	m := vitality.DefaultMetrics()
	if r.ChronologicalAge != nil {
		m.ChronologicalAge = *r.ChronologicalAge
	}
	if r.SleepHours != nil {
		m.SleepHours = *r.SleepHours
	}
	if r.VitaminD != nil {
		m.VitaminD = vitality.VitaminD(*r.VitaminD)
	}
	if r.DailySteps != nil {
		m.DailySteps = *r.DailySteps
	}
	if r.StressLevel != nil {
		m.StressLevel = vitality.StressLevel(*r.StressLevel)
	}
	if r.UVExposure != nil {
		m.UVExposure = vitality.UVExposure(*r.UVExposure)
	}
	if r.Hydration != nil {
		m.Hydration = vitality.Hydration(*r.Hydration)
	}
	return m
}

// assessmentResponse is the shape returned for a stored assessment: the
// assessment itself plus its quest stats.
type assessmentResponse struct {
	assessment
	QuestStats questStats `json:"questStats"`
}

// dashboardResponse is the response for GET /api/assessments/:id/dashboard:
// the dashboard view plus the quest stats shown beside it.
type dashboardResponse struct {
	vitality.DashboardView
	QuestStats questStats `json:"questStats"`
}

// projectionResponse is the response for GET /api/assessments/:id/projection.
type projectionResponse struct {
	Year       int                     `json:"year"`
	FutureSelf vitality.FutureSelfView `json:"futureSelf"`
}

// trendResponse is the response for GET /api/assessments/:id/trend.
type trendResponse struct {
	Points  []vitality.TrendPoint `json:"points"`
	Horizon vitality.HorizonView  `json:"horizon"`
}

// marketplaceResponse is the response for GET /api/assessments/:id/marketplace.
type marketplaceResponse struct {
	VitalityScore int       `json:"vitalityScore"`
	Offers        []offer   `json:"offers"`
	Vouchers      []voucher `json:"vouchers"`
}

// labReportRequest is the request body for POST /api/lab-reports/recommendations.
type labReportRequest struct {
	Biomarkers []biomarkerRequest `json:"biomarkers" binding:"required,min=1,dive"`
}

type biomarkerRequest struct {
	Name        string `json:"name"        binding:"required"`
	Value       string `json:"value"`
	Status      string `json:"status"      binding:"required,oneof=good warning low"`
	Highlighted bool   `json:"highlighted"`
	NormalRange string `json:"normalRange"`
}

// labReportResponse is the response for POST /api/lab-reports/recommendations.
type labReportResponse struct {
	Biomarkers      []vitality.Biomarker      `json:"biomarkers"`
	Recommendations []vitality.Recommendation `json:"recommendations"`
}
