package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/vitality-twin-api/vitality"
)

// createAssessment scores a questionnaire and stores the result.
// POST /api/assessments. Omitted fields take the questionnaire defaults;
// out-of-range or unknown values are rejected with 400.
func (h *Handler) createAssessment(c *gin.Context) {
	var body createAssessmentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	// Optional pause so clients can show their processing animation; give up
	// quietly if the client goes away first.
	if h.processingDelay > 0 {
		timer := time.NewTimer(h.processingDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-c.Request.Context().Done():
			h.log.Info("[createAssessment] client left during processing delay")
			c.Abort()
			return
		}
	}

	m := body.metrics()
	result := vitality.Compute(m, h.picker)
	a := h.sessions.create(m, result)

	h.log.Info("[createAssessment] scored assessment",
		zap.String("id", a.ID),
		zap.Float64("biological_age", result.BiologicalAge),
		zap.Int("vitality_score", result.VitalityScore),
		zap.String("health_status", string(result.HealthStatus)),
	)

	c.JSON(http.StatusCreated, h.newAssessmentResponse(a))
}

// getAssessment returns a stored assessment.
// GET /api/assessments/:id.
func (h *Handler) getAssessment(c *gin.Context) {
	c.JSON(http.StatusOK, h.newAssessmentResponse(currentAssessment(c)))
}

// deleteAssessment discards an assessment (the "start over" action).
// DELETE /api/assessments/:id. Returns 204 on success, 404 if not found.
func (h *Handler) deleteAssessment(c *gin.Context) {
	// The middleware saw the assessment, but a sweep or a concurrent reset may
	// have removed it since.
	if !h.sessions.delete(c.Param("id")) {
		apiError(c, http.StatusNotFound, errSessionNotFound.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// getDashboard returns the dashboard view with the quest stats beside it.
// GET /api/assessments/:id/dashboard.
func (h *Handler) getDashboard(c *gin.Context) {
	a := currentAssessment(c)
	c.JSON(http.StatusOK, dashboardResponse{
		DashboardView: vitality.Dashboard(a.Metrics, a.Result),
		QuestStats:    statsFor(a, h.now()),
	})
}

// getProjection returns the future-self comparison for ?years=N (0-15,
// defaults to 0).
// GET /api/assessments/:id/projection.
func (h *Handler) getProjection(c *gin.Context) {
	years, ok := intQuery(c, "years", 0, 0, vitality.MaxYearsAhead)
	if !ok {
		return
	}
	a := currentAssessment(c)
	c.JSON(http.StatusOK, projectionResponse{
		Year:       h.now().Year() + years,
		FutureSelf: vitality.FutureSelf(a.Result, a.Metrics.ChronologicalAge, years),
	})
}

// getTrend returns the yearly trend for ?years=N (1-15, defaults to 10) and
// the long-range headline.
// GET /api/assessments/:id/trend.
func (h *Handler) getTrend(c *gin.Context) {
	years, ok := intQuery(c, "years", vitality.DefaultTrendYears, 1, vitality.MaxYearsAhead)
	if !ok {
		return
	}
	a := currentAssessment(c)
	baseYear := h.now().Year()
	c.JSON(http.StatusOK, trendResponse{
		Points:  vitality.Trend(a.Result, a.Metrics.ChronologicalAge, baseYear, years),
		Horizon: vitality.Horizon(a.Result, a.Metrics.ChronologicalAge, baseYear),
	})
}

// intQuery parses an optional integer query param within [lo, hi]. On a bad
// value it writes a 400 and returns ok=false.
func intQuery(c *gin.Context, name string, def, lo, hi int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		apiError(c, http.StatusBadRequest, name+" must be an integer between "+strconv.Itoa(lo)+" and "+strconv.Itoa(hi))
		return 0, false
	}
	return v, true
}

func (h *Handler) newAssessmentResponse(a assessment) assessmentResponse {
	return assessmentResponse{assessment: a, QuestStats: statsFor(a, h.now())}
}
