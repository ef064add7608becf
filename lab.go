package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lg/vitality-twin-api/vitality"
)

// labRecommendations handles POST /api/lab-reports/recommendations.
// It reads the biomarkers of a lab report and returns the follow-ups they call for.
func (h *Handler) labRecommendations(c *gin.Context) {
	var req labReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, bindingMessage(err))
		return
	}

	markers := make([]vitality.Biomarker, len(req.Biomarkers))
	for i, b := range req.Biomarkers {
		markers[i] = vitality.Biomarker{
			Name:        b.Name,
			Value:       b.Value,
			Status:      vitality.BiomarkerStatus(b.Status),
			Highlighted: b.Highlighted,
			NormalRange: b.NormalRange,
		}
	}
	recs := vitality.LabRecommendations(markers)

	h.log.Info("lab report read",
		zap.Int("biomarkers", len(markers)),
		zap.Int("recommendations", len(recs)),
	)
	c.JSON(http.StatusOK, labReportResponse{Biomarkers: markers, Recommendations: recs})
}
