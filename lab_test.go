package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lg/vitality-twin-api/vitality"
)

const labPath = "/api/lab-reports/recommendations"

// TestLabRecommendations_Report reads a report that trips every rule.
func TestLabRecommendations_Report(t *testing.T) {
	router, _ := setupTest(t)
	body := `{"biomarkers": [
		{"name": "Vitamin D (25-OH)", "value": "18 ng/mL", "status": "low", "highlighted": true, "normalRange": "30-100 ng/mL"},
		{"name": "Total Cholesterol", "value": "185 mg/dL", "status": "good", "normalRange": "<200 mg/dL"},
		{"name": "Fasting Glucose", "value": "92 mg/dL", "status": "good", "normalRange": "70-100 mg/dL"},
		{"name": "Cortisol (Morning)", "value": "22 μg/dL", "status": "warning", "highlighted": true, "normalRange": "6-18 μg/dL"}
	]}`

	w := doRequest(router, "POST", labPath, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got labReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Biomarkers, 4)
	assert.Equal(t, vitality.BiomarkerLow, got.Biomarkers[0].Status)
	assert.Equal(t, "30-100 ng/mL", got.Biomarkers[0].NormalRange)

	require.Len(t, got.Recommendations, 4)
	assert.Contains(t, got.Recommendations[0].Text, "Vitamin D deficiency detected")
	assert.Contains(t, got.Recommendations[1].Text, "Elevated cortisol")
	assert.Equal(t, "2 biomarkers need attention. Consider booking a follow-up consultation with a DHA-certified physician.", got.Recommendations[2].Text)
	assert.Equal(t, "Your lab data has been integrated into your Vitality Twin for personalized health tracking.", got.Recommendations[3].Text)
}

// TestLabRecommendations_AllGood returns only the closing line.
func TestLabRecommendations_AllGood(t *testing.T) {
	router, _ := setupTest(t)
	w := doRequest(router, "POST", labPath, `{"biomarkers": [{"name": "TSH", "value": "2.1 mIU/L", "status": "good"}]}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got labReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Recommendations, 1)
	assert.Equal(t, "📊", got.Recommendations[0].Icon)
}

// TestLabRecommendations_Validation rejects malformed reports.
func TestLabRecommendations_Validation(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "missing biomarkers", body: `{}`, wantErr: "biomarkers is required"},
		{name: "empty biomarkers", body: `{"biomarkers": []}`, wantErr: "biomarkers must have at least 1 entry"},
		{name: "unnamed biomarker", body: `{"biomarkers": [{"status": "good"}]}`, wantErr: "name is required"},
		{name: "unknown status", body: `{"biomarkers": [{"name": "Iron", "status": "high"}]}`, wantErr: "status must be one of: good, warning, low"},
		{name: "malformed json", body: `{"biomarkers": [`, wantErr: "invalid request body"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, _ := setupTest(t)
			w := doRequest(router, "POST", labPath, tc.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.wantErr, decodeError(t, w))
		})
	}
}
