package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOffersFor_Gating checks each offer against its minimum score.
func TestOffersFor_Gating(t *testing.T) {
	cases := []struct {
		score         int
		wantQualified []bool // AXA 75, Daman 65, Gold 80
	}{
		{score: 100, wantQualified: []bool{true, true, true}},
		{score: 80, wantQualified: []bool{true, true, true}},
		{score: 79, wantQualified: []bool{true, true, false}},
		{score: 75, wantQualified: []bool{true, true, false}},
		{score: 74, wantQualified: []bool{false, true, false}},
		{score: 65, wantQualified: []bool{false, true, false}},
		{score: 64, wantQualified: []bool{false, false, false}},
		{score: 0, wantQualified: []bool{false, false, false}},
	}

	for _, tc := range cases {
		offers := offersFor(tc.score, 40)
		require.Len(t, offers, 3)
		for i, o := range offers {
			assert.Equal(t, tc.wantQualified[i], o.Qualified, "score %d, %s", tc.score, o.Provider)
		}
	}
}

// TestOffersFor_Descriptions interpolates the score and the rounded
// biological age.
func TestOffersFor_Descriptions(t *testing.T) {
	offers := offersFor(83, 46.5)
	assert.Equal(t, "Your Vitality Score of 83 qualifies you for a premium discount on your next renewal.", offers[0].Description)
	assert.Equal(t, "Biological age 47 years vs chronological age—lower premiums available.", offers[1].Description)
}

// TestGetMarketplace serves offers for the stored score plus the vouchers.
func TestGetMarketplace(t *testing.T) {
	router, _ := setupTest(t)
	a := createAssessmentFor(t, router, `{"chronologicalAge": 40, "sleepHours": 6.5, "stressLevel": "high"}`)
	// 100 - 5 (sleep) - 15 (stress) = 80, bio 40 + 0.5 + 1 = 41.5
	require.Equal(t, 80, a.Result.VitalityScore)

	w := doRequest(router, "GET", "/api/assessments/"+a.ID+"/marketplace", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got marketplaceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 80, got.VitalityScore)
	assert.Equal(t, offersFor(80, 41.5), got.Offers)
	assert.Contains(t, got.Offers[1].Description, "Biological age 42 years")
	assert.Equal(t, vouchers, got.Vouchers)
}
