package main

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// offer is a partner discount unlocked by a minimum vitality score.
type offer struct {
	Provider    string `json:"provider"`
	Type        string `json:"type"`
	Discount    string `json:"discount"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MinScore    int    `json:"minScore"`
	Value       string `json:"value"`
	Qualified   bool   `json:"qualified"`
}

// voucher is a fixed wellness voucher shown alongside the offers.
type voucher struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Status string `json:"status"`
}

var vouchers = []voucher{
	{Name: "DHA Free Health Screening", Value: "AED 500", Status: "available"},
	{Name: "Talise Spa 50% Off", Value: "AED 300", Status: "available"},
	{Name: "Fitness First 1-Month Free", Value: "AED 450", Status: "claimed"},
	{Name: "Nova Clinic NAD+ Therapy 30% Off", Value: "AED 600", Status: "available"},
}

// offersFor builds the partner offers for a score and biological age.
func offersFor(score int, bioAge float64) []offer {
	offers := []offer{
		{
			Provider:    "AXA Insurance",
			Type:        "Health Insurance",
			Discount:    "15%",
			Title:       "Premium Health Insurance Discount",
			Description: fmt.Sprintf("Your Vitality Score of %d qualifies you for a premium discount on your next renewal.", score),
			MinScore:    75,
			Value:       "AED 2,400/year savings",
		},
		{
			Provider:    "Daman Insurance",
			Type:        "Life Insurance",
			Discount:    "12%",
			Title:       "Enhanced Life Coverage Discount",
			Description: fmt.Sprintf("Biological age %d years vs chronological age—lower premiums available.", int(math.Round(bioAge))),
			MinScore:    65,
			Value:       "AED 1,800/year savings",
		},
		{
			Provider:    "Dubai Gold Souq",
			Type:        "Wellness Reward",
			Discount:    "1g Gold",
			Title:       "Gold Vitality Reward",
			Description: "Maintain 80+ Vitality Score for 3 consecutive months to claim your 1g gold bar reward.",
			MinScore:    80,
			Value:       "Worth AED 240",
		},
	}
	for i := range offers {
		offers[i].Qualified = score >= offers[i].MinScore
	}
	return offers
}

// getMarketplace returns partner offers gated on the vitality score, plus the
// voucher list.
// GET /api/assessments/:id/marketplace.
func (h *Handler) getMarketplace(c *gin.Context) {
	a := currentAssessment(c)
	c.JSON(http.StatusOK, marketplaceResponse{
		VitalityScore: a.Result.VitalityScore,
		Offers:        offersFor(a.Result.VitalityScore, a.Result.BiologicalAge),
		Vouchers:      vouchers,
	})
}
