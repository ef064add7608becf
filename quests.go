package main

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// quest is a Dubai-specific wellness challenge on the quest board.
type quest struct {
	Title       string `json:"title"`
	Location    string `json:"location"`
	Reward      string `json:"reward"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Difficulty  string `json:"difficulty"`
	MapURL      string `json:"mapUrl"`
	BookingURL  string `json:"bookingUrl"`
}

const (
	// pointsPerQuest is the flat reward credited per completed quest.
	pointsPerQuest = 4
	// questsPerLevel completions move the user up one level.
	questsPerLevel = 5
)

var quests = []quest{
	{
		Title:       "Desert Dawn Walk",
		Location:    "Mushrif Park",
		Reward:      "+2 Vitality Points",
		Impact:      "-0.1 Bio Days",
		Description: "Take a 30-minute walk through shaded trails during golden hour (6-7 AM)",
		Duration:    "30 min",
		Difficulty:  "Easy",
		MapURL:      "https://www.google.com/maps/dir/?api=1&destination=Mushrif+Park+Dubai",
		BookingURL:  "https://www.google.com/maps/place/Mushrif+Park/",
	},
	{
		Title:       "Cryotherapy Recovery",
		Location:    "Jumeirah Wellness Hub",
		Reward:      "+5 Vitality Points",
		Impact:      "-0.2 Bio Days",
		Description: "Experience a -110°C session to boost cellular recovery and reduce inflammation",
		Duration:    "3 min",
		Difficulty:  "Medium",
		MapURL:      "https://www.google.com/maps/dir/?api=1&destination=Cryotherapy+Dubai+JLT",
		BookingURL:  "https://cryotherapy-dubai.ae/",
	},
	{
		Title:       "Sunrise Yoga Session",
		Location:    "Kite Beach",
		Reward:      "+3 Vitality Points",
		Impact:      "-0.15 Bio Days",
		Description: "Join outdoor yoga at 6 AM to maximize Vitamin D absorption during cooler hours",
		Duration:    "45 min",
		Difficulty:  "Easy",
		MapURL:      "https://www.google.com/maps/dir/?api=1&destination=Kite+Beach+Dubai",
		BookingURL:  "https://www.instagram.com/explore/tags/kitebeachyoga/",
	},
	{
		Title:       "Himalayan Salt Cave",
		Location:    "Talise Spa",
		Reward:      "+4 Vitality Points",
		Impact:      "-0.15 Bio Days",
		Description: "Improve respiratory health and combat indoor air quality issues",
		Duration:    "45 min",
		Difficulty:  "Easy",
		MapURL:      "https://www.google.com/maps/dir/?api=1&destination=Talise+Spa+Dubai",
		BookingURL:  "https://www.jumeirah.com/en/stay/dubai/madinat-jumeirah/talise-spa",
	},
	{
		Title:       "NAD+ IV Therapy",
		Location:    "Nova Clinic - Dubai Healthcare City",
		Reward:      "+8 Vitality Points",
		Impact:      "-0.3 Bio Days",
		Description: "Support cellular energy production and longevity at the molecular level",
		Duration:    "60 min",
		Difficulty:  "Advanced",
		MapURL:      "https://www.google.com/maps/dir/?api=1&destination=Nova+Clinic+Dubai+Healthcare+City",
		BookingURL:  "https://novadubai.com/",
	},
	{
		Title:       "Biometric Screening",
		Location:    "Museum of the Future",
		Reward:      "+6 Vitality Points",
		Impact:      "-0.25 Bio Days",
		Description: "Get personalized longevity insights from cutting-edge health technology",
		Duration:    "90 min",
		Difficulty:  "Medium",
		MapURL:      "https://www.google.com/maps/dir/?api=1&destination=Museum+of+the+Future+Dubai",
		BookingURL:  "https://museumofthefuture.ae/",
	},
}

var errQuestNotActive = errors.New("quest is not the active quest")

// questStats summarises quest progress for one assessment.
type questStats struct {
	CurrentScore int `json:"currentScore"`
	Completed    int `json:"completed"`
	Total        int `json:"total"`
	PointsEarned int `json:"pointsEarned"`
	Level        int `json:"level"`
	Streak       int `json:"streak"`
}

func statsFor(a assessment, now time.Time) questStats {
	completed := len(a.Quests.Completed)
	return questStats{
		CurrentScore: a.Result.VitalityScore,
		Completed:    completed,
		Total:        len(quests),
		PointsEarned: completed * pointsPerQuest,
		Level:        completed/questsPerLevel + 1,
		Streak:       a.Quests.currentStreak(now),
	}
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// recordCompletion extends the streak when the previous completion was
// yesterday, keeps it on the same day and restarts it otherwise.
func (p *questProgress) recordCompletion(now time.Time) {
	today := startOfDay(now)
	switch {
	case p.lastDay.Equal(today):
	case p.lastDay.Equal(today.AddDate(0, 0, -1)):
		p.streak++
	default:
		p.streak = 1
	}
	p.lastDay = today
}

// currentStreak is the stored streak, or 0 once a whole day has passed
// without a completion.
func (p *questProgress) currentStreak(now time.Time) int {
	if p.lastDay.IsZero() || p.lastDay.Before(startOfDay(now).AddDate(0, 0, -1)) {
		return 0
	}
	return p.streak
}

// getQuests returns the quest catalog.
// GET /api/quests.
func (h *Handler) getQuests(c *gin.Context) {
	c.JSON(http.StatusOK, quests)
}

// startQuest makes :index the active quest, replacing any other.
// POST /api/assessments/:id/quests/:index/start.
func (h *Handler) startQuest(c *gin.Context) {
	index, ok := questIndex(c)
	if !ok {
		return
	}

	a, err := h.sessions.update(c.Param("id"), func(a *assessment) error {
		a.Quests.Active = &index
		return nil
	})
	if err != nil {
		apiError(c, http.StatusNotFound, err.Error())
		return
	}

	c.JSON(http.StatusOK, h.newAssessmentResponse(a))
}

// completeQuest marks the active quest :index complete and clears it.
// Completing an already-completed quest changes nothing; completing a quest
// that was never started is a 409.
// POST /api/assessments/:id/quests/:index/complete.
func (h *Handler) completeQuest(c *gin.Context) {
	index, ok := questIndex(c)
	if !ok {
		return
	}

	a, err := h.sessions.update(c.Param("id"), func(a *assessment) error {
		active := a.Quests.Active != nil && *a.Quests.Active == index
		done := slices.Contains(a.Quests.Completed, index)
		if !active && !done {
			return errQuestNotActive
		}
		if !done {
			a.Quests.Completed = append(a.Quests.Completed, index)
			a.Quests.recordCompletion(h.now())
		}
		if active {
			a.Quests.Active = nil
		}
		return nil
	})
	switch {
	case errors.Is(err, errQuestNotActive):
		apiError(c, http.StatusConflict, err.Error())
		return
	case err != nil:
		apiError(c, http.StatusNotFound, err.Error())
		return
	}

	h.log.Info("[completeQuest] quest completed",
		zap.String("id", a.ID),
		zap.String("quest", quests[index].Title),
		zap.Int("completed", len(a.Quests.Completed)),
	)
	c.JSON(http.StatusOK, h.newAssessmentResponse(a))
}

// questIndex parses :index against the catalog, writing a 400 when invalid.
func questIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(quests) {
		apiError(c, http.StatusBadRequest, "quest index must be between 0 and "+strconv.Itoa(len(quests)-1))
		return 0, false
	}
	return index, true
}
