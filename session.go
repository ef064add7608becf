package main

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lg/vitality-twin-api/vitality"
)

var errSessionNotFound = errors.New("assessment not found")

// assessment is one scored questionnaire plus the quest progress made
// against it. Metrics and Result never change after creation.
type assessment struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"createdAt"`
	Metrics   vitality.HealthMetrics `json:"metrics"`
	Result    vitality.Result        `json:"results"`
	Quests    questProgress          `json:"quests"`

	touchedAt time.Time
}

// questProgress tracks the quest board for one assessment.
type questProgress struct {
	Active    *int  `json:"activeQuest"`
	Completed []int `json:"completedQuests"`

	// streak counts consecutive days, ending on lastDay, with a completion.
	streak  int
	lastDay time.Time
}

// clone returns a copy that shares nothing mutable with a.
func (a *assessment) clone() assessment {
	out := *a
	out.Quests.Completed = slices.Clone(a.Quests.Completed)
	if a.Quests.Active != nil {
		active := *a.Quests.Active
		out.Quests.Active = &active
	}
	return out
}

// sessionStore keeps assessments in memory for the life of the process.
// Entries idle for longer than ttl are removed by run.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*assessment
	ttl      time.Duration
	now      func() time.Time
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*assessment),
		ttl:      ttl,
		now:      time.Now,
	}
}

// create stores a freshly scored assessment under a new random ID.
func (s *sessionStore) create(m vitality.HealthMetrics, r vitality.Result) assessment {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	a := &assessment{
		ID:        uuid.New().String(),
		CreatedAt: now,
		Metrics:   m,
		Result:    r,
		Quests:    questProgress{Completed: []int{}},
		touchedAt: now,
	}
	s.sessions[a.ID] = a
	return a.clone()
}

// get returns a copy of the assessment and refreshes its idle timer.
func (s *sessionStore) get(id string) (assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.sessions[id]
	if !ok {
		return assessment{}, errSessionNotFound
	}
	a.touchedAt = s.now()
	return a.clone(), nil
}

// update applies fn to the stored assessment under the lock. fn must only
// change quest progress. If fn returns an error nothing is refreshed.
func (s *sessionStore) update(id string, fn func(a *assessment) error) (assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.sessions[id]
	if !ok {
		return assessment{}, errSessionNotFound
	}
	if err := fn(a); err != nil {
		return assessment{}, err
	}
	a.touchedAt = s.now()
	return a.clone(), nil
}

// delete discards the assessment. Reports whether it existed.
func (s *sessionStore) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// sweep drops every assessment idle for longer than ttl and returns how many
// were dropped.
func (s *sessionStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, a := range s.sessions {
		if a.touchedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// run sweeps every interval until ctx is cancelled.
func (s *sessionStore) run(ctx context.Context, interval time.Duration, log *zap.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.sweep(); n > 0 {
				log.Debug("expired idle assessments", zap.Int("removed", n), zap.Int("remaining", s.count()))
			}
		}
	}
}
