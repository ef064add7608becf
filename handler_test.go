package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestRequestLogger_Path logs the route pattern for matched routes and the
// raw URL path when nothing matched.
func TestRequestLogger_Path(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	router, h := setupTest(t)
	h.log = zap.New(core)
	router = newRouter(h)

	cases := []struct {
		name       string
		path       string
		wantStatus int
		wantPath   string
	}{
		{name: "matched route", path: "/api/assessments/abc/dashboard", wantStatus: http.StatusNotFound, wantPath: "/api/assessments/:id/dashboard"},
		{name: "unmatched route", path: "/api/nowhere", wantStatus: http.StatusNotFound, wantPath: "/api/nowhere"},
		{name: "health", path: "/healthz", wantStatus: http.StatusOK, wantPath: "/healthz"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			logs.TakeAll()
			w := doRequest(router, "GET", tc.path, "")
			require.Equal(t, tc.wantStatus, w.Code)

			entries := logs.FilterMessage("request completed").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tc.wantPath, fields["path"])
			assert.EqualValues(t, tc.wantStatus, fields["status"])
		})
	}
}

// TestAssessmentResponse_CamelCaseKeys checks the envelope uses the same key
// style as the scored result it wraps.
func TestAssessmentResponse_CamelCaseKeys(t *testing.T) {
	router, _ := setupTest(t)
	a := createAssessmentFor(t, router, `{}`)
	doRequest(router, "POST", questPath(a.ID, "0", "start"), "")

	w := doRequest(router, "GET", "/api/assessments/"+a.ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	for _, key := range []string{"id", "createdAt", "metrics", "results", "quests", "questStats"} {
		assert.Contains(t, body, key)
	}
	assert.NotContains(t, body, "created_at")
	assert.NotContains(t, body, "quest_stats")

	var progress map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["quests"], &progress))
	assert.Contains(t, progress, "activeQuest")
	assert.Contains(t, progress, "completedQuests")

	var stats map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["questStats"], &stats))
	assert.Contains(t, stats, "pointsEarned")
	assert.Contains(t, stats, "currentScore")
	assert.Contains(t, stats, "level")
	assert.Contains(t, stats, "streak")
}
