// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/danielhkuo/icpc-scoreboard/models"
	"github.com/danielhkuo/icpc-scoreboard/testutil"
)

// TestContestDayWorkflow walks an operator through a contest:
// 1. Register a participant and a coach
// 2. Submissions arrive
// 3. Check the leaderboard
// 4. Hand out balloons
// 5. Late submissions arrive, balloons are handed out again
// 6. Fix a typo in the participant, then remove them
func TestContestDayWorkflow(t *testing.T) {
	g := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()

	participants := NewParticipantHandler(g)
	coaches := NewCoachHandler(g)
	stats := NewStatsHandler(g, cfg)
	awards := NewAwardHandler(g, nil)

	inst := testutil.CreateTestInstitution(t, g, "Kharkiv NURE")
	lang := testutil.CreateTestLanguage(t, g, "Java")
	red := testutil.CreateTestTeam(t, g, "Red", inst, "bachelor")
	blue := testutil.CreateTestTeam(t, g, "Blue", inst, "master")

	// Step 1: Register people
	w := httptest.NewRecorder()
	participants.CreateParticipant(w, testutil.MakeRequest("POST", "/participants",
		models.PersonRequest{Name: "Taras Shevhcenko", Email: "taras@example.com", TeamID: red}, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 1 - Create participant failed: %d - %s", w.Code, w.Body.String())
	}
	var participant models.Participant
	testutil.AssertJSON(t, w, &participant)

	w = httptest.NewRecorder()
	coaches.CreateCoach(w, testutil.MakeRequest("POST", "/coaches",
		models.PersonRequest{Name: "Lesya", Email: "lesya@example.com", TeamID: red}, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("Step 1 - Create coach failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 2: Submissions
	start := time.Date(2025, 10, 4, 9, 0, 0, 0, time.UTC)
	testutil.CreateTestSubmission(t, g, red, lang, "A", "OK", start.Add(5*time.Minute))
	testutil.CreateTestSubmission(t, g, blue, lang, "A", "OK", start.Add(7*time.Minute))
	testutil.CreateTestSubmission(t, g, blue, lang, "B", "OK", start.Add(9*time.Minute))
	testutil.CreateTestSubmission(t, g, red, lang, "B", "RE", start.Add(11*time.Minute))

	// Step 3: Leaderboard
	w = httptest.NewRecorder()
	stats.Leaderboard(w, httptest.NewRequest("GET", "/leaderboard", nil))
	var board []models.LeaderboardEntry
	testutil.AssertJSON(t, w, &board)
	if len(board) != 2 || board[0].TeamID != blue || board[0].OKCount != 2 {
		t.Fatalf("Step 3 - Unexpected leaderboard: %+v", board)
	}

	// Step 4: Balloons
	w = httptest.NewRecorder()
	awards.AssignAwards(w, httptest.NewRequest("POST", "/kulki/award", nil))
	var resp models.AssignAwardsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Awarded != 2 {
		t.Fatalf("Step 4 - Expected 2 balloons, got %d", resp.Awarded)
	}

	w = httptest.NewRecorder()
	awards.ListAwards(w, httptest.NewRequest("GET", "/kulki", nil))
	var given []models.Award
	testutil.AssertJSON(t, w, &given)
	owners := map[string]int64{}
	for _, a := range given {
		owners[a.ProblemCode] = a.TeamID
	}
	if owners["A"] != red || owners["B"] != blue {
		t.Errorf("Step 4 - Wrong balloon owners: %v", owners)
	}

	// Step 5: Late submissions
	testutil.CreateTestSubmission(t, g, red, lang, "C", "OK", start.Add(time.Hour))
	testutil.CreateTestSubmission(t, g, red, lang, "B", "OK", start.Add(time.Hour))

	w = httptest.NewRecorder()
	awards.AssignAwards(w, httptest.NewRequest("POST", "/kulki/award", nil))
	testutil.AssertJSON(t, w, &resp)
	if resp.Awarded != 1 {
		t.Errorf("Step 5 - Expected 1 new balloon for C, got %d", resp.Awarded)
	}

	// Step 6: Update and delete the participant
	idStr := strconv.FormatInt(participant.ID, 10)
	req := testutil.MakeRequest("PUT", "/participants/"+idStr,
		models.PersonRequest{Name: "Taras Shevchenko", Email: "taras@example.com", TeamID: red}, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	participants.UpdateParticipant(w, req)
	var updated models.Participant
	testutil.AssertJSON(t, w, &updated)
	if updated.Name != "Taras Shevchenko" {
		t.Errorf("Step 6 - Update not applied: %+v", updated)
	}

	req = httptest.NewRequest("DELETE", "/participants/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	participants.DeleteParticipant(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	req = httptest.NewRequest("GET", "/participants/id/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	participants.GetParticipant(w, req)
	assertEmptyObject(t, w)
}
