// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/icpc-scoreboard/models"
	"github.com/danielhkuo/icpc-scoreboard/testutil"
)

func TestGetTeamCoach(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewCoachHandler(g)
	c := seedContest(t, g)

	coachID := testutil.CreateTestCoach(t, g, "Petro", "petro@example.com", c.sigma)

	t.Run("team with coach", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/coaches/7", nil)
		req.SetPathValue("team_id", "7")
		w := httptest.NewRecorder()
		handler.GetTeamCoach(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var coach models.Coach
		testutil.AssertJSON(t, w, &coach)
		if coach.ID != coachID || coach.Name != "Petro" || coach.TeamID != c.sigma {
			t.Errorf("Unexpected coach: %+v", coach)
		}
	})

	t.Run("team without coach", func(t *testing.T) {
		id := strconv.FormatInt(c.gamma, 10)
		req := httptest.NewRequest("GET", "/coaches/"+id, nil)
		req.SetPathValue("team_id", id)
		w := httptest.NewRecorder()
		handler.GetTeamCoach(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		assertEmptyObject(t, w)
	})
}

func TestCoachLifecycle(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewCoachHandler(g)
	c := seedContest(t, g)

	// Create
	w := httptest.NewRecorder()
	handler.CreateCoach(w, testutil.MakeRequest("POST", "/coaches",
		models.PersonRequest{Name: "Iryna", Email: "iryna@example.com", TeamID: c.alpha}, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var created models.Coach
	testutil.AssertJSON(t, w, &created)
	if created.ID == 0 || created.Name != "Iryna" || created.TeamID != c.alpha {
		t.Fatalf("Unexpected created coach: %+v", created)
	}
	idStr := strconv.FormatInt(created.ID, 10)

	// List includes team name
	w = httptest.NewRecorder()
	handler.ListCoaches(w, httptest.NewRequest("GET", "/coaches", nil))
	var coaches []models.Coach
	testutil.AssertJSON(t, w, &coaches)
	if len(coaches) != 1 || coaches[0].TeamName == nil || *coaches[0].TeamName != "Alpha" {
		t.Errorf("Unexpected coach list: %+v", coaches)
	}

	// Update
	req := testutil.MakeRequest("PUT", "/coaches/"+idStr,
		models.PersonRequest{Name: "Iryna K.", Email: "ik@example.com", TeamID: c.beta}, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	handler.UpdateCoach(w, req)

	var updated models.Coach
	testutil.AssertJSON(t, w, &updated)
	if updated.Name != "Iryna K." || updated.Email != "ik@example.com" || updated.TeamID != c.beta {
		t.Errorf("Update not applied: %+v", updated)
	}

	// Get by id
	req = httptest.NewRequest("GET", "/coaches/id/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	handler.GetCoach(w, req)

	var fetched models.Coach
	testutil.AssertJSON(t, w, &fetched)
	if fetched.ID != created.ID || fetched.TeamName == nil || *fetched.TeamName != "Beta" {
		t.Errorf("Unexpected fetched coach: %+v", fetched)
	}

	// Delete
	req = httptest.NewRequest("DELETE", "/coaches/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	handler.DeleteCoach(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	req = httptest.NewRequest("GET", "/coaches/id/"+idStr, nil)
	req.SetPathValue("id", idStr)
	w = httptest.NewRecorder()
	handler.GetCoach(w, req)
	assertEmptyObject(t, w)
}

func TestCreateCoach_UnknownTeam(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewCoachHandler(g)

	w := httptest.NewRecorder()
	handler.CreateCoach(w, testutil.MakeRequest("POST", "/coaches",
		models.PersonRequest{Name: "Ghost", Email: "ghost@example.com", TeamID: 404}, nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Failed to add coach" {
		t.Errorf("Expected fixed message, got %q", resp.Message)
	}
}
