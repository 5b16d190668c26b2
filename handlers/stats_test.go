// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/icpc-scoreboard/models"
	"github.com/danielhkuo/icpc-scoreboard/testutil"
)

func TestSubmissionsByLanguage(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewStatsHandler(g, testutil.GetTestConfig())
	c := seedContest(t, g)
	testutil.CreateTestSubmission(t, g, c.gamma, c.python, "A1", "WA", c.day1.Add(time.Hour))

	w := httptest.NewRecorder()
	handler.SubmissionsByLanguage(w, httptest.NewRequest("GET", "/stats/submissions-by-language", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var counts []models.LanguageCount
	testutil.AssertJSON(t, w, &counts)

	if len(counts) != 2 {
		t.Fatalf("Expected 2 languages, got %+v", counts)
	}
	if counts[0].Language != "Python" || counts[0].Count != 4 || counts[1].Language != "C++" || counts[1].Count != 3 {
		t.Errorf("Unexpected counts: %+v", counts)
	}
}

func TestSubmissionsByDay(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewStatsHandler(g, testutil.GetTestConfig())
	seedContest(t, g)

	w := httptest.NewRecorder()
	handler.SubmissionsByDay(w, httptest.NewRequest("GET", "/stats/submissions-by-day", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var days []models.DayCount
	testutil.AssertJSON(t, w, &days)

	want := []models.DayCount{{Day: "2025-05-01", Count: 3}, {Day: "2025-05-02", Count: 3}}
	if len(days) != len(want) {
		t.Fatalf("Expected %+v, got %+v", want, days)
	}
	for i := range want {
		if days[i] != want[i] {
			t.Errorf("Position %d: expected %+v, got %+v", i, want[i], days[i])
		}
	}
}

func TestCommonErrors(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewStatsHandler(g, testutil.GetTestConfig())
	c := seedContest(t, g)
	testutil.CreateTestSubmission(t, g, c.beta, c.cpp, "C3", "WA", c.day1.Add(2*time.Hour))

	w := httptest.NewRecorder()
	handler.CommonErrors(w, httptest.NewRequest("GET", "/stats/common-errors", nil))

	var counts []models.VerdictCount
	testutil.AssertJSON(t, w, &counts)

	want := []models.VerdictCount{{Verdict: "WA", Count: 2}, {Verdict: "TLE", Count: 1}}
	if len(counts) != len(want) {
		t.Fatalf("Expected %+v, got %+v", want, counts)
	}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("Position %d: expected %+v, got %+v", i, want[i], counts[i])
		}
	}
}

func TestVerdictCount(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewStatsHandler(g, testutil.GetTestConfig())
	seedContest(t, g)

	testCases := []struct {
		verdict string
		want    int64
	}{
		{"OK", 4},
		{"WA", 1},
		{"TLE", 1},
		{"MLE", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.verdict, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/stats/verdict/"+tc.verdict, nil)
			req.SetPathValue("verdict", tc.verdict)
			w := httptest.NewRecorder()
			handler.VerdictCount(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)
			var got models.VerdictTotal
			testutil.AssertJSON(t, w, &got)
			if got.Verdict != tc.verdict || got.Count != tc.want {
				t.Errorf("Expected {%s %d}, got %+v", tc.verdict, tc.want, got)
			}
		})
	}
}

func TestLeaderboard_Ordering(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewStatsHandler(g, testutil.GetTestConfig())
	c := seedContest(t, g)

	w := httptest.NewRecorder()
	handler.Leaderboard(w, httptest.NewRequest("GET", "/leaderboard", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var entries []models.LeaderboardEntry
	testutil.AssertJSON(t, w, &entries)

	want := []models.LeaderboardEntry{
		{TeamID: c.sigma, TeamName: "Sigma", InstitutionName: "KPI", OKCount: 2},
		{TeamID: c.alpha, TeamName: "Alpha", InstitutionName: "KPI", OKCount: 1},
		{TeamID: c.beta, TeamName: "Beta", InstitutionName: "LNU", OKCount: 1},
	}
	if len(entries) != len(want) {
		t.Fatalf("Expected %+v, got %+v", want, entries)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Position %d: expected %+v, got %+v", i, want[i], entries[i])
		}
	}
}

func TestLeaderboard_NonIncreasingAndLimited(t *testing.T) {
	g := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	cfg.LeaderboardSize = 5
	handler := NewStatsHandler(g, cfg)

	inst := testutil.CreateTestInstitution(t, g, "UCU")
	lang := testutil.CreateTestLanguage(t, g, "Go")
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// Team i gets (i*7)%9 accepted submissions, so counts are scrambled
	for i := 0; i < 8; i++ {
		team := testutil.CreateTestTeam(t, g, fmt.Sprintf("Team %d", i), inst, "bachelor")
		for j := 0; j < (i*7)%9; j++ {
			testutil.CreateTestSubmission(t, g, team, lang, fmt.Sprintf("P%d", j), "OK", start.Add(time.Duration(i*10+j)*time.Minute))
		}
		testutil.CreateTestSubmission(t, g, team, lang, "Z", "WA", start)
	}

	w := httptest.NewRecorder()
	handler.Leaderboard(w, httptest.NewRequest("GET", "/leaderboard", nil))

	var entries []models.LeaderboardEntry
	testutil.AssertJSON(t, w, &entries)

	if len(entries) != cfg.LeaderboardSize {
		t.Fatalf("Expected %d entries, got %d", cfg.LeaderboardSize, len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].OKCount > entries[i-1].OKCount {
			t.Errorf("Entry %d (%d) ranks after entry %d (%d)", i, entries[i].OKCount, i-1, entries[i-1].OKCount)
		}
	}
	if entries[0].OKCount != 8 {
		t.Errorf("Expected top team with 8 accepted, got %d", entries[0].OKCount)
	}
}

func TestTeamsWithoutOK(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewStatsHandler(g, testutil.GetTestConfig())
	c := seedContest(t, g)

	// Only failed attempts still counts as no OK
	testutil.CreateTestSubmission(t, g, c.gamma, c.cpp, "A1", "WA", c.day1)

	w := httptest.NewRecorder()
	handler.TeamsWithoutOK(w, httptest.NewRequest("GET", "/teams/no-ok", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var teams []models.TeamWithoutOK
	testutil.AssertJSON(t, w, &teams)

	if len(teams) != 1 || teams[0].TeamID != c.gamma || teams[0].TeamName != "Gamma" || teams[0].InstitutionName != "LNU" {
		t.Errorf("Expected only Gamma, got %+v", teams)
	}
}

func TestStats_EmptyStore(t *testing.T) {
	g := testutil.SetupTestDB(t)
	handler := NewStatsHandler(g, testutil.GetTestConfig())

	endpoints := map[string]http.HandlerFunc{
		"/stats/submissions-by-language": handler.SubmissionsByLanguage,
		"/stats/submissions-by-day":      handler.SubmissionsByDay,
		"/stats/common-errors":           handler.CommonErrors,
		"/leaderboard":                   handler.Leaderboard,
		"/teams/no-ok":                   handler.TeamsWithoutOK,
	}

	for path, h := range endpoints {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest("GET", path, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			var rows []map[string]any
			testutil.AssertJSON(t, w, &rows)
			if rows == nil || len(rows) != 0 {
				t.Errorf("Expected [], got %v", rows)
			}
		})
	}
}
