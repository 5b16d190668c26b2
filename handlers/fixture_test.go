// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/testutil"
)

// contest is a small, fixed scoreboard shared by the handler tests.
//
//	teams:       Alpha (KPI, bachelor), Beta (LNU, master), Gamma (LNU, bachelor), Sigma #7 (KPI, bachelor)
//	languages:   C++, Python
//	submissions: day 1: Alpha A1 WA, Sigma A1 OK, Alpha A1 OK
//	             day 2: Beta B2 OK, Alpha B2 TLE, Sigma C3 OK
type contest struct {
	kpi, lnu           int64
	cpp, python        int64
	alpha, beta, gamma int64
	sigma              int64
	subs               []int64
	day1               time.Time
}

func seedContest(t *testing.T, g *db.Gateway) contest {
	t.Helper()

	c := contest{day1: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)}
	c.kpi = testutil.CreateTestInstitution(t, g, "KPI")
	c.lnu = testutil.CreateTestInstitution(t, g, "LNU")
	c.cpp = testutil.CreateTestLanguage(t, g, "C++")
	c.python = testutil.CreateTestLanguage(t, g, "Python")
	c.alpha = testutil.CreateTestTeam(t, g, "Alpha", c.kpi, "bachelor")
	c.beta = testutil.CreateTestTeam(t, g, "Beta", c.lnu, "master")
	c.gamma = testutil.CreateTestTeam(t, g, "Gamma", c.lnu, "bachelor")
	c.sigma = testutil.CreateTestTeamWithID(t, g, 7, "Sigma", c.kpi, "bachelor")

	day2 := c.day1.Add(24 * time.Hour)
	c.subs = []int64{
		testutil.CreateTestSubmission(t, g, c.alpha, c.cpp, "A1", "WA", c.day1),
		testutil.CreateTestSubmission(t, g, c.sigma, c.cpp, "A1", "OK", c.day1.Add(10*time.Minute)),
		testutil.CreateTestSubmission(t, g, c.alpha, c.python, "A1", "OK", c.day1.Add(20*time.Minute)),
		testutil.CreateTestSubmission(t, g, c.beta, c.python, "B2", "OK", day2),
		testutil.CreateTestSubmission(t, g, c.alpha, c.cpp, "B2", "TLE", day2.Add(5*time.Minute)),
		testutil.CreateTestSubmission(t, g, c.sigma, c.python, "C3", "OK", day2.Add(10*time.Minute)),
	}
	return c
}

// assertEmptyObject checks the body is exactly {}.
func assertEmptyObject(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	if body := strings.TrimSpace(w.Body.String()); body != "{}" {
		t.Errorf("Expected empty object, got %s", body)
	}
}
