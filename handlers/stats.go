// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/icpc-scoreboard/cliparse"
	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/middleware"
	"github.com/danielhkuo/icpc-scoreboard/models"
)

type StatsHandler struct {
	db  *db.Gateway
	cfg cliparse.Config
}

func NewStatsHandler(g *db.Gateway, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{db: g, cfg: cfg}
}

// SubmissionsByLanguage handles GET /stats/submissions-by-language
func (h *StatsHandler) SubmissionsByLanguage(w http.ResponseWriter, r *http.Request) {
	counts, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.LanguageCount, error) {
		var c models.LanguageCount
		err := s.Scan(&c.Language, &c.Count)
		return c, err
	}, `
		SELECT l.name AS language, COUNT(*) AS count
		FROM Submission s
		JOIN Language l ON s.language_id = l.language_id
		GROUP BY l.name
		ORDER BY count DESC, language
	`)
	if err != nil {
		serverError(w, r, "Failed to load language statistics", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}

// SubmissionsByDay handles GET /stats/submissions-by-day
// Days are calendar dates of the stored timestamps, formatted YYYY-MM-DD.
func (h *StatsHandler) SubmissionsByDay(w http.ResponseWriter, r *http.Request) {
	counts, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.DayCount, error) {
		var c models.DayCount
		err := s.Scan(&c.Day, &c.Count)
		return c, err
	}, `
		SELECT CAST(DATE(submission_time) AS TEXT) AS day, COUNT(*) AS count
		FROM Submission
		GROUP BY day
		ORDER BY day
	`)
	if err != nil {
		serverError(w, r, "Failed to load daily statistics", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}

// CommonErrors handles GET /stats/common-errors
func (h *StatsHandler) CommonErrors(w http.ResponseWriter, r *http.Request) {
	counts, err := db.Query(r.Context(), h.db, scanVerdictCount, `
		SELECT verdict, COUNT(*) AS count
		FROM Submission
		WHERE verdict <> $1
		GROUP BY verdict
		ORDER BY count DESC, verdict
	`, models.VerdictOK)
	if err != nil {
		serverError(w, r, "Failed to load common errors", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, counts)
}

// VerdictCount handles GET /stats/verdict/{verdict}
func (h *StatsHandler) VerdictCount(w http.ResponseWriter, r *http.Request) {
	verdict := r.PathValue("verdict")

	total, _, err := db.QueryOne(r.Context(), h.db, func(s db.Scanner) (int64, error) {
		var n int64
		err := s.Scan(&n)
		return n, err
	}, `SELECT COUNT(*) FROM Submission WHERE verdict = $1`, verdict)
	if err != nil {
		serverError(w, r, "Failed to count verdicts", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VerdictTotal{Verdict: verdict, Count: total})
}

// Leaderboard handles GET /leaderboard
// Teams are ranked by accepted submissions; equal counts keep team id order.
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.LeaderboardEntry, error) {
		var e models.LeaderboardEntry
		err := s.Scan(&e.TeamID, &e.TeamName, &e.InstitutionName, &e.OKCount)
		return e, err
	}, `
		SELECT t.team_id, t.name, i.name, COUNT(*) AS ok_count
		FROM Submission s
		JOIN Team t ON s.team_id = t.team_id
		JOIN Institution i ON t.institution_id = i.institution_id
		WHERE s.verdict = $1
		GROUP BY t.team_id, t.name, i.name
		ORDER BY ok_count DESC, t.team_id
		LIMIT $2
	`, models.VerdictOK, h.cfg.LeaderboardSize)
	if err != nil {
		serverError(w, r, "Failed to build leaderboard", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// TeamsWithoutOK handles GET /teams/no-ok
func (h *StatsHandler) TeamsWithoutOK(w http.ResponseWriter, r *http.Request) {
	teams, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.TeamWithoutOK, error) {
		var t models.TeamWithoutOK
		err := s.Scan(&t.TeamID, &t.TeamName, &t.InstitutionName)
		return t, err
	}, `
		SELECT t.team_id, t.name, i.name
		FROM Team t
		JOIN Institution i ON t.institution_id = i.institution_id
		LEFT JOIN Submission s ON t.team_id = s.team_id AND s.verdict = $1
		GROUP BY t.team_id, t.name, i.name
		HAVING COUNT(s.submission_id) = 0
		ORDER BY t.team_id
	`, models.VerdictOK)
	if err != nil {
		serverError(w, r, "Failed to load teams without accepted submissions", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, teams)
}

func scanVerdictCount(s db.Scanner) (models.VerdictCount, error) {
	var c models.VerdictCount
	err := s.Scan(&c.Verdict, &c.Count)
	return c, err
}
