// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/metrics"
	"github.com/danielhkuo/icpc-scoreboard/middleware"
	"github.com/danielhkuo/icpc-scoreboard/models"
)

// firstSolves selects, for every problem with an accepted submission and no
// award yet, the earliest accepted submission. Equal timestamps go to the
// lower submission id so exactly one row exists per problem. $1 is the
// accepted verdict.
const firstSolves = `
		SELECT s.problem_code, s.team_id, s.submission_id
		FROM Submission s
		WHERE s.verdict = $1
		  AND s.submission_id = (
		      SELECT f.submission_id
		      FROM Submission f
		      WHERE f.problem_code = s.problem_code AND f.verdict = $1
		      ORDER BY f.submission_time, f.submission_id
		      LIMIT 1
		  )
		  AND s.problem_code NOT IN (SELECT problem_code FROM Kulki)`

// AwardHandler manages balloons ("kulki"): one per problem, for the team
// that solved it first.
type AwardHandler struct {
	db      *db.Gateway
	metrics *metrics.Manager
}

func NewAwardHandler(g *db.Gateway, m *metrics.Manager) *AwardHandler {
	return &AwardHandler{db: g, metrics: m}
}

// ListAwards handles GET /kulki
func (h *AwardHandler) ListAwards(w http.ResponseWriter, r *http.Request) {
	awards, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.Award, error) {
		var a models.Award
		err := s.Scan(&a.ProblemCode, &a.TeamID, &a.TeamName, &a.SubmissionID, &a.AwardedAt)
		return a, err
	}, `
		SELECT k.problem_code, k.team_id, t.name, k.submission_id, k.awarded_at
		FROM Kulki k
		JOIN Team t ON t.team_id = k.team_id
		ORDER BY k.awarded_at, k.problem_code
	`)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, awards)
}

// DetectAwards handles GET /kulki/new
// Read-only: reports what POST /kulki/award would insert.
func (h *AwardHandler) DetectAwards(w http.ResponseWriter, r *http.Request) {
	candidates, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.AwardCandidate, error) {
		var c models.AwardCandidate
		err := s.Scan(&c.ProblemCode, &c.TeamID, &c.SubmissionID)
		return c, err
	}, firstSolves+`
		ORDER BY s.problem_code`, models.VerdictOK)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, candidates)
}

// AssignAwards handles POST /kulki/award
// Inserts every detected first solve. Safe to repeat: problems that already
// have a balloon are skipped, including ones awarded by a concurrent call.
func (h *AwardHandler) AssignAwards(w http.ResponseWriter, r *http.Request) {
	awarded, err := h.db.Exec(r.Context(), `
		INSERT INTO Kulki (problem_code, team_id, submission_id)`+firstSolves+`
		ON CONFLICT (problem_code) DO NOTHING
	`, models.VerdictOK)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	h.metrics.RecordAwards(awarded)
	slog.Info("kulki assigned", "awarded", awarded)

	middleware.JSONResponse(w, http.StatusOK, models.AssignAwardsResponse{
		Message: "Kulki assigned",
		Awarded: awarded,
	})
}
