// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/icpc-scoreboard/cliparse"
	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/middleware"
)

// maxRecentLimit caps ?limit= on GET /submissions/recent.
const maxRecentLimit = 1000

type SubmissionHandler struct {
	db  *db.Gateway
	cfg cliparse.Config
}

func NewSubmissionHandler(g *db.Gateway, cfg cliparse.Config) *SubmissionHandler {
	return &SubmissionHandler{db: g, cfg: cfg}
}

// ListSubmissions handles GET /submissions?language=&institution=&level=
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	stmt, args := db.NewFilter(`
		SELECT s.submission_id, t.name, i.name, t.education_level, l.name,
		       s.problem_code, s.verdict, s.submission_time
		FROM Submission s
		JOIN Team t ON s.team_id = t.team_id
		JOIN Institution i ON t.institution_id = i.institution_id
		JOIN Language l ON s.language_id = l.language_id
	`).
		Equal("l.name", q.Get("language")).
		Equal("i.name", q.Get("institution")).
		Equal("t.education_level", q.Get("level")).
		OrderBy("s.submission_id").
		Build()

	rows, err := db.Query(r.Context(), h.db, scanSubmissionRow, stmt, args...)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// FilterSubmissions handles GET /submissions/filter?institution=&education=&language=&verdict=
func (h *SubmissionHandler) FilterSubmissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	stmt, args := db.NewFilter(`
		SELECT ` + submissionColumns + `,
		       t.name, l.name, i.name, t.education_level
		FROM Submission s
		JOIN Team t ON s.team_id = t.team_id
		JOIN Language l ON s.language_id = l.language_id
		JOIN Institution i ON t.institution_id = i.institution_id
	`).
		Equal("i.name", q.Get("institution")).
		Equal("t.education_level", q.Get("education")).
		Equal("l.name", q.Get("language")).
		Equal("s.verdict", q.Get("verdict")).
		OrderBy("s.submission_time DESC, s.submission_id DESC").
		Build()

	rows, err := db.Query(r.Context(), h.db, scanSubmissionDetail, stmt, args...)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// RecentSubmissions handles GET /submissions/recent?limit=
// A missing, malformed or non-positive limit falls back to the configured
// default.
func (h *SubmissionHandler) RecentSubmissions(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = h.cfg.RecentLimit
	}
	limit = min(limit, maxRecentLimit)

	rows, err := db.Query(r.Context(), h.db, scanSubmissionWithTeam, `
		SELECT `+submissionColumns+`, t.name
		FROM Submission s
		JOIN Team t ON s.team_id = t.team_id
		ORDER BY s.submission_time DESC, s.submission_id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		serverError(w, r, "Failed to load recent submissions", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// TeamSubmissions handles GET /submissions/team/{team_id}
func (h *SubmissionHandler) TeamSubmissions(w http.ResponseWriter, r *http.Request) {
	const msg = "Failed to load team submissions"

	teamID, err := pathID(r, "team_id")
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	rows, err := db.Query(r.Context(), h.db, scanSubmission, `
		SELECT `+submissionColumns+`
		FROM Submission s
		WHERE s.team_id = $1
		ORDER BY s.submission_id DESC
	`, teamID)
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// LanguageSubmissions handles GET /submissions/lang/{language}
func (h *SubmissionHandler) LanguageSubmissions(w http.ResponseWriter, r *http.Request) {
	rows, err := db.Query(r.Context(), h.db, scanSubmission, `
		SELECT `+submissionColumns+`
		FROM Submission s
		JOIN Language l ON s.language_id = l.language_id
		WHERE l.name `+h.db.ILike()+` $1
		ORDER BY s.submission_id
	`, r.PathValue("language"))
	if err != nil {
		serverError(w, r, "Failed to filter by language", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// InstitutionResults handles GET /results/institution/{institution}
func (h *SubmissionHandler) InstitutionResults(w http.ResponseWriter, r *http.Request) {
	rows, err := db.Query(r.Context(), h.db, scanSubmission, `
		SELECT `+submissionColumns+`
		FROM Submission s
		JOIN Team t ON s.team_id = t.team_id
		JOIN Institution i ON t.institution_id = i.institution_id
		WHERE i.name `+h.db.ILike()+` $1
		ORDER BY s.submission_id
	`, r.PathValue("institution"))
	if err != nil {
		serverError(w, r, "Failed to load institution results", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}

// EducationLevelResults handles GET /results/education-level/{level}
func (h *SubmissionHandler) EducationLevelResults(w http.ResponseWriter, r *http.Request) {
	rows, err := db.Query(r.Context(), h.db, scanSubmission, `
		SELECT `+submissionColumns+`
		FROM Submission s
		JOIN Team t ON s.team_id = t.team_id
		WHERE t.education_level `+h.db.ILike()+` $1
		ORDER BY s.submission_id
	`, r.PathValue("level"))
	if err != nil {
		serverError(w, r, "Failed to load education level results", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}
