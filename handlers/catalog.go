// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/middleware"
	"github.com/danielhkuo/icpc-scoreboard/models"
)

// CatalogHandler serves the reference tables: institutions, teams and
// languages.
type CatalogHandler struct {
	db *db.Gateway
}

func NewCatalogHandler(g *db.Gateway) *CatalogHandler {
	return &CatalogHandler{db: g}
}

// ListInstitutions handles GET /institutions
func (h *CatalogHandler) ListInstitutions(w http.ResponseWriter, r *http.Request) {
	institutions, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.Institution, error) {
		var i models.Institution
		err := s.Scan(&i.ID, &i.Name)
		return i, err
	}, `SELECT institution_id, name FROM Institution ORDER BY name`)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, institutions)
}

// ListTeams handles GET /teams
func (h *CatalogHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.Team, error) {
		var t models.Team
		err := s.Scan(&t.ID, &t.Name, &t.InstitutionID, &t.EducationLevel, &t.InstitutionName)
		return t, err
	}, `
		SELECT t.team_id, t.name, t.institution_id, t.education_level, i.name
		FROM Team t
		JOIN Institution i ON t.institution_id = i.institution_id
		ORDER BY t.name, t.team_id
	`)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, teams)
}

// ListLanguages handles GET /languages
func (h *CatalogHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.Language, error) {
		var l models.Language
		err := s.Scan(&l.ID, &l.Name)
		return l, err
	}, `SELECT language_id, name FROM Language ORDER BY name`)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, languages)
}

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchTeams handles GET /teams/search?q=
// Matches q anywhere in the team or institution name, ignoring case. An
// empty q lists every team.
func (h *CatalogHandler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	pattern := "%" + likeEscaper.Replace(r.URL.Query().Get("q")) + "%"

	teams, err := db.Query(r.Context(), h.db, func(s db.Scanner) (models.TeamSearchResult, error) {
		var t models.TeamSearchResult
		err := s.Scan(&t.TeamID, &t.Name, &t.Institution)
		return t, err
	}, `
		SELECT t.team_id, t.name, i.name
		FROM Team t
		JOIN Institution i ON t.institution_id = i.institution_id
		WHERE t.name `+h.db.ILike()+` $1 ESCAPE '\'
		   OR i.name `+h.db.ILike()+` $1 ESCAPE '\'
		ORDER BY t.name, t.team_id
	`, pattern)
	if err != nil {
		serverError(w, r, "Failed to search teams", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, teams)
}
