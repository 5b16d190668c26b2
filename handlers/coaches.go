// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/middleware"
	"github.com/danielhkuo/icpc-scoreboard/models"
)

type CoachHandler struct {
	db *db.Gateway
}

func NewCoachHandler(g *db.Gateway) *CoachHandler {
	return &CoachHandler{db: g}
}

// ListCoaches handles GET /coaches
func (h *CoachHandler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	coaches, err := db.Query(r.Context(), h.db, scanCoachWithTeam, `
		SELECT `+coachColumns+`, t.name
		FROM Coach c
		JOIN Team t ON c.team_id = t.team_id
		ORDER BY c.coach_id
	`)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, coaches)
}

// GetTeamCoach handles GET /coaches/{team_id}
// A team has at most one coach; the lowest id wins if the data says otherwise.
func (h *CoachHandler) GetTeamCoach(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "team_id")
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	coach, found, err := db.QueryOne(r.Context(), h.db, scanCoach, `
		SELECT `+coachColumns+`
		FROM Coach c
		WHERE c.team_id = $1
		ORDER BY c.coach_id
		LIMIT 1
	`, teamID)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	writeOne(w, coach, found)
}

// GetCoach handles GET /coaches/id/{id}
func (h *CoachHandler) GetCoach(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	coach, found, err := db.QueryOne(r.Context(), h.db, scanCoachWithTeam, `
		SELECT `+coachColumns+`, t.name
		FROM Coach c
		JOIN Team t ON c.team_id = t.team_id
		WHERE c.coach_id = $1
	`, id)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	writeOne(w, coach, found)
}

// CreateCoach handles POST /coaches
func (h *CoachHandler) CreateCoach(w http.ResponseWriter, r *http.Request) {
	const msg = "Failed to add coach"

	var req models.PersonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		serverError(w, r, msg, err)
		return
	}

	coach, _, err := db.QueryOne(r.Context(), h.db, scanCoach, `
		INSERT INTO Coach (name, email, team_id)
		VALUES ($1, $2, $3)
		RETURNING coach_id, name, email, team_id
	`, req.Name, req.Email, req.TeamID)
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	slog.Info("coach created", "coach_id", coach.ID, "team_id", coach.TeamID)

	middleware.JSONResponse(w, http.StatusOK, coach)
}

// UpdateCoach handles PUT /coaches/{id}
func (h *CoachHandler) UpdateCoach(w http.ResponseWriter, r *http.Request) {
	const msg = "Failed to update coach"

	id, err := pathID(r, "id")
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	var req models.PersonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		serverError(w, r, msg, err)
		return
	}

	coach, found, err := db.QueryOne(r.Context(), h.db, scanCoach, `
		UPDATE Coach
		SET name = $1, email = $2, team_id = $3
		WHERE coach_id = $4
		RETURNING coach_id, name, email, team_id
	`, req.Name, req.Email, req.TeamID, id)
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	if found {
		slog.Info("coach updated", "coach_id", id)
	}

	writeOne(w, coach, found)
}

// DeleteCoach handles DELETE /coaches/{id}
func (h *CoachHandler) DeleteCoach(w http.ResponseWriter, r *http.Request) {
	const msg = "Failed to delete coach"

	id, err := pathID(r, "id")
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	n, err := h.db.Exec(r.Context(), `DELETE FROM Coach WHERE coach_id = $1`, id)
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	slog.Info("coach deleted", "coach_id", id, "rows", n)

	w.WriteHeader(http.StatusNoContent)
}
