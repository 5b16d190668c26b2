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

type ParticipantHandler struct {
	db *db.Gateway
}

func NewParticipantHandler(g *db.Gateway) *ParticipantHandler {
	return &ParticipantHandler{db: g}
}

// ListParticipants handles GET /participants
func (h *ParticipantHandler) ListParticipants(w http.ResponseWriter, r *http.Request) {
	participants, err := db.Query(r.Context(), h.db, scanParticipantWithTeam, `
		SELECT `+participantColumns+`, t.name
		FROM Participant p
		JOIN Team t ON p.team_id = t.team_id
		ORDER BY p.participant_id
	`)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, participants)
}

// ListTeamParticipants handles GET /participants/{team_id}
func (h *ParticipantHandler) ListTeamParticipants(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathID(r, "team_id")
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	participants, err := db.Query(r.Context(), h.db, scanParticipant, `
		SELECT `+participantColumns+`
		FROM Participant p
		WHERE p.team_id = $1
		ORDER BY p.participant_id
	`, teamID)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, participants)
}

// GetParticipant handles GET /participants/id/{id}
func (h *ParticipantHandler) GetParticipant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	participant, found, err := db.QueryOne(r.Context(), h.db, scanParticipantWithTeam, `
		SELECT `+participantColumns+`, t.name
		FROM Participant p
		JOIN Team t ON p.team_id = t.team_id
		WHERE p.participant_id = $1
	`, id)
	if err != nil {
		serverError(w, r, msgServerError, err)
		return
	}

	writeOne(w, participant, found)
}

// CreateParticipant handles POST /participants
func (h *ParticipantHandler) CreateParticipant(w http.ResponseWriter, r *http.Request) {
	const msg = "Failed to add participant"

	var req models.PersonRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		serverError(w, r, msg, err)
		return
	}

	participant, _, err := db.QueryOne(r.Context(), h.db, scanParticipant, `
		INSERT INTO Participant (name, email, team_id)
		VALUES ($1, $2, $3)
		RETURNING participant_id, name, email, team_id
	`, req.Name, req.Email, req.TeamID)
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	slog.Info("participant created", "participant_id", participant.ID, "team_id", participant.TeamID)

	middleware.JSONResponse(w, http.StatusOK, participant)
}

// UpdateParticipant handles PUT /participants/{id}
func (h *ParticipantHandler) UpdateParticipant(w http.ResponseWriter, r *http.Request) {
	const msg = "Failed to update participant"

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

	participant, found, err := db.QueryOne(r.Context(), h.db, scanParticipant, `
		UPDATE Participant
		SET name = $1, email = $2, team_id = $3
		WHERE participant_id = $4
		RETURNING participant_id, name, email, team_id
	`, req.Name, req.Email, req.TeamID, id)
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	if found {
		slog.Info("participant updated", "participant_id", id)
	}

	writeOne(w, participant, found)
}

// DeleteParticipant handles DELETE /participants/{id}
func (h *ParticipantHandler) DeleteParticipant(w http.ResponseWriter, r *http.Request) {
	const msg = "Failed to delete participant"

	id, err := pathID(r, "id")
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	n, err := h.db.Exec(r.Context(), `DELETE FROM Participant WHERE participant_id = $1`, id)
	if err != nil {
		serverError(w, r, msg, err)
		return
	}

	slog.Info("participant deleted", "participant_id", id, "rows", n)

	w.WriteHeader(http.StatusNoContent)
}
