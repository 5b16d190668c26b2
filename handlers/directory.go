// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/icpc-scoreboard/middleware"
	"github.com/danielhkuo/icpc-scoreboard/models"
)

// Directory lists the read routes offered by the UI, in display order.
// Placeholders use the :name form and are filled positionally by clients.
var Directory = []models.RouteEntry{
	{Label: "Teams", Value: "/teams"},
	{Label: "Participants", Value: "/participants"},
	{Label: "Coaches", Value: "/coaches"},
	{Label: "Submissions", Value: "/submissions"},
	{Label: "Programming languages", Value: "/languages"},
	{Label: "Institutions", Value: "/institutions"},
	{Label: "Team participants", Value: "/participants/:team_id"},
	{Label: "Team coach", Value: "/coaches/:team_id"},
	{Label: "Submissions by language", Value: "/stats/submissions-by-language"},
	{Label: "Submissions by day", Value: "/stats/submissions-by-day"},
	{Label: "Most common errors", Value: "/stats/common-errors"},
	{Label: "Verdict count", Value: "/stats/verdict/:verdict"},
	{Label: "Leaderboard", Value: "/leaderboard"},
	{Label: "Teams without an OK", Value: "/teams/no-ok"},
	{Label: "Recent submissions", Value: "/submissions/recent"},
	{Label: "Team submissions", Value: "/submissions/team/:team_id"},
	{Label: "Submissions in language", Value: "/submissions/lang/:language"},
	{Label: "Results by institution", Value: "/results/institution/:institution"},
	{Label: "Results by education level", Value: "/results/education-level/:level"},
	{Label: "Filtered submissions", Value: "/submissions/filter"},
	{Label: "Team search", Value: "/teams/search"},
	{Label: "Kulki", Value: "/kulki"},
	{Label: "New kulki", Value: "/kulki/new"},
}

// ListRoutes handles GET /routes
func ListRoutes(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, Directory)
}
