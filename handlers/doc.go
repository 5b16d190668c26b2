// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the scoreboard API.

# Handler Types

Each handler is a struct holding the database gateway and config:

  - ParticipantHandler, CoachHandler: people attached to teams
  - CatalogHandler: institutions, teams, languages, team search
  - SubmissionHandler: submission lists and filters
  - StatsHandler: aggregates and the leaderboard
  - AwardHandler: balloon ("kulki") detection and assignment

Handlers are created via constructor functions:

	participants := handlers.NewParticipantHandler(gateway)
	awards := handlers.NewAwardHandler(gateway, metricsManager)

# Responses

Lists are always JSON arrays, [] when empty. Single-row lookups answer {}
when nothing matched; there is no 404. Deletes answer 204 with no body.

Any failure, including a non-numeric id or an undecodable body, is logged
and answered with 500 and a fixed message:

	{"error": "Internal Server Error", "message": "Failed to add participant"}

# Filters

GET /submissions and GET /submissions/filter build their WHERE clause with
db.Filter; only non-empty query parameters become predicates and values are
always bound.

# Balloons

A balloon goes to the earliest accepted submission of each problem, the lower
submission id winning equal timestamps. GET /kulki/new lists what would be
awarded; POST /kulki/award inserts it with ON CONFLICT DO NOTHING, so repeated
or concurrent calls never award a problem twice.

# Route Directory

Directory is the ordered list served at GET /routes for the UI.
*/
package handlers
