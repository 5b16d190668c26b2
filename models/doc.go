// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - PersonRequest: name, email, team_id (participants and coaches)

# Domain Types

One struct per table, with JSON names matching the column names:

  - Institution, Team, Participant, Coach, Language
  - Submission: team, language, problem code, verdict, submission time
  - Award: first accepted submission of a problem ("kulka")

Joined read shapes:

  - SubmissionWithTeam: submission plus team_name
  - SubmissionDetail: submission plus team, language, institution names
  - SubmissionRow: flattened summary used by GET /submissions

# Statistics Types

  - LanguageCount, DayCount, VerdictCount, VerdictTotal
  - LeaderboardEntry: accepted count per team
  - TeamWithoutOK, TeamSearchResult

# Route Directory

RouteEntry pairs a human-readable label with a route template:

	{"label": "Team coach", "value": "/coaches/:team_id"}

# Verdicts

VerdictOK ("OK") is the only verdict with special meaning: it counts
towards the leaderboard and makes a submission eligible for an award.
*/
package models
