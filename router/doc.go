// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ICPC scoreboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(gateway, cfg, metricsManager)

Every API route is wrapped with middleware.WithLogging and
middleware.WithMetrics. Metrics are labelled with the route pattern
("GET /participants/{team_id}"), never the raw path.

# Endpoints

Operational:

	GET /health  - Liveness probe, answers "OK"
	GET /metrics - Prometheus exposition
	GET /routes  - Route directory used by the UI

Participants and coaches:

	GET    /participants             - All participants with team name
	GET    /participants/{team_id}   - Participants of a team
	GET    /participants/id/{id}     - One participant
	POST   /participants             - Create
	PUT    /participants/{id}        - Update
	DELETE /participants/{id}        - Delete
	GET    /coaches                  - All coaches with team name
	GET    /coaches/{team_id}        - Coach of a team
	GET    /coaches/id/{id}          - One coach
	POST   /coaches                  - Create
	PUT    /coaches/{id}             - Update
	DELETE /coaches/{id}             - Delete

Reference tables:

	GET /institutions
	GET /teams
	GET /teams/search?q=
	GET /languages

Submissions and results:

	GET /submissions
	GET /submissions/filter?institution=&education=&language=&verdict=
	GET /submissions/recent?limit=
	GET /submissions/team/{team_id}
	GET /submissions/lang/{language}
	GET /results/institution/{institution}
	GET /results/education-level/{level}

Statistics:

	GET /stats/submissions-by-language
	GET /stats/submissions-by-day
	GET /stats/common-errors
	GET /stats/verdict/{verdict}
	GET /leaderboard
	GET /teams/no-ok

Balloons (kulki):

	GET  /kulki       - Awards already given
	GET  /kulki/new   - First solves not yet awarded
	POST /kulki/award - Record every pending award

Browser UI:

	GET /          - index.html
	GET /static/   - Script and stylesheet

Unknown paths answer 404 and known paths with the wrong method answer 405;
both come from http.ServeMux.
*/
package router
