// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the query gateway between the API and the relational store.

# Opening the Pool

	g, err := db.Open(ctx, db.DialectPostgres, cfg.DatabaseURL, db.PoolOptions{
		MaxOpenConns: 10,
	}, metricsManager)

PostgreSQL is served by lib/pq, SQLite by modernc.org/sqlite. The pool is
owned by the Gateway and injected into every handler; there is no package
level connection.

# Issuing Statements

Statements use numbered placeholders ($1, $2, ...) for both dialects; the
gateway rewrites them to ?1, ?2 for SQLite. Values are always bound.

	teams, err := db.Query(ctx, g, scanTeam, `SELECT ... WHERE team_id = $1`, id)
	team, found, err := db.QueryOne(ctx, g, scanTeam, `SELECT ...`, id)
	n, err := g.Exec(ctx, `DELETE FROM Participant WHERE participant_id = $1`, id)

Each statement runs with the caller's context, so a connection is held only
for the statement (or until its rows are drained) and released when the
request is cancelled.

# Optional Filters

Filter appends predicates only for non-empty values:

	stmt, args := db.NewFilter(base).
		Equal("l.name", language).
		Equal("i.name", institution).
		OrderBy("s.submission_time DESC").
		Build()

# Errors

Classify sorts failures into connectivity, constraint and query kinds
for logs and metrics. Callers never branch on the kind.

# Schema

CreateSchema creates Institution, Team, Participant, Coach, Language,
Submission and Kulki with IF NOT EXISTS. The schema belongs to the
store; the server only runs it when started with -init-schema.

	Institution 1──* Team
	Team 1──* Participant
	Team 1──* Coach
	Team 1──* Submission *──1 Language
	Submission 1──0..1 Kulki (one per problem_code)
*/
package db
