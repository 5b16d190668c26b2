// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ICPC scoreboard API server.

The server exposes CRUD and reporting endpoints over a programming contest
database: institutions, teams, participants, coaches, languages and
submissions. It computes leaderboards and statistics, and awards a balloon
(kulka) to the first team to solve each problem.

# Starting the Server

	DATABASE_URL=postgres://... go run .

Or with flags, against a local SQLite file:

	go run . -p 3318 -t sqlite -d scoreboard.db -init-schema

# Configuration

Settings are layered, lowest precedence first: defaults, a YAML file
(-c or CONFIG_FILE), the environment (a .env file is loaded first) and
command-line flags.

Required settings:

  - DATABASE_URL (-d): connection string or SQLite path

Optional settings:

  - DATABASE_TYPE (-t): postgres (default) or sqlite
  - PORT (-p): server port (default: 3000)
  - INIT_SCHEMA (-init-schema): create missing tables at startup
  - LOG_LEVEL, LOG_FORMAT: slog level and handler (auto, text, json)
  - MAX_OPEN_CONNS, MAX_IDLE_CONNS, CONN_MAX_LIFETIME: pool limits
  - LEADERBOARD_SIZE, RECENT_LIMIT: default result sizes
  - SHUTDOWN_TIMEOUT: grace period for in-flight requests

# Architecture

  - handlers: HTTP request handlers (people, catalog, submissions, stats, kulki)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request IDs, logging, metrics, JSON helpers
  - db: Connection gateway, schema and filter builder
  - models: Row and response types
  - metrics: Prometheus collectors
  - logging: slog setup
  - site: Embedded browser UI
  - client, cmd/scoreboardctl: Command-line client for the API
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
