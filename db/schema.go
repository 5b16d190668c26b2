// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
)

// CreateSchema creates all tables the API reads and writes.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, g *Gateway) error {
	statements := postgresSchema
	if g.dialect == DialectSQLite {
		statements = sqliteSchema
	}

	for _, stmt := range statements {
		if _, err := g.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// Tables in dependency order, parents first.
var Tables = []string{"Institution", "Team", "Participant", "Coach", "Language", "Submission", "Kulki"}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS Institution (
    institution_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS Team (
    team_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    institution_id INTEGER NOT NULL REFERENCES Institution(institution_id),
    education_level TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_team_institution ON Team(institution_id)`,
	`CREATE TABLE IF NOT EXISTS Participant (
    participant_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    team_id INTEGER NOT NULL REFERENCES Team(team_id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS idx_participant_team ON Participant(team_id)`,
	`CREATE TABLE IF NOT EXISTS Coach (
    coach_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    team_id INTEGER NOT NULL REFERENCES Team(team_id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS idx_coach_team ON Coach(team_id)`,
	`CREATE TABLE IF NOT EXISTS Language (
    language_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS Submission (
    submission_id SERIAL PRIMARY KEY,
    team_id INTEGER NOT NULL REFERENCES Team(team_id),
    language_id INTEGER NOT NULL REFERENCES Language(language_id),
    problem_code TEXT NOT NULL,
    verdict TEXT NOT NULL,
    submission_time TIMESTAMP NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_submission_team ON Submission(team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_submission_problem_verdict ON Submission(problem_code, verdict)`,
	`CREATE TABLE IF NOT EXISTS Kulki (
    problem_code TEXT PRIMARY KEY,
    team_id INTEGER NOT NULL REFERENCES Team(team_id),
    submission_id INTEGER NOT NULL REFERENCES Submission(submission_id),
    awarded_at TIMESTAMP NOT NULL DEFAULT NOW()
)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS Institution (
    institution_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS Team (
    team_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    institution_id INTEGER NOT NULL REFERENCES Institution(institution_id),
    education_level TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_team_institution ON Team(institution_id)`,
	`CREATE TABLE IF NOT EXISTS Participant (
    participant_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    team_id INTEGER NOT NULL REFERENCES Team(team_id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS idx_participant_team ON Participant(team_id)`,
	`CREATE TABLE IF NOT EXISTS Coach (
    coach_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    team_id INTEGER NOT NULL REFERENCES Team(team_id) ON DELETE CASCADE
)`,
	`CREATE INDEX IF NOT EXISTS idx_coach_team ON Coach(team_id)`,
	`CREATE TABLE IF NOT EXISTS Language (
    language_id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
)`,
	`CREATE TABLE IF NOT EXISTS Submission (
    submission_id INTEGER PRIMARY KEY AUTOINCREMENT,
    team_id INTEGER NOT NULL REFERENCES Team(team_id),
    language_id INTEGER NOT NULL REFERENCES Language(language_id),
    problem_code TEXT NOT NULL,
    verdict TEXT NOT NULL,
    submission_time TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_submission_team ON Submission(team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_submission_problem_verdict ON Submission(problem_code, verdict)`,
	`CREATE TABLE IF NOT EXISTS Kulki (
    problem_code TEXT PRIMARY KEY,
    team_id INTEGER NOT NULL REFERENCES Team(team_id),
    submission_id INTEGER NOT NULL REFERENCES Submission(submission_id),
    awarded_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
}
