// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/icpc-scoreboard/cliparse"
	"github.com/danielhkuo/icpc-scoreboard/db"
)

// PostgresURLEnv names the variable that points the tests at a real
// PostgreSQL database instead of a throwaway SQLite file.
const PostgresURLEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *db.Gateway {
	t.Helper()
	ctx := context.Background()

	// SQLite allows a single writer; one connection keeps writes queued in
	// the pool instead of on the file lock.
	dialect := db.DialectSQLite
	dsn := filepath.Join(t.TempDir(), "scoreboard.db")
	pool := db.PoolOptions{MaxOpenConns: 1}
	if url := os.Getenv(PostgresURLEnv); url != "" {
		dialect = db.DialectPostgres
		dsn = url
		pool.MaxOpenConns = 4
	}

	g, err := db.Open(ctx, dialect, dsn, pool, nil)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { g.Close() })

	if dialect == db.DialectPostgres {
		// Clean up tables before each test, children first
		for i := len(db.Tables) - 1; i >= 0; i-- {
			if _, err := g.Exec(ctx, "DROP TABLE IF EXISTS "+db.Tables[i]+" CASCADE"); err != nil {
				t.Fatalf("Failed to clean database: %v", err)
			}
		}
	}

	if err := db.CreateSchema(ctx, g); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return g
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	cfg := cliparse.Default()
	cfg.Port = 3318
	cfg.DatabaseType = cliparse.DatabaseSQLite
	cfg.DatabaseURL = ":memory:"
	return cfg
}

func insertID(t *testing.T, g *db.Gateway, what, stmt string, args ...any) int64 {
	t.Helper()

	id, found, err := db.QueryOne(context.Background(), g, func(s db.Scanner) (int64, error) {
		var id int64
		err := s.Scan(&id)
		return id, err
	}, stmt, args...)
	if err != nil || !found {
		t.Fatalf("Failed to create test %s: %v", what, err)
	}
	return id
}

// CreateTestInstitution inserts an institution and returns its ID
func CreateTestInstitution(t *testing.T, g *db.Gateway, name string) int64 {
	t.Helper()
	return insertID(t, g, "institution",
		`INSERT INTO Institution (name) VALUES ($1) RETURNING institution_id`, name)
}

// CreateTestTeam inserts a team and returns its ID
func CreateTestTeam(t *testing.T, g *db.Gateway, name string, institutionID int64, level string) int64 {
	t.Helper()
	return insertID(t, g, "team",
		`INSERT INTO Team (name, institution_id, education_level) VALUES ($1, $2, $3) RETURNING team_id`,
		name, institutionID, level)
}

// CreateTestTeamWithID inserts a team under a fixed ID
func CreateTestTeamWithID(t *testing.T, g *db.Gateway, id int64, name string, institutionID int64, level string) int64 {
	t.Helper()
	return insertID(t, g, "team",
		`INSERT INTO Team (team_id, name, institution_id, education_level) VALUES ($1, $2, $3, $4) RETURNING team_id`,
		id, name, institutionID, level)
}

// CreateTestLanguage inserts a language and returns its ID
func CreateTestLanguage(t *testing.T, g *db.Gateway, name string) int64 {
	t.Helper()
	return insertID(t, g, "language",
		`INSERT INTO Language (name) VALUES ($1) RETURNING language_id`, name)
}

// CreateTestSubmission inserts a submission at the given time and returns its ID
func CreateTestSubmission(t *testing.T, g *db.Gateway, teamID, languageID int64, problem, verdict string, at time.Time) int64 {
	t.Helper()
	return insertID(t, g, "submission", `
		INSERT INTO Submission (team_id, language_id, problem_code, verdict, submission_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING submission_id
	`, teamID, languageID, problem, verdict, at.UTC())
}

// CreateTestParticipant inserts a participant and returns its ID
func CreateTestParticipant(t *testing.T, g *db.Gateway, name, email string, teamID int64) int64 {
	t.Helper()
	return insertID(t, g, "participant",
		`INSERT INTO Participant (name, email, team_id) VALUES ($1, $2, $3) RETURNING participant_id`,
		name, email, teamID)
}

// CreateTestCoach inserts a coach and returns its ID
func CreateTestCoach(t *testing.T, g *db.Gateway, name, email string, teamID int64) int64 {
	t.Helper()
	return insertID(t, g, "coach",
		`INSERT INTO Coach (name, email, team_id) VALUES ($1, $2, $3) RETURNING coach_id`,
		name, email, teamID)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
