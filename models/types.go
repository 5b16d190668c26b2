package models

import "time"

// Verdict constants
const (
	VerdictOK = "OK"
)

// Request types

// PersonRequest is the body of participant and coach create/update calls.
type PersonRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	TeamID int64  `json:"team_id"`
}

// Response types

type AssignAwardsResponse struct {
	Message string `json:"message"`
	Awarded int64  `json:"awarded"`
}

type VerdictTotal struct {
	Verdict string `json:"verdict"`
	Count   int64  `json:"count"`
}

// RouteEntry is one item of the route directory served at GET /routes.
// Value is a route template; placeholders look like :team_id.
type RouteEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Domain types

type Institution struct {
	ID   int64  `json:"institution_id"`
	Name string `json:"name"`
}

type Team struct {
	ID              int64  `json:"team_id"`
	Name            string `json:"name"`
	InstitutionID   int64  `json:"institution_id"`
	EducationLevel  string `json:"education_level"`
	InstitutionName string `json:"institution_name,omitempty"`
}

type Participant struct {
	ID       int64   `json:"participant_id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	TeamID   int64   `json:"team_id"`
	TeamName *string `json:"team_name,omitempty"`
}

type Coach struct {
	ID       int64   `json:"coach_id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	TeamID   int64   `json:"team_id"`
	TeamName *string `json:"team_name,omitempty"`
}

type Language struct {
	ID   int64  `json:"language_id"`
	Name string `json:"name"`
}

type Submission struct {
	ID             int64     `json:"submission_id"`
	TeamID         int64     `json:"team_id"`
	LanguageID     int64     `json:"language_id"`
	ProblemCode    string    `json:"problem_code"`
	Verdict        string    `json:"verdict"`
	SubmissionTime time.Time `json:"submission_time"`
}

type SubmissionWithTeam struct {
	Submission
	TeamName string `json:"team_name"`
}

// SubmissionDetail is a submission with every joined name, as returned by
// GET /submissions/filter.
type SubmissionDetail struct {
	Submission
	TeamName        string `json:"team_name"`
	LanguageName    string `json:"language_name"`
	InstitutionName string `json:"institution_name"`
	EducationLevel  string `json:"education_level"`
}

// SubmissionRow is the flattened shape of GET /submissions.
type SubmissionRow struct {
	SubmissionID   int64     `json:"submission_id"`
	Team           string    `json:"team"`
	Institution    string    `json:"institution"`
	EducationLevel string    `json:"education_level"`
	Language       string    `json:"language"`
	ProblemCode    string    `json:"problem_code"`
	Verdict        string    `json:"verdict"`
	SubmissionTime time.Time `json:"submission_time"`
}

// Award ("kulka") marks the first accepted submission of a problem.
type Award struct {
	ProblemCode  string    `json:"problem_code"`
	TeamID       int64     `json:"team_id"`
	TeamName     string    `json:"team_name"`
	SubmissionID int64     `json:"submission_id"`
	AwardedAt    time.Time `json:"awarded_at"`
}

type AwardCandidate struct {
	ProblemCode  string `json:"problem_code"`
	TeamID       int64  `json:"team_id"`
	SubmissionID int64  `json:"submission_id"`
}

// Statistics types

type LanguageCount struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

type DayCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type VerdictCount struct {
	Verdict string `json:"verdict"`
	Count   int64  `json:"count"`
}

type LeaderboardEntry struct {
	TeamID          int64  `json:"team_id"`
	TeamName        string `json:"team_name"`
	InstitutionName string `json:"institution_name"`
	OKCount         int64  `json:"ok_count"`
}

type TeamWithoutOK struct {
	TeamID          int64  `json:"team_id"`
	TeamName        string `json:"team_name"`
	InstitutionName string `json:"institution_name"`
}

type TeamSearchResult struct {
	TeamID      int64  `json:"team_id"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
