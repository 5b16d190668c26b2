// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/models"
)

// Column lists shared by statements and their scan functions. Keep the two in
// the same order.
const (
	participantColumns = "p.participant_id, p.name, p.email, p.team_id"
	coachColumns       = "c.coach_id, c.name, c.email, c.team_id"
	submissionColumns  = "s.submission_id, s.team_id, s.language_id, s.problem_code, s.verdict, s.submission_time"
)

func scanParticipant(s db.Scanner) (models.Participant, error) {
	var p models.Participant
	err := s.Scan(&p.ID, &p.Name, &p.Email, &p.TeamID)
	return p, err
}

func scanParticipantWithTeam(s db.Scanner) (models.Participant, error) {
	var p models.Participant
	err := s.Scan(&p.ID, &p.Name, &p.Email, &p.TeamID, &p.TeamName)
	return p, err
}

func scanCoach(s db.Scanner) (models.Coach, error) {
	var c models.Coach
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.TeamID)
	return c, err
}

func scanCoachWithTeam(s db.Scanner) (models.Coach, error) {
	var c models.Coach
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.TeamID, &c.TeamName)
	return c, err
}

func scanSubmission(s db.Scanner) (models.Submission, error) {
	var sub models.Submission
	err := s.Scan(&sub.ID, &sub.TeamID, &sub.LanguageID, &sub.ProblemCode, &sub.Verdict, &sub.SubmissionTime)
	return sub, err
}

func scanSubmissionWithTeam(s db.Scanner) (models.SubmissionWithTeam, error) {
	var sub models.SubmissionWithTeam
	err := s.Scan(&sub.ID, &sub.TeamID, &sub.LanguageID, &sub.ProblemCode, &sub.Verdict, &sub.SubmissionTime,
		&sub.TeamName)
	return sub, err
}

func scanSubmissionDetail(s db.Scanner) (models.SubmissionDetail, error) {
	var sub models.SubmissionDetail
	err := s.Scan(&sub.ID, &sub.TeamID, &sub.LanguageID, &sub.ProblemCode, &sub.Verdict, &sub.SubmissionTime,
		&sub.TeamName, &sub.LanguageName, &sub.InstitutionName, &sub.EducationLevel)
	return sub, err
}

func scanSubmissionRow(s db.Scanner) (models.SubmissionRow, error) {
	var row models.SubmissionRow
	err := s.Scan(&row.SubmissionID, &row.Team, &row.Institution, &row.EducationLevel, &row.Language,
		&row.ProblemCode, &row.Verdict, &row.SubmissionTime)
	return row, err
}
