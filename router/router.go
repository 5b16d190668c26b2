// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/icpc-scoreboard/cliparse"
	"github.com/danielhkuo/icpc-scoreboard/db"
	"github.com/danielhkuo/icpc-scoreboard/handlers"
	"github.com/danielhkuo/icpc-scoreboard/metrics"
	"github.com/danielhkuo/icpc-scoreboard/middleware"
	"github.com/danielhkuo/icpc-scoreboard/site"
)

func NewRouter(g *db.Gateway, cfg cliparse.Config, m *metrics.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Every API route is logged and measured under its pattern
	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithLogging(middleware.WithMetrics(m, pattern, h)))
	}

	// Initialize handlers
	participantHandler := handlers.NewParticipantHandler(g)
	coachHandler := handlers.NewCoachHandler(g)
	catalogHandler := handlers.NewCatalogHandler(g)
	submissionHandler := handlers.NewSubmissionHandler(g, cfg)
	statsHandler := handlers.NewStatsHandler(g, cfg)
	awardHandler := handlers.NewAwardHandler(g, m)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus exposition
	mux.Handle("GET /metrics", m.Handler())

	// Route directory for the UI
	handle("GET /routes", handlers.ListRoutes)

	// Participants
	handle("GET /participants", participantHandler.ListParticipants)
	handle("GET /participants/{team_id}", participantHandler.ListTeamParticipants)
	handle("GET /participants/id/{id}", participantHandler.GetParticipant)
	handle("POST /participants", participantHandler.CreateParticipant)
	handle("PUT /participants/{id}", participantHandler.UpdateParticipant)
	handle("DELETE /participants/{id}", participantHandler.DeleteParticipant)

	// Coaches
	handle("GET /coaches", coachHandler.ListCoaches)
	handle("GET /coaches/{team_id}", coachHandler.GetTeamCoach)
	handle("GET /coaches/id/{id}", coachHandler.GetCoach)
	handle("POST /coaches", coachHandler.CreateCoach)
	handle("PUT /coaches/{id}", coachHandler.UpdateCoach)
	handle("DELETE /coaches/{id}", coachHandler.DeleteCoach)

	// Reference tables
	handle("GET /institutions", catalogHandler.ListInstitutions)
	handle("GET /teams", catalogHandler.ListTeams)
	handle("GET /teams/search", catalogHandler.SearchTeams)
	handle("GET /languages", catalogHandler.ListLanguages)

	// Submissions
	handle("GET /submissions", submissionHandler.ListSubmissions)
	handle("GET /submissions/filter", submissionHandler.FilterSubmissions)
	handle("GET /submissions/recent", submissionHandler.RecentSubmissions)
	handle("GET /submissions/team/{team_id}", submissionHandler.TeamSubmissions)
	handle("GET /submissions/lang/{language}", submissionHandler.LanguageSubmissions)
	handle("GET /results/institution/{institution}", submissionHandler.InstitutionResults)
	handle("GET /results/education-level/{level}", submissionHandler.EducationLevelResults)

	// Statistics
	handle("GET /stats/submissions-by-language", statsHandler.SubmissionsByLanguage)
	handle("GET /stats/submissions-by-day", statsHandler.SubmissionsByDay)
	handle("GET /stats/common-errors", statsHandler.CommonErrors)
	handle("GET /stats/verdict/{verdict}", statsHandler.VerdictCount)
	handle("GET /leaderboard", statsHandler.Leaderboard)
	handle("GET /teams/no-ok", statsHandler.TeamsWithoutOK)

	// Balloons
	handle("GET /kulki", awardHandler.ListAwards)
	handle("GET /kulki/new", awardHandler.DetectAwards)
	handle("POST /kulki/award", awardHandler.AssignAwards)

	// Browser UI
	site.Register(mux)

	return mux
}
