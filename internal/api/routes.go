package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/assessments", s.handleListAssessments)
		r.Post("/assessments/{id}/start", s.handleStartSession)
		r.Get("/assessments/{id}/result", s.handleAssessmentResult)
		r.Delete("/assessments/{id}/result", s.handleClearResult)
		r.Get("/results", s.handleResults)
		r.Get("/results/recent", s.handleRecentResults)

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.handleSessionSnapshot)
			r.Post("/answer", s.handleSelectAnswer)
			r.Post("/next", s.handleGoNext)
			r.Post("/previous", s.handleGoPrevious)
			r.Post("/mark", s.handleToggleMark)
			r.Post("/navigate", s.handleNavigateTo)
			r.Post("/submit", s.handleSubmit)
		})

		r.Route("/interview", func(r chi.Router) {
			r.Post("/start", s.handleInterviewStart)
			r.Get("/{id}", s.handleInterviewGet)
			r.Post("/{id}/answer", s.handleInterviewAnswer)
			r.Post("/{id}/next", s.handleInterviewNext)
			r.Post("/{id}/end", s.handleInterviewEnd)
		})
	})

	r.Get("/healthz", s.handleHealth)

	return r
}
