package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arosal/skillcheck/internal/errors"
	"github.com/arosal/skillcheck/internal/interview"
	"github.com/arosal/skillcheck/internal/logger"
	"github.com/arosal/skillcheck/internal/models"
	"github.com/arosal/skillcheck/internal/services"
	"github.com/arosal/skillcheck/internal/session"
)

type Server struct {
	AssessmentService services.AssessmentService
	Interviews        *interview.Manager
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	category := r.URL.Query().Get("category")
	log.Debug("listing assessments: category=%q", category)

	cards := s.AssessmentService.ListAssessments(r.Context(), category)
	writeJSON(w, r, http.StatusOK, map[string]interface{}{"assessments": cards})
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	results := s.AssessmentService.Results(r.Context())
	writeJSON(w, r, http.StatusOK, map[string]interface{}{"results": results})
}

func (s *Server) handleRecentResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ResultFilter{Status: q.Get("status")}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			handleError(w, r, errors.NewBadRequestError("invalid limit"))
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			handleError(w, r, errors.NewBadRequestError("invalid offset"))
			return
		}
		filter.Offset = n
	}

	results, err := s.AssessmentService.RecentResults(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]interface{}{"results": results})
}

func (s *Server) handleAssessmentResult(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid assessment id"))
		return
	}

	summary, err := s.AssessmentService.ResultFor(r.Context(), assessmentID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, summary)
}

func (s *Server) handleClearResult(w http.ResponseWriter, r *http.Request) {
	assessmentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid assessment id"))
		return
	}

	if err := s.AssessmentService.ClearResult(r.Context(), assessmentID); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	assessmentID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid assessment id"))
		return
	}
	log.Debug("starting session: assessment_id=%d", assessmentID)

	sess, err := s.AssessmentService.StartSession(r.Context(), assessmentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, sess.Snapshot())
}

func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.AssessmentService.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return nil, false
	}
	return sess, true
}

func (s *Server) handleSessionSnapshot(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, http.StatusOK, sess.Snapshot())
}

type answerRequest struct {
	Position int `json:"position"`
	Option   int `json:"option"`
}

func (s *Server) handleSelectAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	outcome, err := sess.SelectAnswer(req.Position, req.Option)
	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"outcome":  outcome,
		"snapshot": sess.Snapshot(),
	})
}

func (s *Server) handleGoNext(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	if err := sess.GoNext(); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleGoPrevious(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}
	if err := sess.GoPrevious(); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sess.Snapshot())
}

type positionRequest struct {
	Position int `json:"position"`
}

func (s *Server) handleToggleMark(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}

	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := sess.ToggleMark(req.Position); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleNavigateTo(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(w, r)
	if !ok {
		return
	}

	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := sess.NavigateTo(req.Position); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	result, err := s.AssessmentService.SubmitSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}
