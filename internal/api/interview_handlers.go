package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arosal/skillcheck/internal/errors"
	"github.com/arosal/skillcheck/internal/logger"
)

func (s *Server) handleInterviewStart(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	sess := s.Interviews.Start()
	log.Info("interview session started: id=%s", sess.ID)

	writeJSON(w, r, http.StatusCreated, sess)
}

func (s *Server) handleInterviewGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.Interviews.Get(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sess)
}

type interviewAnswerRequest struct {
	Answer string `json:"answer"`
}

func (s *Server) handleInterviewAnswer(w http.ResponseWriter, r *http.Request) {
	var req interviewAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid request body"))
		return
	}

	feedback, err := s.Interviews.SubmitAnswer(chi.URLParam(r, "id"), req.Answer)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, feedback)
}

func (s *Server) handleInterviewNext(w http.ResponseWriter, r *http.Request) {
	question, err := s.Interviews.NextQuestion(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	if question == nil {
		// Question list exhausted, session is now completed.
		writeJSON(w, r, http.StatusOK, map[string]interface{}{
			"question": nil,
			"status":   "completed",
		})
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]interface{}{"question": question})
}

func (s *Server) handleInterviewEnd(w http.ResponseWriter, r *http.Request) {
	if err := s.Interviews.End(chi.URLParam(r, "id")); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
