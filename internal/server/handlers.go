package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/career-coach/internal/types"
)

var validate = validator.New()

// AnalyzeRequest is the body for POST /analyze
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

// AssessRequest is the body for POST /interview/assess
type AssessRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
	Role     string `json:"role"`
}

// QuestionsRequest is the body for POST /interview/questions
type QuestionsRequest struct {
	Role   string   `json:"role" validate:"required"`
	Level  string   `json:"level" validate:"omitempty,oneof=entry mid senior"`
	Skills []string `json:"skills"`
}

// MatchJobsRequest is the body for POST /jobs/match
type MatchJobsRequest struct {
	Skills      []string             `json:"skills" validate:"required,min=1"`
	Level       string               `json:"level" validate:"omitempty,oneof=entry mid senior"`
	Preferences types.JobPreferences `json:"preferences"`
}

// handleAnalyze scores a submitted document
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	report, err := s.coach.AnalyzeResume(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleAssess grades an interview answer
func (s *Server) handleAssess(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	assessment := s.coach.AssessAnswer(r.Context(), req.Question, req.Answer, req.Role)
	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleQuestions generates an interview question set
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	var req QuestionsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	level := types.ExperienceLevel(req.Level)
	if level == "" {
		level = types.LevelMid
	}

	questions := s.coach.GenerateQuestions(r.Context(), req.Role, level, req.Skills)
	s.jsonResponse(w, http.StatusOK, map[string]any{"questions": questions})
}

// handleMatchJobs returns simulated job matches for a candidate profile
func (s *Server) handleMatchJobs(w http.ResponseWriter, r *http.Request) {
	var req MatchJobsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	level := types.ExperienceLevel(req.Level)
	if level == "" {
		level = types.LevelMid
	}

	matches := s.coach.MatchJobs(req.Skills, level, req.Preferences)
	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// decodeAndValidate decodes the JSON body into req and validates it, writing
// the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return false
	}
	return true
}

// extractValidationErrors formats the first validation failure for the client
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
