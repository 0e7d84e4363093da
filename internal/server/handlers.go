package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gabrielsuarezz/Voxtant/internal/ai/gemini"
	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"github.com/gabrielsuarezz/Voxtant/internal/plan"
	"go.uber.org/zap"
)

type healthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

type extractRequest struct {
	RawText string `json:"raw_text"`
}

type planRequest struct {
	Extracted  interview.JobProfile `json:"extracted"`
	ResumeText string               `json:"resume_text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}

// handleExtractRequirements extracts a structured job profile from raw posting
// text. ?demo=true serves stable sample data for offline demos. When the AI
// extractor is unavailable or fails, a neutral profile is returned instead of
// an error.
func (s *Server) handleExtractRequirements(w http.ResponseWriter, r *http.Request) {
	if isDemo(r) {
		s.writeJSON(w, http.StatusOK, demoProfile())
		return
	}

	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.RawText) == "" {
		s.writeError(w, http.StatusBadRequest, "raw_text is required")
		return
	}

	if s.extractor == nil {
		s.logger.Warn("job extraction requested but no AI extractor is configured")
		s.writeJSON(w, http.StatusOK, neutralProfile())
		return
	}

	profile, err := s.extractor.Extract(r.Context(), req.RawText)
	if err != nil {
		s.logger.Warn("job extraction failed, returning neutral profile", zap.Error(err))
		s.writeJSON(w, http.StatusOK, neutralProfile())
		return
	}

	s.writeJSON(w, http.StatusOK, profile)
}

// handleGeneratePlan generates interview questions and rubrics for an
// extracted profile, falling back to the deterministic plan when the AI
// planner is unavailable or returns a malformed response.
func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	if isDemo(r) {
		s.writeJSON(w, http.StatusOK, demoPlan())
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if s.planner == nil {
		s.writeJSON(w, http.StatusOK, plan.Fallback(&req.Extracted))
		return
	}

	generated, err := s.planner.GeneratePlan(r.Context(), &req.Extracted, req.ResumeText)
	if err != nil {
		s.logger.Warn("plan generation failed, returning fallback plan", zap.Error(err))
		s.writeJSON(w, http.StatusOK, plan.Fallback(&req.Extracted))
		return
	}

	s.writeJSON(w, http.StatusOK, generated)
}

// handleGrade grades a complete answer transcript against a job profile.
func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	payload, err := interview.DecodePayload(raw)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.grader.Grade(r.Context(), payload)
	s.writeJSON(w, http.StatusOK, result)
}

func neutralProfile() *interview.JobProfile {
	return &interview.JobProfile{
		Role:         gemini.UnknownRole,
		SkillsCore:   []string{},
		SkillsNice:   []string{},
		Values:       []string{},
		Requirements: []interview.Requirement{},
	}
}

func isDemo(r *http.Request) bool {
	return strings.EqualFold(r.URL.Query().Get("demo"), "true")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Warn("writing response failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
