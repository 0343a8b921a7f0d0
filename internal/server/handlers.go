// Package server provides the HTTP REST API for the match analyzer.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/ats-match/internal/analyzer"
	"github.com/jonathan/ats-match/internal/ingestion"
	"github.com/jonathan/ats-match/internal/types"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "ats_session"

type analyzeRequest struct {
	Resume string `json:"resume" validate:"required"`
	Job    string `json:"job"`
	JobURL string `json:"job_url" validate:"omitempty,url"`
}

type documentRequest struct {
	Content   string `json:"content"`
	SourceURL string `json:"source_url" validate:"omitempty,url"`
}

type rewriteRequest struct {
	Resume string `json:"resume" validate:"required"`
	Job    string `json:"job"`
	JobURL string `json:"job_url" validate:"omitempty,url"`
}

type rewriteResponse struct {
	Resume string `json:"resume"`
}

// handleAnalyze scores a resume against a job description. The job may
// be given inline or as a posting URL to ingest.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	jobText, err := s.resolveJobText(r, req.Job, req.JobURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var result *types.AnalysisResult
	if s.db != nil {
		result, err = s.analyzer.AnalyzeSession(r.Context(), s.sessionKey(w, r), req.Resume, jobText)
	} else {
		result, err = s.analyzer.Analyze(r.Context(), req.Resume, jobText)
	}
	if err != nil {
		var storeErr *analyzer.StoreError
		if errors.As(err, &storeErr) && result != nil {
			// The analysis itself succeeded, only persistence failed.
			s.logger.Warn("analysis not persisted", zap.Error(storeErr))
		} else {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGetAnalysis returns the most recent stored analysis for the
// caller's session.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	key, ok := s.currentSessionKey(r)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "no analysis found for this session")
		return
	}

	result, err := s.db.GetAnalysis(r.Context(), key)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleSaveResume stores a resume under the caller's session.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Content == "" {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "content", Message: "required"}).Error())
		return
	}

	session, err := s.db.EnsureSession(r.Context(), s.sessionKey(w, r))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.db.SaveResume(r.Context(), session.ID, req.Content)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleSaveJobDescription stores a job description under the caller's
// session. When only source_url is given, the posting is fetched and
// its text extracted first.
func (s *Server) handleSaveJobDescription(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}

	var req documentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	content := req.Content
	if content == "" {
		if req.SourceURL == "" {
			s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "content", Message: "content or source_url is required"}).Error())
			return
		}
		var err error
		content, err = ingestion.FromURL(r.Context(), req.SourceURL, ingestion.URLOptions{
			UseBrowser: s.useBrowser,
			Logger:     s.logger,
		})
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	session, err := s.db.EnsureSession(r.Context(), s.sessionKey(w, r))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := s.db.SaveJobDescription(r.Context(), session.ID, content, req.SourceURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleRewrite returns an improved version of the resume for the job.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	jobText, err := s.resolveJobText(r, req.Job, req.JobURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	improved, provenance, err := s.rewriter.Improve(r.Context(), req.Resume, jobText)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.logger.Info("resume rewritten", zap.String("provenance", string(provenance)))
	s.jsonResponse(w, http.StatusOK, rewriteResponse{Resume: improved})
}

// resolveJobText returns the job description text, ingesting it from a
// posting URL when one is given instead of inline text.
func (s *Server) resolveJobText(r *http.Request, job, jobURL string) (string, error) {
	switch {
	case job != "" && jobURL != "":
		return "", &ErrValidation{Field: "job", Message: "provide either job or job_url, not both"}
	case job != "":
		return job, nil
	case jobURL != "":
		return ingestion.FromURL(r.Context(), jobURL, ingestion.URLOptions{
			UseBrowser: s.useBrowser,
			Logger:     s.logger,
		})
	default:
		return "", &ErrValidation{Field: "job", Message: "job or job_url is required"}
	}
}

// sessionKey returns the caller's session key, minting a new session
// and setting the cookie when the request carries none.
func (s *Server) sessionKey(w http.ResponseWriter, r *http.Request) string {
	if key, ok := s.currentSessionKey(r); ok {
		return key
	}

	key := uuid.NewString()
	token, err := s.jwtService.GenerateToken(key)
	if err != nil {
		s.logger.Error("generating session token", zap.Error(err))
		return key
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   s.jwtService.config.ExpirationHours * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key
}

// currentSessionKey extracts a valid session key from the request
// cookie, if any.
func (s *Server) currentSessionKey(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", false
	}
	claims, err := s.jwtService.ValidateToken(cookie.Value)
	if err != nil {
		return "", false
	}
	return claims.SessionKey, true
}

// extractValidationErrors converts validator errors to a readable message.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
