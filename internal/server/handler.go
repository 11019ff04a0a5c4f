package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"jobfit/internal/ai"
	jobfitErrors "jobfit/internal/errors"
	"jobfit/internal/observability"
	"jobfit/internal/scoring"
	"jobfit/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// isInvalidJobError reports whether err is an unknown job type error
func isInvalidJobError(err error) bool {
	var appErr *jobfitErrors.AppError
	return errors.As(err, &appErr) && appErr.Code == jobfitErrors.ErrCodeInvalidJobType
}

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobfit.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		// Parse request
		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobID) == "" {
			err := fmt.Errorf("missing job id")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job id", "jobId field is required", http.StatusBadRequest)
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.String("request.job_id", req.JobID),
			attribute.Int("request.skill_groups", len(req.Resume.Skills)),
			attribute.String("operation", "score"),
		)

		metrics := om.GetMetrics()
		var result types.ScoreResult
		err := metrics.TrackScoring(ctx, req.JobID, func(ctx context.Context) (int, error) {
			var scoreErr error
			result, scoreErr = s.Engine.Score(req.Resume, req.JobID, req.ExtraSkills)
			return result.TotalScore, scoreErr
		}, om)

		if err != nil {
			span.RecordError(err)
			if isInvalidJobError(err) {
				span.SetAttributes(attribute.String("error.type", "validation"))
				writeErrorResponse(w, "Invalid job type", err.Error(), http.StatusBadRequest)
				return
			}
			// Scoring never fails for a known job, but a degraded
			// result keeps the contract if it ever does.
			s.Logger.LogError(err, "Scoring failed, returning zero-score result", "job_id", req.JobID)
			span.SetAttributes(attribute.String("error.type", "scoring"))
			result = scoring.ZeroScoreResult(req.JobID)
		}

		span.SetAttributes(
			attribute.Bool("success", err == nil),
			attribute.Int("response.total_score", result.TotalScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createCompareHandler wraps the compare handler with observability
func (s *Server) createCompareHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobfit.api")
		ctx, span := tracer.Start(ctx, "api.compare")
		defer span.End()

		var req CompareRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if len(req.JobIDs) == 0 {
			err := fmt.Errorf("missing job ids")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job ids", "jobIds field must contain at least one job", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_count", len(req.JobIDs)),
			attribute.String("operation", "compare"),
		)

		metrics := om.GetMetrics()
		comparisons, err := s.Engine.CompareAgainstJobs(req.Resume, req.JobIDs)
		if err != nil {
			span.RecordError(err)
			metrics.RecordComparison(ctx, len(req.JobIDs), false, om)
			if isInvalidJobError(err) {
				span.SetAttributes(attribute.String("error.type", "validation"))
				writeErrorResponse(w, "Invalid job type", err.Error(), http.StatusBadRequest)
				return
			}
			writeErrorResponse(w, "Failed to compare jobs", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordComparison(ctx, len(req.JobIDs), true, om)

		span.SetAttributes(attribute.Bool("success", true))
		if len(comparisons) > 0 {
			span.SetAttributes(attribute.Int("response.best_score", comparisons[0].TotalScore))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(comparisons); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createParseHandler wraps the parse handler with observability
func (s *Server) createParseHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("jobfit.api")
		ctx, span := tracer.Start(ctx, "api.parse")
		defer span.End()

		var req ParseRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.ResumeText) == "" {
			err := fmt.Errorf("missing resume text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume text", "resumeText field is required", http.StatusBadRequest)
			return
		}

		// Size validation
		if s.MaxRequestSize > 0 && len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume text too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume text too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "parse"),
		)

		// Create AI service for parse operation
		parseConfig := s.AppConfig.GetParseConfig()
		aiService, err := ai.NewService(&parseConfig, "parse", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		// Track AI operation with observability and token usage
		metrics := om.GetMetrics()
		var result types.ResumeData
		err = metrics.TrackAIOperationWithTokens(ctx, "parse", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.ParseResume(ctx, req.ResumeText)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			writeErrorResponse(w, "Failed to parse resume", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.skill_groups", len(result.Skills)),
			attribute.Int("response.experience_entries", len(result.Experience)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Check if this request was rate limited by examining the response
			// We'll wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordRateLimitHit(r.Context(), om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
