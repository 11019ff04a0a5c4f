package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"jobfit/internal/ai"
)

// getHealthCheckTimeout returns the configured health check timeout
func (s *Server) getHealthCheckTimeout() time.Duration {
	return s.AppConfig.Observability.HealthCheck.Timeout
}

// healthHandler provides a comprehensive health check endpoint including AI model status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "jobfit",
		"version": s.Version,
	}

	// Catalog status
	response["catalog"] = s.checkCatalogHealth()

	// Check AI model availability for the parse operation
	aiStatus := s.checkAIModelsHealth()
	response["ai_models"] = aiStatus

	// Check circuit breaker status
	circuitBreakerStatus := s.checkCircuitBreakerHealth()
	response["circuit_breakers"] = circuitBreakerStatus

	// Scoring is local and never degrades health. The AI parse model
	// is optional, so an unavailable model only degrades the service
	// when an API key was actually configured.
	overallHealthy := true
	if s.parseConfigured() {
		for _, modelStatus := range aiStatus {
			if modelInfo, ok := modelStatus.(map[string]any); ok {
				if available, exists := modelInfo["available"]; exists {
					if avail, ok := available.(bool); ok && !avail {
						overallHealthy = false
						break
					}
				}
			}
		}
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseConfigured reports whether resume parsing has an API key available
func (s *Server) parseConfigured() bool {
	parseConfig := s.AppConfig.GetParseConfig()
	return parseConfig.APIKey != ""
}

// checkCatalogHealth reports the state of the job catalog
func (s *Server) checkCatalogHealth() map[string]any {
	catalogStatus := map[string]any{
		"jobs": len(s.Catalog.Jobs()),
	}

	if s.CatalogWatcher != nil {
		catalogStatus["watcher_running"] = s.CatalogWatcher.IsRunning()
	}

	return catalogStatus
}

// checkAIModelsHealth checks the health of the AI model used for resume parsing
func (s *Server) checkAIModelsHealth() map[string]any {
	aiStatus := make(map[string]any)

	if !s.parseConfigured() {
		aiStatus["parse"] = map[string]any{
			"available": false,
			"error":     "AI API key not configured",
		}
		return aiStatus
	}

	// Use configurable health check timeout
	timeout := s.getHealthCheckTimeout()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	parseConfig := s.AppConfig.GetParseConfig()
	if parseService, err := ai.NewService(&parseConfig, "parse", s.Logger); err == nil {
		modelInfo := parseService.GetModelInfo(ctx)
		aiStatus["parse"] = modelInfo
	} else {
		aiStatus["parse"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create parse service: %v", err),
		}
	}

	return aiStatus
}

// checkCircuitBreakerHealth checks the health of circuit breakers for AI operations
func (s *Server) checkCircuitBreakerHealth() map[string]any {
	circuitBreakerStatus := make(map[string]any)

	if !s.parseConfigured() {
		circuitBreakerStatus["parse"] = map[string]any{
			"available": false,
			"error":     "AI API key not configured",
		}
		return circuitBreakerStatus
	}

	parseConfig := s.AppConfig.GetParseConfig()
	if _, err := ai.NewService(&parseConfig, "parse", s.Logger); err == nil {
		circuitBreakerStatus["parse"] = map[string]any{
			"available": true,
			"message":   "Circuit breaker integrated with parse service",
		}
	} else {
		circuitBreakerStatus["parse"] = map[string]any{
			"available": false,
			"error":     fmt.Sprintf("Failed to create parse service: %v", err),
		}
	}

	return circuitBreakerStatus
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "jobfit",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
		"catalog": map[string]any{
			"jobs":       len(s.Catalog.Jobs()),
			"categories": s.Catalog.ListCategories(),
		},
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// jobsHandler lists the jobs available in the catalog
func (s *Server) jobsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobs := s.Catalog.Jobs()
	if category := r.URL.Query().Get("category"); category != "" {
		jobs = s.Catalog.ListJobsByCategory(category)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"jobs": jobs}); err != nil {
		log.Printf("Failed to encode jobs response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
