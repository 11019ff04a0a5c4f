package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobfit/internal/catalog"
	"jobfit/internal/config"
	"jobfit/internal/errors"
	"jobfit/internal/observability"
	"jobfit/internal/scoring"
	"jobfit/internal/types"
)

func newTestServer(t *testing.T) (*Server, *observability.ObservabilityManager) {
	t.Helper()

	cat := catalog.Builtin()
	srv := &Server{
		Host:           "localhost",
		Port:           "0",
		Version:        "test",
		AppConfig:      &config.Config{},
		Catalog:        cat,
		Engine:         scoring.NewEngine(cat),
		MaxRequestSize: 1 << 20,
		Logger:         errors.NewLogger(slog.LevelError),
	}

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, srv.AppConfig)
	if err != nil {
		t.Fatalf("failed to create observability manager: %v", err)
	}
	return srv, om
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler(recorder, req)
	return recorder
}

func sampleResume() types.ResumeData {
	return types.ResumeData{
		Skills: []types.SkillGroup{
			{Category: "Languages", Items: []string{"JavaScript", "Python", "TypeScript"}},
			{Category: "Tools", Items: []string{"Git", "Docker"}},
		},
		Experience: []types.Experience{
			{Company: "Acme", Title: "Software Engineer", Bullets: []string{"Built and deployed services", "Cut latency by 40%"}},
			{Company: "Initech", Title: "Developer", Bullets: []string{"Implemented the billing API"}},
		},
		Projects: []types.Project{
			{Name: "tracker", Technologies: []string{"React", "Node.js"}, Link: "https://example.com/tracker"},
		},
		Education: []types.Education{
			{Institution: "State University", Degree: "BSc", Field: "Computer Science"},
		},
	}
}

func TestScoreHandler(t *testing.T) {
	srv, om := newTestServer(t)
	handler := srv.createScoreHandler(om)

	t.Run("Success", func(t *testing.T) {
		recorder := postJSON(t, handler, ScoreRequest{Resume: sampleResume(), JobID: catalog.DefaultJobKey})

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200: %s", recorder.Code, recorder.Body.String())
		}
		var result types.ScoreResult
		if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if result.TotalScore < 0 || result.TotalScore > 100 {
			t.Errorf("TotalScore = %d, expected within [0, 100]", result.TotalScore)
		}
		if result.JobProfile.Key != catalog.DefaultJobKey {
			t.Errorf("JobProfile.Key = %q, expected %q", result.JobProfile.Key, catalog.DefaultJobKey)
		}
		if result.Level.Label == "" {
			t.Error("expected a score level label")
		}
	})

	t.Run("UnknownJob", func(t *testing.T) {
		recorder := postJSON(t, handler, ScoreRequest{Resume: sampleResume(), JobID: "astronaut"})

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, expected 400", recorder.Code)
		}
		var errResp ErrorResponse
		if err := json.Unmarshal(recorder.Body.Bytes(), &errResp); err != nil {
			t.Fatalf("failed to decode error response: %v", err)
		}
		if errResp.Error != "Invalid job type" {
			t.Errorf("Error = %q, expected Invalid job type", errResp.Error)
		}
	})

	t.Run("MissingJobID", func(t *testing.T) {
		recorder := postJSON(t, handler, ScoreRequest{Resume: sampleResume()})
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", recorder.Code)
		}
	})

	t.Run("WrongContentType", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{}")))
		req.Header.Set("Content-Type", "text/plain")
		recorder := httptest.NewRecorder()
		handler(recorder, req)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", recorder.Code)
		}
	})
}

func TestCompareHandler(t *testing.T) {
	srv, om := newTestServer(t)
	handler := srv.createCompareHandler(om)

	t.Run("SortedResults", func(t *testing.T) {
		recorder := postJSON(t, handler, CompareRequest{
			Resume: sampleResume(),
			JobIDs: []string{"backend-developer", "frontend-developer", "software-engineer"},
		})

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200: %s", recorder.Code, recorder.Body.String())
		}
		var comparisons []types.JobComparison
		if err := json.Unmarshal(recorder.Body.Bytes(), &comparisons); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(comparisons) != 3 {
			t.Fatalf("got %d comparisons, expected 3", len(comparisons))
		}
		for i := 1; i < len(comparisons); i++ {
			if comparisons[i].TotalScore > comparisons[i-1].TotalScore {
				t.Errorf("comparisons not sorted descending at %d", i)
			}
		}
	})

	t.Run("EmptyJobIDs", func(t *testing.T) {
		recorder := postJSON(t, handler, CompareRequest{Resume: sampleResume()})
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", recorder.Code)
		}
	})

	t.Run("UnknownJobInList", func(t *testing.T) {
		recorder := postJSON(t, handler, CompareRequest{
			Resume: sampleResume(),
			JobIDs: []string{"software-engineer", "astronaut"},
		})
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("status = %d, expected 400", recorder.Code)
		}
	})
}

func TestJobsHandler(t *testing.T) {
	srv, _ := newTestServer(t)

	t.Run("All", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
		recorder := httptest.NewRecorder()
		srv.jobsHandler(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, expected 200", recorder.Code)
		}
		var response struct {
			Jobs []types.JobRef `json:"jobs"`
		}
		if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(response.Jobs) != 10 {
			t.Errorf("got %d jobs, expected 10", len(response.Jobs))
		}
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/jobs?category=Data", nil)
		recorder := httptest.NewRecorder()
		srv.jobsHandler(recorder, req)

		var response struct {
			Jobs []types.JobRef `json:"jobs"`
		}
		if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		for _, job := range response.Jobs {
			if job.Category != "Data" {
				t.Errorf("job %q has category %q, expected Data", job.Key, job.Category)
			}
		}
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
		recorder := httptest.NewRecorder()
		srv.jobsHandler(recorder, req)
		if recorder.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, expected 405", recorder.Code)
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.APIKeys = map[string]bool{"secret-key": true}

	var reached bool
	protected := srv.authMiddleware(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		setHeader      func(*http.Request)
		expectedStatus int
	}{
		{
			name:           "missing key",
			setHeader:      func(r *http.Request) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong key",
			setHeader:      func(r *http.Request) { r.Header.Set("X-API-Key", "nope") },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid header key",
			setHeader:      func(r *http.Request) { r.Header.Set("X-API-Key", "secret-key") },
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid bearer token",
			setHeader:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer secret-key") },
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(http.MethodPost, "/score", nil)
			tt.setHeader(req)
			recorder := httptest.NewRecorder()
			protected(recorder, req)

			if recorder.Code != tt.expectedStatus {
				t.Errorf("status = %d, expected %d", recorder.Code, tt.expectedStatus)
			}
			if expected := tt.expectedStatus == http.StatusOK; reached != expected {
				t.Errorf("handler reached = %v, expected %v", reached, expected)
			}
		})
	}
}
