package server

import (
	"time"

	"jobfit/internal/catalog"
	"jobfit/internal/config"
	jobfitErrors "jobfit/internal/errors"
	"jobfit/internal/scoring"
	"jobfit/internal/types"
)

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	Resume      types.ResumeData `json:"resumeData"`
	JobID       string           `json:"jobId"`
	ExtraSkills []string         `json:"extraSkills,omitempty"`
}

// CompareRequest represents the request body for the compare endpoint
type CompareRequest struct {
	Resume types.ResumeData `json:"resumeData"`
	JobIDs []string         `json:"jobIds"`
}

// ParseRequest represents the request body for the parse endpoint
type ParseRequest struct {
	ResumeText string `json:"resumeText"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS Configuration
	TLSConfig config.TLSConfig

	// Job catalog and scoring engine
	Catalog        catalog.Catalog
	Engine         *scoring.Engine
	CatalogWatcher *catalog.Watcher

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *jobfitErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, cat catalog.Catalog, logger *jobfitErrors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		TLSConfig:      cfg.TLSConfig,
		Catalog:        cat,
		Engine:         scoring.NewEngine(cat),
		APIKeys:        apiKeyMap,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
