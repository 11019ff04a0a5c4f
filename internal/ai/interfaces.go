package ai

import (
	"context"

	"jobfit/internal/types"
)

// AIProvider interface for different AI implementations
// Methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	ParseResume(ctx context.Context, resumeText string) (types.ResumeData, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
