package upstream

import (
	"context"

	"github.com/bimakw/holder-insight/internal/domain/entities"
)

// Summarizer turns one analysis result into human-readable prose
type Summarizer interface {
	// Summarize issues a single completion request and returns the trimmed
	// response text
	Summarize(ctx context.Context, result *entities.AnalysisResult) (string, error)
}
