package ai

import (
	"context"
)

// JobExtractor defines the contract for extracting structured job details.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type JobExtractor interface {
	// AnalyzeJobPosting reads the posting at jobURL and extracts the title,
	// location, and internship window as structured data.
	AnalyzeJobPosting(ctx context.Context, jobURL string) (*JobRecord, error)
}
