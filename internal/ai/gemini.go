package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements JobExtractor using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Extraction should be deterministic, not creative.
	model.SetTemperature(0.1)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// AnalyzeJobPosting asks the model to read the posting URL and return the
// job's title, location, and internship window as JSON.
func (p *GeminiProvider) AnalyzeJobPosting(ctx context.Context, jobURL string) (*JobRecord, error) {
	if strings.TrimSpace(jobURL) == "" {
		return nil, fmt.Errorf("gemini: empty job url")
	}

	prompt := buildExtractionPrompt(jobURL)

	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: API returned empty candidates")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	cleanJSON := cleanJSONString(responseText.String())

	var record JobRecord
	if err := json.Unmarshal([]byte(cleanJSON), &record); err != nil {
		return nil, fmt.Errorf("gemini: parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &record, nil
}

// buildExtractionPrompt constructs the instructions for the AI.
func buildExtractionPrompt(jobURL string) string {
	return fmt.Sprintf(`Role: You extract structured facts from job postings for a relocation cost estimator.

Read the job posting at this URL: %s

Extract ONLY what the posting states. Never guess or invent a value; omit any field the posting does not state.

RULES:
1. "job_title": the position name exactly as posted.
2. "location": the work city as "City, ST" (US state abbreviation). If the posting lists several cities, use the first. If the role is fully remote with no office city, omit the field.
3. "start_month"/"start_year" and "end_month"/"end_year": the internship or contract window. Months are integers 1-12. A posting that says "Summer 2026" means start 6/2026, end 8/2026. Omit all four fields for permanent roles with no stated window.

Output JSON Schema:
{
  "job_title": "string",
  "location": "City, ST",
  "start_month": integer (1-12),
  "start_year": integer,
  "end_month": integer (1-12),
  "end_year": integer
}
`, jobURL)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
