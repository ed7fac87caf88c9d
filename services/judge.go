package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"
)

// Judge scores a single argument 0-100, optionally weighing the previous
// argument in the debate as context.
type Judge interface {
	ScoreArgument(ctx context.Context, content, previous string) (int, error)
}

// GeminiJudge implements Judge against the Gemini API. Every call carries a
// bounded timeout so a hung model never blocks the submission path.
type GeminiJudge struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  zerolog.Logger
}

func NewGeminiJudge(ctx context.Context, apiKey, model string, timeout time.Duration, logger zerolog.Logger) (*GeminiJudge, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiJudge{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

func (j *GeminiJudge) ScoreArgument(ctx context.Context, content, previous string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	model := j.client.GenerativeModel(j.model)
	resp, err := model.GenerateContent(ctx, genai.Text(scoreArgumentPrompt(content, previous)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate score: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return 0, errors.New("empty response from model")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return parseScoreResponse(string(text))
		}
	}
	return 0, errors.New("no text part in model response")
}

// Close releases the underlying API client.
func (j *GeminiJudge) Close() error {
	return j.client.Close()
}

// cleanModelOutput strips markdown code fences the model wraps around JSON
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func parseScoreResponse(text string) (int, error) {
	var result struct {
		Score int `json:"score"`
	}
	if err := json.Unmarshal([]byte(cleanModelOutput(text)), &result); err != nil {
		return 0, fmt.Errorf("failed to parse score response: %w", err)
	}
	if result.Score < 0 || result.Score > 100 {
		return 0, fmt.Errorf("score %d out of range", result.Score)
	}
	return result.Score, nil
}
