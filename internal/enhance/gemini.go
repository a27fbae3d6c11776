// Package enhance provides the optional prompt-enhancement collaborator. When
// configured, it asks Gemini to enrich a user's generation prompt with style
// and composition detail; on any error, timeout, or missing configuration it
// returns the original prompt unchanged, so the analysis pipeline behaves
// identically with or without it.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Enhancer rewrites a generation prompt for a given media family. It must
// never fail: implementations return the input prompt on any problem.
type Enhancer interface {
	Enhance(ctx context.Context, prompt, mediaType string) string
}

// NoopEnhancer is the stand-in used when no enhancement backend is configured.
type NoopEnhancer struct{}

func (NoopEnhancer) Enhance(_ context.Context, prompt, _ string) string { return prompt }

// GeminiEnhancer enriches prompts via Google's Gemini models.
type GeminiEnhancer struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

var _ Enhancer = (*GeminiEnhancer)(nil)

// NewGeminiEnhancer creates an enhancer backed by the given model ID.
func NewGeminiEnhancer(apiKey, modelID string, timeout time.Duration) (*GeminiEnhancer, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelID)
	model.SetMaxOutputTokens(256)
	model.SetTemperature(0.7)

	return &GeminiEnhancer{model: model, timeout: timeout}, nil
}

// Enhance asks the model for a richer version of the prompt. The returned
// string is the enhanced prompt, or the original on any failure.
func (e *GeminiEnhancer) Enhance(ctx context.Context, prompt, mediaType string) string {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if mediaType == "" {
		mediaType = "media"
	}
	instruction := fmt.Sprintf(
		"Rewrite the following %s generation prompt to be more vivid and specific. "+
			"Add concrete visual or sonic detail but keep the user's intent. "+
			"Reply with the rewritten prompt only, no commentary.\n\nPrompt: %s",
		mediaType, prompt)

	resp, err := e.model.GenerateContent(ctx, genai.Text(instruction))
	if err != nil {
		log.Printf("WARNING: prompt enhancement failed, using original prompt: %v", err)
		return prompt
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Println("WARNING: prompt enhancement returned no content, using original prompt")
		return prompt
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	enhanced := strings.TrimSpace(sb.String())
	if enhanced == "" {
		return prompt
	}
	return enhanced
}
