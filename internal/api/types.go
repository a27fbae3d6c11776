// Package api defines the wire types shared between the HTTP surface and the
// engine's internal services.
package api

import "media-engine/internal/media"

// GenerationRequest is the body of every generation endpoint.
type GenerationRequest struct {
	Prompt string `json:"prompt"`
	// Type is an optional media family override: image, video, audio, or
	// auto (the default) to follow the analyzer's detection.
	Type    string `json:"type,omitempty"`
	UserID  string `json:"user_id,omitempty"`
	Enhance bool   `json:"enhance,omitempty"`
}

// GenerationResponse is the unified response of the generation endpoints.
type GenerationResponse struct {
	Success        bool           `json:"success"`
	Type           string         `json:"type"`
	Format         string         `json:"format"`
	Content        string         `json:"content"`
	Description    string         `json:"description,omitempty"`
	UsageTips      []string       `json:"usage_tips,omitempty"`
	Prompt         string         `json:"prompt"`
	EnhancedPrompt string         `json:"enhanced_prompt,omitempty"`
	Analysis       media.Analysis `json:"analysis"`
	TemplateID     string         `json:"template_id"`
	GenerationMS   int64          `json:"generation_ms"`
	UserID         string         `json:"user_id"`
	CacheStatus    string         `json:"cache_status,omitempty"`
	Timestamp      string         `json:"timestamp"`
}

// AnalyzeRequest is the body of the analysis-only endpoint.
type AnalyzeRequest struct {
	Prompt  string   `json:"prompt"`
	Prompts []string `json:"prompts,omitempty"` // batch mode when non-empty
}

// ErrorResponse is the shape of every error payload.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Example any    `json:"example,omitempty"`
}
