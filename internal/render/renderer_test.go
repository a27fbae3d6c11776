package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"media-engine/internal/media"
)

// selectFor runs the real analyze+dispatch pipeline so renderer tests exercise
// the selections the service actually produces.
func selectFor(prompt, mediaType string) media.Selection {
	analyzer := media.NewAnalyzer()
	dispatcher := media.NewDispatcher()
	return dispatcher.SelectTemplate(analyzer.Analyze(prompt), prompt, mediaType)
}

func TestRenderImageTemplates(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name   string
		prompt string
	}{
		{"character", "Create a ninja character"},
		{"warrior", "a medieval warrior character"},
		{"environment", "Generate a space background"},
		{"ui element", "a start button icon"},
		{"abstract fallback", "something colorful"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := selectFor(tt.prompt, media.MediaImage)
			got := r.Render(sel)

			if got.Format != FormatSVG {
				t.Errorf("Format = %q, want %q", got.Format, FormatSVG)
			}
			if !strings.HasPrefix(got.Content, "<svg") {
				t.Errorf("Content does not start with <svg: %.60q", got.Content)
			}
			if !strings.Contains(got.Content, "</svg>") {
				t.Error("Content is not closed SVG")
			}
			if got.Description == "" {
				t.Error("Description is empty")
			}
		})
	}
}

func TestRenderImageUsesThemeColors(t *testing.T) {
	r := NewRenderer()
	sel := selectFor("Create a ninja character", media.MediaImage)
	got := r.Render(sel)

	// The ninja scheme's primary must appear somewhere in the markup.
	if !strings.Contains(got.Content, "#2C3E50") {
		t.Errorf("ninja primary color missing from SVG:\n%.200s", got.Content)
	}
}

func TestRenderUIElementEscapesLabel(t *testing.T) {
	r := NewRenderer()
	sel := selectFor("B&W button icon", media.MediaImage)
	if sel.TemplateID != media.ImageUIElement {
		t.Fatalf("TemplateID = %q, want %q", sel.TemplateID, media.ImageUIElement)
	}
	got := r.Render(sel)

	if strings.Contains(got.Content, ">B&W<") {
		t.Error("raw ampersand leaked into the text node")
	}
	if !strings.Contains(got.Content, "B&amp;W") {
		t.Errorf("label not XML-escaped:\n%.300s", got.Content)
	}
}

func TestRenderUIElementTruncatesByRunes(t *testing.T) {
	r := NewRenderer()
	sel := selectFor("ボタンデザインスケッチ画面 button icon", media.MediaImage)
	got := r.Render(sel)

	if !utf8.ValidString(got.Content) {
		t.Error("artifact contains invalid UTF-8 after label truncation")
	}
}

func TestRenderVideoTemplates(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name   string
		prompt string
	}{
		{"walk", "a character walking across the screen"},
		{"attack", "a hero in battle striking enemies"},
		{"flow", "water flowing through a scene"},
		{"particle", "magic sparkle particle effects"},
		{"text reveal", "animated title text reveal"},
		{"logo", "an animated brand logo intro"},
		{"idle fallback", "something unusual happening over there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := selectFor(tt.prompt, media.MediaVideo)
			got := r.Render(sel)

			if got.Format != FormatCSSAnimation {
				t.Errorf("Format = %q, want %q", got.Format, FormatCSSAnimation)
			}
			if !strings.Contains(got.Content, "<!DOCTYPE html>") {
				t.Error("Content is not a full HTML page")
			}
			if !strings.Contains(got.Content, "@keyframes") {
				t.Error("Content has no @keyframes rule")
			}
		})
	}
}

func TestRenderVideoEmbedsDuration(t *testing.T) {
	r := NewRenderer()
	sel := selectFor("a quick character walking animation", media.MediaVideo)
	if sel.Duration != 2 {
		t.Fatalf("Duration = %d, want 2", sel.Duration)
	}
	got := r.Render(sel)
	if !strings.Contains(got.Content, "2s") {
		t.Errorf("animation duration 2s missing from page:\n%.200s", got.Content)
	}
}

func TestRenderAudioTemplates(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		prompt   string
		contains string
	}{
		{"music", "Create epic battle music", "AudioContext"},
		{"ambient", "calm ambient atmosphere track", "AudioContext"},
		{"sound effect", "make a jump sound effect please", "AudioContext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := selectFor(tt.prompt, media.MediaAudio)
			got := r.Render(sel)

			if got.Format != FormatWebAudio {
				t.Errorf("Format = %q, want %q", got.Format, FormatWebAudio)
			}
			if !strings.Contains(got.Content, tt.contains) {
				t.Errorf("Content missing %q:\n%.200s", tt.contains, got.Content)
			}
		})
	}
}

func TestRenderMusicUsesStylePreset(t *testing.T) {
	r := NewRenderer()
	sel := selectFor("Create epic battle music", media.MediaAudio)
	got := r.Render(sel)

	// Epic preset: 120 bpm in C minor. The root frequency of C must appear in
	// the generated program.
	if !strings.Contains(got.Content, "261.63") {
		t.Errorf("root frequency of C missing from program:\n%.300s", got.Content)
	}
	if !strings.Contains(got.Description, "epic") {
		t.Errorf("Description = %q, want mood mentioned", got.Description)
	}
}

func TestRenderUnknownTemplateFallsBack(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		mediaType string
		format    string
	}{
		{media.MediaImage, FormatSVG},
		{media.MediaVideo, FormatCSSAnimation},
		{media.MediaAudio, FormatWebAudio},
	}

	for _, tt := range tests {
		sel := media.Selection{
			TemplateID: "no_such_template",
			MediaType:  tt.mediaType,
			Prompt:     "anything",
			Theme:      "default",
			Mood:       "neutral",
			Colors:     media.ColorSchemeFor("default"),
			Duration:   10,
		}
		got := r.Render(sel)
		if got.Format != tt.format {
			t.Errorf("fallback Format for %s = %q, want %q", tt.mediaType, got.Format, tt.format)
		}
		if got.Content == "" {
			t.Errorf("fallback Content for %s is empty", tt.mediaType)
		}
	}
}

func TestRenderMusicFallbackPlaysAtLeastOneBar(t *testing.T) {
	r := NewRenderer()
	// The unknown-template fallback renders music with whatever parameters the
	// selection carries, including a zero duration.
	sel := media.Selection{
		TemplateID: "no_such_template",
		MediaType:  media.MediaAudio,
		Prompt:     "anything",
		Mood:       "neutral",
		Colors:     media.ColorSchemeFor("default"),
	}
	got := r.Render(sel)

	if !strings.Contains(got.Content, "Math.max(4, Math.floor(0 / beat))") {
		t.Errorf("zero-duration program is not clamped to a minimum bar:\n%.300s", got.Content)
	}
}

func TestRenderNeverReturnsEmptyContent(t *testing.T) {
	r := NewRenderer()
	analyzer := media.NewAnalyzer()
	dispatcher := media.NewDispatcher()

	prompts := []string{
		"", "x", "Create a ninja character image", "walking animation",
		"epic music", "jump sound effect", "a start button", "peaceful forest scene",
	}
	for _, p := range prompts {
		for _, family := range []string{media.MediaImage, media.MediaVideo, media.MediaAudio} {
			sel := dispatcher.SelectTemplate(analyzer.Analyze(p), p, family)
			if got := r.Render(sel); got.Content == "" {
				t.Errorf("empty content for prompt %q family %s (template %s)", p, family, sel.TemplateID)
			}
		}
	}
}

func TestTemplateCount(t *testing.T) {
	r := NewRenderer()
	// 10 image, 8 video, 7 audio.
	if got := r.TemplateCount(); got != 25 {
		t.Errorf("TemplateCount = %d, want 25", got)
	}
}
