package media

import (
	"strings"
	"testing"
)

func TestGenerationTipsForWeakPrompt(t *testing.T) {
	a := NewAnalyzer()
	analysis := a.Analyze("thing")
	tips := a.GenerationTips(analysis)

	if len(tips) == 0 {
		t.Fatal("expected tips for a weak prompt")
	}
	joined := strings.Join(tips, "\n")
	for _, want := range []string{"more specific", "theme", "style", "descriptive"} {
		if !strings.Contains(joined, want) {
			t.Errorf("tips missing %q advice:\n%s", want, joined)
		}
	}
}

func TestGenerationTipsForStrongPrompt(t *testing.T) {
	a := NewAnalyzer()
	analysis := a.Analyze("realistic ninja character image with katana and shadow details")
	tips := a.GenerationTips(analysis)

	joined := strings.Join(tips, "\n")
	if strings.Contains(joined, "theme") {
		t.Errorf("theme tip given despite a detected theme:\n%s", joined)
	}
	if strings.Contains(joined, "style") {
		t.Errorf("style tip given despite a detected style:\n%s", joined)
	}
}

func TestSuggestImprovements(t *testing.T) {
	a := NewAnalyzer()
	got := a.SuggestImprovements("a character")

	if len(got.SuggestedPrompts) == 0 {
		t.Fatal("expected suggested prompts for a theme-less, style-less prompt")
	}
	if len(got.SuggestedPrompts) > 3 {
		t.Errorf("got %d suggestions, want at most 3", len(got.SuggestedPrompts))
	}
	for _, s := range got.SuggestedPrompts {
		if !strings.HasPrefix(s, "a character") {
			t.Errorf("suggestion %q does not extend the original prompt", s)
		}
	}
	if got.Analysis.OriginalPrompt != "a character" {
		t.Errorf("Analysis.OriginalPrompt = %q, want %q", got.Analysis.OriginalPrompt, "a character")
	}
}

func TestSuggestImprovementsThemedPrompt(t *testing.T) {
	a := NewAnalyzer()
	got := a.SuggestImprovements("realistic ninja character in shadow")

	// Theme and style both detected: nothing to suggest.
	if len(got.SuggestedPrompts) != 0 {
		t.Errorf("got %d suggestions, want none: %v", len(got.SuggestedPrompts), got.SuggestedPrompts)
	}
}

func TestAnalyzerCapabilities(t *testing.T) {
	caps := AnalyzerCapabilities()

	if len(caps.MediaTypes) != 3 {
		t.Errorf("MediaTypes = %v, want 3 families", caps.MediaTypes)
	}
	if caps.MediaTypes[0] != MediaImage {
		t.Errorf("MediaTypes[0] = %q, want %q (declared order)", caps.MediaTypes[0], MediaImage)
	}
	if len(caps.Themes) != 5 {
		t.Errorf("Themes = %v, want 5 themes", caps.Themes)
	}
	if len(caps.Features) == 0 {
		t.Error("Features is empty")
	}
}
