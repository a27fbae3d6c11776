package media

import "fmt"

// Advisory helpers layered on the analyzer: human-readable tips for improving
// a prompt and concrete rewritten prompt suggestions.

// Suggestion bundles the analysis of a prompt with improvement advice.
type Suggestion struct {
	Analysis         Analysis `json:"original_analysis"`
	ImprovementTips  []string `json:"improvement_tips"`
	SuggestedPrompts []string `json:"suggested_prompts"`
}

// Capabilities describes what the analyzer can classify. Served by the info
// endpoint.
type Capabilities struct {
	MediaTypes []string `json:"supported_media_types"`
	Themes     []string `json:"supported_themes"`
	Styles     []string `json:"supported_styles"`
	Moods      []string `json:"supported_moods"`
	Features   []string `json:"analysis_capabilities"`
}

// GenerationTips returns advice for getting better results from a prompt that
// analyzed weakly.
func (a *Analyzer) GenerationTips(analysis Analysis) []string {
	var tips []string

	if analysis.Confidence < 0.5 {
		tips = append(tips, "Try being more specific about what type of media you want")
	}
	if analysis.Theme == ThemeDefault {
		tips = append(tips, "Adding a theme (like 'ninja', 'space', 'medieval') will improve results")
	}
	if analysis.Style == StyleDefault {
		tips = append(tips, "Specify a style (like 'cartoon', 'realistic', 'minimalist') for better visuals")
	}
	if len(analysis.Keywords) < 3 {
		tips = append(tips, "Add more descriptive words to get more detailed results")
	}
	if analysis.MediaType == MediaVideo && !analysis.HasKeyword("animation") {
		tips = append(tips, "Specify the type of animation you want (walking, flowing, spinning, etc.)")
	}

	return tips
}

// SuggestImprovements analyzes a prompt and proposes up to three rewritten
// prompts that would classify more strongly.
func (a *Analyzer) SuggestImprovements(prompt string) Suggestion {
	analysis := a.Analyze(prompt)

	var improved []string
	if analysis.Theme == ThemeDefault {
		improved = append(improved,
			fmt.Sprintf("%s with ninja theme", prompt),
			fmt.Sprintf("%s in space setting", prompt),
		)
	}
	if analysis.Style == StyleDefault {
		improved = append(improved,
			fmt.Sprintf("%s in cartoon style", prompt),
			fmt.Sprintf("%s with realistic details", prompt),
		)
	}
	if len(improved) > 3 {
		improved = improved[:3]
	}

	return Suggestion{
		Analysis:         analysis,
		ImprovementTips:  a.GenerationTips(analysis),
		SuggestedPrompts: improved,
	}
}

// AnalyzerCapabilities reports the supported labels and features.
func AnalyzerCapabilities() Capabilities {
	return Capabilities{
		MediaTypes: mediaTypeTaxonomy.Labels(),
		Themes:     themeTaxonomy.Labels(),
		Styles:     styleTaxonomy.Labels(),
		Moods:      moodTaxonomy.Labels(),
		Features: []string{
			"Media type detection",
			"Theme identification",
			"Style analysis",
			"Mood detection",
			"Complexity assessment",
			"Keyword extraction",
			"Confidence scoring",
			"Strategy recommendation",
			"Time estimation",
			"Format optimization",
		},
	}
}
