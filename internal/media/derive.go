package media

// Derivation of confidence, generation strategy, time estimate, and output
// format from a scored analysis. The confidence weights are hand-tuned and
// load-bearing: downstream thresholds (advisory tips, UI hints) assume these
// exact contributions, so do not adjust them casually.

// Generation strategy labels selecting a rendering pathway.
const (
	StrategySVGTemplate      = "svg_template"
	StrategyThemedSVG        = "themed_svg_generation"
	StrategyProceduralSVG    = "procedural_svg"
	StrategyCSSAnimation     = "css_animation"
	StrategyAdvancedCSS      = "advanced_css_animation"
	StrategyAudioComposition = "web_audio_composition"
	StrategyAudioEffects     = "web_audio_effects"
	StrategyDefault          = "default_generation"
)

// Recommended output format tags.
const (
	FormatSVG            = "svg"
	FormatSVGWithCSS     = "svg_with_css"
	FormatCSSAnimation   = "css_animation_html"
	FormatWebAudioScript = "web_audio_javascript"
)

// deriveConfidence scores how many taxonomy dimensions matched non-default
// labels, plus a capped keyword-richness bonus. The result is a heuristic in
// [0,1], not a probability.
func deriveConfidence(a Analysis) float64 {
	confidence := 0.1
	if a.MediaType != MediaImage {
		// A non-image match is a real signal; image is also the fallback.
		confidence = 0.3
	}
	if a.Theme != ThemeDefault {
		confidence += 0.2
	}
	if a.Style != StyleDefault {
		confidence += 0.2
	}
	if a.Mood != MoodNeutral {
		confidence += 0.1
	}
	keywordBonus := float64(len(a.Keywords)) / 5.0
	if keywordBonus > 0.2 {
		keywordBonus = 0.2
	}
	confidence += keywordBonus

	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

// deriveStrategy maps (media type, complexity, theme, keywords) to a rendering
// pathway.
func deriveStrategy(a Analysis) string {
	switch a.MediaType {
	case MediaImage:
		switch {
		case a.Complexity == ComplexitySimple:
			return StrategySVGTemplate
		case a.Theme != ThemeDefault:
			return StrategyThemedSVG
		default:
			return StrategyProceduralSVG
		}
	case MediaVideo:
		if a.Complexity == ComplexitySimple {
			return StrategyCSSAnimation
		}
		return StrategyAdvancedCSS
	case MediaAudio:
		if a.HasKeyword("music") {
			return StrategyAudioComposition
		}
		return StrategyAudioEffects
	}
	return StrategyDefault
}

// deriveEstimatedTime returns a rough generation time in seconds.
func deriveEstimatedTime(a Analysis) int {
	base := 1
	if a.MediaType == MediaVideo {
		base = 2
	}
	switch a.Complexity {
	case ComplexityDetailed:
		base++
	case ComplexityProfessional:
		base += 2
	}
	return base
}

// deriveFormat picks the output format tag for the media family.
func deriveFormat(a Analysis) string {
	switch a.MediaType {
	case MediaImage:
		if a.Complexity == ComplexitySimple {
			return FormatSVG
		}
		return FormatSVGWithCSS
	case MediaVideo:
		return FormatCSSAnimation
	case MediaAudio:
		return FormatWebAudioScript
	}
	return FormatSVG
}
