package media

import (
	"regexp"
	"strings"
)

// =================================================================================
// Prompt Analyzer
// =================================================================================
// The analyzer classifies a free-text prompt along five independent keyword
// taxonomies and derives a confidence score, a generation strategy, a time
// estimate, and a recommended output format from the result.
//
// Scoring rules:
// - A label's score is the number of its keywords present as substrings of the
//   case-folded prompt. Presence, not frequency: a keyword counts once no
//   matter how often it appears.
// - The strictly highest score wins. Any tie, including the all-zero case,
//   resolves to the taxonomy default; a non-zero tie between two labels
//   resolves to whichever is declared first. The declared order in taxonomy.go
//   is therefore part of the observable contract.
// =================================================================================

// Analysis is the structured result of analyzing one prompt. It is created
// once, never mutated, and safe to share across goroutines.
type Analysis struct {
	OriginalPrompt     string   `json:"original_prompt"`
	MediaType          string   `json:"media_type"`
	Theme              string   `json:"theme"`
	Style              string   `json:"style"`
	Mood               string   `json:"mood"`
	Complexity         string   `json:"complexity"`
	Keywords           []string `json:"keywords"`
	Confidence         float64  `json:"confidence"`
	GenerationStrategy string   `json:"generation_strategy"`
	EstimatedTime      int      `json:"estimated_time"`
	RecommendedFormat  string   `json:"recommended_format"`
}

// HasKeyword reports whether the extracted keyword list contains word.
func (a Analysis) HasKeyword(word string) bool {
	for _, kw := range a.Keywords {
		if kw == word {
			return true
		}
	}
	return false
}

var wordRegex = regexp.MustCompile(`\w+`)

// stopWords are dropped during keyword extraction: articles, auxiliaries,
// prepositions, and the request verbs that carry no content.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {}, "must": {}, "can": {},
	"create": {}, "make": {}, "generate": {}, "build": {},
}

const maxKeywords = 10

// Analyzer is the prompt classification service. It is stateless; one instance
// serves all requests concurrently.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies a prompt and derives the full analysis record. It never
// fails: an empty or unrecognized prompt yields the all-default record.
func (a *Analyzer) Analyze(prompt string) Analysis {
	folded := strings.ToLower(prompt)

	analysis := Analysis{
		OriginalPrompt: prompt,
		MediaType:      scoreTaxonomy(mediaTypeTaxonomy, folded, nil),
		Theme:          scoreTaxonomy(themeTaxonomy, folded, nil),
		Style:          scoreTaxonomy(styleTaxonomy, folded, nil),
		Mood:           scoreTaxonomy(moodTaxonomy, folded, nil),
		Complexity:     scoreTaxonomy(complexityTaxonomy, folded, complexityLengthBonus(folded)),
		Keywords:       extractKeywords(folded),
	}

	analysis.Confidence = deriveConfidence(analysis)
	analysis.GenerationStrategy = deriveStrategy(analysis)
	analysis.EstimatedTime = deriveEstimatedTime(analysis)
	analysis.RecommendedFormat = deriveFormat(analysis)

	return analysis
}

// AnalyzeBatch analyzes multiple prompts in order.
func (a *Analyzer) AnalyzeBatch(prompts []string) []Analysis {
	results := make([]Analysis, len(prompts))
	for i, p := range prompts {
		results[i] = a.Analyze(p)
	}
	return results
}

// scoreTaxonomy selects the winning label for one taxonomy. bonus, if non-nil,
// adds extra points per label before selection (used for the complexity
// word-count heuristic). Selection keeps the first strictly-highest score, so
// ties always fall back to earlier declarations and finally to the default.
func scoreTaxonomy(t taxonomy, folded string, bonus map[string]int) string {
	best := t.Default
	bestScore := 0
	for _, entry := range t.Entries {
		score := bonus[entry.Label]
		for _, kw := range entry.Keywords {
			if strings.Contains(folded, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.Label
		}
	}
	return best
}

// complexityLengthBonus converts prompt length into extra complexity votes:
// long prompts lean detailed, very short ones lean simple. A blank prompt gets
// no vote at all, so it resolves to the all-default record.
func complexityLengthBonus(folded string) map[string]int {
	words := len(strings.Fields(folded))
	switch {
	case words > 10:
		return map[string]int{ComplexityDetailed: 1}
	case words > 0 && words < 5:
		return map[string]int{ComplexitySimple: 1}
	}
	return nil
}

// extractKeywords pulls up to maxKeywords content words from the folded
// prompt, in order of first occurrence.
func extractKeywords(folded string) []string {
	words := wordRegex.FindAllString(folded, -1)
	keywords := make([]string, 0, maxKeywords)
	for _, w := range words {
		if len(w) <= 2 {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		keywords = append(keywords, w)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords
}
