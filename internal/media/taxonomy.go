// Package media contains the core prompt-analysis and template-selection logic
// for the media engine: keyword taxonomies, the analyzer that maps free text to
// a structured analysis record, and the dispatcher that turns a record into a
// concrete template selection.
package media

// Canonical media family labels. MediaImage doubles as the fallback when a
// prompt gives no media cue at all.
const (
	MediaImage = "image"
	MediaVideo = "video"
	MediaAudio = "audio"
)

// Default labels returned when a taxonomy scores zero (or ties) everywhere.
const (
	ThemeDefault     = "default"
	StyleDefault     = "default"
	MoodNeutral      = "neutral"
	ComplexityMedium = "medium"
)

// Complexity labels that carry their own scoring keywords. ComplexityMedium is
// the no-match default and deliberately has no keyword list.
const (
	ComplexitySimple       = "simple"
	ComplexityDetailed     = "detailed"
	ComplexityProfessional = "professional"
)

// taxonomyEntry binds one label to the keywords that vote for it. Entries are
// held in slices, not maps: the declared order is the tie-break order, and it
// must stay stable across runs.
type taxonomyEntry struct {
	Label    string
	Keywords []string
}

// taxonomy is one scoring dimension. Default is the label used when no entry
// scores strictly higher than all others.
type taxonomy struct {
	Name    string
	Default string
	Entries []taxonomyEntry
}

var mediaTypeTaxonomy = taxonomy{
	Name:    "media_type",
	Default: MediaImage,
	Entries: []taxonomyEntry{
		{MediaImage, []string{"image", "picture", "photo", "art", "drawing", "character", "background", "scene", "sprite", "icon", "logo", "design"}},
		{MediaVideo, []string{"video", "animation", "movie", "clip", "gif", "motion", "animate", "sequence", "cinematic", "trailer"}},
		{MediaAudio, []string{"audio", "music", "sound", "song", "melody", "beat", "soundtrack", "effect", "voice", "noise"}},
	},
}

var themeTaxonomy = taxonomy{
	Name:    "theme",
	Default: ThemeDefault,
	Entries: []taxonomyEntry{
		{"ninja", []string{"ninja", "stealth", "shadow", "assassin", "katana", "shuriken", "martial", "japanese"}},
		{"space", []string{"space", "cosmic", "galaxy", "star", "planet", "alien", "sci-fi", "futuristic", "spaceship"}},
		{"medieval", []string{"medieval", "knight", "castle", "sword", "armor", "dragon", "fantasy", "kingdom", "royal"}},
		{"forest", []string{"forest", "tree", "nature", "woodland", "green", "leaf", "branch", "natural", "wild"}},
		{"underwater", []string{"underwater", "ocean", "sea", "fish", "coral", "deep", "aquatic", "marine", "blue"}},
	},
}

var styleTaxonomy = taxonomy{
	Name:    "style",
	Default: StyleDefault,
	Entries: []taxonomyEntry{
		{"realistic", []string{"realistic", "photorealistic", "detailed", "lifelike", "accurate", "precise"}},
		{"cartoon", []string{"cartoon", "animated", "stylized", "cute", "colorful", "fun", "playful"}},
		{"abstract", []string{"abstract", "artistic", "creative", "unique", "experimental", "modern"}},
		{"minimalist", []string{"minimalist", "simple", "clean", "basic", "minimal", "elegant"}},
		{"retro", []string{"retro", "vintage", "classic", "old-school", "8-bit", "pixel", "nostalgic"}},
	},
}

var moodTaxonomy = taxonomy{
	Name:    "mood",
	Default: MoodNeutral,
	Entries: []taxonomyEntry{
		{"epic", []string{"epic", "dramatic", "intense", "powerful", "heroic", "grand", "majestic"}},
		{"peaceful", []string{"peaceful", "calm", "relaxing", "serene", "tranquil", "gentle", "soothing"}},
		{"dark", []string{"dark", "mysterious", "gothic", "sinister", "ominous", "shadowy", "eerie"}},
		{"bright", []string{"bright", "cheerful", "happy", "vibrant", "energetic", "positive", "uplifting"}},
		{"mysterious", []string{"mysterious", "enigmatic", "cryptic", "hidden", "secret", "unknown"}},
	},
}

var complexityTaxonomy = taxonomy{
	Name:    "complexity",
	Default: ComplexityMedium,
	Entries: []taxonomyEntry{
		{ComplexitySimple, []string{"simple", "basic", "easy", "quick", "minimal", "plain"}},
		{ComplexityDetailed, []string{"detailed", "complex", "intricate", "elaborate", "sophisticated", "advanced"}},
		{ComplexityProfessional, []string{"professional", "high-quality", "polished", "refined", "premium"}},
	},
}

// Labels returns the declared label order of a taxonomy. Used by the advisory
// capability report.
func (t taxonomy) Labels() []string {
	labels := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		labels[i] = e.Label
	}
	return labels
}
