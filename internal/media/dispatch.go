package media

import "strings"

// =================================================================================
// Strategy Dispatcher
// =================================================================================
// The dispatcher consumes an Analysis plus the original prompt and selects,
// per media family, which template to render and with what parameters. It is a
// deterministic decision table: every branch has a designated fallback, so
// selection can never fail.
//
// Sub-type detection reuses the analyzer's substring technique, but against
// finer-grained cue lists. Cue lists are ordered; the first matching list wins.
// =================================================================================

// Image sub-types.
const (
	ImageCharacter   = "character"
	ImageEnvironment = "environment"
	ImageUIElement   = "ui_element"
	ImageAbstract    = "abstract"
)

// Video animation sub-types. TemplateIDs for the video family are the sub-type
// labels themselves.
const (
	VideoCharacterWalk   = "character_walk"
	VideoCharacterAttack = "character_attack"
	VideoCharacterIdle   = "character_idle"
	VideoEnvironmentFlow = "environment_flow"
	VideoUITransition    = "ui_transition"
	VideoParticleEffect  = "particle_effect"
	VideoTextReveal      = "text_reveal"
	VideoLogoAnimation   = "logo_animation"
)

// Audio sub-types.
const (
	AudioMusic       = "music"
	AudioSoundEffect = "sound_effect"
	AudioAmbient     = "ambient"
	AudioVoice       = "voice"
)

// Selection is the dispatcher's output: a template id plus every parameter the
// renderer needs, fully resolved.
type Selection struct {
	TemplateID string      `json:"template_id"`
	MediaType  string      `json:"media_type"`
	SubType    string      `json:"sub_type"`
	Prompt     string      `json:"prompt"`
	Theme      string      `json:"theme"`
	Style      string      `json:"style"`
	Mood       string      `json:"mood"`
	Complexity string      `json:"complexity"`
	Colors     ColorScheme `json:"colors"`
	Duration   int         `json:"duration,omitempty"`
	Music      *MusicStyle `json:"music,omitempty"`
	EffectType string      `json:"effect_type,omitempty"`
}

// cueSet binds a sub-type label to the prompt substrings that select it.
type cueSet struct {
	Label string
	Cues  []string
}

var imageCues = []cueSet{
	{ImageCharacter, []string{"character", "person", "hero", "warrior", "ninja", "mage", "knight", "robot", "creature"}},
	{ImageEnvironment, []string{"background", "landscape", "scene", "environment", "forest", "castle", "space", "room"}},
	{ImageUIElement, []string{"button", "icon", "logo", "interface", "ui", "menu", "badge", "symbol"}},
}

var videoCues = []cueSet{
	{VideoCharacterWalk, []string{"walk", "walking", "move", "moving", "run", "running"}},
	{VideoCharacterAttack, []string{"attack", "fighting", "battle", "combat", "strike"}},
	{VideoCharacterIdle, []string{"idle", "standing", "breathing", "waiting"}},
	{VideoEnvironmentFlow, []string{"flow", "flowing", "water", "wind", "particles"}},
	{VideoUITransition, []string{"transition", "fade", "slide", "ui", "interface"}},
	{VideoParticleEffect, []string{"particle", "effect", "magic", "sparkle", "explosion"}},
	{VideoTextReveal, []string{"text", "title", "reveal", "typewriter"}},
	{VideoLogoAnimation, []string{"logo", "brand", "intro", "opening"}},
}

var audioCues = []cueSet{
	{AudioMusic, []string{"music", "song", "melody", "soundtrack", "theme"}},
	{AudioSoundEffect, []string{"effect", "sound", "sfx", "noise"}},
	{AudioAmbient, []string{"ambient", "atmosphere", "background"}},
	{AudioVoice, []string{"voice", "speech", "narration"}},
}

// videoDurations are the animation duration presets in seconds.
var videoDurations = map[string]int{
	"quick":    2,
	"short":    5,
	"medium":   10,
	"long":     15,
	"extended": 30,
}

// Dispatcher selects a render template and parameters per media family.
type Dispatcher struct{}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// SelectTemplate resolves the analysis into a concrete template selection for
// the analysis' media family. mediaType overrides the analysis' detected
// family when non-empty (the "forced family" endpoints use this).
func (d *Dispatcher) SelectTemplate(analysis Analysis, prompt string, mediaType string) Selection {
	if mediaType == "" {
		mediaType = analysis.MediaType
	}

	sel := Selection{
		MediaType:  mediaType,
		Prompt:     prompt,
		Theme:      analysis.Theme,
		Style:      analysis.Style,
		Mood:       analysis.Mood,
		Complexity: analysis.Complexity,
		Colors:     ColorSchemeFor(analysis.Theme),
	}

	folded := strings.ToLower(prompt)
	switch mediaType {
	case MediaVideo:
		sel.SubType = matchCues(videoCues, folded, VideoCharacterIdle)
		sel.TemplateID = sel.SubType
		sel.Duration = videoDuration(folded, analysis.Complexity)
	case MediaAudio:
		sel.SubType = matchCues(audioCues, folded, AudioMusic)
		sel.Duration = audioDuration(folded, analysis.Complexity)
		switch sel.SubType {
		case AudioSoundEffect:
			sel.EffectType = effectTypeFor(analysis.Keywords)
			sel.TemplateID = AudioSoundEffect + "_" + sel.EffectType
		case AudioAmbient:
			style := MusicStyleFor(analysis.Mood)
			sel.Music = &style
			sel.TemplateID = AudioAmbient
		default:
			// Music is the fallback for voice and everything unrecognized.
			style := MusicStyleFor(analysis.Mood)
			sel.Music = &style
			sel.TemplateID = AudioMusic
		}
	default:
		sel.MediaType = MediaImage
		sel.SubType = matchCues(imageCues, folded, ImageAbstract)
		switch sel.SubType {
		case ImageCharacter:
			sel.TemplateID = ImageCharacter + "_" + characterTypeFor(analysis.Keywords)
		case ImageEnvironment:
			sel.TemplateID = ImageEnvironment + "_" + environmentTypeFor(analysis.Keywords)
		default:
			sel.TemplateID = sel.SubType
		}
	}

	return sel
}

// matchCues returns the first cue set with any cue present in the folded
// prompt, or fallback when nothing matches.
func matchCues(cues []cueSet, folded, fallback string) string {
	for _, cs := range cues {
		for _, cue := range cs.Cues {
			if strings.Contains(folded, cue) {
				return cs.Label
			}
		}
	}
	return fallback
}

// videoDuration resolves the animation duration. Explicit duration keywords
// beat complexity, which beats the medium default. Ordered checks, first
// match wins.
func videoDuration(folded, complexity string) int {
	switch {
	case containsAny(folded, "quick", "fast", "brief"):
		return videoDurations["quick"]
	case containsAny(folded, "short"):
		return videoDurations["short"]
	case containsAny(folded, "long", "extended", "detailed"):
		return videoDurations["long"]
	}

	switch complexity {
	case ComplexitySimple:
		return videoDurations["short"]
	case ComplexityDetailed:
		return videoDurations["medium"]
	case ComplexityProfessional:
		return videoDurations["long"]
	}
	return videoDurations["medium"]
}

// audioDuration resolves the audio duration in seconds with the same
// three-tier override chain.
func audioDuration(folded, complexity string) int {
	switch {
	case containsAny(folded, "short", "brief", "quick"):
		return 10
	case containsAny(folded, "long", "extended"):
		return 60
	case containsAny(folded, "loop", "background"):
		return 30
	}

	switch complexity {
	case ComplexitySimple:
		return 15
	case ComplexityDetailed:
		return 45
	case ComplexityProfessional:
		return 60
	}
	return 30
}

// characterTypeFor narrows a character image to a body template by exact
// keyword membership.
func characterTypeFor(keywords []string) string {
	switch {
	case hasAnyKeyword(keywords, "warrior", "knight"):
		return "warrior"
	case hasAnyKeyword(keywords, "mage", "wizard"):
		return "mage"
	case hasAnyKeyword(keywords, "robot", "android"):
		return "robot"
	case hasAnyKeyword(keywords, "creature", "monster"):
		return "creature"
	}
	return "humanoid"
}

// environmentTypeFor narrows an environment image to a scene template.
func environmentTypeFor(keywords []string) string {
	switch {
	case hasAnyKeyword(keywords, "interior", "room", "indoor"):
		return "interior"
	case hasAnyKeyword(keywords, "abstract", "pattern"):
		return "abstract"
	}
	return "landscape"
}

// effectTypeFor narrows a sound effect to a specific synth patch.
func effectTypeFor(keywords []string) string {
	switch {
	case hasAnyKeyword(keywords, "coin", "pickup"):
		return "coin"
	case hasAnyKeyword(keywords, "jump", "bounce"):
		return "jump"
	case hasAnyKeyword(keywords, "explosion", "blast"):
		return "explosion"
	case hasAnyKeyword(keywords, "laser", "shoot"):
		return "laser"
	}
	return "click"
}

func containsAny(folded string, cues ...string) bool {
	for _, cue := range cues {
		if strings.Contains(folded, cue) {
			return true
		}
	}
	return false
}

func hasAnyKeyword(keywords []string, wanted ...string) bool {
	for _, w := range wanted {
		for _, kw := range keywords {
			if kw == w {
				return true
			}
		}
	}
	return false
}
