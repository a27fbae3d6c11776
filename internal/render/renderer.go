// Package render turns a dispatcher selection into an artifact string: an SVG
// image, an HTML page carrying a CSS animation, or a Web-Audio JavaScript
// program. Rendering never fails; an unknown template id falls back to the
// default builder for its media family.
package render

import (
	"log"

	"media-engine/internal/media"
)

// Artifact is a rendered result plus its format tag and usage guidance.
type Artifact struct {
	Content     string   `json:"content"`
	Format      string   `json:"format"`
	Description string   `json:"description"`
	UsageTips   []string `json:"usage_tips,omitempty"`
}

// Format tags attached to artifacts.
const (
	FormatSVG          = "svg"
	FormatCSSAnimation = "css_animation"
	FormatWebAudio     = "web_audio_javascript"
)

// builder produces an artifact from a fully resolved selection.
type builder func(sel media.Selection) Artifact

// Renderer holds the template registry. It is immutable after construction and
// safe for concurrent use.
type Renderer struct {
	templates map[string]builder
}

// NewRenderer creates a renderer with every built-in template registered.
func NewRenderer() *Renderer {
	r := &Renderer{templates: make(map[string]builder)}

	// Image templates.
	for _, variant := range []string{"humanoid", "warrior", "mage", "robot", "creature"} {
		v := variant
		r.templates[media.ImageCharacter+"_"+v] = func(sel media.Selection) Artifact {
			return buildCharacterSVG(sel, v)
		}
	}
	for _, variant := range []string{"landscape", "interior", "abstract"} {
		v := variant
		r.templates[media.ImageEnvironment+"_"+v] = func(sel media.Selection) Artifact {
			return buildEnvironmentSVG(sel, v)
		}
	}
	r.templates[media.ImageUIElement] = buildUIElementSVG
	r.templates[media.ImageAbstract] = buildAbstractSVG

	// Video templates.
	r.templates[media.VideoCharacterWalk] = buildWalkAnimation
	r.templates[media.VideoCharacterIdle] = buildIdleAnimation
	r.templates[media.VideoCharacterAttack] = buildAttackAnimation
	r.templates[media.VideoEnvironmentFlow] = buildFlowAnimation
	r.templates[media.VideoUITransition] = buildTransitionAnimation
	r.templates[media.VideoParticleEffect] = buildParticleAnimation
	r.templates[media.VideoTextReveal] = buildTextRevealAnimation
	r.templates[media.VideoLogoAnimation] = buildLogoAnimation

	// Audio templates.
	r.templates[media.AudioMusic] = buildMusicComposition
	r.templates[media.AudioAmbient] = buildAmbientAudio
	for _, effect := range []string{"coin", "jump", "explosion", "laser", "click"} {
		e := effect
		r.templates[media.AudioSoundEffect+"_"+e] = func(sel media.Selection) Artifact {
			return buildSoundEffect(sel, e)
		}
	}

	return r
}

// Render produces the artifact for a selection. It always succeeds: a template
// id with no registered builder degrades to the family default.
func (r *Renderer) Render(sel media.Selection) Artifact {
	if build, ok := r.templates[sel.TemplateID]; ok {
		return build(sel)
	}

	log.Printf("WARNING: no template registered for %q, using %s fallback", sel.TemplateID, sel.MediaType)
	switch sel.MediaType {
	case media.MediaVideo:
		return buildIdleAnimation(sel)
	case media.MediaAudio:
		return buildMusicComposition(sel)
	default:
		return buildAbstractSVG(sel)
	}
}

// TemplateCount reports the number of registered templates. Used by the health
// capability test.
func (r *Renderer) TemplateCount() int {
	return len(r.templates)
}
