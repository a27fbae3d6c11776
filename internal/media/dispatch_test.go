package media

import "testing"

func analyzeAndSelect(t *testing.T, prompt, mediaType string) Selection {
	t.Helper()
	analyzer := NewAnalyzer()
	dispatcher := NewDispatcher()
	return dispatcher.SelectTemplate(analyzer.Analyze(prompt), prompt, mediaType)
}

func TestSelectTemplateVideo(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		subType  string
		duration int
	}{
		{"walk cue", "a character walking across the screen", VideoCharacterWalk, 10},
		{"attack cue", "a hero in battle striking enemies down", VideoCharacterAttack, 10},
		{"flow cue", "water flowing through a riverbed scene", VideoEnvironmentFlow, 10},
		{"explicit quick duration", "a quick character walking animation", VideoCharacterWalk, 2},
		{"explicit long duration", "a long flowing background animation", VideoEnvironmentFlow, 15},
		{"no cue falls back to idle", "something unusual happening over there tonight", VideoCharacterIdle, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := analyzeAndSelect(t, tt.prompt, MediaVideo)
			if sel.MediaType != MediaVideo {
				t.Errorf("MediaType = %q, want %q", sel.MediaType, MediaVideo)
			}
			if sel.SubType != tt.subType {
				t.Errorf("SubType = %q, want %q", sel.SubType, tt.subType)
			}
			if sel.TemplateID != tt.subType {
				t.Errorf("TemplateID = %q, want %q", sel.TemplateID, tt.subType)
			}
			if sel.Duration != tt.duration {
				t.Errorf("Duration = %d, want %d", sel.Duration, tt.duration)
			}
		})
	}
}

func TestSelectTemplateVideoCueOrder(t *testing.T) {
	// "walking" and "attack" both match; the walk cue set is checked first.
	sel := analyzeAndSelect(t, "character walking into an attack", MediaVideo)
	if sel.SubType != VideoCharacterWalk {
		t.Errorf("SubType = %q, want %q", sel.SubType, VideoCharacterWalk)
	}
}

func TestSelectTemplateAudioMusic(t *testing.T) {
	sel := analyzeAndSelect(t, "Create epic battle music", MediaAudio)

	if sel.SubType != AudioMusic {
		t.Errorf("SubType = %q, want %q", sel.SubType, AudioMusic)
	}
	if sel.TemplateID != AudioMusic {
		t.Errorf("TemplateID = %q, want %q", sel.TemplateID, AudioMusic)
	}
	if sel.Music == nil {
		t.Fatal("Music preset is nil for a music selection")
	}
	if sel.Music.Tempo != 120 || sel.Music.Key != "C" || sel.Music.Scale != "minor" {
		t.Errorf("Music = %+v, want epic preset (120 bpm, C minor)", sel.Music)
	}
	// Four words count as a short prompt, so complexity is simple.
	if sel.Duration != 15 {
		t.Errorf("Duration = %d, want 15", sel.Duration)
	}
}

func TestSelectTemplateAudioSoundEffect(t *testing.T) {
	sel := analyzeAndSelect(t, "make a jump sound effect please", MediaAudio)

	if sel.SubType != AudioSoundEffect {
		t.Errorf("SubType = %q, want %q", sel.SubType, AudioSoundEffect)
	}
	if sel.EffectType != "jump" {
		t.Errorf("EffectType = %q, want %q", sel.EffectType, "jump")
	}
	if sel.TemplateID != "sound_effect_jump" {
		t.Errorf("TemplateID = %q, want %q", sel.TemplateID, "sound_effect_jump")
	}
	if sel.Music != nil {
		t.Errorf("Music should be nil for a sound effect, got %+v", sel.Music)
	}
	if sel.Duration != 30 {
		t.Errorf("Duration = %d, want 30", sel.Duration)
	}
}

func TestSelectTemplateAudioAmbient(t *testing.T) {
	sel := analyzeAndSelect(t, "calm ambient atmosphere track", MediaAudio)

	if sel.SubType != AudioAmbient {
		t.Errorf("SubType = %q, want %q", sel.SubType, AudioAmbient)
	}
	if sel.Music == nil {
		t.Fatal("Music preset is nil for an ambient selection")
	}
	// Mood "peaceful" via "calm" resolves to the peaceful preset.
	if sel.Music.Tempo != 80 || sel.Music.Key != "G" {
		t.Errorf("Music = %+v, want peaceful preset (80 bpm, G major)", sel.Music)
	}
}

func TestSelectTemplateAudioDurationOverrides(t *testing.T) {
	tests := []struct {
		prompt string
		want   int
	}{
		{"a short jingle sound", 10},
		{"an extended orchestral music piece for the credits", 60},
		{"looping background music for the menu screen here", 30},
	}
	for _, tt := range tests {
		sel := analyzeAndSelect(t, tt.prompt, MediaAudio)
		if sel.Duration != tt.want {
			t.Errorf("Duration(%q) = %d, want %d", tt.prompt, sel.Duration, tt.want)
		}
	}
}

func TestSelectTemplateImage(t *testing.T) {
	tests := []struct {
		name       string
		prompt     string
		subType    string
		templateID string
	}{
		{"plain character", "Create a ninja character", ImageCharacter, "character_humanoid"},
		{"warrior variant", "Make a medieval warrior character", ImageCharacter, "character_warrior"},
		{"mage variant", "a mage character with glowing staff", ImageCharacter, "character_mage"},
		{"robot variant", "design a robot character sprite", ImageCharacter, "character_robot"},
		{"landscape environment", "Generate a space background", ImageEnvironment, "environment_landscape"},
		{"interior environment", "a cozy room scene with furniture", ImageEnvironment, "environment_interior"},
		{"ui element", "a start button icon", ImageUIElement, ImageUIElement},
		{"no cue falls back to abstract", "something colorful", ImageAbstract, ImageAbstract},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := analyzeAndSelect(t, tt.prompt, MediaImage)
			if sel.SubType != tt.subType {
				t.Errorf("SubType = %q, want %q", sel.SubType, tt.subType)
			}
			if sel.TemplateID != tt.templateID {
				t.Errorf("TemplateID = %q, want %q", sel.TemplateID, tt.templateID)
			}
		})
	}
}

func TestSelectTemplateCarriesThemeColors(t *testing.T) {
	sel := analyzeAndSelect(t, "Create a ninja character", MediaImage)
	if sel.Theme != "ninja" {
		t.Fatalf("Theme = %q, want %q", sel.Theme, "ninja")
	}
	if sel.Colors.Primary != "#2C3E50" {
		t.Errorf("Colors.Primary = %q, want ninja scheme %q", sel.Colors.Primary, "#2C3E50")
	}

	plain := analyzeAndSelect(t, "a simple button icon", MediaImage)
	if plain.Colors.Primary != "#3498DB" {
		t.Errorf("Colors.Primary = %q, want default scheme %q", plain.Colors.Primary, "#3498DB")
	}
}

func TestSelectTemplateAutoFollowsAnalysis(t *testing.T) {
	analyzer := NewAnalyzer()
	dispatcher := NewDispatcher()

	prompt := "character walking animation video"
	analysis := analyzer.Analyze(prompt)
	if analysis.MediaType != MediaVideo {
		t.Fatalf("MediaType = %q, want %q", analysis.MediaType, MediaVideo)
	}

	sel := dispatcher.SelectTemplate(analysis, prompt, "")
	if sel.MediaType != MediaVideo {
		t.Errorf("MediaType = %q, want %q (empty override follows analysis)", sel.MediaType, MediaVideo)
	}
}

func TestMusicStyleFallbacks(t *testing.T) {
	if got := MusicStyleFor("neutral"); got.Tempo != 80 {
		t.Errorf("MusicStyleFor(neutral).Tempo = %d, want peaceful fallback 80", got.Tempo)
	}
	if got := ScaleIntervals("no-such-scale"); len(got) != 7 || got[2] != 4 {
		t.Errorf("ScaleIntervals fallback = %v, want major intervals", got)
	}
	if got := KeyFrequency("no-such-key"); got != 261.63 {
		t.Errorf("KeyFrequency fallback = %v, want 261.63", got)
	}
}

func TestColorSchemeForUnknownTheme(t *testing.T) {
	got := ColorSchemeFor("volcano")
	if got != colorSchemes[ThemeDefault] {
		t.Errorf("ColorSchemeFor(volcano) = %+v, want default scheme", got)
	}
}
