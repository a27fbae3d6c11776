package render

import (
	"fmt"
	"strings"

	"media-engine/internal/media"
)

// Web-Audio builders for the audio family. The artifact is a JavaScript
// program that synthesizes the audio in the browser; no audio files are
// produced server-side.

func buildMusicComposition(sel media.Selection) Artifact {
	style := musicStyleOf(sel)
	intervals := media.ScaleIntervals(style.Scale)
	root := media.KeyFrequency(style.Key)
	beat := 60.0 / float64(style.Tempo)

	js := fmt.Sprintf(`// %s music composition in %s %s, %d BPM
function generateMusic() {
  const ctx = new (window.AudioContext || window.webkitAudioContext)();
  const root = %.2f;
  const intervals = %s;
  const beat = %.4f;
  const totalBeats = Math.max(4, Math.floor(%d / beat));

  function playNote(freq, start, dur, wave) {
    const osc = ctx.createOscillator();
    const gain = ctx.createGain();
    const filter = ctx.createBiquadFilter();
    osc.connect(filter);
    filter.connect(gain);
    gain.connect(ctx.destination);
    osc.type = wave;
    osc.frequency.setValueAtTime(freq, ctx.currentTime + start);
    filter.type = 'lowpass';
    filter.frequency.setValueAtTime(1200, ctx.currentTime + start);
    gain.gain.setValueAtTime(0, ctx.currentTime + start);
    gain.gain.linearRampToValueAtTime(0.08, ctx.currentTime + start + 0.05);
    gain.gain.exponentialRampToValueAtTime(0.001, ctx.currentTime + start + dur);
    osc.start(ctx.currentTime + start);
    osc.stop(ctx.currentTime + start + dur);
  }

  const scale = intervals.map(i => root * Math.pow(2, i / 12));
  for (let b = 0; b < totalBeats; b++) {
    const note = scale[(b * 3) %% scale.length];
    playNote(note, b * beat, beat * 0.9, 'sine');
    if (b %% 2 === 0) {
      playNote(note / 2, b * beat, beat * 1.8, 'triangle'); // bass line an octave down
    }
  }
  return ctx;
}
// Usage: generateMusic();
console.log('Music ready: %s, %d BPM. Call generateMusic() to play.');`,
		style.Mood, style.Key, style.Scale, style.Tempo,
		root, jsIntArray(intervals), beat, sel.Duration,
		style.Mood, style.Tempo)

	return Artifact{
		Content:     js,
		Format:      FormatWebAudio,
		Description: fmt.Sprintf("Generated %s music composition for %d seconds", sel.Mood, sel.Duration),
		UsageTips: []string{
			"Execute the JavaScript code to play the generated audio",
			fmt.Sprintf("Key: %s %s | Tempo: %d BPM", style.Key, style.Scale, style.Tempo),
			"No external audio files needed",
		},
	}
}

func buildAmbientAudio(sel media.Selection) Artifact {
	style := musicStyleOf(sel)
	root := media.KeyFrequency(style.Key)

	js := fmt.Sprintf(`// %s ambient bed for a %s scene
function generateAmbient() {
  const ctx = new (window.AudioContext || window.webkitAudioContext)();
  const layers = [%.2f, %.2f, %.2f];

  layers.forEach((freq, i) => {
    const osc = ctx.createOscillator();
    const gain = ctx.createGain();
    const lfo = ctx.createOscillator();
    const lfoGain = ctx.createGain();
    osc.connect(gain);
    gain.connect(ctx.destination);
    lfo.connect(lfoGain);
    lfoGain.connect(gain.gain);
    osc.type = 'sine';
    osc.frequency.setValueAtTime(freq, ctx.currentTime);
    lfo.frequency.setValueAtTime(0.1 + i * 0.07, ctx.currentTime); // slow drift per layer
    lfoGain.gain.setValueAtTime(0.015, ctx.currentTime);
    gain.gain.setValueAtTime(0, ctx.currentTime);
    gain.gain.linearRampToValueAtTime(0.04, ctx.currentTime + 2);
    gain.gain.linearRampToValueAtTime(0, ctx.currentTime + %d);
    osc.start(ctx.currentTime);
    osc.stop(ctx.currentTime + %d);
    lfo.start(ctx.currentTime);
    lfo.stop(ctx.currentTime + %d);
  });
  return ctx;
}
// Usage: generateAmbient();
console.log('Ambient audio ready. Call generateAmbient() to play.');`,
		style.Mood, sel.Theme,
		root/2, root/2*1.5, root,
		sel.Duration, sel.Duration, sel.Duration)

	return Artifact{
		Content:     js,
		Format:      FormatWebAudio,
		Description: fmt.Sprintf("Generated %s ambient audio for %d seconds", sel.Theme, sel.Duration),
		UsageTips: []string{
			"Execute the JavaScript code to play the generated audio",
			"Layered drones with slow amplitude drift",
		},
	}
}

// sound effect synth parameters: start/end frequency, wave, length.
var effectPatches = map[string]struct {
	StartFreq float64
	EndFreq   float64
	Wave      string
	Length    float64
}{
	"coin":      {800, 1000, "square", 0.3},
	"jump":      {400, 800, "sine", 0.2},
	"explosion": {200, 40, "sawtooth", 0.5},
	"laser":     {1200, 150, "square", 0.25},
	"click":     {600, 600, "sine", 0.08},
}

func buildSoundEffect(sel media.Selection, effect string) Artifact {
	patch, ok := effectPatches[effect]
	if !ok {
		patch = effectPatches["click"]
	}

	js := fmt.Sprintf(`// %s sound effect
function playEffect() {
  const ctx = new (window.AudioContext || window.webkitAudioContext)();
  const osc = ctx.createOscillator();
  const gain = ctx.createGain();
  osc.connect(gain);
  gain.connect(ctx.destination);
  osc.type = '%s';
  osc.frequency.setValueAtTime(%.1f, ctx.currentTime);
  osc.frequency.exponentialRampToValueAtTime(%.1f, ctx.currentTime + %.2f);
  gain.gain.setValueAtTime(0.3, ctx.currentTime);
  gain.gain.exponentialRampToValueAtTime(0.01, ctx.currentTime + %.2f);
  osc.start(ctx.currentTime);
  osc.stop(ctx.currentTime + %.2f);
  return ctx;
}
// Usage: playEffect();
console.log('%s effect ready. Call playEffect() to trigger.');`,
		effect, patch.Wave, patch.StartFreq, patch.EndFreq, patch.Length,
		patch.Length, patch.Length, effect)

	return Artifact{
		Content:     js,
		Format:      FormatWebAudio,
		Description: fmt.Sprintf("Generated %s sound effect", effect),
		UsageTips: []string{
			"Perfect for games and interactive applications",
			"Can be triggered multiple times",
			"No external audio files needed",
		},
	}
}

// musicStyleOf returns the selection's music style, resolving from the mood
// when the dispatcher didn't attach one (fallback render paths).
func musicStyleOf(sel media.Selection) media.MusicStyle {
	if sel.Music != nil {
		return *sel.Music
	}
	return media.MusicStyleFor(sel.Mood)
}

// jsIntArray renders an int slice as a JavaScript array literal.
func jsIntArray(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
