package media

// MusicStyle is the composition preset a mood resolves to. Consumed by the
// Web-Audio renderer; the dispatcher only selects it.
type MusicStyle struct {
	Tempo       int      `json:"tempo"`
	Key         string   `json:"key"`
	Scale       string   `json:"scale"`
	Instruments []string `json:"instruments"`
	Mood        string   `json:"mood"`
}

var musicStyles = map[string]MusicStyle{
	"epic": {
		Tempo:       120,
		Key:         "C",
		Scale:       "minor",
		Instruments: []string{"strings", "brass", "percussion"},
		Mood:        "dramatic",
	},
	"peaceful": {
		Tempo:       80,
		Key:         "G",
		Scale:       "major",
		Instruments: []string{"piano", "strings", "flute"},
		Mood:        "calm",
	},
	"dark": {
		Tempo:       100,
		Key:         "D",
		Scale:       "minor",
		Instruments: []string{"bass", "synth", "percussion"},
		Mood:        "mysterious",
	},
	"bright": {
		Tempo:       140,
		Key:         "C",
		Scale:       "major",
		Instruments: []string{"piano", "guitar", "percussion"},
		Mood:        "happy",
	},
	"mysterious": {
		Tempo:       90,
		Key:         "F#",
		Scale:       "minor",
		Instruments: []string{"synth", "strings", "ambient"},
		Mood:        "enigmatic",
	},
}

// scaleIntervals are semitone offsets from the key root, used by the music
// composition renderer to derive note frequencies.
var scaleIntervals = map[string][]int{
	"major":      {0, 2, 4, 5, 7, 9, 11},
	"minor":      {0, 2, 3, 5, 7, 8, 10},
	"pentatonic": {0, 2, 4, 7, 9},
	"blues":      {0, 3, 5, 6, 7, 10},
}

// noteFrequencies maps key names to their fundamental frequency in Hz.
var noteFrequencies = map[string]float64{
	"C": 261.63, "C#": 277.18, "D": 293.66, "D#": 311.13,
	"E": 329.63, "F": 349.23, "F#": 369.99, "G": 392.00,
	"G#": 415.30, "A": 440.00, "A#": 466.16, "B": 493.88,
}

// MusicStyleFor resolves a mood label to its composition preset. Moods without
// a preset (neutral included) fall back to peaceful.
func MusicStyleFor(mood string) MusicStyle {
	if style, ok := musicStyles[mood]; ok {
		return style
	}
	return musicStyles["peaceful"]
}

// ScaleIntervals returns the semitone offsets for a scale name, defaulting to
// major for unknown scales.
func ScaleIntervals(scale string) []int {
	if intervals, ok := scaleIntervals[scale]; ok {
		return intervals
	}
	return scaleIntervals["major"]
}

// KeyFrequency returns the root frequency for a key name, defaulting to middle C.
func KeyFrequency(key string) float64 {
	if freq, ok := noteFrequencies[key]; ok {
		return freq
	}
	return noteFrequencies["C"]
}
