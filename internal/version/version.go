// Package version centralizes the versioning for the engine's logical
// components.
//
// Including these version strings in cache keys automatically invalidates
// stale cached entries whenever a piece of underlying logic changes. For
// example, adding a keyword to a taxonomy and bumping Analyzer from "v1.0" to
// "v1.1" means previously cached responses stop matching and get regenerated
// under the new classifications.
package version

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComponentVersions holds the version strings for the engine's logical parts.
// Manually increment a version here before deploying a change to that component.
var ComponentVersions = struct {
	// Analyzer should be bumped whenever taxonomy keywords, scoring rules,
	// or the confidence/strategy derivation change.
	Analyzer string

	// Templates should be bumped whenever any SVG/CSS/Web-Audio builder
	// changes its output.
	Templates string

	// Themes should be bumped whenever color schemes or music style presets
	// change.
	Themes string
}{
	Analyzer:  "v1.0",
	Templates: "v1.0",
	Themes:    "v1.0",
}

// GenerateVersionedCacheKey creates a consistent, version-aware key for
// caching generation responses. It combines a prefix, a hash of the prompt
// plus the requested media type, and the current component versions.
//
// Example output: "mediacache:a1b2c3d4...:av1.0_tv1.0_cv1.0"
func GenerateVersionedCacheKey(prefix, prompt, mediaType string) string {
	hasher := sha256.New()
	hasher.Write([]byte(mediaType))
	hasher.Write([]byte{0})
	hasher.Write([]byte(prompt))
	promptHash := hex.EncodeToString(hasher.Sum(nil))

	versionString := fmt.Sprintf("av%s_tv%s_cv%s",
		ComponentVersions.Analyzer,
		ComponentVersions.Templates,
		ComponentVersions.Themes,
	)

	return fmt.Sprintf("%s:%s:%s", prefix, promptHash, versionString)
}
