package version

import (
	"strings"
	"testing"
)

func TestGenerateVersionedCacheKey(t *testing.T) {
	key := GenerateVersionedCacheKey("mediacache", "Create a ninja character", "image")

	parts := strings.Split(key, ":")
	if len(parts) != 3 {
		t.Fatalf("key %q has %d parts, want 3", key, len(parts))
	}
	if parts[0] != "mediacache" {
		t.Errorf("prefix = %q, want %q", parts[0], "mediacache")
	}
	if len(parts[1]) != 64 {
		t.Errorf("hash segment has length %d, want 64 hex chars", len(parts[1]))
	}
	if !strings.Contains(parts[2], ComponentVersions.Analyzer) {
		t.Errorf("version segment %q missing analyzer version", parts[2])
	}
}

func TestGenerateVersionedCacheKeyIsStable(t *testing.T) {
	a := GenerateVersionedCacheKey("mediacache", "epic music", "audio")
	b := GenerateVersionedCacheKey("mediacache", "epic music", "audio")
	if a != b {
		t.Errorf("same input produced different keys:\n%s\n%s", a, b)
	}
}

func TestGenerateVersionedCacheKeyVariesByInput(t *testing.T) {
	base := GenerateVersionedCacheKey("mediacache", "epic music", "audio")

	if got := GenerateVersionedCacheKey("mediacache", "epic music!", "audio"); got == base {
		t.Error("different prompt produced the same key")
	}
	if got := GenerateVersionedCacheKey("mediacache", "epic music", "video"); got == base {
		t.Error("different media type produced the same key")
	}
	if got := GenerateVersionedCacheKey("othercache", "epic music", "audio"); got == base {
		t.Error("different prefix produced the same key")
	}
}
