package health

import (
	"testing"

	"media-engine/internal/media"
	"media-engine/internal/render"
	"media-engine/internal/stats"
)

func newTestChecker() *Checker {
	return NewChecker(media.NewAnalyzer(), media.NewDispatcher(), render.NewRenderer(), stats.NewRecorder(nil))
}

func TestRunSelfTestsAllPass(t *testing.T) {
	c := newTestChecker()
	results := c.RunSelfTests()

	want := []string{"image_generation", "video_generation", "audio_generation", "template_registry"}
	if len(results) != len(want) {
		t.Fatalf("got %d capabilities, want %d: %v", len(results), len(want), results)
	}
	for _, capability := range want {
		ok, present := results[capability]
		if !present {
			t.Errorf("capability %s missing from results", capability)
			continue
		}
		if !ok {
			t.Errorf("capability %s failed its self-test", capability)
		}
	}
}

func TestRunSelfTestsCachesResults(t *testing.T) {
	c := newTestChecker()
	c.RunSelfTests()

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.lastRun.IsZero() {
		t.Error("lastRun not recorded")
	}
	if len(c.lastPass) == 0 {
		t.Error("lastPass not recorded")
	}
}
