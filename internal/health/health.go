// Package health assembles the service health report: uptime, capability
// self-tests against the live analyzer and renderer, a metrics snapshot, and
// operational recommendations.
package health

import (
	"context"
	"sync"
	"time"

	"media-engine/internal/media"
	"media-engine/internal/render"
	"media-engine/internal/stats"
)

// Report is the full health payload served at /health.
type Report struct {
	Status          string          `json:"status"`
	UptimeSeconds   int64           `json:"uptime_seconds"`
	Capabilities    map[string]bool `json:"capabilities"`
	Metrics         *stats.Snapshot `json:"metrics,omitempty"`
	RecentErrors    []string        `json:"recent_errors,omitempty"`
	Recommendations []string        `json:"recommendations,omitempty"`
	Timestamp       string          `json:"timestamp"`
}

// Checker runs capability self-tests and builds health reports. Self-test
// results are cached between runs so /health stays cheap.
type Checker struct {
	analyzer   *media.Analyzer
	dispatcher *media.Dispatcher
	renderer   *render.Renderer
	recorder   *stats.Recorder
	startTime  time.Time

	mu       sync.RWMutex
	lastRun  time.Time
	lastPass map[string]bool
}

// NewChecker creates a health checker over the engine's live components.
func NewChecker(analyzer *media.Analyzer, dispatcher *media.Dispatcher, renderer *render.Renderer, recorder *stats.Recorder) *Checker {
	return &Checker{
		analyzer:   analyzer,
		dispatcher: dispatcher,
		renderer:   renderer,
		recorder:   recorder,
		startTime:  time.Now(),
		lastPass:   map[string]bool{},
	}
}

// RunSelfTests exercises one analyze+dispatch+render round trip per media
// family and records which capabilities pass.
func (c *Checker) RunSelfTests() map[string]bool {
	probes := map[string]string{
		"image_generation": "ninja character image",
		"video_generation": "character walking animation",
		"audio_generation": "epic battle music",
	}

	results := make(map[string]bool, len(probes)+1)
	for capability, prompt := range probes {
		results[capability] = c.probe(prompt)
	}
	results["template_registry"] = c.renderer.TemplateCount() > 0

	c.mu.Lock()
	c.lastRun = time.Now()
	c.lastPass = results
	c.mu.Unlock()

	return results
}

// probe runs a full generation pass and reports whether it produced content.
func (c *Checker) probe(prompt string) bool {
	analysis := c.analyzer.Analyze(prompt)
	sel := c.dispatcher.SelectTemplate(analysis, prompt, "")
	artifact := c.renderer.Render(sel)
	return artifact.Content != "" && artifact.Format != ""
}

// BuildReport assembles the health payload. The metrics snapshot is
// best-effort: a Redis outage degrades the status but still returns a report.
func (c *Checker) BuildReport(ctx context.Context) Report {
	c.mu.RLock()
	stale := time.Since(c.lastRun) > 10*time.Minute
	capabilities := make(map[string]bool, len(c.lastPass))
	for k, v := range c.lastPass {
		capabilities[k] = v
	}
	c.mu.RUnlock()

	if stale || len(capabilities) == 0 {
		capabilities = c.RunSelfTests()
	}

	report := Report{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(c.startTime).Seconds()),
		Capabilities:  capabilities,
		Timestamp:     time.Now().Format(time.RFC3339),
	}

	for capability, ok := range capabilities {
		if !ok {
			report.Status = "degraded"
			report.Recommendations = append(report.Recommendations,
				"Capability "+capability+" failed its self-test; check recent deploys")
		}
	}

	snap, err := c.recorder.GetSnapshot(ctx)
	if err != nil {
		report.Status = "degraded"
		report.Recommendations = append(report.Recommendations,
			"Metrics store is unreachable; counters and history are unavailable")
	} else {
		report.Metrics = &snap
		report.RecentErrors = c.recorder.RecentErrors(ctx)
	}

	return report
}
