package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"media-engine/internal/api"
	"media-engine/internal/enhance"
	"media-engine/internal/health"
	"media-engine/internal/media"
	"media-engine/internal/render"
	"media-engine/internal/stats"
	cacheversion "media-engine/internal/version"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// =================================================================================
// Engine Handler
// =================================================================================
// The HTTP surface of the media engine. Every generation endpoint funnels into
// generate(): bind, resolve the media family, check the response cache,
// optionally enhance the prompt, then analyze -> dispatch -> render -> record.
// =================================================================================

type EngineHandler struct {
	analyzer   *media.Analyzer
	dispatcher *media.Dispatcher
	renderer   *render.Renderer
	enhancer   enhance.Enhancer
	recorder   *stats.Recorder
	checker    *health.Checker
	config     *AppConfig
	rdb        *redis.Client
}

func NewEngineHandler(analyzer *media.Analyzer, dispatcher *media.Dispatcher, renderer *render.Renderer, enhancer enhance.Enhancer, recorder *stats.Recorder, checker *health.Checker, config *AppConfig, rdb *redis.Client) *EngineHandler {
	return &EngineHandler{
		analyzer:   analyzer,
		dispatcher: dispatcher,
		renderer:   renderer,
		enhancer:   enhancer,
		recorder:   recorder,
		checker:    checker,
		config:     config,
		rdb:        rdb,
	}
}

// HandleGenerate is the unified generation endpoint. The media family follows
// the request's "type" field, or the analyzer's detection when "auto".
func (h *EngineHandler) HandleGenerate(c *gin.Context) { h.generate(c, "") }

// Family-specific endpoints force a media type regardless of what the
// analyzer detects.
func (h *EngineHandler) HandleImage(c *gin.Context) { h.generate(c, media.MediaImage) }
func (h *EngineHandler) HandleVideo(c *gin.Context) { h.generate(c, media.MediaVideo) }
func (h *EngineHandler) HandleAudio(c *gin.Context) { h.generate(c, media.MediaAudio) }

func (h *EngineHandler) generate(c *gin.Context, forcedType string) {
	startTime := time.Now()

	var req api.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: "Prompt is required",
			Example: api.GenerationRequest{
				Prompt: "Create a ninja character image",
				Type:   "image",
			},
		})
		return
	}

	mediaType := forcedType
	if mediaType == "" {
		mediaType = strings.ToLower(strings.TrimSpace(req.Type))
	}
	switch mediaType {
	case media.MediaImage, media.MediaVideo, media.MediaAudio:
	default:
		mediaType = "" // auto: follow the analyzer
	}

	if req.UserID == "" {
		req.UserID = uuid.NewString()[:8]
	}

	log.Printf("--- New Request (User: %s, Type: %q, Prompt: '%.40s') ---", req.UserID, mediaType, req.Prompt)

	// Enhanced prompts are user-specific paraphrases, so they bypass the
	// shared response cache.
	cacheKey := cacheversion.GenerateVersionedCacheKey(h.config.Engine.Cache.Prefix, req.Prompt, mediaType)
	useCache := h.config.Engine.Cache.Enabled && !req.Enhance
	if useCache {
		if cachedVal, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cachedResp api.GenerationResponse
			if json.Unmarshal([]byte(cachedVal), &cachedResp) == nil {
				log.Println("✅ Cache HIT")
				cachedResp.GenerationMS = time.Since(startTime).Milliseconds()
				cachedResp.CacheStatus = "HIT"
				cachedResp.UserID = req.UserID
				c.JSON(http.StatusOK, cachedResp)
				return
			}
		}
		log.Println("⚠️ Cache MISS")
	}

	prompt := req.Prompt
	enhancedPrompt := ""
	if req.Enhance {
		enhanced := h.enhancer.Enhance(c.Request.Context(), prompt, mediaType)
		if enhanced != prompt {
			enhancedPrompt = enhanced
			prompt = enhanced
		}
	}

	analysis := h.analyzer.Analyze(prompt)
	if mediaType == "" {
		mediaType = analysis.MediaType
	}

	selection := h.dispatcher.SelectTemplate(analysis, prompt, mediaType)
	artifact := h.renderer.Render(selection)

	latency := time.Since(startTime)
	h.recorder.RecordGeneration(c.Request.Context(), mediaType, req.UserID, latency)

	resp := api.GenerationResponse{
		Success:        true,
		Type:           mediaType,
		Format:         artifact.Format,
		Content:        artifact.Content,
		Description:    artifact.Description,
		UsageTips:      artifact.UsageTips,
		Prompt:         req.Prompt,
		EnhancedPrompt: enhancedPrompt,
		Analysis:       analysis,
		TemplateID:     selection.TemplateID,
		GenerationMS:   latency.Milliseconds(),
		UserID:         req.UserID,
		CacheStatus:    "MISS",
		Timestamp:      time.Now().Format(time.RFC3339),
	}

	if useCache {
		if blob, err := json.Marshal(resp); err == nil {
			if err := h.rdb.Set(c.Request.Context(), cacheKey, blob, h.config.Engine.CacheTTL()).Err(); err != nil {
				log.Printf("WARNING: Failed to write response cache: %v", err)
				h.recorder.RecordError(c.Request.Context(), mediaType, err)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// HandleAnalyze exposes the analyzer directly: a single prompt, or a batch
// when "prompts" is set.
func (h *EngineHandler) HandleAnalyze(c *gin.Context) {
	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	if len(req.Prompts) > 0 {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"analyses": h.analyzer.AnalyzeBatch(req.Prompts),
		})
		return
	}

	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:   "Prompt is required",
			Example: api.AnalyzeRequest{Prompt: "Create a ninja character image"},
		})
		return
	}

	analysis := h.analyzer.Analyze(req.Prompt)
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": analysis,
		"tips":     h.analyzer.GenerationTips(analysis),
	})
}

// HandleSuggest returns improvement advice and rewritten prompts for a weak
// prompt.
func (h *EngineHandler) HandleSuggest(c *gin.Context) {
	var req api.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:   "Prompt is required",
			Example: api.AnalyzeRequest{Prompt: "make a character"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"suggestion": h.analyzer.SuggestImprovements(req.Prompt),
	})
}

// HandleGallery reports generation counters plus example prompts per family.
func (h *EngineHandler) HandleGallery(c *gin.Context) {
	snapshot, err := h.recorder.GetSnapshot(c.Request.Context())
	if err != nil {
		log.Printf("WARNING: Could not read metrics snapshot: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"gallery": gin.H{
			"recent_images": snapshot.ImagesGenerated,
			"recent_videos": snapshot.VideosGenerated,
			"recent_audio":  snapshot.AudioGenerated,
			"total_media":   snapshot.ImagesGenerated + snapshot.VideosGenerated + snapshot.AudioGenerated,
		},
		"examples": gin.H{
			"image_prompts": []string{
				"Create a ninja character",
				"Generate a space background",
				"Make a medieval warrior",
				"Design a forest scene",
			},
			"video_prompts": []string{
				"Animate a character walking",
				"Create a flowing background",
				"Make an abstract animation",
				"Generate particle effects",
			},
			"audio_prompts": []string{
				"Create epic battle music",
				"Generate peaceful ambient sounds",
				"Make jump sound effects",
				"Compose victory music",
			},
		},
	})
}

// HandleInfo is the root endpoint: service identity, capabilities, and the
// route map.
func (h *EngineHandler) HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":      "media-engine",
		"message":      "Media Engine API - Procedural Media Generation",
		"build":        GetBuildInfo(),
		"capabilities": media.AnalyzerCapabilities(),
		"templates":    h.renderer.TemplateCount(),
		"endpoints": gin.H{
			"generate": "/api/generate (POST)",
			"image":    "/api/image (POST)",
			"video":    "/api/video (POST)",
			"audio":    "/api/audio (POST)",
			"analyze":  "/api/analyze (POST)",
			"suggest":  "/api/suggest (POST)",
			"gallery":  "/api/gallery",
			"health":   "/health",
		},
		"supported_formats": gin.H{
			"images": []string{render.FormatSVG},
			"videos": []string{render.FormatCSSAnimation},
			"audio":  []string{render.FormatWebAudio},
		},
		"status": "running",
	})
}

// HandleHealth serves the full health report.
func (h *EngineHandler) HandleHealth(c *gin.Context) {
	report := h.checker.BuildReport(c.Request.Context())
	status := http.StatusOK
	if report.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
