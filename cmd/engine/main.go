package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"media-engine/internal/enhance"
	"media-engine/internal/health"
	"media-engine/internal/media"
	"media-engine/internal/render"
	"media-engine/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// main is the entry point for the application.
// Its primary role is the "Composition Root": it loads configuration,
// initializes all services, injects dependencies, and starts the server.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	buildInfo := GetBuildInfo()
	log.Printf("🚀 Starting Media Engine | Build: %s", buildInfo)

	// 1. LOAD CONFIGURATION
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("❌ FATAL: Configuration Error: %v", err)
	}
	log.Println("✅ Configuration loaded.")

	// 2. INITIALIZE SERVICES
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("❌ FATAL: Could not connect to Redis: %v", err)
	}

	analyzer := media.NewAnalyzer()
	dispatcher := media.NewDispatcher()
	renderer := render.NewRenderer()
	recorder := stats.NewRecorder(rdb)
	checker := health.NewChecker(analyzer, dispatcher, renderer, recorder)
	enhancer := initializeEnhancer(cfg)

	engineHandler := NewEngineHandler(analyzer, dispatcher, renderer, enhancer, recorder, checker, cfg, rdb)
	log.Printf("✅ All services initialized. %d templates registered.", renderer.TemplateCount())

	// 3. START BACKGROUND PROCESSES
	go startSelfTestLoop(checker, cfg.Engine.SelfTestInterval())

	// 4. SETUP AND RUN THE WEB SERVER
	gin.SetMode(os.Getenv("GIN_MODE"))
	engine := gin.Default()

	engine.GET("/", engineHandler.HandleInfo)
	engine.GET("/health", engineHandler.HandleHealth)
	apiGroup := engine.Group("/api")
	{
		apiGroup.POST("/generate", engineHandler.HandleGenerate)
		apiGroup.POST("/image", engineHandler.HandleImage)
		apiGroup.POST("/video", engineHandler.HandleVideo)
		apiGroup.POST("/audio", engineHandler.HandleAudio)
		apiGroup.POST("/analyze", engineHandler.HandleAnalyze)
		apiGroup.POST("/suggest", engineHandler.HandleSuggest)
		apiGroup.GET("/gallery", engineHandler.HandleGallery)
	}

	srv := &http.Server{Addr: fmt.Sprintf(":%s", cfg.Port), Handler: engine}
	runServerWithGracefulShutdown(srv)
}

// initializeEnhancer wires the Gemini prompt enhancer when an API key is
// configured, and falls back to a no-op otherwise.
func initializeEnhancer(cfg *AppConfig) enhance.Enhancer {
	if cfg.GeminiAPIKey == "" {
		log.Println("⚠️ GEMINI_API_KEY not set; prompt enhancement disabled.")
		return enhance.NoopEnhancer{}
	}
	enhancer, err := enhance.NewGeminiEnhancer(cfg.GeminiAPIKey, cfg.Engine.Enhancer.Model, cfg.Engine.EnhancerTimeout())
	if err != nil {
		log.Printf("⚠️ Could not create Gemini enhancer (%v); prompt enhancement disabled.", err)
		return enhance.NoopEnhancer{}
	}
	log.Printf("✅ Gemini enhancer initialized (model: %s).", cfg.Engine.Enhancer.Model)
	return enhancer
}

// startSelfTestLoop runs a background goroutine that proactively exercises the
// generation pipeline so /health reflects real capability state.
func startSelfTestLoop(checker *health.Checker, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Println("🩺 Self-test loop started.")

	runChecks := func() {
		results := checker.RunSelfTests()
		for capability, ok := range results {
			log.Printf("Self-test %s: Healthy = %v", capability, ok)
		}
	}

	go runChecks()
	for range ticker.C {
		runChecks()
	}
}

// runServerWithGracefulShutdown handles the server lifecycle.
func runServerWithGracefulShutdown(srv *http.Server) {
	go func() {
		log.Printf("👂 Media engine is listening on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Listen error: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server shutdown failed:", err)
	}

	log.Println("👋 Server exited gracefully.")
}
