package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fortuna/pallas/internal/api/rest"
	"github.com/fortuna/pallas/internal/cache"
	"github.com/fortuna/pallas/internal/names"
	"github.com/fortuna/pallas/internal/service"
	"github.com/fortuna/pallas/internal/store"
)

const (
	serviceName    = "pallas"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - Football Odds Statistics Service", serviceName, serviceVersion)

	// Load configuration from environment
	config := loadConfig()

	// Canonicalization rules: built-in defaults, optionally overridden from
	// a YAML file
	rules := names.DefaultRules()
	if config.RulesFile != "" {
		loaded, err := names.LoadRules(config.RulesFile)
		if err != nil {
			log.Fatalf("Failed to load canonicalization rules from %s: %v", config.RulesFile, err)
		}
		rules = loaded
		log.Printf("✓ Canonicalization rules loaded from %s", config.RulesFile)
	}

	// Load every snapshot source and assemble the tables. Individual source
	// failures are recorded, not fatal; the endpoints that depend on a
	// failed source report it as unavailable.
	tables, err := store.BuildTables(store.Sources{
		CorrectScorePath: filepath.Join(config.DataDir, "correct_score.json"),
		GoalscorerPath:   filepath.Join(config.DataDir, "updated_anytimegoalscorer.json"),
		PlayerTablePath:  filepath.Join(config.DataDir, "player_stats.json"),
		OutrightHTMLPath: filepath.Join(config.DataDir, "outright_odds.html"),
		OutrightMDPath:   filepath.Join(config.DataDir, "fifa_club_wc_odds.md"),
	}, rules)
	if err != nil {
		log.Fatalf("Failed to build data tables: %v", err)
	}

	// Derive all statistics caches up front
	stats := service.NewStatsService(tables)

	// Optional Redis response cache; the service runs without it
	var responses *cache.ResponseCache
	if config.RedisURL != "" {
		responses, err = cache.NewResponseCache(config.RedisURL, config.CacheTTL)
		if err != nil {
			log.Printf("⚠️  Redis unavailable, serving uncached: %v", err)
			responses = nil
		} else {
			defer responses.Close()
			log.Println("✓ Connected to Redis response cache")
		}
	}

	// Start the REST API server
	restServer := rest.NewServer(config.RESTPort, stats, responses)
	go func() {
		log.Printf("Starting REST API server on port %s", config.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ REST API server listening on :%s", config.RESTPort)
	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", config.RESTPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}

type Config struct {
	DataDir   string
	RedisURL  string
	RESTPort  string
	RulesFile string
	CacheTTL  time.Duration
}

func loadConfig() Config {
	ttl := 5 * time.Minute
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			ttl = parsed
		}
	}
	return Config{
		DataDir:   getEnv("DATA_DIR", "./data"),
		RedisURL:  os.Getenv("REDIS_URL"), // empty disables the cache
		RESTPort:  getEnv("REST_PORT", "8080"),
		RulesFile: os.Getenv("RULES_FILE"),
		CacheTTL:  ttl,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
