package main

import (
	"log"
	"os"

	"webhunt/aggregator"
	"webhunt/api"
	"webhunt/config"
	"webhunt/factcheck"
	"webhunt/history"
	"webhunt/sources"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	adapters, err := sources.Build(sources.KnownSources)
	if err != nil {
		log.Fatalf("failed to build source adapters: %v", err)
	}

	// Optional Redis response cache
	cache, err := sources.NewCacheFromEnv()
	if err != nil {
		log.Printf("Warning: response cache disabled: %v", err)
	}
	for i, adapter := range adapters {
		adapters[i] = sources.Cached(adapter, cache)
	}

	var opts []aggregator.Option
	if provider := aggregator.NewEmbeddingsFromEnv(""); provider != nil {
		log.Printf("Semantic dedup enabled (%s)", provider.ModelName())
		opts = append(opts, aggregator.WithSemanticDeduper(
			aggregator.NewSemanticDeduper(provider, 0)))
	}

	agg, err := aggregator.New(adapters, opts...)
	if err != nil {
		log.Fatalf("failed to build aggregator: %v", err)
	}
	checker := factcheck.NewChecker(agg)

	// Optional SQLite history
	var store *history.Store
	dbPath := config.GetEnvOrDefault("HISTORY_DB", "webhunt.db")
	if dbPath != "off" {
		store, err = history.NewStore(dbPath)
		if err != nil {
			log.Printf("Warning: history disabled: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	r := api.NewRouter(agg, checker, store)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/search")
	log.Println("  POST /api/check")
	log.Println("  GET  /api/history/checks")

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
