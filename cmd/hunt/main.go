package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"webhunt/aggregator"
	"webhunt/archive"
	"webhunt/config"
	"webhunt/factcheck"
	"webhunt/history"
	"webhunt/monitor"
	"webhunt/publish"
	"webhunt/render"
	"webhunt/sources"
	"webhunt/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	query := flag.String("query", "", "search query (search mode)")
	claim := flag.String("claim", "", "claim to verify (check mode)")
	sourceList := flag.String("sources", strings.Join(sources.KnownSources, ","), "comma-separated source identifiers")
	freshness := flag.String("freshness", string(config.DefaultFreshness), "evidence freshness: hour, day, week or month")
	top := flag.Int("top", config.DefaultResultLimit, "number of results")
	minConfidence := flag.Float64("min-confidence", config.DefaultMinConfidence, "minimum confidence before a verdict counts (0.0-1.0)")
	output := flag.String("output", render.FormatText, "output format: text, json or markdown")
	save := flag.String("save", "", "write output to a file")
	watch := flag.Duration("watch", 0, "re-check the claim on this interval (check mode)")
	interactive := flag.Bool("interactive", false, "run the interactive checker UI")
	flag.Parse()

	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	if *query == "" && *claim == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "usage: hunt -query <text> | -claim <text> [-sources ...] [-freshness ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	fresh, err := config.ParseFreshness(*freshness)
	if err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	adapters, err := sources.Build(splitSources(*sourceList))
	if err != nil {
		log.Fatalf("invalid sources: %v", err)
	}

	cache, err := sources.NewCacheFromEnv()
	if err != nil {
		log.Printf("Warning: response cache disabled: %v", err)
	}
	for i, adapter := range adapters {
		adapters[i] = sources.Cached(adapter, cache)
	}

	agg, err := aggregator.New(adapters)
	if err != nil {
		log.Fatalf("failed to build aggregator: %v", err)
	}
	checker := factcheck.NewChecker(agg)

	checkParams := factcheck.CheckParams{
		Freshness:     fresh,
		Limit:         *top,
		MinConfidence: *minConfidence,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *interactive:
		runInteractive(checker, checkParams)
	case *watch > 0 && *claim != "":
		runWatch(ctx, checker, *claim, checkParams, *watch)
	case *claim != "":
		runCheck(ctx, checker, *claim, checkParams, *output, *save)
	default:
		runSearch(ctx, agg, *query, aggregator.Params{Freshness: fresh, Limit: *top}, *output, *save)
	}
}

func runSearch(ctx context.Context, agg *aggregator.Aggregator, query string, params aggregator.Params, format, save string) {
	results, err := agg.Search(ctx, query, params)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	out, err := render.FormatEvidence(results, format)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}
	emit(out, save)
	fmt.Fprintf(os.Stderr, "\n✅ Found %d result(s)\n", len(results))
}

func runCheck(ctx context.Context, checker *factcheck.Checker, claim string, params factcheck.CheckParams, format, save string) {
	result, err := checker.Check(ctx, claim, params)
	if err != nil {
		log.Fatalf("check failed: %v", err)
	}

	out, err := render.FormatVerdict(result, format)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}
	emit(out, save)
}

// runWatch wires the optional integrations (history, Kafka, S3) around the
// monitor loop. Unconfigured integrations are skipped.
func runWatch(ctx context.Context, checker *factcheck.Checker, claim string, params factcheck.CheckParams, interval time.Duration) {
	m, err := monitor.New(checker, []string{claim}, params, interval)
	if err != nil {
		log.Fatalf("monitor setup failed: %v", err)
	}

	dbPath := config.GetEnvOrDefault("HISTORY_DB", "webhunt.db")
	if dbPath != "off" {
		store, err := history.NewStore(dbPath)
		if err != nil {
			log.Printf("Warning: history disabled: %v", err)
		} else {
			defer store.Close()
			m.WithStore(store)
		}
	}

	producer, err := publish.NewProducerFromEnv()
	if err != nil {
		log.Printf("Warning: Kafka publishing disabled: %v", err)
	} else if producer != nil {
		defer producer.Close()
		m.WithPublisher(producer)
	}

	archiver, err := archive.NewArchiverFromEnv(ctx)
	if err != nil {
		log.Printf("Warning: S3 archiving disabled: %v", err)
	} else if archiver != nil {
		m.WithArchiver(archiver)
	}

	if err := m.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("monitor stopped: %v", err)
	}
}

func runInteractive(checker *factcheck.Checker, params factcheck.CheckParams) {
	p := tea.NewProgram(tui.NewModel(checker, params))
	if _, err := p.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}

func emit(out, save string) {
	fmt.Println(out)
	if save != "" {
		if err := os.WriteFile(save, []byte(out), 0o644); err != nil {
			log.Fatalf("failed to save output: %v", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Saved to %s\n", save)
	}
}

func splitSources(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
