// Command crawler runs the full school-timetable discovery pass: it loads
// seed URLs from Postgres, fans out a bounded DFS crawl over each school's
// website looking for an Optivum-style timetable page, and appends every
// candidate it finds to an output file as "school_id|url" lines.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"

	"github.com/dominik-korsa/timetable-crawler/internal/crawler"
	"github.com/dominik-korsa/timetable-crawler/internal/platform/httpclient"
	"github.com/dominik-korsa/timetable-crawler/internal/platform/outputsink"
	"github.com/dominik-korsa/timetable-crawler/internal/platform/seeddb"
)

func envDuration(name string, def time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("invalid %s: %v", name, err)
	}
	return d
}

func envInt(name string, def int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("invalid %s: %v", name, err)
	}
	return n
}

func envString(name, def string) string {
	if raw := os.Getenv(name); raw != "" {
		return raw
	}
	return def
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("loading .env: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	requestTimeout := envDuration("REQUEST_TIMEOUT", 10*time.Second)
	concurrentRequests := envInt("CONCURRENT_REQUESTS", 128)
	permitTimeout := envDuration("PERMIT_TIMEOUT", crawler.PermitTimeout)
	concurrentSchools := envInt("CONCURRENT_SCHOOLS", 32)
	maxDepth := envInt("MAX_DEPTH", 3)
	outputPath := envString("OUTPUT_PATH", "/tmp/crawler-timetables.txt")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("received signal %v, shutting down gracefully...", sig)
		cancel()
	}()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		log.Fatalf("connecting to database: %v", err)
	}
	defer pool.Close()

	seeds, err := seeddb.Load(ctx, pool)
	if err != nil {
		log.Fatalf("loading seeds: %v", err)
	}
	log.Printf("loaded %d seed schools", len(seeds))

	sink, err := outputsink.Open(outputPath)
	if err != nil {
		log.Fatalf("opening output file: %v", err)
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.Printf("closing output file: %v", err)
		}
	}()

	httpClient := httpclient.New(httpclient.Config{
		Timeout: requestTimeout,
	})
	gate := crawler.NewGate(concurrentRequests)

	bar := progressbar.Default(int64(len(seeds)), "crawling schools")

	processed := crawler.Run(ctx, seeds, crawler.FanoutConfig{
		Fetcher:           httpClient,
		Gate:              gate,
		Sink:              sink,
		Progress:          bar,
		ConcurrentSchools: concurrentSchools,
		MaxDepth:          maxDepth,
		PermitTimeout:     permitTimeout,
	})

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("crawl aborted: %v", err)
	}

	fmt.Printf("Completed %d tasks\n", processed)
}
