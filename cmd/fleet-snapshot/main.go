package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/frotalab/fleet-snapshot/config"
	"github.com/frotalab/fleet-snapshot/credstore"
	"github.com/frotalab/fleet-snapshot/gtfsrt"
	"github.com/frotalab/fleet-snapshot/internal"
	"github.com/frotalab/fleet-snapshot/position"
	"github.com/frotalab/fleet-snapshot/tracker"
)

// fleet-snapshot fetches the latest position of every vehicle, merges it into
// the persisted snapshot and derives the plate summary. On auth or fetch
// failure the run aborts before any write, so the previous snapshot survives
// untouched.
func main() {
	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config

	creds, err := credstore.OpenEnvFile(cfg.Files.EnvFile)
	if err != nil {
		log.Fatalf("credential store: %v", err)
	}

	existing, err := position.LoadSnapshot(cfg.Files.Snapshot)
	switch {
	case err == nil:
		log.Printf("loaded existing snapshot: %d records", len(existing))
	case errors.Is(err, position.ErrMissingInput):
		log.Printf("no existing snapshot, starting fresh")
	default:
		log.Printf("existing snapshot unreadable, starting fresh: %v", err)
	}

	ctx := context.Background()
	client := tracker.NewClient(cfg.API, creds)

	token, err := client.EnsureToken(ctx)
	if err != nil {
		log.Printf("authentication failed, keeping previous snapshot: %v", err)
		os.Exit(1)
	}

	incoming, err := client.FetchAllPositions(ctx, token)
	if err != nil {
		log.Printf("fetch failed, keeping previous snapshot: %v", err)
		os.Exit(1)
	}

	merged, stats := position.Merge(existing, incoming)
	log.Printf("merge: %d new, %d updated, %d kept, %d total",
		stats.New, stats.Updated, stats.Kept, len(merged))

	if err := position.SaveSnapshot(cfg.Files.Snapshot, merged); err != nil {
		log.Fatalf("write snapshot: %v", err)
	}
	log.Printf("snapshot written: %s", cfg.Files.Snapshot)

	summary := position.Summarize(merged)
	if err := position.SaveSummary(cfg.Files.Summary, summary); err != nil {
		log.Fatalf("write summary: %v", err)
	}
	log.Printf("summary written: %s (%d records)", cfg.Files.Summary, len(summary))

	if cfg.Files.GTFSRTFeed != "" {
		if err := gtfsrt.WriteFeed(cfg.Files.GTFSRTFeed, merged); err != nil {
			log.Fatalf("write GTFS-RT feed: %v", err)
		}
		log.Printf("GTFS-RT feed written: %s", cfg.Files.GTFSRTFeed)
	}
}
