package main

import (
	"log"

	"github.com/frotalab/fleet-snapshot/config"
	"github.com/frotalab/fleet-snapshot/internal"
	"github.com/frotalab/fleet-snapshot/mapgen"
	"github.com/frotalab/fleet-snapshot/position"
)

// fleet-map reads the persisted snapshot and renders it as a self-contained
// interactive map. It only ever reads the snapshot; fleet-snapshot is the
// single writer.
func main() {
	internal.InitLogging()
	if err := config.LoadAppConfig(); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg := config.Config

	dataset, err := position.LoadSnapshot(cfg.Files.Snapshot)
	if err != nil {
		log.Fatalf("read snapshot: %v", err)
	}

	opts := mapgen.Options{
		CenterLat: cfg.Map.CenterLat,
		CenterLon: cfg.Map.CenterLon,
		Zoom:      cfg.Map.Zoom,
	}
	if err := mapgen.Render(dataset, cfg.Files.Map, opts); err != nil {
		log.Fatalf("render map: %v", err)
	}
	log.Printf("map written: %s", cfg.Files.Map)
}
