package mapgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"os"

	"github.com/frotalab/fleet-snapshot/position"
)

// Options sets the fallback viewport shown when the snapshot has no
// plottable coordinates; with markers present the map fits their bounds.
type Options struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
}

type templateData struct {
	Markers   template.JS
	CenterLat float64
	CenterLon float64
	Zoom      int
}

// Render writes a self-contained Leaflet map of the dataset to outputPath.
func Render(dataset []position.Record, outputPath string, opts Options) error {
	markers := Build(dataset)
	log.Printf("plotting %d of %d records", len(markers), len(dataset))

	payload, err := json.Marshal(markers)
	if err != nil {
		return fmt.Errorf("encode markers: %w", err)
	}
	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, templateData{
		Markers:   template.JS(payload),
		CenterLat: opts.CenterLat,
		CenterLon: opts.CenterLon,
		Zoom:      opts.Zoom,
	})
	if err != nil {
		return fmt.Errorf("render template: %w", err)
	}
	return os.WriteFile(outputPath, buf.Bytes(), 0o644)
}
