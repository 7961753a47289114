// Package mapgen renders the persisted snapshot as a self-contained
// interactive Leaflet map.
package mapgen

import (
	"log"

	"github.com/frotalab/fleet-snapshot/position"
)

// Fallback texts for popup fields the API left empty.
const (
	noDriver    = "Não informado"
	noRoute     = "Sem trajeto definido"
	noTimestamp = "---"
)

// Marker is one plotted vehicle.
type Marker struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Plate  string  `json:"plate"`
	Driver string  `json:"driver"`
	Route  string  `json:"route"`
	Speed  float64 `json:"speed"`
	Moving bool    `json:"moving"`
	Time   string  `json:"time"`
}

// Build converts the snapshot into plottable markers. Records whose
// coordinates are missing or unparsable are skipped, never fatal.
func Build(dataset []position.Record) []Marker {
	markers := make([]Marker, 0, len(dataset))
	for _, rec := range dataset {
		lat, lon, ok := rec.Coordinates()
		if !ok {
			log.Printf("skipping record without usable coordinates (plate %s)", rec.Plate())
			continue
		}
		m := Marker{
			Lat:    lat,
			Lon:    lon,
			Plate:  rec.Plate(),
			Speed:  rec.Speed(),
			Driver: noDriver,
			Route:  noRoute,
			Time:   noTimestamp,
		}
		m.Moving = m.Speed > 0
		if d, ok := rec.Driver(); ok {
			m.Driver = d
		}
		if r, ok := rec.Route(); ok {
			m.Route = r
		}
		if t, ok := rec.Timestamp(); ok {
			m.Time = t
		}
		markers = append(markers, m)
	}
	return markers
}
