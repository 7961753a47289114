package position

import "reflect"

// Stats reports what a merge did to the dataset.
type Stats struct {
	New     int
	Updated int
	Kept    int
}

// Merge reconciles freshly fetched records into the persisted dataset.
// Records are keyed by vehicle identifier; the incoming side wins on
// conflict, existing vehicles absent from the fetch are kept. Records on
// either side without a resolvable identifier are dropped silently.
//
// The merged order is the index insertion order: existing records keep their
// relative order and new vehicles are appended as first seen.
func Merge(existing, incoming []Record) ([]Record, Stats) {
	order := make([]string, 0, len(existing)+len(incoming))
	index := make(map[string]Record, len(existing)+len(incoming))
	for _, rec := range existing {
		id, ok := rec.VehicleID()
		if !ok {
			continue
		}
		if _, seen := index[id]; !seen {
			order = append(order, id)
		}
		index[id] = rec
	}

	var stats Stats
	for _, rec := range incoming {
		id, ok := rec.VehicleID()
		if !ok {
			continue
		}
		prev, seen := index[id]
		switch {
		case !seen:
			order = append(order, id)
			index[id] = rec
			stats.New++
		case !reflect.DeepEqual(prev, rec):
			index[id] = rec
			stats.Updated++
		default:
			stats.Kept++
		}
	}

	merged := make([]Record, 0, len(order))
	for _, id := range order {
		merged = append(merged, index[id])
	}
	return merged, stats
}
