// Package gtfsrt exports the merged snapshot as a GTFS-Realtime
// VehiclePositions feed so standard transit tooling can consume it.
package gtfsrt

import (
	"os"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"github.com/frotalab/fleet-snapshot/position"
)

// timestampLayouts covers the formats DataHoraPosicao has been seen in.
var timestampLayouts = []string{
	"02/01/2006 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Export builds a FULL_DATASET VehiclePositions feed. Records without a
// resolvable identifier or parsable coordinates are left out, matching what
// the map renderer plots.
func Export(dataset []position.Record, now time.Time) *gtfsrtpb.FeedMessage {
	fm := &gtfsrtpb.FeedMessage{
		Header: &gtfsrtpb.FeedHeader{
			GtfsRealtimeVersion: proto.String("2.0"),
			Incrementality:      gtfsrtpb.FeedHeader_FULL_DATASET.Enum(),
			Timestamp:           proto.Uint64(uint64(now.Unix())),
		},
	}
	for _, rec := range dataset {
		id, ok := rec.VehicleID()
		if !ok {
			continue
		}
		lat, lon, ok := rec.Coordinates()
		if !ok {
			continue
		}
		desc := &gtfsrtpb.VehicleDescriptor{Id: proto.String(id)}
		if plate := rec.Plate(); plate != position.NoPlate {
			desc.Label = proto.String(plate)
			desc.LicensePlate = proto.String(plate)
		}
		vp := &gtfsrtpb.VehiclePosition{
			Vehicle: desc,
			Position: &gtfsrtpb.Position{
				Latitude:  proto.Float32(float32(lat)),
				Longitude: proto.Float32(float32(lon)),
			},
		}
		if speed := rec.Speed(); speed > 0 {
			vp.Position.Speed = proto.Float32(float32(speed / 3.6)) // km/h to m/s
		}
		if ts, ok := rec.Timestamp(); ok {
			if epoch, ok := parseTimestamp(ts); ok {
				vp.Timestamp = proto.Uint64(uint64(epoch))
			}
		}
		fm.Entity = append(fm.Entity, &gtfsrtpb.FeedEntity{
			Id:      proto.String(id),
			Vehicle: vp,
		})
	}
	return fm
}

// WriteFeed serializes the snapshot as a protobuf feed at path.
func WriteFeed(path string, dataset []position.Record) error {
	data, err := proto.Marshal(Export(dataset, time.Now()))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// parseTimestamp interprets the upstream timestamp string in local time,
// which is how the tracking platform reports positions.
func parseTimestamp(s string) (int64, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}
