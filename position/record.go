package position

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one raw vehicle position as returned by the API. Fields are kept
// open-ended so unknown keys pass through the merge and the snapshot file
// untouched.
type Record map[string]any

// Candidate key spellings per logical field, in resolution priority order.
var (
	vehicleIDKeys = []string{"idVeiculo", "IdVeiculo", "id", "Id", "VeiculoId", "veiculoId"}
	plateKeys     = []string{"Placa", "placa", "PLACA"}
	routeKeys     = []string{"DescricaoViagem", "Trajeto"}
)

// NoPlate is reported when none of the plate spellings is present.
const NoPlate = "SEM_PLACA"

const (
	latitudeKey  = "Latitude"
	longitudeKey = "Longitude"
	speedKey     = "Velocidade"
	driverKey    = "Motorista"
	timestampKey = "DataHoraPosicao"
)

// VehicleID resolves the vehicle identifier, normalized to a string so it can
// index a map regardless of whether the API sent it as a number or a string.
func (r Record) VehicleID() (string, bool) {
	v, ok := r.firstTruthy(vehicleIDKeys)
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// RawVehicleID returns the identifier as the API sent it, so derived files
// keep the original JSON type.
func (r Record) RawVehicleID() (any, bool) {
	return r.firstTruthy(vehicleIDKeys)
}

// Plate resolves the plate, falling back to the NoPlate sentinel.
func (r Record) Plate() string {
	if v, ok := r.firstTruthy(plateKeys); ok {
		return stringify(v)
	}
	return NoPlate
}

// Driver returns the driver name when present.
func (r Record) Driver() (string, bool) {
	return r.stringField([]string{driverKey})
}

// Route returns the trip description when present.
func (r Record) Route() (string, bool) {
	return r.stringField(routeKeys)
}

// Timestamp returns the raw position timestamp string when present.
func (r Record) Timestamp() (string, bool) {
	return r.stringField([]string{timestampKey})
}

// Speed returns the reported speed in km/h, zero when absent or unparsable.
func (r Record) Speed() float64 {
	v, ok := r[speedKey]
	if !ok {
		return 0
	}
	f, ok := ParseCoordinate(v)
	if !ok {
		return 0
	}
	return f
}

// Coordinates parses latitude and longitude, reporting ok=false when either
// is missing or unparsable.
func (r Record) Coordinates() (lat, lon float64, ok bool) {
	latRaw, hasLat := r[latitudeKey]
	lonRaw, hasLon := r[longitudeKey]
	if !hasLat || !hasLon {
		return 0, 0, false
	}
	lat, ok = ParseCoordinate(latRaw)
	if !ok {
		return 0, 0, false
	}
	lon, ok = ParseCoordinate(lonRaw)
	if !ok {
		return 0, 0, false
	}
	return lat, lon, true
}

// ParseCoordinate parses a numeric value that may arrive as a number or as a
// string using the comma decimal separator.
func ParseCoordinate(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	if f, ok := v.(float64); ok {
		return f, true
	}
	s := strings.ReplaceAll(strings.TrimSpace(stringify(v)), ",", ".")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func (r Record) firstTruthy(keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && truthy(v) {
			return v, true
		}
	}
	return nil, false
}

func (r Record) stringField(keys []string) (string, bool) {
	v, ok := r.firstTruthy(keys)
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// truthy mirrors the upstream convention that empty strings and zero ids mean
// "not set".
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case bool:
		return t
	}
	return true
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
