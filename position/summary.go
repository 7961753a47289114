package position

import "sort"

// Summary pairs a plate with its vehicle identifier. The identifier keeps the
// JSON type the API sent so the summary file round-trips cleanly.
type Summary struct {
	Placa     string `json:"Placa"`
	IDVeiculo any    `json:"idVeiculo"`
}

// Summarize derives one Summary per record with a resolvable identifier,
// sorted by plate ascending. Records without an identifier are excluded.
func Summarize(dataset []Record) []Summary {
	out := make([]Summary, 0, len(dataset))
	for _, rec := range dataset {
		id, ok := rec.RawVehicleID()
		if !ok {
			continue
		}
		out = append(out, Summary{Placa: rec.Plate(), IDVeiculo: id})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Placa < out[j].Placa })
	return out
}
