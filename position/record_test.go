package position

import "testing"

func TestVehicleID(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
		wantOK bool
	}{
		{
			name:   "primary spelling",
			record: Record{"idVeiculo": float64(42)},
			want:   "42",
			wantOK: true,
		},
		{
			name:   "capitalized spelling",
			record: Record{"IdVeiculo": "veh-9"},
			want:   "veh-9",
			wantOK: true,
		},
		{
			name:   "last spelling in priority list",
			record: Record{"veiculoId": float64(7)},
			want:   "7",
			wantOK: true,
		},
		{
			name:   "first spelling wins over later ones",
			record: Record{"idVeiculo": float64(1), "id": float64(2)},
			want:   "1",
			wantOK: true,
		},
		{
			name:   "zero id counts as unset, falls through",
			record: Record{"idVeiculo": float64(0), "id": float64(3)},
			want:   "3",
			wantOK: true,
		},
		{
			name:   "no identifier field",
			record: Record{"Placa": "ABC1234"},
			wantOK: false,
		},
		{
			name:   "empty string identifier",
			record: Record{"idVeiculo": ""},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.record.VehicleID()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("id = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlate(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{name: "standard spelling", record: Record{"Placa": "ABC1234"}, want: "ABC1234"},
		{name: "lowercase spelling", record: Record{"placa": "XYZ9876"}, want: "XYZ9876"},
		{name: "uppercase spelling", record: Record{"PLACA": "DEF5678"}, want: "DEF5678"},
		{name: "missing plate", record: Record{"idVeiculo": float64(1)}, want: NoPlate},
		{name: "empty plate falls back", record: Record{"Placa": ""}, want: NoPlate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Plate(); got != tt.want {
				t.Errorf("plate = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{name: "comma decimal separator", input: "-23,55", want: -23.55, wantOK: true},
		{name: "period decimal separator", input: "-46.63", want: -46.63, wantOK: true},
		{name: "plain float", input: float64(-15.78), want: -15.78, wantOK: true},
		{name: "surrounding whitespace", input: " -23,55 ", want: -23.55, wantOK: true},
		{name: "garbage string", input: "n/a", wantOK: false},
		{name: "empty string", input: "", wantOK: false},
		{name: "nil", input: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseCoordinate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{
			name:    "comma separated pair",
			record:  Record{"Latitude": "-23,55", "Longitude": "-46,63"},
			wantLat: -23.55,
			wantLon: -46.63,
			wantOK:  true,
		},
		{
			name:   "missing longitude",
			record: Record{"Latitude": "-23.55"},
			wantOK: false,
		},
		{
			name:   "unparsable latitude",
			record: Record{"Latitude": "??", "Longitude": "-46.63"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, ok := tt.record.Coordinates()
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (lat != tt.wantLat || lon != tt.wantLon) {
				t.Errorf("got (%v, %v), want (%v, %v)", lat, lon, tt.wantLat, tt.wantLon)
			}
		})
	}
}

func TestSpeed(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   float64
	}{
		{name: "numeric speed", record: Record{"Velocidade": float64(35)}, want: 35},
		{name: "string speed with comma", record: Record{"Velocidade": "12,5"}, want: 12.5},
		{name: "absent speed", record: Record{}, want: 0},
		{name: "unparsable speed", record: Record{"Velocidade": "rapido"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Speed(); got != tt.want {
				t.Errorf("speed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRouteFallsBackAcrossSpellings(t *testing.T) {
	rec := Record{"Trajeto": "SP - RJ"}
	got, ok := rec.Route()
	if !ok || got != "SP - RJ" {
		t.Fatalf("route = %q (ok=%v), want %q", got, ok, "SP - RJ")
	}

	rec = Record{"DescricaoViagem": "Viagem 12", "Trajeto": "ignored"}
	got, _ = rec.Route()
	if got != "Viagem 12" {
		t.Errorf("route = %q, want DescricaoViagem to win", got)
	}
}
