package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frotalab/fleet-snapshot/credstore"
	"github.com/frotalab/fleet-snapshot/position"
)

func positionsHandler(t *testing.T, responses *[]func(w http.ResponseWriter)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Helper()
		if r.URL.Path != "/ListaUltimaPosicaoVeiculos/0" {
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok" {
			t.Errorf("missing bearer header, got %q", r.Header.Get("Authorization"))
		}
		if len(*responses) == 0 {
			t.Error("more requests than scripted responses")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		next := (*responses)[0]
		*responses = (*responses)[1:]
		next(w)
	}
}

func respondRecords(records []map[string]any) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(records)
	}
}

func respondStatus(code int) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.WriteHeader(code)
	}
}

func TestFetchAllPositionsSuccess(t *testing.T) {
	responses := []func(w http.ResponseWriter){
		respondRecords([]map[string]any{
			{"idVeiculo": 1, "Placa": "ABC1234", "Latitude": "-23,55"},
			{"idVeiculo": 2, "Placa": "XYZ9876"},
		}),
	}
	srv := httptest.NewServer(positionsHandler(t, &responses))
	defer srv.Close()

	c := newTestClient(srv.URL, &credstore.Memory{})
	records, err := c.FetchAllPositions(context.Background(), "tok")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].Plate() != "ABC1234" {
		t.Errorf("plate = %s, want ABC1234", records[0].Plate())
	}
}

func TestFetchEmbeddedErrorIsTerminal(t *testing.T) {
	responses := []func(w http.ResponseWriter){
		respondRecords([]map[string]any{{"ErroProcessamento": "3S.2001 token invalido"}}),
	}
	srv := httptest.NewServer(positionsHandler(t, &responses))
	defer srv.Close()

	c := newTestClient(srv.URL, &credstore.Memory{})
	_, err := c.FetchAllPositions(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error for embedded API error")
	}
	if len(responses) != 0 {
		t.Errorf("%d scripted responses left, want the call to stop at the first", len(responses))
	}
}

func TestFetchRecoversFromEmbeddedRateLimit(t *testing.T) {
	responses := []func(w http.ResponseWriter){
		respondRecords([]map[string]any{{"ErroProcessamento": "Excesso de chamadas 3S.1040"}}),
		respondRecords([]map[string]any{{"idVeiculo": 1, "Placa": "ABC1234"}}),
	}
	srv := httptest.NewServer(positionsHandler(t, &responses))
	defer srv.Close()

	c := newTestClient(srv.URL, &credstore.Memory{})
	records, err := c.FetchAllPositions(context.Background(), "tok")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("len(records) = %d, want 1", len(records))
	}
}

func TestFetchExhaustsTransportRetries(t *testing.T) {
	responses := []func(w http.ResponseWriter){
		respondStatus(http.StatusInternalServerError),
		respondStatus(http.StatusInternalServerError),
		respondStatus(http.StatusInternalServerError),
	}
	srv := httptest.NewServer(positionsHandler(t, &responses))
	defer srv.Close()

	c := newTestClient(srv.URL, &credstore.Memory{})
	_, err := c.FetchAllPositions(context.Background(), "tok")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if len(responses) != 0 {
		t.Errorf("%d scripted responses left, want exactly 3 attempts", len(responses))
	}
}

func TestRateLimitRecoveryDoesNotConsumeTransportBudget(t *testing.T) {
	// A rate-limit pause followed by two transport failures must still leave
	// a third transport attempt that succeeds.
	responses := []func(w http.ResponseWriter){
		respondRecords([]map[string]any{{"ErroProcessamento": "3S.1040"}}),
		respondStatus(http.StatusInternalServerError),
		respondStatus(http.StatusInternalServerError),
		respondRecords([]map[string]any{{"idVeiculo": 9, "Placa": "OK"}}),
	}
	srv := httptest.NewServer(positionsHandler(t, &responses))
	defer srv.Close()

	c := newTestClient(srv.URL, &credstore.Memory{})
	records, err := c.FetchAllPositions(context.Background(), "tok")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(records) != 1 || records[0].Plate() != "OK" {
		t.Errorf("records = %v, want the final scripted response", records)
	}
}

func TestEmbeddedErrorDetection(t *testing.T) {
	tests := []struct {
		name     string
		records  []position.Record
		wantCode string
		wantOK   bool
	}{
		{
			name:     "error in first row",
			records:  []position.Record{{"ErroProcessamento": "3S.1040"}},
			wantCode: "3S.1040",
			wantOK:   true,
		},
		{
			name:    "regular records",
			records: []position.Record{{"idVeiculo": float64(1)}},
			wantOK:  false,
		},
		{
			name:   "empty response",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := embeddedError(tt.records)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}
