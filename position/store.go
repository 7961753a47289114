package position

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrMissingInput reports an absent snapshot file.
	ErrMissingInput = errors.New("snapshot file not found")
	// ErrMalformedInput reports a snapshot file that is not a JSON record array.
	ErrMalformedInput = errors.New("snapshot file is not valid JSON")
)

// LoadSnapshot reads the persisted dataset from path.
func LoadSnapshot(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, err
	}
	var dataset []Record
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return dataset, nil
}

// SaveSnapshot overwrites path with the full dataset.
func SaveSnapshot(path string, dataset []Record) error {
	if dataset == nil {
		dataset = []Record{}
	}
	return writeJSON(path, dataset)
}

// SaveSummary overwrites path with the derived summary.
func SaveSummary(path string, summary []Summary) error {
	if summary == nil {
		summary = []Summary{}
	}
	return writeJSON(path, summary)
}

// writeJSON pretty-prints with two-space indent and HTML escaping off, so
// accented plate and driver text survives verbatim.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
