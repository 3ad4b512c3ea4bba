package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Template renders the header and one sample record of a target's file.
func Template(target Target) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(target.Columns()); err != nil {
		return nil, fmt.Errorf("failed to write template header: %w", err)
	}
	if err := w.Write(target.Sample()); err != nil {
		return nil, fmt.Errorf("failed to write template sample: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush template: %w", err)
	}

	return buf.Bytes(), nil
}
