// Package progress derives the set of already-enriched colleges from
// prior output, so an interrupted run can resume without repeating work.
package progress

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/college-enricher/internal/types"
)

// Load scans an existing output file and returns the set of normalized
// name keys it contains. A missing file yields an empty set and no
// diagnostic. A malformed or partially unreadable file yields whatever
// keys could be parsed plus a non-nil diagnostic; corrupt prior output
// must never block forward progress, so callers log the diagnostic and
// continue.
func Load(path string) (map[string]bool, error) {
	processed := make(map[string]bool)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return processed, nil
		}
		return processed, fmt.Errorf("could not read existing progress from %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return processed, nil
		}
		return processed, fmt.Errorf("could not read header of %s: %w", path, err)
	}

	nameIdx := 0
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), "name") {
			nameIdx = i
			break
		}
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return processed, nil
		}
		if err != nil {
			// Keep what was readable so far.
			return processed, fmt.Errorf("existing progress in %s is partially unreadable: %w", path, err)
		}
		if nameIdx >= len(row) {
			continue
		}
		if key := types.NormalizeKey(row[nameIdx]); key != "" {
			processed[key] = true
		}
	}
}
