// Package input loads the college list that seeds an enrichment run.
package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jonathan/college-enricher/internal/types"
)

// LoadEntities reads the input CSV. The file must have a header row with
// name and url columns; values are whitespace-trimmed. Rows with an
// empty name are skipped.
func LoadEntities(path string) ([]types.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	nameIdx, urlIdx := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameIdx = i
		case "url":
			urlIdx = i
		}
	}
	if nameIdx < 0 || urlIdx < 0 {
		return nil, fmt.Errorf("input file %s must have name and url columns", path)
	}

	var entities []types.Entity
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return entities, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input row: %w", err)
		}
		if nameIdx >= len(row) || urlIdx >= len(row) {
			continue
		}

		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			continue
		}
		entities = append(entities, types.Entity{
			Name: name,
			URL:  strings.TrimSpace(row[urlIdx]),
		})
	}
}
