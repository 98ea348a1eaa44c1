// Package output persists enriched records to an append-only CSV file.
package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jonathan/college-enricher/internal/types"
)

// Writer appends one fully-formed row per record and forces it to disk
// before returning, so a killed process never leaves a partial row.
type Writer struct {
	file *os.File
	csv  *csv.Writer
}

// NewWriter opens path in append mode, writing the header row first if
// the file is empty or being created.
func NewWriter(path string) (*Writer, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat output file %s: %w", path, err)
	}

	w := &Writer{file: file, csv: csv.NewWriter(file)}

	if info.Size() == 0 {
		if err := w.writeRow(types.OutputColumns); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	return w, nil
}

// Append writes one record in the fixed column order and flushes it.
func (w *Writer) Append(record *types.CollegeRecord) error {
	if err := w.writeRow(record.Row()); err != nil {
		return fmt.Errorf("failed to write record for %q: %w", record.Name, err)
	}
	return nil
}

// writeRow writes, flushes, and syncs a single row. The sync is the
// crash-consistency boundary: once it returns, the row is durable.
func (w *Writer) writeRow(row []string) error {
	if err := w.csv.Write(row); err != nil {
		return err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close flushes any buffered output and closes the file.
func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}
