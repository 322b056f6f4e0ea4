// Package csvfile implements the catalog repositories over one CSV file per
// table. Every operation reads the full table into memory; every mutation
// rewrites the whole file through a temp file + rename, so a failed write
// never leaves a half-updated table behind.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// header maps column names to their index in a CSV header row.
type header map[string]int

func newHeader(row []string) header {
	h := make(header, len(row))
	for i, name := range row {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

// field returns the named column of a row, or "" when the column is absent
// from the file. Unknown columns in the file are simply never asked for.
func (h header) field(row []string, name string) string {
	i, ok := h[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (h header) boolField(row []string, name string) bool {
	return strings.EqualFold(strings.TrimSpace(h.field(row, name)), "true")
}

// readTable loads all rows of the CSV file at path. A missing file is an
// empty table, not an error; a malformed file is a storage error.
func readTable(path string) (header, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate historical files with ragged rows
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	return newHeader(rows[0]), rows[1:], nil
}

// writeTable atomically replaces the CSV file at path with header + rows.
func writeTable(path string, columns []string, rows [][]string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp table file: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(columns); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write rows: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flush rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp table file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit table file: %w", err)
	}
	return nil
}

// newID generates a prefixed 8-hex-char identifier (mer_1a2b3c4d) and
// re-rolls until it misses every id in taken, so ids freed by deletions can
// never be handed out twice within one table generation.
func newID(prefix string, taken func(id string) bool) string {
	for {
		id := prefix + strings.ToLower(uuid.New().String()[:8])
		if !taken(id) {
			return id
		}
	}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
