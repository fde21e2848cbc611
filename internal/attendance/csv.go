package attendance

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

var header = []string{"Date", "Lesson Name", "Count", "Class Group"}

// Write serializes rows as CSV, one header row followed by one line per
// aggregated row, dates in ISO-8601.
func Write(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Date.Format(time.DateOnly),
			row.Subject,
			strconv.Itoa(row.Count),
			row.ClassGroup,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile writes the report next to its final path and renames it into
// place, so a failed run never leaves a truncated file behind.
func WriteFile(path string, rows []Row) error {
	file, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create output for %q: %w", path, err)
	}
	defer os.Remove(file.Name())

	if err := Write(file, rows); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %q: %w", file.Name(), err)
	}
	// CreateTemp makes the file 0600, the report should be a regular file.
	if err := os.Chmod(file.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %q: %w", file.Name(), err)
	}
	if err := os.Rename(file.Name(), path); err != nil {
		return fmt.Errorf("rename into %q: %w", path, err)
	}
	return nil
}
