// Package output renders fetched consumption records to their destination.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/est-lv/consumption-scraper/internal/models"
)

// Writer renders consumption records as pretty-printed JSON, either to
// standard output or to a file.
type Writer struct {
	stdout io.Writer
	logger zerolog.Logger
}

// New creates a Writer targeting standard output by default.
func New(logger zerolog.Logger) *Writer {
	return &Writer{
		stdout: os.Stdout,
		logger: logger.With().Str("component", "output").Logger(),
	}
}

// Write renders records to the file at path, or to standard output when path
// is empty. An existing file at path is overwritten.
func (w *Writer) Write(records []models.ConsumptionRecord, path string) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if path == "" {
		if _, err := fmt.Fprintln(w.stdout, string(data)); err != nil {
			return fmt.Errorf("writing to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	w.logger.Info().
		Str("path", path).
		Int("records", len(records)).
		Msg("wrote output file")

	return nil
}
