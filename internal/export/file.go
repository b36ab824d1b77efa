package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/buybox-master/internal/model"
)

// Filename returns the export file name for the given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("buybox-analysis-%s.csv", now.UTC().Format("2006-01-02"))
}

// WriteFile serializes listings into dir and returns the written path.
func WriteFile(dir string, listings []model.Listing, now time.Time) (string, error) {
	content, err := SerializeCSV(listings)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, Filename(now))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
