package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "buybox-analysis-2024-03-09.csv", Filename(now))
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	path, err := WriteFile(dir, []model.Listing{sampleListing()}, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "buybox-analysis-2024-03-09.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "B000TEST01")
}

func TestWriteFile_NothingToExport(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteFile(dir, nil, time.Now())
	assert.ErrorIs(t, err, ErrNothingToExport)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
