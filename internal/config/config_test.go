package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, filepath.Join(home, ".config", "buybox", "buybox.db"), cfg.Database.Path)
	assert.Equal(t, model.TargetAll, cfg.Analysis.Target)
	assert.Equal(t, model.DefaultIdentities, cfg.IdentitySet())
	assert.Equal(t, ".", cfg.Export.Dir)
	assert.Equal(t, 500, cfg.Export.Sheets.BatchSize)
	assert.Equal(t, time.Second, cfg.Export.Sheets.RetryDelay)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logging:
  level: debug
  format: json
database:
  path: /tmp/buybox-test.db
analysis:
  target: SecuLife
identities:
  - SecuLife
  - Jolt
export:
  dir: /tmp/exports
  sheets:
    batch_size: 50
    retry_delay: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/buybox-test.db", cfg.Database.Path)
	assert.Equal(t, "SecuLife", cfg.Analysis.Target)
	assert.Equal(t, model.IdentitySet{"SecuLife", "Jolt"}, cfg.IdentitySet())
	assert.Equal(t, 50, cfg.Export.Sheets.BatchSize)
	assert.Equal(t, 2*time.Second, cfg.Export.Sheets.RetryDelay)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantKey string
	}{
		{name: "bad log level", key: "logging.level", value: "loud", wantKey: "logging.level"},
		{name: "bad log format", key: "logging.format", value: "xml", wantKey: "logging.format"},
		{name: "empty database path", key: "database.path", value: "", wantKey: "database.path"},
		{name: "zero batch size", key: "export.sheets.batch_size", value: 0, wantKey: "export.sheets.batch_size"},
		{name: "blank identity", key: "identities", value: []string{"SecuLife", ""}, wantKey: "identities[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestSheetsWriterConfig(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	// Credentials may leak in from the environment of the machine running the tests
	cfg.Export.Sheets.ClientID = ""
	cfg.Export.Sheets.ServiceAccountPath = ""

	_, err = cfg.SheetsWriterConfig()
	assert.ErrorIs(t, err, common.ErrMissingConfig)

	cfg.Export.Sheets.ServiceAccountPath = "/keys/sa.json"
	out, err := cfg.SheetsWriterConfig()
	require.NoError(t, err)
	assert.Equal(t, "/keys/sa.json", out.ServiceAccountPath)
	assert.Equal(t, cfg.Export.Sheets.BatchSize, out.BatchSize)
}

func TestApplySheetsEnv(t *testing.T) {
	t.Setenv("GOOGLE_SHEETS_CLIENT_ID", "env-client")
	t.Setenv("GOOGLE_SHEETS_SPREADSHEET_ID", "env-sheet")

	c := SheetsConfig{SpreadsheetID: "configured"}
	applySheetsEnv(&c)

	assert.Equal(t, "env-client", c.ClientID)
	assert.Equal(t, "configured", c.SpreadsheetID)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("BUYBOX_TEST_DIR", "/data")

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "exports"), ExpandPath("~/exports"))
	assert.Equal(t, "/data/buybox.db", ExpandPath("$BUYBOX_TEST_DIR/buybox.db"))
	assert.True(t, strings.HasPrefix(ExpandPath("relative/path"), "relative"))
}
