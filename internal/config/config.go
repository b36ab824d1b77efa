package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/Veraticus/buybox-master/internal/export"
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Logging    LoggingConfig  `mapstructure:"logging"`
	Database   DatabaseConfig `mapstructure:"database"`
	Analysis   AnalysisConfig `mapstructure:"analysis"`
	Export     ExportConfig   `mapstructure:"export"`
	Identities []string       `mapstructure:"identities" validate:"dive,required"`
}

// LoggingConfig controls the global slog handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// AnalysisConfig holds classification defaults.
type AnalysisConfig struct {
	// Target is ALL or a single identity name.
	Target string `mapstructure:"target"`
}

// ExportConfig holds export destinations.
type ExportConfig struct {
	Dir    string       `mapstructure:"dir" validate:"required"`
	Sheets SheetsConfig `mapstructure:"sheets"`
}

// SheetsConfig mirrors export.SheetsConfig in configuration file form.
type SheetsConfig struct {
	ClientID           string        `mapstructure:"client_id"`
	ClientSecret       string        `mapstructure:"client_secret"`
	RefreshToken       string        `mapstructure:"refresh_token"`
	ServiceAccountPath string        `mapstructure:"service_account_path"`
	SpreadsheetID      string        `mapstructure:"spreadsheet_id"`
	SpreadsheetName    string        `mapstructure:"spreadsheet_name" validate:"required"`
	SheetTitle         string        `mapstructure:"sheet_title" validate:"required"`
	TimeZone           string        `mapstructure:"time_zone"`
	BatchSize          int           `mapstructure:"batch_size" validate:"gt=0"`
	RetryAttempts      int           `mapstructure:"retry_attempts" validate:"gte=0"`
	RetryDelay         time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
	EnableFormatting   bool          `mapstructure:"enable_formatting"`
}

// DefaultDatabasePath returns ~/.config/buybox/buybox.db.
func DefaultDatabasePath() string {
	return filepath.Join("~", ".config", "buybox", "buybox.db")
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	sheets := export.DefaultSheetsConfig()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("database.path", DefaultDatabasePath())
	v.SetDefault("analysis.target", model.TargetAll)
	v.SetDefault("identities", []string(model.DefaultIdentities))
	v.SetDefault("export.dir", ".")
	v.SetDefault("export.sheets.spreadsheet_name", sheets.SpreadsheetName)
	v.SetDefault("export.sheets.sheet_title", sheets.SheetTitle)
	v.SetDefault("export.sheets.time_zone", sheets.TimeZone)
	v.SetDefault("export.sheets.batch_size", sheets.BatchSize)
	v.SetDefault("export.sheets.retry_attempts", sheets.RetryAttempts)
	v.SetDefault("export.sheets.retry_delay", sheets.RetryDelay)
	v.SetDefault("export.sheets.enable_formatting", sheets.EnableFormatting)
}

// Load decodes and validates the configuration held by v. Paths are expanded.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	cfg.Database.Path = ExpandPath(cfg.Database.Path)
	cfg.Export.Dir = ExpandPath(cfg.Export.Dir)
	cfg.Export.Sheets.ServiceAccountPath = ExpandPath(cfg.Export.Sheets.ServiceAccountPath)
	applySheetsEnv(&cfg.Export.Sheets)

	if err := New().Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applySheetsEnv fills unset credentials from the GOOGLE_SHEETS_* variables.
func applySheetsEnv(c *SheetsConfig) {
	fill := func(dst *string, key string) {
		if *dst == "" {
			*dst = os.Getenv(key)
		}
	}
	fill(&c.ClientID, "GOOGLE_SHEETS_CLIENT_ID")
	fill(&c.ClientSecret, "GOOGLE_SHEETS_CLIENT_SECRET")
	fill(&c.RefreshToken, "GOOGLE_SHEETS_REFRESH_TOKEN")
	fill(&c.SpreadsheetID, "GOOGLE_SHEETS_SPREADSHEET_ID")
	if c.ServiceAccountPath == "" {
		c.ServiceAccountPath = ExpandPath(os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"))
	}
}

// IdentitySet returns the configured seed identities.
func (c *Config) IdentitySet() model.IdentitySet {
	return model.IdentitySet(c.Identities).Clone()
}

// SheetsWriterConfig converts the file form into the writer's config and validates credentials.
func (c *Config) SheetsWriterConfig() (export.SheetsConfig, error) {
	s := c.Export.Sheets
	out := export.SheetsConfig{
		ClientID:           s.ClientID,
		ClientSecret:       s.ClientSecret,
		RefreshToken:       s.RefreshToken,
		ServiceAccountPath: s.ServiceAccountPath,
		SpreadsheetID:      s.SpreadsheetID,
		SpreadsheetName:    s.SpreadsheetName,
		SheetTitle:         s.SheetTitle,
		TimeZone:           s.TimeZone,
		BatchSize:          s.BatchSize,
		RetryAttempts:      s.RetryAttempts,
		RetryDelay:         s.RetryDelay,
		EnableFormatting:   s.EnableFormatting,
	}
	if err := out.Validate(); err != nil {
		return out, common.NewUserError("Google Sheets export is not configured.", fmt.Errorf("%w: %w", common.ErrMissingConfig, err))
	}
	return out, nil
}
