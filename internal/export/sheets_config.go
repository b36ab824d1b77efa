package export

import (
	"errors"
	"time"
)

// SheetsConfig holds the configuration for the Google Sheets writer.
type SheetsConfig struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	SpreadsheetName    string
	SheetTitle         string
	TimeZone           string
	BatchSize          int
	RetryAttempts      int
	RetryDelay         time.Duration
	EnableFormatting   bool
}

// DefaultSheetsConfig returns a SheetsConfig with sensible defaults.
func DefaultSheetsConfig() SheetsConfig {
	return SheetsConfig{
		SpreadsheetName:  "Buy Box Analysis",
		SheetTitle:       "Listings",
		EnableFormatting: true,
		TimeZone:         "America/New_York",
		BatchSize:        500,
		RetryAttempts:    3,
		RetryDelay:       time.Second,
	}
}

// Validate checks if the configuration is valid.
func (c *SheetsConfig) Validate() error {
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return errors.New("no authentication method configured")
	}

	if hasOAuth && hasServiceAccount {
		return errors.New("multiple authentication methods configured; use either OAuth2 or service account")
	}

	if c.BatchSize <= 0 {
		return errors.New("batch size must be positive")
	}

	if c.RetryAttempts < 0 {
		return errors.New("retry attempts cannot be negative")
	}

	if c.RetryDelay < 0 {
		return errors.New("retry delay cannot be negative")
	}

	return nil
}
