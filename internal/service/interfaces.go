// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/buybox-master/internal/model"
)

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Identity operations
	GetIdentities(ctx context.Context) (model.IdentitySet, error)
	SaveIdentities(ctx context.Context, identities model.IdentitySet) error
	AddIdentity(ctx context.Context, name string) error
	RemoveIdentity(ctx context.Context, name string) error

	// Run history
	SaveRun(ctx context.Context, run *model.Run, listings []model.Listing, progress ProgressFunc) error
	GetRun(ctx context.Context, id string) (*model.Run, error)
	GetRuns(ctx context.Context, limit int) ([]model.Run, error)
	GetRunListings(ctx context.Context, runID string) ([]model.Listing, error)
	DeleteRun(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ProgressFunc reports how many of total items have been processed.
type ProgressFunc func(done, total int)

// Report is the data handed to a report writer.
type Report struct {
	GeneratedAt time.Time
	Target      string
	Listings    []model.Listing
	Summary     model.Summary
}

// ReportWriter writes an analysis report to an external destination.
type ReportWriter interface {
	Write(ctx context.Context, report Report) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
