package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/buybox-master/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrInvalidStatus  = errors.New("invalid buy box status")
	ErrInvalidRun     = errors.New("invalid run")
	ErrInvalidListing = errors.New("invalid listing")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRun validates run metadata before it is stored.
func validateRun(run *model.Run) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if strings.TrimSpace(run.Source) == "" {
		return fmt.Errorf("%w: missing source", ErrInvalidRun)
	}
	if run.RowCount < 0 || run.Dropped < 0 {
		return fmt.Errorf("%w: negative counts", ErrInvalidRun)
	}
	return nil
}

// validateListing validates a single classified listing.
func validateListing(listing *model.Listing) error {
	if strings.TrimSpace(listing.ASIN) == "" {
		return fmt.Errorf("%w: missing ASIN", ErrInvalidListing)
	}
	if listing.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidListing)
	}
	if !listing.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, listing.Status)
	}
	return nil
}
