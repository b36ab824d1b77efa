package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/Veraticus/buybox-master/internal/model"
	"github.com/Veraticus/buybox-master/internal/service"
	"github.com/google/uuid"
)

// Listings are inserted in chunks so progress can be reported between them.
const listingChunkSize = 100

// SaveRun stores a run and its classified listings in one transaction.
// A missing ID or creation time is filled in on run.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.Run, listings []model.Listing, progress service.ProgressFunc) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(run); err != nil {
		return err
	}
	for i := range listings {
		if err := validateListing(&listings[i]); err != nil {
			return fmt.Errorf("listing at index %d: %w", i, err)
		}
	}

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		sum := run.Summary
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (id, source, target, total, won, lost, suppressed,
				win_rate, average_gap, row_count, dropped, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, run.ID, run.Source, run.Target, sum.Total, sum.Won, sum.Lost, sum.Suppressed,
			sum.WinRate, sum.AverageGap, run.RowCount, run.Dropped, run.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO run_listings (run_id, position, listing_id, asin, title, image_url,
				buy_box_seller, status, our_price, buy_box_price, delta, action)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for i, l := range listings {
			_, err := stmt.ExecContext(ctx, run.ID, i, l.ID, l.ASIN, l.Title, l.ImageURL,
				l.BuyBoxSeller, string(l.Status), l.OurPrice, l.BuyBoxPrice, l.Delta, l.Action)
			if err != nil {
				return fmt.Errorf("failed to insert listing %s: %w", l.ASIN, err)
			}
			if progress != nil && ((i+1)%listingChunkSize == 0 || i+1 == len(listings)) {
				progress(i+1, len(listings))
			}
		}
		return nil
	})
}

const runColumns = `id, source, target, total, won, lost, suppressed,
	win_rate, average_gap, row_count, dropped, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (model.Run, error) {
	var run model.Run
	err := row.Scan(
		&run.ID,
		&run.Source,
		&run.Target,
		&run.Summary.Total,
		&run.Summary.Won,
		&run.Summary.Lost,
		&run.Summary.Suppressed,
		&run.Summary.WinRate,
		&run.Summary.AverageGap,
		&run.RowCount,
		&run.Dropped,
		&run.CreatedAt,
	)
	return run, err
}

// GetRun returns a single run by ID.
func (s *SQLiteStorage) GetRun(ctx context.Context, id string) (*model.Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	run, err := scanRun(s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// GetRuns returns saved runs, newest first. A limit of zero or less returns all runs.
func (s *SQLiteStorage) GetRuns(ctx context.Context, limit int) ([]model.Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+runColumns+`
		FROM runs
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunListings returns the listings saved with a run in their original order.
func (s *SQLiteStorage) GetRunListings(ctx context.Context, runID string) ([]model.Listing, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(runID, "runID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT listing_id, asin, title, COALESCE(image_url, ''), buy_box_seller,
			status, our_price, buy_box_price, delta, action
		FROM run_listings
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	listings := []model.Listing{}
	for rows.Next() {
		var l model.Listing
		var status string
		if err := rows.Scan(&l.ID, &l.ASIN, &l.Title, &l.ImageURL, &l.BuyBoxSeller,
			&status, &l.OurPrice, &l.BuyBoxPrice, &l.Delta, &l.Action); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		l.Status = model.BuyBoxStatus(status)
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// DeleteRun removes a run and its listings.
func (s *SQLiteStorage) DeleteRun(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM run_listings WHERE run_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete run listings: %w", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete run: %w", err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check deletion: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("run %s: %w", id, common.ErrNotFound)
		}
		return nil
	})
}
