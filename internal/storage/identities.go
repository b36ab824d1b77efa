package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Veraticus/buybox-master/internal/common"
	"github.com/Veraticus/buybox-master/internal/model"
)

// GetIdentities returns the stored identities in display order.
func (s *SQLiteStorage) GetIdentities(ctx context.Context) (model.IdentitySet, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	return getIdentitiesTx(ctx, s.db)
}

func getIdentitiesTx(ctx context.Context, q queryable) (model.IdentitySet, error) {
	rows, err := q.QueryContext(ctx, `SELECT name FROM identities ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query identities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	identities := model.IdentitySet{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan identity: %w", err)
		}
		identities = append(identities, name)
	}
	return identities, rows.Err()
}

// SaveIdentities replaces the stored identities with the given ordered set.
// Blank entries and exact duplicates are skipped.
func (s *SQLiteStorage) SaveIdentities(ctx context.Context, identities model.IdentitySet) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var cleaned model.IdentitySet
	for _, name := range identities {
		cleaned, _ = cleaned.Add(name)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM identities`); err != nil {
			return fmt.Errorf("failed to clear identities: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `INSERT INTO identities (position, name) VALUES (?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for i, name := range cleaned {
			if _, err := stmt.ExecContext(ctx, i, name); err != nil {
				return fmt.Errorf("failed to insert identity %q: %w", name, err)
			}
		}
		return nil
	})
}

// AddIdentity appends a trimmed identity name to the end of the list.
func (s *SQLiteStorage) AddIdentity(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if err := validateString(name, "name"); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM identities WHERE name = ?`, name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check identity: %w", err)
		}
		if exists > 0 {
			return fmt.Errorf("identity %q: %w", name, common.ErrDuplicateEntry)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO identities (position, name)
			VALUES ((SELECT COALESCE(MAX(position), -1) + 1 FROM identities), ?)
		`, name)
		if err != nil {
			return fmt.Errorf("failed to add identity: %w", err)
		}
		return nil
	})
}

// RemoveIdentity deletes the identity with exactly this name.
func (s *SQLiteStorage) RemoveIdentity(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM identities WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to remove identity: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("identity %q: %w", name, common.ErrNotFound)
	}
	return nil
}

// EnsureIdentities seeds the table with defaults when it is empty and
// returns the stored identities.
func (s *SQLiteStorage) EnsureIdentities(ctx context.Context, defaults model.IdentitySet) (model.IdentitySet, error) {
	identities, err := s.GetIdentities(ctx)
	if err != nil {
		return nil, err
	}
	if len(identities) > 0 {
		return identities, nil
	}

	if err := s.SaveIdentities(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to seed identities: %w", err)
	}
	return s.GetIdentities(ctx)
}
