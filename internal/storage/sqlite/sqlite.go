// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/bucketwise/internal/models"
	"github.com/mmynk/bucketwise/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; SQLite serialises writes anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadState reads the whole roster and payment history from one read-only
// transaction, so both halves come from the same snapshot.
func (s *SQLiteStore) LoadState(ctx context.Context) (models.State, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return models.State{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	roster, err := listMembers(ctx, tx)
	if err != nil {
		return models.State{}, err
	}

	payments, err := listPayments(ctx, tx, 0)
	if err != nil {
		return models.State{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.State{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return models.State{
		Roster:  roster,
		History: models.NewHistory(payments),
	}, nil
}

// ApplyPayment writes the changed exemption counts and inserts the payment.
func (s *SQLiteStore) ApplyPayment(ctx context.Context, changed []models.Member, payment models.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := updateExemptions(ctx, tx, changed); err != nil {
		return err
	}

	if err := insertPayment(ctx, tx, payment); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ResetCycle removes every payment and stores the exemption counts of the
// reset roster.
func (s *SQLiteStore) ResetCycle(ctx context.Context, roster models.Roster) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM payments"); err != nil {
		return fmt.Errorf("failed to clear payments: %w", err)
	}
	if err := updateExemptions(ctx, tx, roster); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// updateExemptions writes the exemption count of every given member.
func updateExemptions(ctx context.Context, tx *sql.Tx, members []models.Member) error {
	for _, m := range members {
		res, err := tx.ExecContext(ctx,
			"UPDATE members SET exemptions = ? WHERE id = ?",
			m.Exemptions, m.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update exemptions: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("member %s: %w", m.ID, storage.ErrNotFound)
		}
	}
	return nil
}
