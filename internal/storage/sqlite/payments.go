package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/bucketwise/internal/models"
)

// insertPayment writes a payment inside the caller's transaction.
func insertPayment(ctx context.Context, tx *sql.Tx, payment models.Payment) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO payments (id, member_id, member_name, amount, timestamp_ms, is_override)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.MemberID, payment.MemberName,
		payment.Amount.String(), payment.Timestamp, payment.IsOverride,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

// ListPayments retrieves payments newest first, at most limit of them.
func (s *SQLiteStore) ListPayments(ctx context.Context, limit int) ([]models.Payment, error) {
	return listPayments(ctx, s.db, limit)
}

func listPayments(ctx context.Context, q querier, limit int) ([]models.Payment, error) {
	query := `SELECT id, member_id, member_name, amount, timestamp_ms, is_override
		 FROM payments ORDER BY seq DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.MemberID, &p.MemberName,
			&p.Amount, &p.Timestamp, &p.IsOverride); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
