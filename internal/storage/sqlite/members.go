package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/bucketwise/internal/models"
	"github.com/mmynk/bucketwise/internal/storage"
)

// CreateMember inserts a new member into the database.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO members (id, name, phone, exemptions, sort_order, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		member.ID,
		member.Name,
		member.Phone,
		member.Exemptions,
		member.Order,
		member.IsActive,
		member.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	return nil
}

// DeactivateMember marks a member inactive. Payments keep referencing them.
func (s *SQLiteStore) DeactivateMember(ctx context.Context, memberID string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE members SET is_active = 0 WHERE id = ?", memberID)
	if err != nil {
		return fmt.Errorf("failed to deactivate member: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deactivated rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound)
	}

	return nil
}

// CountActiveMembers returns how many members are in the rotation.
func (s *SQLiteStore) CountActiveMembers(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM members WHERE is_active = 1").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active members: %w", err)
	}
	return count, nil
}

// listMembers returns every member in insertion order.
func listMembers(ctx context.Context, q querier) (models.Roster, error) {
	query := `
		SELECT id, name, phone, exemptions, sort_order, is_active, created_at
		FROM members
		ORDER BY seq
	`

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var roster models.Roster
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Phone,
			&m.Exemptions,
			&m.Order,
			&m.IsActive,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		roster = append(roster, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return roster, nil
}
