package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/sharemates/internal/models"
	"github.com/mmynk/sharemates/internal/storage"
)

// CreateParticipant inserts a new household member.
func (s *SQLiteStore) CreateParticipant(ctx context.Context, householdID string, p *models.Participant) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO participants (household_id, id, display_name, created_at)
		 VALUES (?, ?, ?, ?)`,
		householdID, p.ID, p.DisplayName, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// UpdateParticipant stores a participant's new display name.
func (s *SQLiteStore) UpdateParticipant(ctx context.Context, householdID string, p *models.Participant) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE participants SET display_name = ? WHERE household_id = ? AND id = ?",
		p.DisplayName, householdID, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("participant %s: %w", p.ID, storage.ErrNotFound)
	}
	return nil
}

// ListParticipants returns a household's members in registration order.
func (s *SQLiteStore) ListParticipants(ctx context.Context, householdID string) ([]*models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, display_name, created_at FROM participants
		 WHERE household_id = ? ORDER BY rowid`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		p := &models.Participant{}
		if err := rows.Scan(&p.ID, &p.DisplayName, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}
