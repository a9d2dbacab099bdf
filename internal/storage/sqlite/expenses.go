package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mmynk/sharemates/internal/models"
	"github.com/mmynk/sharemates/internal/storage"
)

// CreateExpense persists a new expense with its split members.
func (s *SQLiteStore) CreateExpense(ctx context.Context, householdID string, e *models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var description any
	if e.Description != "" {
		description = e.Description
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, household_id, title, description, amount, paid_by, category, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, householdID, e.Title, description, e.Amount, e.PaidBy,
		e.Category.String(), e.Status.String(), e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, member := range e.SplitAmong {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_members (expense_id, participant_id, position) VALUES (?, ?, ?)",
			e.ID, member, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense member: %w", err)
		}
	}

	if err := insertRepaid(ctx, tx, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateExpense stores an expense's settlement state. Amount, payer and
// split members are immutable and are not rewritten.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, householdID string, e *models.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE expenses SET status = ? WHERE id = ? AND household_id = ?",
		e.Status.String(), e.ID, householdID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", e.ID, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_repaid_shares WHERE expense_id = ?", e.ID); err != nil {
		return fmt.Errorf("failed to clear repaid shares: %w", err)
	}
	if err := insertRepaid(ctx, tx, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListExpenses returns a household's expenses in the order they were recorded.
func (s *SQLiteStore) ListExpenses(ctx context.Context, householdID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, description, amount, paid_by, category, status, created_at
		 FROM expenses WHERE household_id = ? ORDER BY created_at, rowid`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		e := &models.Expense{}
		var description sql.NullString
		var category, status string
		if err := rows.Scan(&e.ID, &e.Title, &description, &e.Amount, &e.PaidBy,
			&category, &status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if description.Valid {
			e.Description = description.String
		}
		if e.Category, err = models.ParseCategory(category); err != nil {
			return nil, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		if e.Status, err = models.ParseStatus(status); err != nil {
			return nil, fmt.Errorf("expense %s: %w", e.ID, err)
		}
		expenses = append(expenses, e)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	err = s.collect(ctx, byID,
		`SELECT m.expense_id, m.participant_id FROM expense_members m
		 JOIN expenses e ON e.id = m.expense_id
		 WHERE e.household_id = ? ORDER BY m.expense_id, m.position`,
		householdID,
		func(e *models.Expense, participant string) { e.SplitAmong = append(e.SplitAmong, participant) },
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense members: %w", err)
	}

	err = s.collect(ctx, byID,
		`SELECT r.expense_id, r.participant_id FROM expense_repaid_shares r
		 JOIN expenses e ON e.id = r.expense_id
		 WHERE e.household_id = ? ORDER BY r.expense_id, r.rowid`,
		householdID,
		func(e *models.Expense, participant string) { e.SettledShares = append(e.SettledShares, participant) },
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load repaid shares: %w", err)
	}

	return expenses, nil
}

// collect runs a (expense_id, participant_id) query and hands each row to add.
func (s *SQLiteStore) collect(ctx context.Context, byID map[string]*models.Expense, query, householdID string, add func(*models.Expense, string)) error {
	rows, err := s.db.QueryContext(ctx, query, householdID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID, participant string
		if err := rows.Scan(&expenseID, &participant); err != nil {
			return err
		}
		if e, ok := byID[expenseID]; ok {
			add(e, participant)
		}
	}
	return rows.Err()
}

func insertRepaid(ctx context.Context, tx *sql.Tx, e *models.Expense) error {
	for _, participant := range e.SettledShares {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_repaid_shares (expense_id, participant_id) VALUES (?, ?)",
			e.ID, participant,
		)
		if err != nil {
			return fmt.Errorf("failed to insert repaid share: %w", err)
		}
	}
	return nil
}
