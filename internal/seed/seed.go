// Package seed loads households, participants and expenses from a YAML file
// into storage at startup.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mmynk/sharemates/internal/ledger"
	"github.com/mmynk/sharemates/internal/models"
	"github.com/mmynk/sharemates/internal/money"
	"github.com/mmynk/sharemates/internal/storage"
)

// File is the top-level seed document.
type File struct {
	Households []Household `yaml:"households"`
}

// Household describes one household and its ledger contents.
type Household struct {
	ID           string        `yaml:"id"`
	Name         string        `yaml:"name"`
	Participants []Participant `yaml:"participants"`
	Expenses     []Expense     `yaml:"expenses"`
}

// Participant is a household member. The display name defaults to the id.
type Participant struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// UnmarshalYAML accepts both the short and the long form.
// Short form: - alice
// Long form:  - {id: alice, name: Alice}
func (p *Participant) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		p.ID = value.Value
		p.Name = value.Value
		return nil
	}

	type rawParticipant Participant
	var raw rawParticipant
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*p = Participant(raw)
	if p.Name == "" {
		p.Name = p.ID
	}
	return nil
}

// Expense is an expense as a user would write it: a decimal amount and
// optional settlement state.
type Expense struct {
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Amount        string   `yaml:"amount"`
	PaidBy        string   `yaml:"paid_by"`
	SplitAmong    []string `yaml:"split_among"`
	Category      string   `yaml:"category"`
	SettledShares []string `yaml:"settled_shares"`
	Settled       bool     `yaml:"settled"`
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	for i, h := range f.Households {
		if h.ID == "" || h.Name == "" {
			return nil, fmt.Errorf("household %d: id and name are required", i)
		}
	}
	return &f, nil
}

// Apply writes every household in f that does not exist yet and returns how
// many were created. Existing households are left untouched.
func Apply(ctx context.Context, store storage.Store, f *File) (int, error) {
	created := 0
	for _, h := range f.Households {
		_, err := store.GetHousehold(ctx, h.ID)
		if err == nil {
			slog.Debug("Seed household exists, skipping", "household_id", h.ID)
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return created, err
		}

		if err := applyHousehold(ctx, store, h); err != nil {
			return created, fmt.Errorf("seed household %s: %w", h.ID, err)
		}
		created++
		slog.Info("Seeded household",
			"household_id", h.ID,
			"participants", len(h.Participants),
			"expenses", len(h.Expenses),
		)
	}
	return created, nil
}

// applyHousehold replays h on an in-memory ledger first, so an invalid
// participant or expense fails before anything is written.
func applyHousehold(ctx context.Context, store storage.Store, h Household) error {
	if err := replay(ctx, ledger.New(h.ID), h); err != nil {
		return err
	}

	if err := store.CreateHousehold(ctx, &models.Household{ID: h.ID, Name: h.Name}); err != nil {
		return err
	}
	return replay(ctx, ledger.New(h.ID, ledger.WithStore(store)), h)
}

func replay(ctx context.Context, l *ledger.Ledger, h Household) error {
	for _, p := range h.Participants {
		if _, err := l.Participants().Register(ctx, p.ID, p.Name); err != nil {
			return err
		}
	}

	for _, e := range h.Expenses {
		amount, err := money.ParseMinorUnits(e.Amount)
		if err != nil {
			return fmt.Errorf("expense %q: %w", e.Title, err)
		}
		category, err := models.ParseCategory(e.Category)
		if err != nil {
			return fmt.Errorf("expense %q: %w", e.Title, err)
		}

		added, err := l.AddExpense(ctx, ledger.NewExpense{
			Title:       e.Title,
			Description: e.Description,
			Amount:      amount,
			PaidBy:      e.PaidBy,
			SplitAmong:  e.SplitAmong,
			Category:    category,
		})
		if err != nil {
			return fmt.Errorf("expense %q: %w", e.Title, err)
		}

		for _, p := range e.SettledShares {
			if added, err = l.SettleShare(ctx, added.ID, p); err != nil {
				return fmt.Errorf("expense %q: %w", e.Title, err)
			}
		}
		if e.Settled && added.Status != models.StatusSettled {
			if _, err := l.Settle(ctx, added.ID); err != nil {
				return fmt.Errorf("expense %q: %w", e.Title, err)
			}
		}
	}
	return nil
}
