package calculator

import (
	"errors"
	"fmt"
	"testing"
)

func TestEqualSplit(t *testing.T) {
	tests := []struct {
		name         string
		amount       int64
		participants []string
		want         map[string]int64
		wantErr      error
	}{
		{
			name:         "remainder goes to the first participant",
			amount:       1000,
			participants: []string{"A", "B", "C"},
			want:         map[string]int64{"A": 334, "B": 333, "C": 333},
		},
		{
			name:         "evenly divisible",
			amount:       6700,
			participants: []string{"1", "2", "3", "4"},
			want:         map[string]int64{"1": 1675, "2": 1675, "3": 1675, "4": 1675},
		},
		{
			name:         "single participant takes everything",
			amount:       999,
			participants: []string{"solo"},
			want:         map[string]int64{"solo": 999},
		},
		{
			name:         "amount smaller than the group",
			amount:       2,
			participants: []string{"A", "B", "C"},
			want:         map[string]int64{"A": 2, "B": 0, "C": 0},
		},
		{
			name:         "order decides who absorbs the remainder",
			amount:       1000,
			participants: []string{"C", "B", "A"},
			want:         map[string]int64{"A": 333, "B": 333, "C": 334},
		},
		{
			name:         "empty split set",
			amount:       1000,
			participants: nil,
			wantErr:      ErrEmptySplitSet,
		},
		{
			name:         "zero amount",
			amount:       0,
			participants: []string{"A"},
			wantErr:      ErrInvalidAmount,
		},
		{
			name:         "negative amount",
			amount:       -5,
			participants: []string{"A"},
			wantErr:      ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EqualSplit(tt.amount, tt.participants)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("EqualSplit() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("EqualSplit() returned %d shares, want %d", len(got), len(tt.want))
			}
			for p, want := range tt.want {
				if got[p] != want {
					t.Errorf("share[%s] = %d, want %d", p, got[p], want)
				}
			}
		})
	}
}

func TestEqualSplitSumsToAmount(t *testing.T) {
	for n := 1; n <= 13; n++ {
		participants := make([]string, n)
		for i := range participants {
			participants[i] = fmt.Sprintf("p%d", i)
		}
		for _, amount := range []int64{1, 2, 7, 99, 100, 1001, 10800, 3360, 11650, 1<<40 + 3} {
			shares, err := EqualSplit(amount, participants)
			if err != nil {
				t.Fatalf("EqualSplit(%d, n=%d) failed: %v", amount, n, err)
			}
			var sum int64
			for _, s := range shares {
				sum += s
			}
			if sum != amount {
				t.Errorf("EqualSplit(%d, n=%d) sums to %d", amount, n, sum)
			}
		}
	}
}

func TestShareOf(t *testing.T) {
	got, err := ShareOf(1000, []string{"A", "B", "C"}, "B")
	if err != nil {
		t.Fatalf("ShareOf failed: %v", err)
	}
	if got != 333 {
		t.Errorf("ShareOf(B) = %d, want 333", got)
	}

	got, err = ShareOf(1000, []string{"A", "B", "C"}, "D")
	if err != nil {
		t.Fatalf("ShareOf failed: %v", err)
	}
	if got != 0 {
		t.Errorf("ShareOf(outsider) = %d, want 0", got)
	}
}
