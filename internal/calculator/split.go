package calculator

import "errors"

var (
	// ErrEmptySplitSet is returned when there is nobody to split an amount among.
	ErrEmptySplitSet = errors.New("split set is empty")
	// ErrInvalidAmount is returned for amounts that are not positive or exceed MaxAmount.
	ErrInvalidAmount = errors.New("amount must be a positive number of minor units")
)

// MaxAmount is the largest single amount in minor units. It is the largest
// integer a float64 (and so a JSON number) holds exactly, and leaves room to
// sum over a thousand maximal expenses without overflowing int64.
const MaxAmount int64 = 1<<53 - 1

// EqualSplit divides amount (in minor units) equally among participants.
//
// Every participant receives floor(amount / n). The first participant also
// absorbs the remainder, so the shares always sum to exactly amount:
//
//	EqualSplit(1000, [A B C]) = {A: 334, B: 333, C: 333}
//
// A participant listed twice receives both shares; the sum is unaffected.
func EqualSplit(amount int64, participants []string) (map[string]int64, error) {
	if len(participants) == 0 {
		return nil, ErrEmptySplitSet
	}
	if amount <= 0 || amount > MaxAmount {
		return nil, ErrInvalidAmount
	}

	n := int64(len(participants))
	base := amount / n
	shares := make(map[string]int64, len(participants))
	for _, p := range participants {
		shares[p] += base
	}
	shares[participants[0]] += amount - base*n

	return shares, nil
}

// ShareOf returns one participant's share of an equal split, or 0 when they
// are not part of it.
func ShareOf(amount int64, participants []string, participant string) (int64, error) {
	shares, err := EqualSplit(amount, participants)
	if err != nil {
		return 0, err
	}
	return shares[participant], nil
}
