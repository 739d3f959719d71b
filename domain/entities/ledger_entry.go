package entities

import (
	"errors"
	"time"
)

// LedgerEntry is one directional monetary obligation between two
// participants: FromUserID owes ToUserID Amount. Multiple entries may
// exist between the same pair across bet types within one match; they are
// aggregated at read time, never merged at creation. Entries are mutated
// only to flip Settled.
type LedgerEntry struct {
	ID         int64      `db:"id"`
	MatchID    int64      `db:"match_id"`
	FromUserID string     `db:"from_user_id"`
	ToUserID   string     `db:"to_user_id"`
	Amount     float64    `db:"amount"`
	BetType    BetType    `db:"bet_type"`
	Settled    bool       `db:"settled"`
	SettledAt  *time.Time `db:"settled_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Validate performs basic validation on the entry
func (e *LedgerEntry) Validate() error {
	if e.FromUserID == "" || e.ToUserID == "" {
		return errors.New("ledger entry requires both participants")
	}
	if e.FromUserID == e.ToUserID {
		return errors.New("ledger entry cannot be self-directed")
	}
	if e.Amount <= 0 {
		return errors.New("ledger entry amount must be positive")
	}
	return nil
}

// Involves returns true if the user is either party of the entry
func (e *LedgerEntry) Involves(userID string) bool {
	return e.FromUserID == userID || e.ToUserID == userID
}

// SignedAmountFor returns the entry's contribution to a user's net
// balance: positive for the creditor, negative for the debtor, zero for
// everyone else.
func (e *LedgerEntry) SignedAmountFor(userID string) float64 {
	switch userID {
	case e.ToUserID:
		return e.Amount
	case e.FromUserID:
		return -e.Amount
	}
	return 0
}

// MarkSettled flips the entry to settled at the given time
func (e *LedgerEntry) MarkSettled(at time.Time) {
	e.Settled = true
	e.SettledAt = &at
}
