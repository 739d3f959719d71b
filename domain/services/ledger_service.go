package services

import (
	"math"
	"sort"

	"birdiebook/domain/entities"
)

// UserBalance pairs a participant with a signed net amount
type UserBalance struct {
	UserID string
	Amount float64
}

// PairwiseBalance is the net amount between exactly two participants in
// canonical order (UserA sorts before UserB). Positive means UserA owes
// UserB.
type PairwiseBalance struct {
	UserA  string
	UserB  string
	Amount float64
}

// LedgerService reduces directional ledger entries into net balances,
// debtor/creditor partitions, and pairwise nets. Every function is pure
// and total: empty input yields zero values, and no function depends on
// entry ordering for correctness.
type LedgerService struct{}

// NewLedgerService creates a new LedgerService
func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// CalculateUserBalance returns the signed sum of the user's entries:
// credits positive, debits negative.
func (s *LedgerService) CalculateUserBalance(userID string, entries []*entities.LedgerEntry) float64 {
	balance := 0.0
	for _, e := range entries {
		balance += e.SignedAmountFor(userID)
	}
	return balance
}

// CalculateMatchBalances builds a complete balance map over every party
// appearing in any entry, initializing each to zero before folding.
func (s *LedgerService) CalculateMatchBalances(entries []*entities.LedgerEntry) map[string]float64 {
	balances := make(map[string]float64)
	for _, e := range entries {
		balances[e.FromUserID] -= e.Amount
		balances[e.ToUserID] += e.Amount
	}
	return balances
}

// CalculateUnsettledBalances is CalculateMatchBalances restricted to
// entries that have not been settled.
func (s *LedgerService) CalculateUnsettledBalances(entries []*entities.LedgerEntry) map[string]float64 {
	unsettled := make([]*entities.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Settled {
			unsettled = append(unsettled, e)
		}
	}
	return s.CalculateMatchBalances(unsettled)
}

// GetDebtors returns the users with negative balances, sorted by how
// much they owe, largest first. Ties sort by user ID for determinism.
func (s *LedgerService) GetDebtors(balances map[string]float64) []UserBalance {
	return partitionBalances(balances, func(amount float64) bool { return amount < 0 })
}

// GetCreditors returns the users with positive balances, sorted by how
// much they are owed, largest first.
func (s *LedgerService) GetCreditors(balances map[string]float64) []UserBalance {
	return partitionBalances(balances, func(amount float64) bool { return amount > 0 })
}

// CalculatePairwiseBalance returns the net amount between two users.
// Positive means userA owes userB.
func (s *LedgerService) CalculatePairwiseBalance(userA, userB string, entries []*entities.LedgerEntry) float64 {
	net := 0.0
	for _, e := range entries {
		switch {
		case e.FromUserID == userA && e.ToUserID == userB:
			net += e.Amount
		case e.FromUserID == userB && e.ToUserID == userA:
			net -= e.Amount
		}
	}
	return net
}

// GetPairwiseBalances computes all unique unsettled pairwise nets. Each
// pair appears once in canonical order (smaller ID first) so the same
// pair is never double-counted, and exactly-zero pairs are excluded.
// Output is sorted by pair for deterministic display.
func (s *LedgerService) GetPairwiseBalances(entries []*entities.LedgerEntry) []PairwiseBalance {
	nets := make(map[[2]string]float64)
	for _, e := range entries {
		if e.Settled {
			continue
		}
		a, b := e.FromUserID, e.ToUserID
		signed := e.Amount
		if b < a {
			a, b = b, a
			signed = -signed
		}
		nets[[2]string{a, b}] += signed
	}

	var balances []PairwiseBalance
	for pair, amount := range nets {
		if amount == 0 {
			continue
		}
		balances = append(balances, PairwiseBalance{UserA: pair[0], UserB: pair[1], Amount: amount})
	}
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].UserA != balances[j].UserA {
			return balances[i].UserA < balances[j].UserA
		}
		return balances[i].UserB < balances[j].UserB
	})
	return balances
}

// UserHasUnsettledDebts returns true if the user's unsettled net is negative
func (s *LedgerService) UserHasUnsettledDebts(userID string, entries []*entities.LedgerEntry) bool {
	balance := 0.0
	for _, e := range entries {
		if !e.Settled {
			balance += e.SignedAmountFor(userID)
		}
	}
	return balance < 0
}

func partitionBalances(balances map[string]float64, keep func(float64) bool) []UserBalance {
	var subset []UserBalance
	for userID, amount := range balances {
		if keep(amount) {
			subset = append(subset, UserBalance{UserID: userID, Amount: amount})
		}
	}
	sort.Slice(subset, func(i, j int) bool {
		if math.Abs(subset[i].Amount) != math.Abs(subset[j].Amount) {
			return math.Abs(subset[i].Amount) > math.Abs(subset[j].Amount)
		}
		return subset[i].UserID < subset[j].UserID
	})
	return subset
}
