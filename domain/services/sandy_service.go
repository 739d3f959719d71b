package services

import (
	"errors"
	"fmt"

	"birdiebook/domain/entities"
)

// SandyService contains pure evaluation and settlement logic for the
// sandy side bet: out of a bunker and par or better on the same hole.
type SandyService struct{}

// NewSandyService creates a new SandyService
func NewSandyService() *SandyService {
	return &SandyService{}
}

// ValidateSandy returns true if a claimed sandy actually succeeded. The
// claim alone is insufficient: scoring over par invalidates it.
func (s *SandyService) ValidateSandy(claimed bool, par, score int) bool {
	return claimed && score <= par
}

// RecordSandy builds the full sandy record for a hole. Success is derived
// from the claim and the score; unsuccessful attempts are returned too so
// callers can retain them for history.
func (s *SandyService) RecordSandy(holeNumber int, playerID string, claimed bool, par, score int) entities.SandyResult {
	return entities.SandyResult{
		HoleNumber:         holeNumber,
		PlayerID:           playerID,
		Success:            s.ValidateSandy(claimed, par, score),
		ScoreRelativeToPar: score - par,
	}
}

// CountSandies returns how many successful sandies the player has made
func (s *SandyService) CountSandies(results []entities.SandyResult, playerID string) int {
	count := 0
	for _, r := range results {
		if r.Success && r.PlayerID == playerID {
			count++
		}
	}
	return count
}

// GetHoleSandies returns all sandy records for one hole
func (s *SandyService) GetHoleSandies(results []entities.SandyResult, holeNumber int) []entities.SandyResult {
	var filtered []entities.SandyResult
	for _, r := range results {
		if r.HoleNumber == holeNumber {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// GetSuccessfulSandies returns only the sandies that count for settlement
func (s *SandyService) GetSuccessfulSandies(results []entities.SandyResult) []entities.SandyResult {
	var successful []entities.SandyResult
	for _, r := range results {
		if r.Success {
			successful = append(successful, r)
		}
	}
	return successful
}

// HoleSandyMade returns true if anyone made a successful sandy on the hole
func (s *SandyService) HoleSandyMade(results []entities.SandyResult, holeNumber int) bool {
	for _, r := range results {
		if r.HoleNumber == holeNumber && r.Success {
			return true
		}
	}
	return false
}

// SettleSandies converts sandy results into a per-player net balance map
// across the full roster. Only successful sandies count; each one pays the
// claimant the configured amount from every other roster member. A
// disabled config or a single-player roster yields all-zero balances.
// The returned balances sum to zero.
func (s *SandyService) SettleSandies(results []entities.SandyResult, config entities.SideBetConfig, roster []string) (map[string]float64, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sandy config: %w", err)
	}
	if len(roster) == 0 {
		return nil, errors.New("roster cannot be empty")
	}

	balances := make(map[string]float64, len(roster))
	for _, id := range roster {
		balances[id] = 0
	}

	if !config.Enabled || len(roster) < 2 {
		return balances, nil
	}

	for _, r := range results {
		if !r.Success {
			continue
		}
		if _, ok := balances[r.PlayerID]; !ok {
			return nil, fmt.Errorf("sandy claimant %s is not on the roster", r.PlayerID)
		}
		balances[r.PlayerID] += config.Amount * float64(len(roster)-1)
		for _, id := range roster {
			if id != r.PlayerID {
				balances[id] -= config.Amount
			}
		}
	}

	return balances, nil
}
