package services

import (
	"errors"
	"fmt"

	"birdiebook/domain/entities"
)

// GreenieService contains pure evaluation and settlement logic for the
// greenie side bet: closest to the pin on a par-3 hole.
type GreenieService struct{}

// NewGreenieService creates a new GreenieService
func NewGreenieService() *GreenieService {
	return &GreenieService{}
}

// IsGreenieEligible returns true if the hole can produce a greenie.
// Only par-3 holes are eligible.
func (s *GreenieService) IsGreenieEligible(par int) bool {
	return par == 3
}

// DetermineGreenieWinner picks the player with the strictly smallest
// proximity to the pin. Players who missed the green are absent from the
// map or recorded with a negative distance. Returns nil when the hole is
// not a par 3, when no proximity data exists, when everyone missed, or
// when the minimum distance is shared. Ties are never broken by order.
func (s *GreenieService) DetermineGreenieWinner(holeNumber, par int, proximities map[string]float64) *string {
	if !s.IsGreenieEligible(par) {
		return nil
	}

	var winnerID string
	var best float64
	found := false
	tied := false

	for playerID, distance := range proximities {
		if distance < 0 {
			// Missed the green
			continue
		}
		switch {
		case !found || distance < best:
			winnerID = playerID
			best = distance
			found = true
			tied = false
		case distance == best:
			tied = true
		}
	}

	if !found || tied {
		return nil
	}
	return &winnerID
}

// GetPar3Holes returns the 1-indexed hole numbers with par 3, in order
func (s *GreenieService) GetPar3Holes(pars []int) []int {
	var holes []int
	for i, par := range pars {
		if par == 3 {
			holes = append(holes, i+1)
		}
	}
	return holes
}

// CountGreenies returns how many greenies the player has won
func (s *GreenieService) CountGreenies(results []entities.GreenieResult, playerID string) int {
	count := 0
	for _, r := range results {
		if r.WinnerID != nil && *r.WinnerID == playerID {
			count++
		}
	}
	return count
}

// SettleGreenies converts greenie results into a per-player net balance
// map across the full roster. Each greenie pays the winner the configured
// amount from every other roster member, so a single win on a roster of n
// credits the winner amount*(n-1). A disabled config or a single-player
// roster yields all-zero balances. The returned balances sum to zero.
func (s *GreenieService) SettleGreenies(results []entities.GreenieResult, config entities.SideBetConfig, roster []string) (map[string]float64, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid greenie config: %w", err)
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
		if r.WinnerID == nil {
			continue
		}
		winner := *r.WinnerID
		if _, ok := balances[winner]; !ok {
			return nil, fmt.Errorf("greenie winner %s is not on the roster", winner)
		}
		balances[winner] += config.Amount * float64(len(roster)-1)
		for _, id := range roster {
			if id != winner {
				balances[id] -= config.Amount
			}
		}
	}

	return balances, nil
}
