package services

import (
	"errors"
	"fmt"
	"sort"

	"birdiebook/domain/entities"
)

// pointsPerHole is the number of BBB points available on each hole,
// one per category.
const pointsPerHole = 3

// BBBService contains pure evaluation and settlement logic for
// bingo-bango-bongo: first on the green, closest once all are on, and
// first in the hole, each worth one point per hole.
type BBBService struct{}

// NewBBBService creates a new BBBService
func NewBBBService() *BBBService {
	return &BBBService{}
}

// CalculatePoints folds per-hole category winners into total points per
// player. A nil category winner (tie or unrecorded) awards nothing for
// that category on that hole.
func (s *BBBService) CalculatePoints(holes []*entities.BBBHoleResult) entities.BBBPoints {
	points := make(entities.BBBPoints)
	for _, hole := range holes {
		for _, category := range entities.BBBCategories {
			if winner := hole.CategoryWinner(category); winner != nil {
				points[*winner]++
			}
		}
	}
	return points
}

// SettlePoints converts accumulated points into a per-player net balance
// map. Each point differential between a pair of players is worth the
// configured amount, netted pairwise then aggregated per player:
//
//	balance[p] = amount * (n*points[p] - totalPoints)
//
// which is the closed form of summing amount*(points[p]-points[q]) over
// every opponent q. Zero-sum holds by construction. A disabled config or
// a single-player roster yields all-zero balances.
func (s *BBBService) SettlePoints(points entities.BBBPoints, config entities.SideBetConfig, roster []string) (map[string]float64, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid bbb config: %w", err)
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

	total := 0
	for playerID, pts := range points {
		if _, ok := balances[playerID]; !ok {
			return nil, fmt.Errorf("bbb point holder %s is not on the roster", playerID)
		}
		total += pts
	}

	n := float64(len(roster))
	for _, id := range roster {
		balances[id] = config.Amount * (n*float64(points[id]) - float64(total))
	}

	return balances, nil
}

// GetLeaders returns the players currently holding the most points,
// sorted by ID. More than one entry means the lead is shared. An empty
// points map returns nil.
func (s *BBBService) GetLeaders(points entities.BBBPoints) []string {
	best := -1
	var leaders []string
	for playerID, pts := range points {
		switch {
		case pts > best:
			best = pts
			leaders = []string{playerID}
		case pts == best:
			leaders = append(leaders, playerID)
		}
	}
	sort.Strings(leaders)
	return leaders
}

// GetRemainingPoints returns how many points are still up for grabs
func (s *BBBService) GetRemainingPoints(holesRemaining int) int {
	if holesRemaining < 0 {
		return 0
	}
	return holesRemaining * pointsPerHole
}

// GetMaxPossiblePoints returns the player's ceiling: current points plus
// every point still available.
func (s *BBBService) GetMaxPossiblePoints(points entities.BBBPoints, playerID string, holesRemaining int) int {
	return points[playerID] + s.GetRemainingPoints(holesRemaining)
}

// GetTotalPointsAwarded returns the sum of all points handed out so far
func (s *BBBService) GetTotalPointsAwarded(points entities.BBBPoints) int {
	total := 0
	for _, pts := range points {
		total += pts
	}
	return total
}

// CanStillWin returns true if the player's maximum possible total can
// meet or beat every other player's current total. Opponents may add
// points too, so this is the optimistic bound: once it goes false the
// player is mathematically out.
func (s *BBBService) CanStillWin(points entities.BBBPoints, playerID string, holesRemaining int) bool {
	ceiling := s.GetMaxPossiblePoints(points, playerID, holesRemaining)
	for otherID, pts := range points {
		if otherID == playerID {
			continue
		}
		if pts > ceiling {
			return false
		}
	}
	return true
}
