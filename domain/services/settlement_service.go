package services

import (
	"fmt"
	"math"
	"sort"

	"birdiebook/domain/entities"
)

// zeroSumEpsilon is the float tolerance for the zero-sum invariant
const zeroSumEpsilon = 1e-9

// SideBetInput bundles the evaluated per-hole results a settlement run
// consumes. Building it from raw hole scores is EvaluateHoleScores' job.
type SideBetInput struct {
	Greenies  []entities.GreenieResult
	Sandies   []entities.SandyResult
	BBBPoints entities.BBBPoints
}

// DetailedSettlement is a settlement broken down by bet type, for
// display, alongside the merged total.
type DetailedSettlement struct {
	ByBet    map[entities.BetType]map[string]float64
	Combined map[string]float64
}

// Transfer is one directional payment produced by debt simplification
type Transfer struct {
	FromUserID string
	ToUserID   string
	Amount     float64
}

// SettlementService orchestrates the side-bet evaluators and merges
// their per-player net balances into one combined settlement. It is a
// pure function of its inputs: recomputing from the same results,
// configs, and roster always produces the same balances. It carries no
// knowledge of previously persisted settlements.
type SettlementService struct {
	greenies *GreenieService
	sandies  *SandyService
	bbb      *BBBService
}

// NewSettlementService creates a new SettlementService
func NewSettlementService() *SettlementService {
	return &SettlementService{
		greenies: NewGreenieService(),
		sandies:  NewSandyService(),
		bbb:      NewBBBService(),
	}
}

// CreateDefaultSideBetConfigs returns the stock config set used when a
// match has no side bets configured: everything disabled at zero stake.
func (s *SettlementService) CreateDefaultSideBetConfigs() map[entities.BetType]entities.SideBetConfig {
	configs := make(map[entities.BetType]entities.SideBetConfig, len(entities.SideBetTypes))
	for _, betType := range entities.SideBetTypes {
		configs[betType] = entities.SideBetConfig{Type: betType, Amount: 0, Enabled: false}
	}
	return configs
}

// HasSideBetsEnabled returns true if any side bet is enabled
func (s *SettlementService) HasSideBetsEnabled(configs map[entities.BetType]entities.SideBetConfig) bool {
	for _, config := range configs {
		if config.Enabled {
			return true
		}
	}
	return false
}

// GetEnabledSideBets returns the enabled bet types in stable order
func (s *SettlementService) GetEnabledSideBets(configs map[entities.BetType]entities.SideBetConfig) []entities.BetType {
	var enabled []entities.BetType
	for _, betType := range entities.SideBetTypes {
		if config, ok := configs[betType]; ok && config.Enabled {
			enabled = append(enabled, betType)
		}
	}
	return enabled
}

// EvaluateHoleScores derives greenie and sandy results from raw hole
// scoring data. Greenies come from proximity data on par-3 holes; sandies
// from bunker claims checked against the recorded score. Holes without
// the relevant data simply contribute nothing.
func (s *SettlementService) EvaluateHoleScores(holes []*entities.HoleScore) ([]entities.GreenieResult, []entities.SandyResult) {
	var greenies []entities.GreenieResult
	var sandies []entities.SandyResult

	for _, hole := range holes {
		if hole.IsParThree() {
			winner := s.greenies.DetermineGreenieWinner(hole.HoleNumber, hole.Par, hole.Proximities)
			greenies = append(greenies, entities.NewGreenieResult(hole.HoleNumber, winner))
		}
		for _, playerID := range sortedKeys(hole.SandyClaims) {
			score, scored := hole.Strokes[playerID]
			if !scored {
				continue
			}
			sandies = append(sandies, s.sandies.RecordSandy(hole.HoleNumber, playerID, hole.SandyClaims[playerID], hole.Par, score))
		}
	}

	return greenies, sandies
}

// GetDetailedSettlement runs every enabled side bet and returns the
// per-bet breakdown plus the merged per-player totals. Disabled bets are
// omitted from the breakdown but every roster member appears in the
// combined map, at zero if nothing touched them.
func (s *SettlementService) GetDetailedSettlement(input SideBetInput, configs map[entities.BetType]entities.SideBetConfig, roster []string) (*DetailedSettlement, error) {
	detailed := &DetailedSettlement{
		ByBet:    make(map[entities.BetType]map[string]float64),
		Combined: make(map[string]float64, len(roster)),
	}
	for _, id := range roster {
		detailed.Combined[id] = 0
	}

	for _, betType := range s.GetEnabledSideBets(configs) {
		var balances map[string]float64
		var err error

		switch betType {
		case entities.BetTypeGreenie:
			balances, err = s.greenies.SettleGreenies(input.Greenies, configs[betType], roster)
		case entities.BetTypeSandy:
			balances, err = s.sandies.SettleSandies(input.Sandies, configs[betType], roster)
		case entities.BetTypeBBB:
			balances, err = s.bbb.SettlePoints(input.BBBPoints, configs[betType], roster)
		default:
			return nil, fmt.Errorf("no evaluator for bet type %s", betType)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to settle %s: %w", betType, err)
		}

		detailed.ByBet[betType] = balances
		for id, amount := range balances {
			detailed.Combined[id] += amount
		}
	}

	return detailed, nil
}

// SettleAllSideBets runs every enabled side bet and returns only the
// merged per-player net balance map.
func (s *SettlementService) SettleAllSideBets(input SideBetInput, configs map[entities.BetType]entities.SideBetConfig, roster []string) (map[string]float64, error) {
	detailed, err := s.GetDetailedSettlement(input, configs, roster)
	if err != nil {
		return nil, err
	}
	return detailed.Combined, nil
}

// ValidateZeroSum asserts the balances sum to zero within epsilon. A
// violation is a logic bug in the engine, never a user error, and must
// not be swallowed: silently accepting a non-zero-sum settlement means a
// real money dispute.
func (s *SettlementService) ValidateZeroSum(balances map[string]float64) error {
	sum := 0.0
	for _, amount := range balances {
		sum += amount
	}
	if math.Abs(sum) > zeroSumEpsilon {
		return fmt.Errorf("settlement is not zero-sum: balances sum to %v", sum)
	}
	return nil
}

// SimplifyTransfers converts a zero-sum net balance map into a minimal
// set of directional payments, greedily matching the largest debtor with
// the largest creditor. Output order is deterministic: amounts and IDs
// are sorted, so identical inputs yield identical transfer lists.
func (s *SettlementService) SimplifyTransfers(balances map[string]float64) []Transfer {
	type stake struct {
		userID string
		amount float64
	}

	var debtors, creditors []stake
	for _, userID := range sortedKeys(balances) {
		amount := balances[userID]
		switch {
		case amount < -zeroSumEpsilon:
			debtors = append(debtors, stake{userID, -amount})
		case amount > zeroSumEpsilon:
			creditors = append(creditors, stake{userID, amount})
		}
	}

	byMagnitude := func(stakes []stake) func(i, j int) bool {
		return func(i, j int) bool {
			if stakes[i].amount != stakes[j].amount {
				return stakes[i].amount > stakes[j].amount
			}
			return stakes[i].userID < stakes[j].userID
		}
	}
	sort.SliceStable(debtors, byMagnitude(debtors))
	sort.SliceStable(creditors, byMagnitude(creditors))

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(debtors[i].amount, creditors[j].amount)
		transfers = append(transfers, Transfer{
			FromUserID: debtors[i].userID,
			ToUserID:   creditors[j].userID,
			Amount:     amount,
		})
		debtors[i].amount -= amount
		creditors[j].amount -= amount
		if debtors[i].amount <= zeroSumEpsilon {
			i++
		}
		if creditors[j].amount <= zeroSumEpsilon {
			j++
		}
	}

	return transfers
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
