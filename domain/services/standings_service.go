package services

import (
	"sort"

	"birdiebook/domain/entities"
)

// StandingsService folds ledger entries into ranked season standings.
// Date-bounding the entries to the season window is the caller's job;
// this service only filters by membership and derives the records.
type StandingsService struct {
	ledger *LedgerService
}

// NewStandingsService creates a new StandingsService
func NewStandingsService() *StandingsService {
	return &StandingsService{ledger: NewLedgerService()}
}

// CalculateStandingsFromLedger derives the full standings table for a
// season. Entries where either party is outside the membership are
// dropped. Win/loss/push counts come from the sign of each pairwise net
// the member actually has entries against: positive net in their favor
// is a win, negative a loss, exactly zero a push. Members rank by net
// amount descending; ties break by wins descending, then user ID
// ascending, so the ordering is deterministic. Trend compares each
// member's new rank against priorStandings.
func (s *StandingsService) CalculateStandingsFromLedger(seasonID int64, entries []*entities.LedgerEntry, memberIDs []string, priorStandings []*entities.SeasonStanding) []*entities.SeasonStanding {
	members := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = true
	}

	var scoped []*entities.LedgerEntry
	for _, e := range entries {
		if members[e.FromUserID] && members[e.ToUserID] {
			scoped = append(scoped, e)
		}
	}

	standings := make([]*entities.SeasonStanding, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		standing := &entities.SeasonStanding{
			SeasonID:  seasonID,
			UserID:    memberID,
			NetAmount: s.ledger.CalculateUserBalance(memberID, scoped),
			Trend:     entities.TrendNeutral,
		}

		for _, opponentID := range opponentsOf(memberID, scoped) {
			// Pairwise sign convention: positive means member owes opponent
			net := s.ledger.CalculatePairwiseBalance(memberID, opponentID, scoped)
			switch {
			case net < 0:
				standing.Wins++
			case net > 0:
				standing.Losses++
			default:
				standing.Pushes++
			}
		}

		standings = append(standings, standing)
	}

	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.NetAmount != b.NetAmount {
			return a.NetAmount > b.NetAmount
		}
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.UserID < b.UserID
	})

	priorRanks := make(map[string]int, len(priorStandings))
	for _, prior := range priorStandings {
		priorRanks[prior.UserID] = prior.Rank
	}

	for i, standing := range standings {
		standing.Rank = i + 1
		if priorRank, ok := priorRanks[standing.UserID]; ok {
			switch {
			case standing.Rank < priorRank:
				standing.Trend = entities.TrendUp
			case standing.Rank > priorRank:
				standing.Trend = entities.TrendDown
			}
		}
	}

	return standings
}

// opponentsOf returns the sorted set of counterparties the member has
// ledger entries against.
func opponentsOf(memberID string, entries []*entities.LedgerEntry) []string {
	seen := make(map[string]bool)
	for _, e := range entries {
		switch memberID {
		case e.FromUserID:
			seen[e.ToUserID] = true
		case e.ToUserID:
			seen[e.FromUserID] = true
		}
	}
	return sortedKeys(seen)
}
