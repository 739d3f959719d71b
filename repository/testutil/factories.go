package testutil

import (
	"time"

	"birdiebook/domain/entities"
)

// NewTestMatch builds a valid in-progress match for the given roster
func NewTestMatch(roster ...string) *entities.Match {
	if len(roster) == 0 {
		roster = []string{"alice", "bob"}
	}
	return &entities.Match{
		Name:       "Saturday Skins Game",
		CourseName: "Pebble Creek",
		Roster:     roster,
		State:      entities.MatchStateInProgress,
		PlayedAt:   time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC),
	}
}

// NewTestHoleScore builds a par-4 hole score with the given strokes
func NewTestHoleScore(matchID int64, holeNumber int, strokes map[string]int) *entities.HoleScore {
	return &entities.HoleScore{
		MatchID:     matchID,
		HoleNumber:  holeNumber,
		Par:         4,
		Strokes:     strokes,
		SandyClaims: map[string]bool{},
		Proximities: map[string]float64{},
	}
}

// NewTestLedgerEntry builds a valid unsettled ledger entry
func NewTestLedgerEntry(matchID int64, from, to string, amount float64) *entities.LedgerEntry {
	return &entities.LedgerEntry{
		MatchID:    matchID,
		FromUserID: from,
		ToUserID:   to,
		Amount:     amount,
		BetType:    entities.BetTypeGreenie,
		Settled:    false,
		CreatedAt:  time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC),
	}
}

// NewTestSeason builds an active monthly season covering June 2024
func NewTestSeason(memberIDs ...string) *entities.Season {
	if len(memberIDs) == 0 {
		memberIDs = []string{"alice", "bob"}
	}
	return &entities.Season{
		Name:      "June 2024",
		Period:    entities.SeasonPeriodMonthly,
		StartDate: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.June, 30, 23, 59, 59, 0, time.UTC),
		Status:    entities.SeasonStatusActive,
		MemberIDs: memberIDs,
	}
}
