package entities

import (
	"errors"
	"fmt"
	"time"
)

// MatchState represents the lifecycle state of a match
type MatchState string

const (
	MatchStateSetup      MatchState = "setup"
	MatchStateInProgress MatchState = "in_progress"
	MatchStateCompleted  MatchState = "completed"
)

// Match is one round of golf among a roster of participants.
// Participants are opaque string IDs; the engine never resolves them.
type Match struct {
	ID         int64      `db:"id"`
	Name       string     `db:"name"`
	CourseName string     `db:"course_name"`
	Roster     []string   `db:"roster"`
	State      MatchState `db:"state"`
	PlayedAt   time.Time  `db:"played_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Validate checks the match is well-formed for settlement
func (m *Match) Validate() error {
	if len(m.Roster) == 0 {
		return errors.New("match roster cannot be empty")
	}
	seen := make(map[string]bool, len(m.Roster))
	for _, id := range m.Roster {
		if id == "" {
			return errors.New("roster contains an empty participant id")
		}
		if seen[id] {
			return fmt.Errorf("duplicate participant in roster: %s", id)
		}
		seen[id] = true
	}
	return nil
}

// HasPlayer returns true if the participant is on the roster
func (m *Match) HasPlayer(playerID string) bool {
	for _, id := range m.Roster {
		if id == playerID {
			return true
		}
	}
	return false
}

// IsCompleted returns true once scoring is finalized
func (m *Match) IsCompleted() bool {
	return m.State == MatchStateCompleted
}

// HoleScore is the raw scoring record for one hole of a match: per-player
// strokes plus the side-bet claims attached to that hole. Immutable once the
// hole is finalized; correction edits must re-trigger settlement.
type HoleScore struct {
	MatchID     int64              `db:"match_id"`
	HoleNumber  int                `db:"hole_number"`
	Par         int                `db:"par"`
	Strokes     map[string]int     `db:"strokes"`
	SandyClaims map[string]bool    `db:"sandy_claims"`
	Proximities map[string]float64 `db:"proximities"`
}

// Validate checks hole number and par are in range
func (h *HoleScore) Validate() error {
	if h.HoleNumber < 1 || h.HoleNumber > 18 {
		return fmt.Errorf("hole number must be between 1 and 18, got %d", h.HoleNumber)
	}
	if h.Par < 3 || h.Par > 5 {
		return fmt.Errorf("par must be 3, 4, or 5, got %d", h.Par)
	}
	for playerID, strokes := range h.Strokes {
		if strokes < 1 {
			return fmt.Errorf("strokes for %s must be at least 1, got %d", playerID, strokes)
		}
	}
	return nil
}

// IsParThree returns true if the hole is eligible for greenies
func (h *HoleScore) IsParThree() bool {
	return h.Par == 3
}
