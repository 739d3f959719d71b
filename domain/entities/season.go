package entities

import (
	"errors"
	"time"
)

// SeasonPeriod is the aggregation window type for a season
type SeasonPeriod string

const (
	SeasonPeriodMonthly   SeasonPeriod = "monthly"
	SeasonPeriodQuarterly SeasonPeriod = "quarterly"
	SeasonPeriodYearly    SeasonPeriod = "yearly"
	SeasonPeriodCustom    SeasonPeriod = "custom"
)

// SeasonStatus represents the lifecycle state of a season
type SeasonStatus string

const (
	SeasonStatusUpcoming  SeasonStatus = "upcoming"
	SeasonStatusActive    SeasonStatus = "active"
	SeasonStatusCompleted SeasonStatus = "completed"
)

// Season is a date-bounded window over which ledger entries are folded
// into ranked standings. Standings derived from it are recomputed on
// demand and never independently authoritative.
type Season struct {
	ID        int64        `db:"id"`
	Name      string       `db:"name"`
	Period    SeasonPeriod `db:"period"`
	StartDate time.Time    `db:"start_date"`
	EndDate   time.Time    `db:"end_date"`
	Status    SeasonStatus `db:"status"`
	MemberIDs []string     `db:"member_ids"`
	CreatedAt time.Time    `db:"created_at"`
}

// Validate checks the season window is well-formed
func (s *Season) Validate() error {
	if s.Name == "" {
		return errors.New("season name cannot be empty")
	}
	if s.EndDate.Before(s.StartDate) {
		return errors.New("season end date cannot precede start date")
	}
	if len(s.MemberIDs) == 0 {
		return errors.New("season must have at least one member")
	}
	return nil
}

// Contains returns true if the timestamp falls inside the season window,
// inclusive on both ends.
func (s *Season) Contains(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}

// Trend indicates rank movement relative to prior standings
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// SeasonStanding is one participant's derived record within a season
type SeasonStanding struct {
	SeasonID  int64   `db:"season_id"`
	UserID    string  `db:"user_id"`
	Rank      int     `db:"rank"`
	NetAmount float64 `db:"net_amount"`
	Wins      int     `db:"wins"`
	Losses    int     `db:"losses"`
	Pushes    int     `db:"pushes"`
	Trend     Trend   `db:"trend"`
}

// SeasonDates is a computed season window with its display name
type SeasonDates struct {
	Start time.Time
	End   time.Time
	Name  string
}
