package interfaces

import (
	"context"
	"time"

	"birdiebook/domain/entities"
)

// MatchRepository defines data access for matches and their hole scoring
type MatchRepository interface {
	// Create persists a new match and assigns its ID
	Create(ctx context.Context, match *entities.Match) error

	// GetByID retrieves a match, or nil if it doesn't exist
	GetByID(ctx context.Context, id int64) (*entities.Match, error)

	// UpdateState transitions the match lifecycle state
	UpdateState(ctx context.Context, id int64, state entities.MatchState) error

	// UpsertHoleScore records or corrects the scoring for one hole
	UpsertHoleScore(ctx context.Context, score *entities.HoleScore) error

	// GetHoleScores returns all recorded holes for a match, ordered by hole number
	GetHoleScores(ctx context.Context, matchID int64) ([]*entities.HoleScore, error)

	// UpsertBBBResult records or corrects the BBB category winners for one hole
	UpsertBBBResult(ctx context.Context, matchID int64, result *entities.BBBHoleResult) error

	// GetBBBResults returns all BBB hole results for a match, ordered by hole number
	GetBBBResults(ctx context.Context, matchID int64) ([]*entities.BBBHoleResult, error)

	// SetSideBetConfigs replaces the match's side-bet configuration
	SetSideBetConfigs(ctx context.Context, matchID int64, configs map[entities.BetType]entities.SideBetConfig) error

	// GetSideBetConfigs returns the match's side-bet configuration, empty if none set
	GetSideBetConfigs(ctx context.Context, matchID int64) (map[entities.BetType]entities.SideBetConfig, error)
}

// LedgerRepository defines data access for directional debt records
type LedgerRepository interface {
	// CreateBatch persists a set of ledger entries
	CreateBatch(ctx context.Context, entries []*entities.LedgerEntry) error

	// GetByMatch returns all entries generated by one match
	GetByMatch(ctx context.Context, matchID int64) ([]*entities.LedgerEntry, error)

	// GetByUser returns the most recent entries involving a user
	GetByUser(ctx context.Context, userID string, limit int) ([]*entities.LedgerEntry, error)

	// GetUnsettledByUser returns the user's open entries
	GetUnsettledByUser(ctx context.Context, userID string) ([]*entities.LedgerEntry, error)

	// GetByDateRange returns entries created within [from, to]
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*entities.LedgerEntry, error)

	// DeleteUnsettledByMatch removes a match's open entries prior to re-settlement
	DeleteUnsettledByMatch(ctx context.Context, matchID int64) error

	// MarkSettled flips one entry to settled
	MarkSettled(ctx context.Context, id int64, settledAt time.Time) error
}

// SeasonRepository defines data access for seasons and derived standings
type SeasonRepository interface {
	// Create persists a new season and assigns its ID
	Create(ctx context.Context, season *entities.Season) error

	// GetByID retrieves a season, or nil if it doesn't exist
	GetByID(ctx context.Context, id int64) (*entities.Season, error)

	// GetActive returns seasons marked active whose window contains now
	GetActive(ctx context.Context, now time.Time) ([]*entities.Season, error)

	// GetStandings returns the season's current standings ordered by rank
	GetStandings(ctx context.Context, seasonID int64) ([]*entities.SeasonStanding, error)

	// ReplaceStandings atomically swaps the season's standings table
	ReplaceStandings(ctx context.Context, seasonID int64, standings []*entities.SeasonStanding) error
}

// UnitOfWork bundles the repositories behind one database transaction so
// settlement can replace ledger entries atomically.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	MatchRepository() MatchRepository
	LedgerRepository() LedgerRepository
	SeasonRepository() SeasonRepository
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
