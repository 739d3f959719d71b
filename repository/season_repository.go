package repository

import (
	"context"
	"fmt"
	"time"

	"birdiebook/database"
	"birdiebook/domain/entities"
	"birdiebook/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type seasonRepository struct {
	q Queryable
}

// NewSeasonRepository creates a season repository on the connection pool
func NewSeasonRepository(db *database.DB) interfaces.SeasonRepository {
	return &seasonRepository{q: db.Pool}
}

// newSeasonRepositoryWithTx creates a season repository bound to a transaction
func newSeasonRepositoryWithTx(tx Queryable) interfaces.SeasonRepository {
	return &seasonRepository{q: tx}
}

func (r *seasonRepository) Create(ctx context.Context, season *entities.Season) error {
	if err := season.Validate(); err != nil {
		return fmt.Errorf("invalid season: %w", err)
	}
	if season.Status == "" {
		season.Status = entities.SeasonStatusActive
	}

	query := `
		INSERT INTO seasons (name, period, start_date, end_date, status, member_ids)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		season.Name,
		season.Period,
		season.StartDate,
		season.EndDate,
		season.Status,
		season.MemberIDs,
	).Scan(&season.ID, &season.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create season: %w", err)
	}
	return nil
}

func (r *seasonRepository) GetByID(ctx context.Context, id int64) (*entities.Season, error) {
	query := `
		SELECT id, name, period, start_date, end_date, status, member_ids, created_at
		FROM seasons
		WHERE id = $1`

	var season entities.Season
	err := r.q.QueryRow(ctx, query, id).Scan(
		&season.ID,
		&season.Name,
		&season.Period,
		&season.StartDate,
		&season.EndDate,
		&season.Status,
		&season.MemberIDs,
		&season.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	return &season, nil
}

func (r *seasonRepository) GetActive(ctx context.Context, now time.Time) ([]*entities.Season, error) {
	query := `
		SELECT id, name, period, start_date, end_date, status, member_ids, created_at
		FROM seasons
		WHERE status = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY start_date`

	rows, err := r.q.Query(ctx, query, entities.SeasonStatusActive, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query active seasons: %w", err)
	}
	defer rows.Close()

	var seasons []*entities.Season
	for rows.Next() {
		var season entities.Season
		err := rows.Scan(
			&season.ID,
			&season.Name,
			&season.Period,
			&season.StartDate,
			&season.EndDate,
			&season.Status,
			&season.MemberIDs,
			&season.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan season: %w", err)
		}
		seasons = append(seasons, &season)
	}
	return seasons, rows.Err()
}

func (r *seasonRepository) GetStandings(ctx context.Context, seasonID int64) ([]*entities.SeasonStanding, error) {
	query := `
		SELECT season_id, user_id, rank, net_amount, wins, losses, pushes, trend
		FROM season_standings
		WHERE season_id = $1
		ORDER BY rank`

	rows, err := r.q.Query(ctx, query, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to query standings: %w", err)
	}
	defer rows.Close()

	var standings []*entities.SeasonStanding
	for rows.Next() {
		var standing entities.SeasonStanding
		err := rows.Scan(
			&standing.SeasonID,
			&standing.UserID,
			&standing.Rank,
			&standing.NetAmount,
			&standing.Wins,
			&standing.Losses,
			&standing.Pushes,
			&standing.Trend,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		standings = append(standings, &standing)
	}
	return standings, rows.Err()
}

func (r *seasonRepository) ReplaceStandings(ctx context.Context, seasonID int64, standings []*entities.SeasonStanding) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM season_standings WHERE season_id = $1`, seasonID); err != nil {
		return fmt.Errorf("failed to clear standings: %w", err)
	}

	query := `
		INSERT INTO season_standings (season_id, user_id, rank, net_amount, wins, losses, pushes, trend)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, standing := range standings {
		_, err := r.q.Exec(ctx, query,
			seasonID,
			standing.UserID,
			standing.Rank,
			standing.NetAmount,
			standing.Wins,
			standing.Losses,
			standing.Pushes,
			standing.Trend,
		)
		if err != nil {
			return fmt.Errorf("failed to insert standing: %w", err)
		}
	}
	return nil
}
