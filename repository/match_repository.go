package repository

import (
	"context"
	"fmt"

	"birdiebook/database"
	"birdiebook/domain/entities"
	"birdiebook/domain/interfaces"

	"github.com/jackc/pgx/v5"
)

type matchRepository struct {
	q Queryable
}

// NewMatchRepository creates a match repository on the connection pool
func NewMatchRepository(db *database.DB) interfaces.MatchRepository {
	return &matchRepository{q: db.Pool}
}

// newMatchRepositoryWithTx creates a match repository bound to a transaction
func newMatchRepositoryWithTx(tx Queryable) interfaces.MatchRepository {
	return &matchRepository{q: tx}
}

func (r *matchRepository) Create(ctx context.Context, match *entities.Match) error {
	if err := match.Validate(); err != nil {
		return fmt.Errorf("invalid match: %w", err)
	}
	if match.State == "" {
		match.State = entities.MatchStateSetup
	}

	query := `
		INSERT INTO matches (name, course_name, roster, state, played_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query,
		match.Name,
		match.CourseName,
		match.Roster,
		match.State,
		match.PlayedAt,
	).Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (*entities.Match, error) {
	query := `
		SELECT id, name, course_name, roster, state, played_at, created_at
		FROM matches
		WHERE id = $1`

	var match entities.Match
	err := r.q.QueryRow(ctx, query, id).Scan(
		&match.ID,
		&match.Name,
		&match.CourseName,
		&match.Roster,
		&match.State,
		&match.PlayedAt,
		&match.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return &match, nil
}

func (r *matchRepository) UpdateState(ctx context.Context, id int64, state entities.MatchState) error {
	tag, err := r.q.Exec(ctx, `UPDATE matches SET state = $1 WHERE id = $2`, state, id)
	if err != nil {
		return fmt.Errorf("failed to update match state: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("match %d not found", id)
	}
	return nil
}

func (r *matchRepository) UpsertHoleScore(ctx context.Context, score *entities.HoleScore) error {
	if err := score.Validate(); err != nil {
		return fmt.Errorf("invalid hole score: %w", err)
	}

	query := `
		INSERT INTO hole_scores (match_id, hole_number, par, strokes, sandy_claims, proximities)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (match_id, hole_number)
		DO UPDATE SET par = $3, strokes = $4, sandy_claims = $5, proximities = $6`

	_, err := r.q.Exec(ctx, query,
		score.MatchID,
		score.HoleNumber,
		score.Par,
		score.Strokes,
		score.SandyClaims,
		score.Proximities,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert hole score: %w", err)
	}
	return nil
}

func (r *matchRepository) GetHoleScores(ctx context.Context, matchID int64) ([]*entities.HoleScore, error) {
	query := `
		SELECT match_id, hole_number, par, strokes, sandy_claims, proximities
		FROM hole_scores
		WHERE match_id = $1
		ORDER BY hole_number`

	rows, err := r.q.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query hole scores: %w", err)
	}
	defer rows.Close()

	var scores []*entities.HoleScore
	for rows.Next() {
		var score entities.HoleScore
		err := rows.Scan(
			&score.MatchID,
			&score.HoleNumber,
			&score.Par,
			&score.Strokes,
			&score.SandyClaims,
			&score.Proximities,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hole score: %w", err)
		}
		scores = append(scores, &score)
	}
	return scores, rows.Err()
}

func (r *matchRepository) UpsertBBBResult(ctx context.Context, matchID int64, result *entities.BBBHoleResult) error {
	query := `
		INSERT INTO bbb_hole_results (match_id, hole_number, first_on, closest, first_in)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (match_id, hole_number)
		DO UPDATE SET first_on = $3, closest = $4, first_in = $5`

	_, err := r.q.Exec(ctx, query,
		matchID,
		result.HoleNumber,
		result.FirstOn,
		result.Closest,
		result.FirstIn,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert bbb result: %w", err)
	}
	return nil
}

func (r *matchRepository) GetBBBResults(ctx context.Context, matchID int64) ([]*entities.BBBHoleResult, error) {
	query := `
		SELECT hole_number, first_on, closest, first_in
		FROM bbb_hole_results
		WHERE match_id = $1
		ORDER BY hole_number`

	rows, err := r.q.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bbb results: %w", err)
	}
	defer rows.Close()

	var results []*entities.BBBHoleResult
	for rows.Next() {
		var result entities.BBBHoleResult
		if err := rows.Scan(&result.HoleNumber, &result.FirstOn, &result.Closest, &result.FirstIn); err != nil {
			return nil, fmt.Errorf("failed to scan bbb result: %w", err)
		}
		results = append(results, &result)
	}
	return results, rows.Err()
}

func (r *matchRepository) SetSideBetConfigs(ctx context.Context, matchID int64, configs map[entities.BetType]entities.SideBetConfig) error {
	for _, config := range configs {
		if err := config.Validate(); err != nil {
			return fmt.Errorf("invalid side bet config: %w", err)
		}
	}

	if _, err := r.q.Exec(ctx, `DELETE FROM side_bet_configs WHERE match_id = $1`, matchID); err != nil {
		return fmt.Errorf("failed to clear side bet configs: %w", err)
	}

	query := `
		INSERT INTO side_bet_configs (match_id, bet_type, amount, enabled)
		VALUES ($1, $2, $3, $4)`
	for _, config := range configs {
		if _, err := r.q.Exec(ctx, query, matchID, config.Type, config.Amount, config.Enabled); err != nil {
			return fmt.Errorf("failed to insert side bet config: %w", err)
		}
	}
	return nil
}

func (r *matchRepository) GetSideBetConfigs(ctx context.Context, matchID int64) (map[entities.BetType]entities.SideBetConfig, error) {
	query := `
		SELECT bet_type, amount, enabled
		FROM side_bet_configs
		WHERE match_id = $1`

	rows, err := r.q.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query side bet configs: %w", err)
	}
	defer rows.Close()

	configs := make(map[entities.BetType]entities.SideBetConfig)
	for rows.Next() {
		var config entities.SideBetConfig
		if err := rows.Scan(&config.Type, &config.Amount, &config.Enabled); err != nil {
			return nil, fmt.Errorf("failed to scan side bet config: %w", err)
		}
		configs[config.Type] = config
	}
	return configs, rows.Err()
}
