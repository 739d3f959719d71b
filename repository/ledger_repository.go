package repository

import (
	"context"
	"fmt"
	"time"

	"birdiebook/database"
	"birdiebook/domain/entities"
	"birdiebook/domain/interfaces"
)

const ledgerColumns = `id, match_id, from_user_id, to_user_id, amount, bet_type, settled, settled_at, created_at`

type ledgerRepository struct {
	q Queryable
}

// NewLedgerRepository creates a ledger repository on the connection pool
func NewLedgerRepository(db *database.DB) interfaces.LedgerRepository {
	return &ledgerRepository{q: db.Pool}
}

// newLedgerRepositoryWithTx creates a ledger repository bound to a transaction
func newLedgerRepositoryWithTx(tx Queryable) interfaces.LedgerRepository {
	return &ledgerRepository{q: tx}
}

func (r *ledgerRepository) CreateBatch(ctx context.Context, entries []*entities.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (match_id, from_user_id, to_user_id, amount, bet_type, settled, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid ledger entry: %w", err)
		}
		err := r.q.QueryRow(ctx, query,
			entry.MatchID,
			entry.FromUserID,
			entry.ToUserID,
			entry.Amount,
			entry.BetType,
			entry.Settled,
			entry.CreatedAt,
		).Scan(&entry.ID)
		if err != nil {
			return fmt.Errorf("failed to create ledger entry: %w", err)
		}
	}
	return nil
}

func (r *ledgerRepository) GetByMatch(ctx context.Context, matchID int64) ([]*entities.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE match_id = $1
		ORDER BY id`
	return r.queryEntries(ctx, query, matchID)
}

func (r *ledgerRepository) GetByUser(ctx context.Context, userID string, limit int) ([]*entities.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE from_user_id = $1 OR to_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	return r.queryEntries(ctx, query, userID, limit)
}

func (r *ledgerRepository) GetUnsettledByUser(ctx context.Context, userID string) ([]*entities.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE (from_user_id = $1 OR to_user_id = $1) AND NOT settled
		ORDER BY created_at DESC`
	return r.queryEntries(ctx, query, userID)
}

func (r *ledgerRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*entities.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY created_at`
	return r.queryEntries(ctx, query, from, to)
}

func (r *ledgerRepository) DeleteUnsettledByMatch(ctx context.Context, matchID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM ledger_entries WHERE match_id = $1 AND NOT settled`, matchID)
	if err != nil {
		return fmt.Errorf("failed to delete unsettled entries: %w", err)
	}
	return nil
}

func (r *ledgerRepository) MarkSettled(ctx context.Context, id int64, settledAt time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE ledger_entries SET settled = TRUE, settled_at = $1 WHERE id = $2 AND NOT settled`,
		settledAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark entry settled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry %d not found or already settled", id)
	}
	return nil
}

func (r *ledgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]*entities.LedgerEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*entities.LedgerEntry
	for rows.Next() {
		var entry entities.LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.MatchID,
			&entry.FromUserID,
			&entry.ToUserID,
			&entry.Amount,
			&entry.BetType,
			&entry.Settled,
			&entry.SettledAt,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
