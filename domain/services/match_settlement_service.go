package services

import (
	"context"
	"fmt"
	"time"

	"birdiebook/domain/entities"
	"birdiebook/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// MatchSettlementService is the authoritative settlement path: it loads a
// match's scoring data, runs the pure engine, and atomically replaces the
// match's open ledger entries with the recomputed transfers. Because the
// engine is a pure function of (hole results, configs, roster), resolving
// the same match twice without new scoring data is a no-op in effect.
type MatchSettlementService struct {
	uowFactory interfaces.UnitOfWorkFactory
	engine     *SettlementService
}

// NewMatchSettlementService creates a new MatchSettlementService
func NewMatchSettlementService(uowFactory interfaces.UnitOfWorkFactory) *MatchSettlementService {
	return &MatchSettlementService{
		uowFactory: uowFactory,
		engine:     NewSettlementService(),
	}
}

// MatchSettlementResult summarizes one settlement run
type MatchSettlementResult struct {
	MatchID  int64
	Detailed *DetailedSettlement
	Entries  []*entities.LedgerEntry
}

// ResolveMatch recomputes the match's settlement from scratch and swaps
// its unsettled ledger entries inside one transaction. Entries already
// marked settled are left alone. Safe to re-run after score corrections
// or offline-sync reconciliation.
func (s *MatchSettlementService) ResolveMatch(ctx context.Context, matchID int64) (*MatchSettlementResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	match, err := uow.MatchRepository().GetByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	if match == nil {
		return nil, fmt.Errorf("match %d not found", matchID)
	}
	if err := match.Validate(); err != nil {
		return nil, fmt.Errorf("match %d is not settleable: %w", matchID, err)
	}

	holes, err := uow.MatchRepository().GetHoleScores(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load hole scores: %w", err)
	}
	bbbHoles, err := uow.MatchRepository().GetBBBResults(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bbb results: %w", err)
	}
	configs, err := uow.MatchRepository().GetSideBetConfigs(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load side bet configs: %w", err)
	}
	if len(configs) == 0 {
		configs = s.engine.CreateDefaultSideBetConfigs()
	}

	greenies, sandies := s.engine.EvaluateHoleScores(holes)
	input := SideBetInput{
		Greenies:  greenies,
		Sandies:   sandies,
		BBBPoints: NewBBBService().CalculatePoints(bbbHoles),
	}

	detailed, err := s.engine.GetDetailedSettlement(input, configs, match.Roster)
	if err != nil {
		return nil, fmt.Errorf("failed to settle match %d: %w", matchID, err)
	}

	if err := s.engine.ValidateZeroSum(detailed.Combined); err != nil {
		// Logic bug in the engine. Surface it loudly and refuse to persist.
		log.WithFields(log.Fields{
			"matchID":  matchID,
			"balances": detailed.Combined,
		}).WithError(err).Error("Settlement violated zero-sum invariant")
		return nil, fmt.Errorf("settlement invariant violation for match %d: %w", matchID, err)
	}

	if err := uow.LedgerRepository().DeleteUnsettledByMatch(ctx, matchID); err != nil {
		return nil, fmt.Errorf("failed to clear prior entries: %w", err)
	}

	now := time.Now().UTC()
	var created []*entities.LedgerEntry
	for _, betType := range s.engine.GetEnabledSideBets(configs) {
		for _, transfer := range s.engine.SimplifyTransfers(detailed.ByBet[betType]) {
			entry := &entities.LedgerEntry{
				MatchID:    matchID,
				FromUserID: transfer.FromUserID,
				ToUserID:   transfer.ToUserID,
				Amount:     transfer.Amount,
				BetType:    betType,
				Settled:    false,
				CreatedAt:  now,
			}
			if err := entry.Validate(); err != nil {
				return nil, fmt.Errorf("generated invalid ledger entry: %w", err)
			}
			created = append(created, entry)
		}
	}

	if err := uow.LedgerRepository().CreateBatch(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to persist ledger entries: %w", err)
	}

	if err := uow.MatchRepository().UpdateState(ctx, matchID, entities.MatchStateCompleted); err != nil {
		return nil, fmt.Errorf("failed to complete match: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	log.WithFields(log.Fields{
		"matchID": matchID,
		"entries": len(created),
		"bets":    len(detailed.ByBet),
	}).Info("Match settled")

	return &MatchSettlementResult{
		MatchID:  matchID,
		Detailed: detailed,
		Entries:  created,
	}, nil
}

// SettleEntry marks a single ledger entry as paid
func (s *MatchSettlementService) SettleEntry(ctx context.Context, entryID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.LedgerRepository().MarkSettled(ctx, entryID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to mark entry settled: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
