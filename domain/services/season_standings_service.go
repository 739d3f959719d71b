package services

import (
	"context"
	"fmt"
	"time"

	"birdiebook/domain/entities"
	"birdiebook/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// SeasonStandingsService recomputes season standings from the ledger.
// Standings are derived data: every refresh rebuilds them from the
// entries inside the season window and replaces the stored table.
type SeasonStandingsService struct {
	uowFactory interfaces.UnitOfWorkFactory
	standings  *StandingsService
	seasons    *SeasonService
}

// NewSeasonStandingsService creates a new SeasonStandingsService
func NewSeasonStandingsService(uowFactory interfaces.UnitOfWorkFactory) *SeasonStandingsService {
	return &SeasonStandingsService{
		uowFactory: uowFactory,
		standings:  NewStandingsService(),
		seasons:    NewSeasonService(),
	}
}

// RefreshSeason rebuilds one season's standings and persists them
func (s *SeasonStandingsService) RefreshSeason(ctx context.Context, seasonID int64) ([]*entities.SeasonStanding, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	season, err := uow.SeasonRepository().GetByID(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load season: %w", err)
	}
	if season == nil {
		return nil, fmt.Errorf("season %d not found", seasonID)
	}

	entries, err := uow.LedgerRepository().GetByDateRange(ctx, season.StartDate, season.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	prior, err := uow.SeasonRepository().GetStandings(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to load prior standings: %w", err)
	}

	computed := s.standings.CalculateStandingsFromLedger(seasonID, entries, season.MemberIDs, prior)

	if err := uow.SeasonRepository().ReplaceStandings(ctx, seasonID, computed); err != nil {
		return nil, fmt.Errorf("failed to replace standings: %w", err)
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit standings: %w", err)
	}

	log.WithFields(log.Fields{
		"seasonID": seasonID,
		"members":  len(season.MemberIDs),
		"entries":  len(entries),
	}).Info("Season standings refreshed")

	return computed, nil
}

// RefreshActiveSeasons rebuilds standings for every season whose window
// contains now. Used by the scheduled refresh job.
func (s *SeasonStandingsService) RefreshActiveSeasons(ctx context.Context, now time.Time) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	active, err := uow.SeasonRepository().GetActive(ctx, now)
	if rbErr := uow.Rollback(); rbErr != nil {
		log.WithError(rbErr).Warn("Failed to roll back read-only transaction")
	}
	if err != nil {
		return fmt.Errorf("failed to list active seasons: %w", err)
	}

	for _, season := range active {
		if _, err := s.RefreshSeason(ctx, season.ID); err != nil {
			log.WithFields(log.Fields{"seasonID": season.ID}).WithError(err).Error("Failed to refresh season standings")
		}
	}
	return nil
}

// CreateSeason builds and persists a season for a period anchored at the
// reference date. Custom seasons must supply their own dates and name via
// the entity directly; this helper covers the standard periods.
func (s *SeasonStandingsService) CreateSeason(ctx context.Context, period entities.SeasonPeriod, reference time.Time, memberIDs []string) (*entities.Season, error) {
	dates := s.seasons.GetSeasonDates(period, reference)
	season := &entities.Season{
		Name:      dates.Name,
		Period:    period,
		StartDate: dates.Start,
		EndDate:   dates.End,
		Status:    entities.SeasonStatusActive,
		MemberIDs: memberIDs,
	}
	if err := season.Validate(); err != nil {
		return nil, fmt.Errorf("invalid season: %w", err)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.SeasonRepository().Create(ctx, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return season, nil
}
