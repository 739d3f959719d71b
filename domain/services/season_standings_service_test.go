package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"birdiebook/domain/entities"
	"birdiebook/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func juneSeason(id int64, members ...string) *entities.Season {
	return &entities.Season{
		ID:        id,
		Name:      "June 2024",
		Period:    entities.SeasonPeriodMonthly,
		StartDate: date(2024, time.June, 1),
		EndDate:   date(2024, time.June, 30),
		Status:    entities.SeasonStatusActive,
		MemberIDs: members,
	}
}

func TestSeasonStandingsService_RefreshSeason(t *testing.T) {
	ctx := context.Background()

	t.Run("recomputes and replaces the standings table", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		uow := factory.UOW
		service := NewSeasonStandingsService(factory)

		season := juneSeason(3, "alice", "bob")
		uow.SeasonRepo.On("GetByID", ctx, int64(3)).Return(season, nil)
		uow.LedgerRepo.On("GetByDateRange", ctx, season.StartDate, season.EndDate).Return([]*entities.LedgerEntry{
			entry("bob", "alice", 10, false),
		}, nil)
		uow.SeasonRepo.On("GetStandings", ctx, int64(3)).Return([]*entities.SeasonStanding{
			{UserID: "alice", Rank: 2},
			{UserID: "bob", Rank: 1},
		}, nil)
		uow.SeasonRepo.On("ReplaceStandings", ctx, int64(3), mock.Anything).Return(nil)

		standings, err := service.RefreshSeason(ctx, 3)
		require.NoError(t, err)
		require.Len(t, standings, 2)

		assert.Equal(t, "alice", standings[0].UserID)
		assert.Equal(t, 1, standings[0].Rank)
		assert.Equal(t, entities.TrendUp, standings[0].Trend)
		assert.Equal(t, entities.TrendDown, standings[1].Trend)

		uow.SeasonRepo.AssertExpectations(t)
		uow.AssertCalled(t, "Commit")
	})

	t.Run("unknown season is an error", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		factory.UOW.SeasonRepo.On("GetByID", ctx, int64(9)).Return(nil, nil)
		service := NewSeasonStandingsService(factory)

		_, err := service.RefreshSeason(ctx, 9)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("persistence failure aborts the refresh", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		uow := factory.UOW
		service := NewSeasonStandingsService(factory)

		season := juneSeason(3, "alice", "bob")
		uow.SeasonRepo.On("GetByID", ctx, int64(3)).Return(season, nil)
		uow.LedgerRepo.On("GetByDateRange", ctx, season.StartDate, season.EndDate).Return([]*entities.LedgerEntry{}, nil)
		uow.SeasonRepo.On("GetStandings", ctx, int64(3)).Return([]*entities.SeasonStanding{}, nil)
		uow.SeasonRepo.On("ReplaceStandings", ctx, int64(3), mock.Anything).Return(errors.New("deadlock"))

		_, err := service.RefreshSeason(ctx, 3)
		require.Error(t, err)
		uow.AssertNotCalled(t, "Commit")
	})
}

func TestSeasonStandingsService_RefreshActiveSeasons(t *testing.T) {
	ctx := context.Background()
	now := date(2024, time.June, 15)

	t.Run("refreshes every active season", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		uow := factory.UOW
		service := NewSeasonStandingsService(factory)

		first := juneSeason(1, "alice", "bob")
		second := juneSeason(2, "carol", "dave")
		uow.SeasonRepo.On("GetActive", ctx, now).Return([]*entities.Season{first, second}, nil)
		for _, season := range []*entities.Season{first, second} {
			uow.SeasonRepo.On("GetByID", ctx, season.ID).Return(season, nil)
			uow.LedgerRepo.On("GetByDateRange", ctx, season.StartDate, season.EndDate).Return([]*entities.LedgerEntry{}, nil)
			uow.SeasonRepo.On("GetStandings", ctx, season.ID).Return([]*entities.SeasonStanding{}, nil)
			uow.SeasonRepo.On("ReplaceStandings", ctx, season.ID, mock.Anything).Return(nil)
		}

		require.NoError(t, service.RefreshActiveSeasons(ctx, now))
		uow.SeasonRepo.AssertExpectations(t)
	})

	t.Run("one failing season does not stop the rest", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		uow := factory.UOW
		service := NewSeasonStandingsService(factory)

		broken := juneSeason(1, "alice", "bob")
		healthy := juneSeason(2, "carol", "dave")
		uow.SeasonRepo.On("GetActive", ctx, now).Return([]*entities.Season{broken, healthy}, nil)
		uow.SeasonRepo.On("GetByID", ctx, broken.ID).Return(nil, errors.New("connection reset"))
		uow.SeasonRepo.On("GetByID", ctx, healthy.ID).Return(healthy, nil)
		uow.LedgerRepo.On("GetByDateRange", ctx, healthy.StartDate, healthy.EndDate).Return([]*entities.LedgerEntry{}, nil)
		uow.SeasonRepo.On("GetStandings", ctx, healthy.ID).Return([]*entities.SeasonStanding{}, nil)
		uow.SeasonRepo.On("ReplaceStandings", ctx, healthy.ID, mock.Anything).Return(nil)

		require.NoError(t, service.RefreshActiveSeasons(ctx, now))
		uow.SeasonRepo.AssertCalled(t, "ReplaceStandings", ctx, healthy.ID, mock.Anything)
	})

	t.Run("listing failure surfaces", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		factory.UOW.SeasonRepo.On("GetActive", ctx, now).Return(nil, errors.New("timeout"))
		service := NewSeasonStandingsService(factory)

		require.Error(t, service.RefreshActiveSeasons(ctx, now))
	})
}

func TestSeasonStandingsService_CreateSeason(t *testing.T) {
	ctx := context.Background()

	t.Run("builds a season from the period window", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		factory.UOW.SeasonRepo.On("Create", ctx, mock.AnythingOfType("*entities.Season")).Return(nil)
		service := NewSeasonStandingsService(factory)

		season, err := service.CreateSeason(ctx, entities.SeasonPeriodQuarterly, date(2024, time.May, 10), []string{"alice", "bob"})
		require.NoError(t, err)

		assert.Equal(t, "Q2 2024", season.Name)
		assert.Equal(t, date(2024, time.April, 1), season.StartDate)
		assert.Equal(t, time.June, season.EndDate.Month())
		assert.Equal(t, entities.SeasonStatusActive, season.Status)
		factory.UOW.AssertCalled(t, "Commit")
	})

	t.Run("rejects a season with no members", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		service := NewSeasonStandingsService(factory)

		_, err := service.CreateSeason(ctx, entities.SeasonPeriodMonthly, date(2024, time.May, 10), nil)
		require.Error(t, err)
		factory.UOW.SeasonRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
