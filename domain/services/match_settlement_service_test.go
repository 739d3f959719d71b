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

func settleableMatch(roster ...string) *entities.Match {
	return &entities.Match{
		ID:         42,
		Name:       "Saturday Skins",
		CourseName: "Pebble Creek",
		Roster:     roster,
		State:      entities.MatchStateInProgress,
		PlayedAt:   time.Now().UTC(),
	}
}

func TestMatchSettlementService_ResolveMatch(t *testing.T) {
	ctx := context.Background()

	t.Run("settles a match and persists simplified transfers", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		uow := factory.UOW
		service := NewMatchSettlementService(factory)

		uow.MatchRepo.On("GetByID", ctx, int64(42)).Return(settleableMatch("alice", "bob"), nil)
		uow.MatchRepo.On("GetHoleScores", ctx, int64(42)).Return([]*entities.HoleScore{
			{
				HoleNumber:  7,
				Par:         3,
				Strokes:     map[string]int{"alice": 2, "bob": 3},
				Proximities: map[string]float64{"alice": 4.5, "bob": 11.0},
			},
		}, nil)
		uow.MatchRepo.On("GetBBBResults", ctx, int64(42)).Return([]*entities.BBBHoleResult{}, nil)
		uow.MatchRepo.On("GetSideBetConfigs", ctx, int64(42)).Return(map[entities.BetType]entities.SideBetConfig{
			entities.BetTypeGreenie: {Type: entities.BetTypeGreenie, Amount: 5, Enabled: true},
		}, nil)
		uow.LedgerRepo.On("DeleteUnsettledByMatch", ctx, int64(42)).Return(nil)
		uow.LedgerRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
		uow.MatchRepo.On("UpdateState", ctx, int64(42), entities.MatchStateCompleted).Return(nil)

		result, err := service.ResolveMatch(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, result)

		require.Len(t, result.Entries, 1)
		assert.Equal(t, "bob", result.Entries[0].FromUserID)
		assert.Equal(t, "alice", result.Entries[0].ToUserID)
		assert.InDelta(t, 5, result.Entries[0].Amount, zeroSumEpsilon)
		assert.Equal(t, entities.BetTypeGreenie, result.Entries[0].BetType)
		assert.False(t, result.Entries[0].Settled)

		assert.InDelta(t, 5, result.Detailed.Combined["alice"], zeroSumEpsilon)

		uow.MatchRepo.AssertExpectations(t)
		uow.LedgerRepo.AssertExpectations(t)
		uow.AssertCalled(t, "Commit")
	})

	t.Run("no stored configs settles with everything disabled", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		uow := factory.UOW
		service := NewMatchSettlementService(factory)

		uow.MatchRepo.On("GetByID", ctx, int64(42)).Return(settleableMatch("alice", "bob"), nil)
		uow.MatchRepo.On("GetHoleScores", ctx, int64(42)).Return([]*entities.HoleScore{}, nil)
		uow.MatchRepo.On("GetBBBResults", ctx, int64(42)).Return([]*entities.BBBHoleResult{}, nil)
		uow.MatchRepo.On("GetSideBetConfigs", ctx, int64(42)).Return(map[entities.BetType]entities.SideBetConfig{}, nil)
		uow.LedgerRepo.On("DeleteUnsettledByMatch", ctx, int64(42)).Return(nil)
		uow.LedgerRepo.On("CreateBatch", ctx, mock.Anything).Return(nil)
		uow.MatchRepo.On("UpdateState", ctx, int64(42), entities.MatchStateCompleted).Return(nil)

		result, err := service.ResolveMatch(ctx, 42)
		require.NoError(t, err)
		assert.Empty(t, result.Entries)
		assert.Empty(t, result.Detailed.ByBet)
	})

	t.Run("missing match is an error", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		factory.UOW.MatchRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)
		service := NewMatchSettlementService(factory)

		_, err := service.ResolveMatch(ctx, 99)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		factory.UOW.AssertNotCalled(t, "Commit")
	})

	t.Run("repository failures roll back", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		uow := factory.UOW
		service := NewMatchSettlementService(factory)

		uow.MatchRepo.On("GetByID", ctx, int64(42)).Return(settleableMatch("alice", "bob"), nil)
		uow.MatchRepo.On("GetHoleScores", ctx, int64(42)).Return(nil, errors.New("connection reset"))

		_, err := service.ResolveMatch(ctx, 42)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load hole scores")
		uow.AssertNotCalled(t, "Commit")
		uow.AssertCalled(t, "Rollback")
	})
}

func TestMatchSettlementService_SettleEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the entry settled and commits", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		factory.UOW.LedgerRepo.On("MarkSettled", ctx, int64(7), mock.AnythingOfType("time.Time")).Return(nil)
		service := NewMatchSettlementService(factory)

		require.NoError(t, service.SettleEntry(ctx, 7))
		factory.UOW.LedgerRepo.AssertExpectations(t)
		factory.UOW.AssertCalled(t, "Commit")
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		factory := testhelpers.NewMockUnitOfWorkFactory()
		factory.UOW.LedgerRepo.On("MarkSettled", ctx, int64(7), mock.AnythingOfType("time.Time")).Return(errors.New("no such entry"))
		service := NewMatchSettlementService(factory)

		err := service.SettleEntry(ctx, 7)
		require.Error(t, err)
		factory.UOW.AssertNotCalled(t, "Commit")
	})
}
