package services

import (
	"testing"

	"birdiebook/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBBBService_CalculatePoints(t *testing.T) {
	service := NewBBBService()

	t.Run("each category awards one point to its winner", func(t *testing.T) {
		holes := []*entities.BBBHoleResult{
			{HoleNumber: 1, FirstOn: ptr("alice"), Closest: ptr("bob"), FirstIn: ptr("alice")},
			{HoleNumber: 2, FirstOn: ptr("bob"), Closest: ptr("bob"), FirstIn: ptr("carol")},
		}

		points := service.CalculatePoints(holes)
		assert.Equal(t, entities.BBBPoints{"alice": 2, "bob": 3, "carol": 1}, points)
	})

	t.Run("tied categories award nothing", func(t *testing.T) {
		holes := []*entities.BBBHoleResult{
			{HoleNumber: 1, FirstOn: ptr("alice"), Closest: nil, FirstIn: nil},
		}

		points := service.CalculatePoints(holes)
		assert.Equal(t, entities.BBBPoints{"alice": 1}, points)
	})

	t.Run("no holes yields empty points", func(t *testing.T) {
		assert.Empty(t, service.CalculatePoints(nil))
	})
}

func TestBBBService_SettlePoints(t *testing.T) {
	service := NewBBBService()
	config := entities.SideBetConfig{Type: entities.BetTypeBBB, Amount: 1, Enabled: true}

	t.Run("settlement pays each pairwise point differential", func(t *testing.T) {
		points := entities.BBBPoints{"alice": 5, "bob": 3, "carol": 1}
		roster := []string{"alice", "bob", "carol"}

		balances, err := service.SettlePoints(points, config, roster)
		require.NoError(t, err)

		// alice: (5-3) + (5-1) = +6, bob: (3-5) + (3-1) = 0, carol: (1-5) + (1-3) = -6
		assert.InDelta(t, 6, balances["alice"], zeroSumEpsilon)
		assert.InDelta(t, 0, balances["bob"], zeroSumEpsilon)
		assert.InDelta(t, -6, balances["carol"], zeroSumEpsilon)
		assertZeroSum(t, balances)
	})

	t.Run("players with no points still pay their differentials", func(t *testing.T) {
		points := entities.BBBPoints{"alice": 2}
		roster := []string{"alice", "bob"}

		balances, err := service.SettlePoints(points, config, roster)
		require.NoError(t, err)
		assert.InDelta(t, 2, balances["alice"], zeroSumEpsilon)
		assert.InDelta(t, -2, balances["bob"], zeroSumEpsilon)
	})

	t.Run("equal points settle to zero", func(t *testing.T) {
		points := entities.BBBPoints{"alice": 4, "bob": 4}
		balances, err := service.SettlePoints(points, config, []string{"alice", "bob"})
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"alice": 0, "bob": 0}, balances)
	})

	t.Run("single player roster settles to zero", func(t *testing.T) {
		balances, err := service.SettlePoints(entities.BBBPoints{"alice": 9}, config, []string{"alice"})
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"alice": 0}, balances)
	})

	t.Run("point holder off the roster is rejected", func(t *testing.T) {
		_, err := service.SettlePoints(entities.BBBPoints{"zed": 1}, config, []string{"alice", "bob"})
		require.Error(t, err)
	})

	t.Run("zero-sum holds for uneven stakes", func(t *testing.T) {
		pricier := entities.SideBetConfig{Type: entities.BetTypeBBB, Amount: 0.25, Enabled: true}
		points := entities.BBBPoints{"a": 7, "b": 2, "c": 2, "d": 0}

		balances, err := service.SettlePoints(points, pricier, []string{"a", "b", "c", "d"})
		require.NoError(t, err)
		assertZeroSum(t, balances)
	})
}

func TestBBBService_Queries(t *testing.T) {
	service := NewBBBService()
	points := entities.BBBPoints{"alice": 5, "bob": 5, "carol": 2}

	t.Run("GetLeaders returns all players sharing the lead", func(t *testing.T) {
		assert.Equal(t, []string{"alice", "bob"}, service.GetLeaders(points))
		assert.Nil(t, service.GetLeaders(entities.BBBPoints{}))
	})

	t.Run("GetRemainingPoints is three per hole", func(t *testing.T) {
		assert.Equal(t, 9, service.GetRemainingPoints(3))
		assert.Equal(t, 0, service.GetRemainingPoints(0))
		assert.Equal(t, 0, service.GetRemainingPoints(-1))
	})

	t.Run("GetMaxPossiblePoints adds the full remainder", func(t *testing.T) {
		assert.Equal(t, 8, service.GetMaxPossiblePoints(points, "carol", 2))
		assert.Equal(t, 6, service.GetMaxPossiblePoints(points, "nobody", 2))
	})

	t.Run("GetTotalPointsAwarded sums everyone", func(t *testing.T) {
		assert.Equal(t, 12, service.GetTotalPointsAwarded(points))
		assert.Equal(t, 0, service.GetTotalPointsAwarded(nil))
	})

	t.Run("CanStillWin compares ceiling against the leaders", func(t *testing.T) {
		// carol can reach 2 + 6 = 8, ahead of the leaders at 5
		assert.True(t, service.CanStillWin(points, "carol", 2))
		// with one hole left carol tops out at 5, tying the lead
		assert.True(t, service.CanStillWin(points, "carol", 1))
		// with nothing left carol is out
		assert.False(t, service.CanStillWin(points, "carol", 0))
		// the leader can always still win
		assert.True(t, service.CanStillWin(points, "alice", 0))
	})
}
