package services

import (
	"testing"

	"birdiebook/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreenieService_IsGreenieEligible(t *testing.T) {
	service := NewGreenieService()

	assert.True(t, service.IsGreenieEligible(3))
	assert.False(t, service.IsGreenieEligible(4))
	assert.False(t, service.IsGreenieEligible(5))
}

func TestGreenieService_DetermineGreenieWinner(t *testing.T) {
	service := NewGreenieService()

	t.Run("closest player wins", func(t *testing.T) {
		winner := service.DetermineGreenieWinner(3, 3, map[string]float64{
			"alice": 12.5,
			"bob":   8.2,
			"carol": 30.0,
		})
		require.NotNil(t, winner)
		assert.Equal(t, "bob", *winner)
	})

	t.Run("non-par-3 hole never produces a winner", func(t *testing.T) {
		winner := service.DetermineGreenieWinner(5, 4, map[string]float64{"alice": 3.0})
		assert.Nil(t, winner)
	})

	t.Run("no proximity data means no winner", func(t *testing.T) {
		assert.Nil(t, service.DetermineGreenieWinner(3, 3, nil))
		assert.Nil(t, service.DetermineGreenieWinner(3, 3, map[string]float64{}))
	})

	t.Run("everyone missed the green means no winner", func(t *testing.T) {
		winner := service.DetermineGreenieWinner(3, 3, map[string]float64{
			"alice": -1,
			"bob":   -1,
		})
		assert.Nil(t, winner)
	})

	t.Run("tie at the minimum produces no winner", func(t *testing.T) {
		winner := service.DetermineGreenieWinner(3, 3, map[string]float64{
			"alice": 10.0,
			"bob":   10.0,
			"carol": 25.0,
		})
		assert.Nil(t, winner)
	})

	t.Run("tie above the minimum does not block the winner", func(t *testing.T) {
		winner := service.DetermineGreenieWinner(3, 3, map[string]float64{
			"alice": 20.0,
			"bob":   20.0,
			"carol": 5.0,
		})
		require.NotNil(t, winner)
		assert.Equal(t, "carol", *winner)
	})

	t.Run("holed tee shot at zero distance wins", func(t *testing.T) {
		winner := service.DetermineGreenieWinner(3, 3, map[string]float64{
			"alice": 0,
			"bob":   4.5,
		})
		require.NotNil(t, winner)
		assert.Equal(t, "alice", *winner)
	})
}

func TestGreenieService_GetPar3Holes(t *testing.T) {
	service := NewGreenieService()

	holes := service.GetPar3Holes([]int{4, 4, 3, 5, 4, 4, 3, 4, 5, 4, 4, 3, 5, 4, 4, 3, 4, 5})
	assert.Equal(t, []int{3, 7, 12, 16}, holes)

	assert.Empty(t, service.GetPar3Holes([]int{4, 5, 4}))
	assert.Empty(t, service.GetPar3Holes(nil))
}

func TestGreenieService_CountGreenies(t *testing.T) {
	service := NewGreenieService()

	results := []entities.GreenieResult{
		entities.NewGreenieResult(3, ptr("alice")),
		entities.NewGreenieResult(7, ptr("bob")),
		entities.NewGreenieResult(12, ptr("alice")),
		entities.NewGreenieResult(16, nil),
	}

	assert.Equal(t, 2, service.CountGreenies(results, "alice"))
	assert.Equal(t, 1, service.CountGreenies(results, "bob"))
	assert.Equal(t, 0, service.CountGreenies(results, "carol"))
}

func TestGreenieService_SettleGreenies(t *testing.T) {
	service := NewGreenieService()
	config := entities.SideBetConfig{Type: entities.BetTypeGreenie, Amount: 5, Enabled: true}

	t.Run("two player head to head nets the difference", func(t *testing.T) {
		results := []entities.GreenieResult{
			entities.NewGreenieResult(3, ptr("A")),
			entities.NewGreenieResult(7, ptr("B")),
			entities.NewGreenieResult(12, ptr("A")),
		}

		balances, err := service.SettleGreenies(results, config, []string{"A", "B"})
		require.NoError(t, err)

		// A wins 2, B wins 1; net = (2-1) * $5
		assert.InDelta(t, 5, balances["A"], zeroSumEpsilon)
		assert.InDelta(t, -5, balances["B"], zeroSumEpsilon)
		assertZeroSum(t, balances)
	})

	t.Run("four player roster fans out from every opponent", func(t *testing.T) {
		results := []entities.GreenieResult{entities.NewGreenieResult(3, ptr("A"))}
		roster := []string{"A", "B", "C", "D"}

		balances, err := service.SettleGreenies(results, config, roster)
		require.NoError(t, err)

		assert.InDelta(t, 15, balances["A"], zeroSumEpsilon)
		assert.InDelta(t, -5, balances["B"], zeroSumEpsilon)
		assert.InDelta(t, -5, balances["C"], zeroSumEpsilon)
		assert.InDelta(t, -5, balances["D"], zeroSumEpsilon)
		assertZeroSum(t, balances)
	})

	t.Run("pushes contribute nothing", func(t *testing.T) {
		results := []entities.GreenieResult{
			entities.NewGreenieResult(3, nil),
			entities.NewGreenieResult(7, nil),
		}

		balances, err := service.SettleGreenies(results, config, []string{"A", "B"})
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"A": 0, "B": 0}, balances)
	})

	t.Run("single player roster settles to zero", func(t *testing.T) {
		results := []entities.GreenieResult{entities.NewGreenieResult(3, ptr("A"))}

		balances, err := service.SettleGreenies(results, config, []string{"A"})
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"A": 0}, balances)
	})

	t.Run("disabled config settles to zero", func(t *testing.T) {
		disabled := entities.SideBetConfig{Type: entities.BetTypeGreenie, Amount: 5, Enabled: false}
		results := []entities.GreenieResult{entities.NewGreenieResult(3, ptr("A"))}

		balances, err := service.SettleGreenies(results, disabled, []string{"A", "B"})
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"A": 0, "B": 0}, balances)
	})

	t.Run("empty roster is rejected", func(t *testing.T) {
		_, err := service.SettleGreenies(nil, config, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "roster")
	})

	t.Run("non-positive stake is rejected", func(t *testing.T) {
		bad := entities.SideBetConfig{Type: entities.BetTypeGreenie, Amount: 0, Enabled: true}
		_, err := service.SettleGreenies(nil, bad, []string{"A", "B"})
		require.Error(t, err)
	})

	t.Run("winner off the roster is rejected", func(t *testing.T) {
		results := []entities.GreenieResult{entities.NewGreenieResult(3, ptr("zed"))}
		_, err := service.SettleGreenies(results, config, []string{"A", "B"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "zed")
	})

	t.Run("recomputation is idempotent", func(t *testing.T) {
		results := []entities.GreenieResult{
			entities.NewGreenieResult(3, ptr("A")),
			entities.NewGreenieResult(12, ptr("B")),
		}
		roster := []string{"A", "B", "C"}

		first, err := service.SettleGreenies(results, config, roster)
		require.NoError(t, err)
		second, err := service.SettleGreenies(results, config, roster)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
