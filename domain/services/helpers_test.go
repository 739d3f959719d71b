package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ptr returns a pointer to the given player ID, for winner fields in tests
func ptr(playerID string) *string {
	return &playerID
}

// assertZeroSum checks the primary settlement invariant on a balance map
func assertZeroSum(t *testing.T, balances map[string]float64) {
	t.Helper()
	sum := 0.0
	for _, amount := range balances {
		sum += amount
	}
	assert.InDelta(t, 0, sum, zeroSumEpsilon, "balances must sum to zero")
}
