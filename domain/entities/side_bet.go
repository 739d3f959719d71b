package entities

import (
	"errors"
	"fmt"
)

// BetType identifies a side-bet game within a match
type BetType string

const (
	BetTypeGreenie BetType = "greenie"
	BetTypeSandy   BetType = "sandy"
	BetTypeBBB     BetType = "bbb"
	BetTypeNassau  BetType = "nassau"
	BetTypeSkins   BetType = "skins"
)

// SideBetTypes lists the bet types the settlement engine evaluates
var SideBetTypes = []BetType{BetTypeGreenie, BetTypeSandy, BetTypeBBB}

// IsValid returns true if the bet type is known
func (t BetType) IsValid() bool {
	switch t {
	case BetTypeGreenie, BetTypeSandy, BetTypeBBB, BetTypeNassau, BetTypeSkins:
		return true
	}
	return false
}

// SideBetConfig is the per-match configuration for one side-bet type.
// It is created at match setup and read-only during play.
type SideBetConfig struct {
	Type    BetType `db:"bet_type"`
	Amount  float64 `db:"amount"`
	Enabled bool    `db:"enabled"`
}

// Validate checks the configuration is usable for settlement
func (c *SideBetConfig) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("unknown bet type: %s", c.Type)
	}
	if c.Enabled && c.Amount <= 0 {
		return errors.New("bet amount must be positive")
	}
	return nil
}
