package entities

// GreenieResult records the outcome of the greenie bet on one par-3 hole.
// A nil WinnerID means nobody won: no proximity data, everyone missed the
// green, or the closest shots tied.
type GreenieResult struct {
	HoleNumber int     `db:"hole_number"`
	Par        int     `db:"par"`
	WinnerID   *string `db:"winner_id"`
}

// NewGreenieResult constructs a greenie result for an eligible hole.
// Par is fixed at 3; the constructor is only ever called for par-3 holes.
func NewGreenieResult(holeNumber int, winnerID *string) GreenieResult {
	return GreenieResult{
		HoleNumber: holeNumber,
		Par:        3,
		WinnerID:   winnerID,
	}
}

// HasWinner returns true if the hole produced a greenie winner
func (r *GreenieResult) HasWinner() bool {
	return r.WinnerID != nil
}
