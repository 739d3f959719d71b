package entities

// SandyResult records one sandy attempt: escaping a bunker and making
// par or better. Success is derived from the claim and the score, never
// asserted directly. Unsuccessful attempts are kept for history but are
// excluded from settlement.
type SandyResult struct {
	HoleNumber         int    `db:"hole_number"`
	PlayerID           string `db:"player_id"`
	Success            bool   `db:"success"`
	ScoreRelativeToPar int    `db:"score_relative_to_par"`
}

// NewSandyResult constructs a sandy result directly. ScoreRelativeToPar
// defaults to 0, for callers that don't track the score delta (manual
// overrides).
func NewSandyResult(holeNumber int, playerID string, success bool) SandyResult {
	return SandyResult{
		HoleNumber: holeNumber,
		PlayerID:   playerID,
		Success:    success,
	}
}
