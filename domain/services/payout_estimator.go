package services

// PayoutEstimator computes a configuration's theoretical maximum payout
// for a given roster size. The estimates drive setup previews only;
// authoritative settlement always goes through the evaluators.
type PayoutEstimator struct{}

// NewPayoutEstimator creates a new PayoutEstimator
func NewPayoutEstimator() *PayoutEstimator {
	return &PayoutEstimator{}
}

// EstimateNassauMax is the worst case for a Nassau: losing front nine,
// back nine, and overall to every opponent.
func (e *PayoutEstimator) EstimateNassauMax(amount float64, rosterSize int) float64 {
	if rosterSize < 2 || amount <= 0 {
		return 0
	}
	return amount * 3 * float64(rosterSize-1)
}

// EstimateSkinsMax is the worst case for skins: one player takes a skin
// on every hole, collecting the stake from each opponent each time.
// Carried-over skins don't change the ceiling.
func (e *PayoutEstimator) EstimateSkinsMax(amount float64, rosterSize, holeCount int) float64 {
	if rosterSize < 2 || amount <= 0 || holeCount <= 0 {
		return 0
	}
	return amount * float64(holeCount) * float64(rosterSize-1)
}

// EstimateGreenieMax assumes one player wins the greenie on every par-3
// hole of the course.
func (e *PayoutEstimator) EstimateGreenieMax(amount float64, rosterSize int, pars []int) float64 {
	if rosterSize < 2 || amount <= 0 {
		return 0
	}
	par3s := 0
	for _, par := range pars {
		if par == 3 {
			par3s++
		}
	}
	return amount * float64(par3s) * float64(rosterSize-1)
}

// EstimateSandyMax assumes one player holes a successful sandy on every hole
func (e *PayoutEstimator) EstimateSandyMax(amount float64, rosterSize, holeCount int) float64 {
	if rosterSize < 2 || amount <= 0 || holeCount <= 0 {
		return 0
	}
	return amount * float64(holeCount) * float64(rosterSize-1)
}

// EstimateBBBMax assumes one player sweeps all three points on every
// hole. With the point-differential formula that pays
// amount * totalPoints * (rosterSize-1).
func (e *PayoutEstimator) EstimateBBBMax(amount float64, rosterSize, holeCount int) float64 {
	if rosterSize < 2 || amount <= 0 || holeCount <= 0 {
		return 0
	}
	totalPoints := float64(holeCount * pointsPerHole)
	return amount * totalPoints * float64(rosterSize-1)
}
