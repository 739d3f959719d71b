package entities

// BBBCategory is one of the three bingo-bango-bongo point categories
type BBBCategory string

const (
	// BBBCategoryFirstOn is awarded to the first ball on the green (bingo)
	BBBCategoryFirstOn BBBCategory = "first_on"
	// BBBCategoryClosest is awarded to the closest ball once all are on (bango)
	BBBCategoryClosest BBBCategory = "closest"
	// BBBCategoryFirstIn is awarded to the first ball holed out (bongo)
	BBBCategoryFirstIn BBBCategory = "first_in"
)

// BBBCategories lists the categories in award order
var BBBCategories = []BBBCategory{BBBCategoryFirstOn, BBBCategoryClosest, BBBCategoryFirstIn}

// BBBHoleResult records the category winners for one hole. Each category
// awards one point to exactly one player, or none at all: a nil winner
// means the category was tied or not recorded, and ties award nothing.
type BBBHoleResult struct {
	HoleNumber int     `db:"hole_number"`
	FirstOn    *string `db:"first_on"`
	Closest    *string `db:"closest"`
	FirstIn    *string `db:"first_in"`
}

// CategoryWinner returns the winner of the given category, or nil
func (r *BBBHoleResult) CategoryWinner(category BBBCategory) *string {
	switch category {
	case BBBCategoryFirstOn:
		return r.FirstOn
	case BBBCategoryClosest:
		return r.Closest
	case BBBCategoryFirstIn:
		return r.FirstIn
	}
	return nil
}

// BBBPoints holds accumulated points per player across a round
type BBBPoints map[string]int
