package engine

import "github.com/DefinitelyNotProcrastinating/a-tale-of-the-stars/internal/catalog"

// FallbackCost is charged when a purchasable entry carries a tier outside the
// 1..7 ladder. Selection must not fail on malformed reference data.
const FallbackCost = 50

// Cost ladders per purchasable category, indexed by tier-1. These are domain
// constants; once a record is bought its cost is frozen and later ladder
// changes never reprice it.
var costLadders = map[catalog.Category][7]int{
	catalog.CategoryItem:  {30, 60, 90, 120, 150, 180, 420},
	catalog.CategoryShip:  {120, 240, 360, 480, 600, 720, 1024},
	catalog.CategorySkill: {40, 80, 120, 160, 200, 250, 600},
}

// CostFor resolves the RP cost of selecting an entry of the given category and
// tier. Non-purchasable categories (faction, spawn location, scenario) cost
// nothing.
func CostFor(cat catalog.Category, tier int) int {
	ladder, ok := costLadders[cat]
	if !ok {
		return 0
	}
	if tier < catalog.TierMin || tier > catalog.TierMax {
		return FallbackCost
	}
	return ladder[tier-1]
}
