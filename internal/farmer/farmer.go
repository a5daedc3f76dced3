package farmer

import (
	"github.com/osse101/MyFarm_Go/internal/domain"
)

// Farmer holds the player's wallet and progression. Coins never go negative:
// every spending action checks affordability before touching any state.
type Farmer struct {
	coins      int
	experience float64 // progress toward the next level, always < ExperiencePerLevel
	level      int
	title      domain.Title
}

// New creates a farmer with the given starting wallet and level
func New(coins, level int) *Farmer {
	return &Farmer{
		coins: max(coins, 0),
		level: max(level, 0),
		title: domain.TitleFarmer,
	}
}

func (f *Farmer) Coins() int              { return f.coins }
func (f *Farmer) Experience() float64     { return f.experience }
func (f *Farmer) Level() int              { return f.level }
func (f *Farmer) Title() domain.Title     { return f.title }
func (f *Farmer) Bonus() domain.TitleSpec { return f.title.Spec() }

// TotalExperience is all experience ever earned, counting completed levels
func (f *Farmer) TotalExperience() float64 {
	return float64(f.level)*ExperiencePerLevel + f.experience
}

// CanAfford reports whether the wallet covers cost
func (f *Farmer) CanAfford(cost int) bool {
	return f.coins >= cost
}

// SeedCost is the price of one seed after the title discount
func (f *Farmer) SeedCost(spec domain.CropSpec) int {
	return max(spec.Cost-f.title.Spec().SeedCostReduction, 0)
}

// CanAffordCheapestSeed is the bankruptcy test used by the end check
func (f *Farmer) CanAffordCheapestSeed() bool {
	return f.CanAfford(max(domain.CheapestSeedCost()-f.title.Spec().SeedCostReduction, 0))
}

func (f *Farmer) spend(cost int) {
	f.coins -= cost
}

// addExperience banks xp and converts every full ExperiencePerLevel into a level.
// Returns the number of levels gained.
func (f *Farmer) addExperience(xp float64) int {
	f.experience += xp
	gained := 0
	for f.experience >= ExperiencePerLevel {
		f.experience -= ExperiencePerLevel
		f.level++
		gained++
	}
	return gained
}

// result builds an ActionResult from the farmer's post-action state
func (f *Farmer) result(verb domain.Verb, coord *domain.Coord, day, coinsDelta int, xp float64, levels int) domain.ActionResult {
	return domain.ActionResult{
		Verb:         verb,
		Coord:        coord,
		CoinsDelta:   coinsDelta,
		XPGained:     xp,
		LevelsGained: levels,
		Level:        f.level,
		Coins:        f.coins,
		Title:        f.title,
		Day:          day,
	}
}
