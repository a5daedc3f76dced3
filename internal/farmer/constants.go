package farmer

// Action prices in coins
const (
	FertilizerCost = 10
	ShovelCost     = 7
	PickaxeCost    = 50
)

// Experience rewards per action
const (
	PlowExperience      = 0.5
	WaterExperience     = 0.5
	FertilizeExperience = 4.0
	ShovelExperience    = 2.0
	PickaxeExperience   = 15.0
)

// ExperiencePerLevel is the progress needed for one level
const ExperiencePerLevel = 100.0
