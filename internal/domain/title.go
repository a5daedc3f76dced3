package domain

// Title is the farmer's registration tier. Tiers only move upward, one at a time.
type Title int

const (
	TitleFarmer Title = iota
	TitleRegisteredFarmer
	TitleDistinguishedFarmer
	TitleLegendaryFarmer
)

// TitleSpec is the requirement and bonus set of a tier
type TitleSpec struct {
	Title              Title
	Name               string
	RequiredLevel      int
	RegistrationFee    int
	EarningsBonus      int
	SeedCostReduction  int
	WaterBonusCap      int
	FertilizerBonusCap int
}

var titleTable = [...]TitleSpec{
	TitleFarmer:              {Title: TitleFarmer, Name: "Farmer"},
	TitleRegisteredFarmer:    {Title: TitleRegisteredFarmer, Name: "Registered Farmer", RequiredLevel: 5, RegistrationFee: 200, EarningsBonus: 1, SeedCostReduction: 1},
	TitleDistinguishedFarmer: {Title: TitleDistinguishedFarmer, Name: "Distinguished Farmer", RequiredLevel: 10, RegistrationFee: 300, EarningsBonus: 2, SeedCostReduction: 2, WaterBonusCap: 1},
	TitleLegendaryFarmer:     {Title: TitleLegendaryFarmer, Name: "Legendary Farmer", RequiredLevel: 15, RegistrationFee: 400, EarningsBonus: 4, SeedCostReduction: 3, WaterBonusCap: 2, FertilizerBonusCap: 1},
}

// Spec returns the bonus table row for the title
func (t Title) Spec() TitleSpec {
	if t < TitleFarmer || t > TitleLegendaryFarmer {
		return titleTable[TitleFarmer]
	}
	return titleTable[t]
}

// Next returns the tier directly above t. ok is false at the top tier.
func (t Title) Next() (Title, bool) {
	if t >= TitleLegendaryFarmer {
		return t, false
	}
	return t + 1, true
}

func (t Title) String() string {
	return t.Spec().Name
}
