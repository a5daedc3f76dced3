package domain

// CropCategory groups crops by growth habit. Flowers get a sale multiplier,
// trees need empty neighbors at plant time.
type CropCategory string

const (
	CategoryRoot   CropCategory = "Root"
	CategoryFlower CropCategory = "Flower"
	CategoryTree   CropCategory = "Tree"
)

// CropKind identifies one of the seeds sold in the shop.
type CropKind int

const (
	CropTurnip CropKind = iota + 1
	CropCarrot
	CropPotato
	CropRose
	CropTulips
	CropSunflower
	CropMango
	CropApple
)

// CropSpec holds the fixed growth and economic parameters of a crop kind.
type CropSpec struct {
	Kind             CropKind
	Name             string
	Category         CropCategory
	Glyph            rune // lowercase; uppercase when mature
	DaysToMaturity   int
	WaterMin         int
	WaterMax         int
	FertilizerMin    int
	FertilizerMax    int
	ProductMin       int
	ProductMax       int
	Cost             int
	BasePrice        int
	ExperienceReward float64
}

// IsTree reports whether planting requires the neighbor check
func (s CropSpec) IsTree() bool {
	return s.Category == CategoryTree
}

// cropCatalog is ordered as the shop lists it
var cropCatalog = []CropSpec{
	{Kind: CropTurnip, Name: "Turnip", Category: CategoryRoot, Glyph: 't', DaysToMaturity: 2, WaterMin: 1, WaterMax: 2, FertilizerMin: 0, FertilizerMax: 1, ProductMin: 1, ProductMax: 2, Cost: 5, BasePrice: 6, ExperienceReward: 5},
	{Kind: CropCarrot, Name: "Carrot", Category: CategoryRoot, Glyph: 'c', DaysToMaturity: 3, WaterMin: 1, WaterMax: 2, FertilizerMin: 0, FertilizerMax: 1, ProductMin: 1, ProductMax: 2, Cost: 10, BasePrice: 9, ExperienceReward: 7.5},
	{Kind: CropPotato, Name: "Potato", Category: CategoryRoot, Glyph: 'p', DaysToMaturity: 5, WaterMin: 3, WaterMax: 4, FertilizerMin: 1, FertilizerMax: 2, ProductMin: 1, ProductMax: 10, Cost: 20, BasePrice: 3, ExperienceReward: 12.5},
	{Kind: CropRose, Name: "Rose", Category: CategoryFlower, Glyph: 'r', DaysToMaturity: 1, WaterMin: 1, WaterMax: 2, FertilizerMin: 0, FertilizerMax: 1, ProductMin: 1, ProductMax: 1, Cost: 5, BasePrice: 5, ExperienceReward: 2.5},
	{Kind: CropTulips, Name: "Turnips", Category: CategoryFlower, Glyph: 'u', DaysToMaturity: 2, WaterMin: 2, WaterMax: 3, FertilizerMin: 0, FertilizerMax: 1, ProductMin: 1, ProductMax: 1, Cost: 10, BasePrice: 9, ExperienceReward: 5},
	{Kind: CropSunflower, Name: "Sunflower", Category: CategoryFlower, Glyph: 's', DaysToMaturity: 3, WaterMin: 2, WaterMax: 3, FertilizerMin: 1, FertilizerMax: 2, ProductMin: 1, ProductMax: 1, Cost: 20, BasePrice: 19, ExperienceReward: 7.5},
	{Kind: CropMango, Name: "Mango", Category: CategoryTree, Glyph: 'm', DaysToMaturity: 10, WaterMin: 7, WaterMax: 7, FertilizerMin: 4, FertilizerMax: 4, ProductMin: 5, ProductMax: 15, Cost: 100, BasePrice: 8, ExperienceReward: 25},
	{Kind: CropApple, Name: "Apple", Category: CategoryTree, Glyph: 'a', DaysToMaturity: 10, WaterMin: 7, WaterMax: 7, FertilizerMin: 5, FertilizerMax: 5, ProductMin: 10, ProductMax: 15, Cost: 200, BasePrice: 5, ExperienceReward: 25},
}

// CropCatalog returns a copy of every crop spec in shop order
func CropCatalog() []CropSpec {
	out := make([]CropSpec, len(cropCatalog))
	copy(out, cropCatalog)
	return out
}

// LookupCrop returns the CropSpec for a kind
func LookupCrop(kind CropKind) (CropSpec, bool) {
	for _, spec := range cropCatalog {
		if spec.Kind == kind {
			return spec, true
		}
	}
	return CropSpec{}, false
}

// CheapestSeedCost is the lowest base cost in the catalog, before discounts.
func CheapestSeedCost() int {
	cheapest := cropCatalog[0].Cost
	for _, spec := range cropCatalog[1:] {
		if spec.Cost < cheapest {
			cheapest = spec.Cost
		}
	}
	return cheapest
}

func (k CropKind) String() string {
	if spec, ok := LookupCrop(k); ok {
		return spec.Name
	}
	return "Unknown"
}
