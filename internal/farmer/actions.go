package farmer

import (
	"github.com/osse101/MyFarm_Go/internal/domain"
	"github.com/osse101/MyFarm_Go/internal/farm"
	"github.com/osse101/MyFarm_Go/internal/utils"
)

// Every action resolves the target plot first, so bad coordinates fail before any
// other check. A failed action leaves farmer and farm untouched.

// Plow prepares the plot at c
func (f *Farmer) Plow(fm *farm.Farm, c domain.Coord, day int) (domain.ActionResult, error) {
	plot, err := fm.Plot(c.Row, c.Col)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if err := plot.Plow(day); err != nil {
		return domain.ActionResult{}, err
	}
	levels := f.addExperience(PlowExperience)
	return f.result(domain.VerbPlow, &c, day, 0, PlowExperience, levels), nil
}

// Plant buys one seed of kind and plants it at c. Trees additionally need all eight
// neighbors free of crops and rocks.
func (f *Farmer) Plant(fm *farm.Farm, c domain.Coord, kind domain.CropKind, day int) (domain.ActionResult, error) {
	spec, ok := domain.LookupCrop(kind)
	if !ok {
		return domain.ActionResult{}, domain.ErrUnknownCrop
	}
	plot, err := fm.Plot(c.Row, c.Col)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if err := plot.CheckPlantable(); err != nil {
		return domain.ActionResult{}, err
	}
	if spec.IsTree() && !fm.NeighborsAllEmpty(c.Row, c.Col) {
		return domain.ActionResult{}, domain.ErrTreeAdjacency
	}
	cost := f.SeedCost(spec)
	if !f.CanAfford(cost) {
		return domain.ActionResult{}, domain.ErrInsufficientFunds
	}

	plot.SetCrop(farm.NewCrop(spec, day))
	f.spend(cost)

	res := f.result(domain.VerbPlant, &c, day, -cost, 0, 0)
	res.Crop = spec.Name
	return res, nil
}

// Water waters the crop at c
func (f *Farmer) Water(fm *farm.Farm, c domain.Coord, day int) (domain.ActionResult, error) {
	plot, err := fm.Plot(c.Row, c.Col)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if err := plot.Water(day); err != nil {
		return domain.ActionResult{}, err
	}
	levels := f.addExperience(WaterExperience)
	res := f.result(domain.VerbWater, &c, day, 0, WaterExperience, levels)
	res.Crop = plot.Crop().Name()
	return res, nil
}

// Fertilize buys and applies one fertilizer to the crop at c
func (f *Farmer) Fertilize(fm *farm.Farm, c domain.Coord, day int) (domain.ActionResult, error) {
	plot, err := fm.Plot(c.Row, c.Col)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if !f.CanAfford(FertilizerCost) {
		return domain.ActionResult{}, domain.ErrInsufficientFunds
	}
	if err := plot.Fertilize(day); err != nil {
		return domain.ActionResult{}, err
	}
	f.spend(FertilizerCost)
	levels := f.addExperience(FertilizeExperience)
	res := f.result(domain.VerbFertilize, &c, day, -FertilizerCost, FertilizeExperience, levels)
	res.Crop = plot.Crop().Name()
	return res, nil
}

// Harvest sells the mature crop at c and clears the plot
func (f *Farmer) Harvest(fm *farm.Farm, c domain.Coord, day int, src utils.IntSource) (domain.ActionResult, error) {
	plot, err := fm.Plot(c.Row, c.Col)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if err := plot.HarvestCheck(day); err != nil {
		return domain.ActionResult{}, err
	}

	bonus := f.title.Spec()
	harvest := plot.Crop().ComputeHarvestValue(src, bonus.WaterBonusCap, bonus.FertilizerBonusCap, bonus.EarningsBonus)
	f.coins += harvest.Total
	levels := f.addExperience(harvest.Experience)
	plot.Reset()

	res := f.result(domain.VerbHarvest, &c, day, harvest.Total, harvest.Experience, levels)
	res.Crop = harvest.Crop
	res.Harvest = &harvest
	return res, nil
}

// Shovel digs up whatever grows at c, withered or not, and leaves the plot unplowed
func (f *Farmer) Shovel(fm *farm.Farm, c domain.Coord, day int) (domain.ActionResult, error) {
	plot, err := fm.Plot(c.Row, c.Col)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if !f.CanAfford(ShovelCost) {
		return domain.ActionResult{}, domain.ErrInsufficientFunds
	}

	var cropName string
	if plot.HasCrop() {
		cropName = plot.Crop().Name()
	}
	plot.Reset()
	f.spend(ShovelCost)
	levels := f.addExperience(ShovelExperience)

	res := f.result(domain.VerbShovel, &c, day, -ShovelCost, ShovelExperience, levels)
	res.Crop = cropName
	return res, nil
}

// Pickaxe breaks the rock at c
func (f *Farmer) Pickaxe(fm *farm.Farm, c domain.Coord, day int) (domain.ActionResult, error) {
	plot, err := fm.Plot(c.Row, c.Col)
	if err != nil {
		return domain.ActionResult{}, err
	}
	if !f.CanAfford(PickaxeCost) {
		return domain.ActionResult{}, domain.ErrInsufficientFunds
	}
	if err := plot.RemoveRock(); err != nil {
		return domain.ActionResult{}, err
	}
	f.spend(PickaxeCost)
	levels := f.addExperience(PickaxeExperience)
	return f.result(domain.VerbPickaxe, &c, day, -PickaxeCost, PickaxeExperience, levels), nil
}
