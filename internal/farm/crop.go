package farm

import (
	"github.com/osse101/MyFarm_Go/internal/domain"
	"github.com/osse101/MyFarm_Go/internal/utils"
)

// Crop is one planted instance. Its CropSpec is fixed at planting; only the care
// counters change, and they only go up.
type Crop struct {
	spec            domain.CropSpec
	plantedDay      int
	waterCount      int
	fertilizerCount int
}

// NewCrop plants a crop of the given spec on plantedDay
func NewCrop(spec domain.CropSpec, plantedDay int) *Crop {
	return &Crop{spec: spec, plantedDay: plantedDay}
}

func (c *Crop) Spec() domain.CropSpec { return c.spec }
func (c *Crop) Name() string          { return c.spec.Name }
func (c *Crop) PlantedDay() int       { return c.plantedDay }
func (c *Crop) WaterCount() int       { return c.waterCount }
func (c *Crop) FertilizerCount() int  { return c.fertilizerCount }

// HarvestDay is the single day on which the crop can be harvested
func (c *Crop) HarvestDay() int {
	return c.plantedDay + c.spec.DaysToMaturity
}

// IsMature is true only on the harvest day itself
func (c *Crop) IsMature(day int) bool {
	return day-c.plantedDay == c.spec.DaysToMaturity
}

// IsWithered reports whether the crop is dead on day. On the harvest day a crop
// withers when either care requirement is unmet; any later day it is always withered.
func (c *Crop) IsWithered(day int) bool {
	elapsed := day - c.plantedDay
	switch {
	case elapsed == c.spec.DaysToMaturity:
		return c.waterCount < c.spec.WaterMin || c.fertilizerCount < c.spec.FertilizerMin
	case elapsed > c.spec.DaysToMaturity:
		return true
	default:
		return false
	}
}

// AddWater increments the water counter. Legality is the plot's job.
func (c *Crop) AddWater() {
	c.waterCount++
}

// AddFertilizer increments the fertilizer counter. Legality is the plot's job.
func (c *Crop) AddFertilizer() {
	c.fertilizerCount++
}

// ComputeHarvestValue rolls the yield and prices it. It does not modify the crop.
//
//	base       = units * (price + earningsBonus)
//	water      = round(base * 0.2 * (min(water, waterMax+waterCap) - 1))
//	fertilizer = round(base * 0.5 * min(fert, fertMax+fertCap))
//	total      = base + water + fertilizer, times 1.1 for flowers
//
// A crop watered zero times gets a negative water bonus.
func (c *Crop) ComputeHarvestValue(src utils.IntSource, waterBonusCap, fertilizerBonusCap, earningsBonus int) domain.HarvestResult {
	units := utils.RandomIntFrom(src, c.spec.ProductMin, c.spec.ProductMax)
	baseTotal := units * (c.spec.BasePrice + earningsBonus)

	effectiveWater := min(c.waterCount, c.spec.WaterMax+waterBonusCap)
	waterBonus := utils.RoundHalfUp(float32(baseTotal) * waterBonusRate * float32(effectiveWater-1))

	effectiveFertilizer := min(c.fertilizerCount, c.spec.FertilizerMax+fertilizerBonusCap)
	fertilizerBonus := utils.RoundHalfUp(float32(baseTotal) * fertilizerBonusRate * float32(effectiveFertilizer))

	total := baseTotal + waterBonus + fertilizerBonus
	if c.spec.Category == domain.CategoryFlower {
		total = utils.RoundHalfUp(float32(total) * flowerMultiplier)
	}

	return domain.HarvestResult{
		Crop:            c.spec.Name,
		ProducedUnits:   units,
		BaseTotal:       baseTotal,
		WaterBonus:      waterBonus,
		FertilizerBonus: fertilizerBonus,
		Total:           total,
		Experience:      c.spec.ExperienceReward,
	}
}
