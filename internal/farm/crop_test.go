package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MyFarm_Go/internal/domain"
)

func TestCrop_MaturityWindow(t *testing.T) {
	c := NewCrop(cropSpec(t, domain.CropTurnip), 1)

	assert.False(t, c.IsMature(1))
	assert.False(t, c.IsMature(2))
	assert.True(t, c.IsMature(3))
	assert.False(t, c.IsMature(4), "a crop is mature on its harvest day only")
	assert.Equal(t, 3, c.HarvestDay())
}

func TestCrop_IsWithered(t *testing.T) {
	tests := []struct {
		name       string
		water      int
		fertilizer int
		day        int
		expected   bool
	}{
		{name: "before maturity never withers", water: 0, day: 2, expected: false},
		{name: "unwatered at maturity withers", water: 0, day: 3, expected: true},
		{name: "watered enough at maturity survives", water: 1, day: 3, expected: false},
		{name: "past maturity always withers", water: 2, fertilizer: 1, day: 4, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCrop(cropSpec(t, domain.CropTurnip), 1)
			for i := 0; i < tt.water; i++ {
				c.AddWater()
			}
			for i := 0; i < tt.fertilizer; i++ {
				c.AddFertilizer()
			}
			assert.Equal(t, tt.expected, c.IsWithered(tt.day))
		})
	}
}

func TestCrop_IsWithered_FertilizerMinimum(t *testing.T) {
	c := NewCrop(cropSpec(t, domain.CropPotato), 1)
	for i := 0; i < 3; i++ {
		c.AddWater()
	}
	assert.True(t, c.IsWithered(6), "potato needs one fertilizer")

	c.AddFertilizer()
	assert.False(t, c.IsWithered(6))
}

func TestCrop_ComputeHarvestValue(t *testing.T) {
	tests := []struct {
		name           string
		kind           domain.CropKind
		water          int
		fertilizer     int
		src            fixedSource
		waterCap       int
		fertilizerCap  int
		earnings       int
		wantUnits      int
		wantBase       int
		wantWater      int
		wantFertilizer int
		wantTotal      int
	}{
		{
			name: "zero water gives a negative bonus", kind: domain.CropTurnip,
			src: lowRoll, wantUnits: 1, wantBase: 6, wantWater: -1, wantTotal: 5,
		},
		{
			name: "zero water with two units", kind: domain.CropTurnip,
			src: highRoll, wantUnits: 2, wantBase: 12, wantWater: -2, wantTotal: 10,
		},
		{
			name: "single watering is neutral", kind: domain.CropTurnip, water: 1,
			src: lowRoll, wantUnits: 1, wantBase: 6, wantTotal: 6,
		},
		{
			name: "full care", kind: domain.CropTurnip, water: 2, fertilizer: 1,
			src: highRoll, wantUnits: 2, wantBase: 12, wantWater: 2, wantFertilizer: 6, wantTotal: 20,
		},
		{
			name: "extra water is capped at the maximum", kind: domain.CropTurnip, water: 5, fertilizer: 1,
			src: highRoll, wantUnits: 2, wantBase: 12, wantWater: 2, wantFertilizer: 6, wantTotal: 20,
		},
		{
			name: "title raises the water cap", kind: domain.CropTurnip, water: 5,
			src: highRoll, waterCap: 2, wantUnits: 2, wantBase: 12, wantWater: 7, wantTotal: 19,
		},
		{
			name: "earnings bonus raises the unit price", kind: domain.CropTurnip, water: 1,
			src: lowRoll, earnings: 4, wantUnits: 1, wantBase: 10, wantTotal: 10,
		},
		{
			name: "flowers get ten percent more", kind: domain.CropRose, water: 1,
			src: lowRoll, wantUnits: 1, wantBase: 5, wantTotal: 6,
		},
		{
			name: "flower with full care", kind: domain.CropRose, water: 2, fertilizer: 1,
			src: lowRoll, wantUnits: 1, wantBase: 5, wantWater: 1, wantFertilizer: 3, wantTotal: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCrop(cropSpec(t, tt.kind), 1)
			for i := 0; i < tt.water; i++ {
				c.AddWater()
			}
			for i := 0; i < tt.fertilizer; i++ {
				c.AddFertilizer()
			}

			got := c.ComputeHarvestValue(tt.src, tt.waterCap, tt.fertilizerCap, tt.earnings)
			assert.Equal(t, tt.wantUnits, got.ProducedUnits)
			assert.Equal(t, tt.wantBase, got.BaseTotal)
			assert.Equal(t, tt.wantWater, got.WaterBonus)
			assert.Equal(t, tt.wantFertilizer, got.FertilizerBonus)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Equal(t, c.Spec().ExperienceReward, got.Experience)
		})
	}
}

func TestCrop_ComputeHarvestValue_LeavesCountersAlone(t *testing.T) {
	c := NewCrop(cropSpec(t, domain.CropCarrot), 1)
	c.AddWater()
	c.ComputeHarvestValue(lowRoll, 0, 0, 0)
	assert.Equal(t, 1, c.WaterCount())
	assert.Equal(t, 0, c.FertilizerCount())
}
