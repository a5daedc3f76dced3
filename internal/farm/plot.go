package farm

import (
	"unicode"

	"github.com/osse101/MyFarm_Go/internal/domain"
)

// Plot is one cell of the farm. It holds at most one crop and enforces which
// actions are legal in its current state.
//
// A plot with a rock can never be plowed or planted. Harvest and shovel both
// reset plowed, crop, and the wither latch together.
type Plot struct {
	crop     *Crop
	plowed   bool
	hasRock  bool
	withered bool // sticky until Reset
}

// NewPlot returns an unplowed, empty plot
func NewPlot() *Plot {
	return &Plot{}
}

// NewRockPlot returns a plot blocked by a rock
func NewRockPlot() *Plot {
	return &Plot{hasRock: true}
}

func (p *Plot) Crop() *Crop    { return p.crop }
func (p *Plot) HasCrop() bool  { return p.crop != nil }
func (p *Plot) IsPlowed() bool { return p.plowed }
func (p *Plot) HasRock() bool  { return p.hasRock }

// IsEmpty is true when there is neither a rock nor a crop. Plowing is ignored.
func (p *Plot) IsEmpty() bool {
	return !p.hasRock && p.crop == nil
}

// WitherCheck reports whether the plot holds a withered crop. Once observed,
// the withered state is latched until Reset.
func (p *Plot) WitherCheck(day int) bool {
	if p.withered {
		return true
	}
	if p.crop != nil && p.crop.IsWithered(day) {
		p.withered = true
		return true
	}
	return false
}

// Plow prepares the plot for planting
func (p *Plot) Plow(day int) error {
	if p.hasRock {
		return domain.ErrHasRock
	}
	if p.WitherCheck(day) {
		return domain.ErrCropWithered
	}
	if p.crop != nil {
		return domain.ErrPlotOccupied
	}
	if p.plowed {
		return domain.ErrAlreadyPlowed
	}
	p.plowed = true
	return nil
}

// CheckPlantable validates the plot can take a seed. It does not attach one.
func (p *Plot) CheckPlantable() error {
	if p.hasRock {
		return domain.ErrHasRock
	}
	if p.crop != nil {
		return domain.ErrPlotOccupied
	}
	if !p.plowed {
		return domain.ErrNotPlowed
	}
	return nil
}

// SetCrop attaches a crop unconditionally. Callers check plantability and funds first.
func (p *Plot) SetCrop(c *Crop) {
	p.crop = c
}

// Water adds one watering to the growing crop
func (p *Plot) Water(day int) error {
	if err := p.checkCare(day); err != nil {
		return err
	}
	p.crop.AddWater()
	return nil
}

// Fertilize adds one fertilizer to the growing crop
func (p *Plot) Fertilize(day int) error {
	if err := p.checkCare(day); err != nil {
		return err
	}
	p.crop.AddFertilizer()
	return nil
}

func (p *Plot) checkCare(day int) error {
	if !p.plowed {
		return domain.ErrNotPlowed
	}
	if p.crop == nil {
		return domain.ErrNoCrop
	}
	if p.crop.IsMature(day) {
		return domain.ErrAlreadyMatured
	}
	if p.WitherCheck(day) {
		return domain.ErrCropWithered
	}
	return nil
}

// HarvestCheck validates the crop can be harvested on day
func (p *Plot) HarvestCheck(day int) error {
	if p.crop == nil {
		return domain.ErrNoCrop
	}
	if p.WitherCheck(day) {
		return domain.ErrCropWithered
	}
	if !p.crop.IsMature(day) {
		return domain.ErrNotMaturedYet
	}
	return nil
}

// RemoveRock clears the rock
func (p *Plot) RemoveRock() error {
	if !p.hasRock {
		return domain.ErrNoRock
	}
	p.hasRock = false
	return nil
}

// Reset returns the plot to unplowed and empty. Rocks are untouched.
func (p *Plot) Reset() {
	p.plowed = false
	p.crop = nil
	p.withered = false
}

// State derives the plot state on day
func (p *Plot) State(day int) domain.PlotState {
	switch {
	case p.hasRock:
		return domain.PlotRocked
	case p.crop == nil && !p.plowed:
		return domain.PlotUnplowed
	case p.crop == nil:
		return domain.PlotPlowedEmpty
	case p.WitherCheck(day):
		return domain.PlotWithered
	case p.crop.IsMature(day):
		return domain.PlotMature
	default:
		return domain.PlotGrowing
	}
}

// Glyph is the single-character status of the plot: lowercase crop letter while
// growing, uppercase when mature.
func (p *Plot) Glyph(day int) rune {
	switch p.State(day) {
	case domain.PlotRocked:
		return domain.GlyphRock
	case domain.PlotUnplowed:
		return domain.GlyphUnplowed
	case domain.PlotPlowedEmpty:
		return domain.GlyphPlowed
	case domain.PlotWithered:
		return domain.GlyphWithered
	case domain.PlotMature:
		return unicode.ToUpper(p.crop.spec.Glyph)
	default:
		return p.crop.spec.Glyph
	}
}
