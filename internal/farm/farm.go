package farm

import (
	"github.com/osse101/MyFarm_Go/internal/domain"
)

// Farm is a fixed grid of plots. The grid is small, so every aggregate query is a
// full scan.
type Farm struct {
	rows  int
	cols  int
	plots [][]*Plot
}

// New creates a rows x cols farm of unplowed plots
func New(rows, cols int) *Farm {
	plots := make([][]*Plot, rows)
	for r := range plots {
		plots[r] = make([]*Plot, cols)
		for c := range plots[r] {
			plots[r][c] = NewPlot()
		}
	}
	return &Farm{rows: rows, cols: cols, plots: plots}
}

// NewWithRocks creates a farm and drops a rock on every listed coordinate.
// Out-of-range coordinates are ignored; Layout.Validate rejects them earlier.
func NewWithRocks(rows, cols int, rocks []domain.Coord) *Farm {
	f := New(rows, cols)
	for _, rc := range rocks {
		if f.IsValid(rc.Row, rc.Col) {
			f.plots[rc.Row][rc.Col] = NewRockPlot()
		}
	}
	return f
}

func (f *Farm) Rows() int { return f.rows }
func (f *Farm) Cols() int { return f.cols }

// IsValid reports whether row and col are both inside the grid
func (f *Farm) IsValid(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// Plot returns the plot at (row, col)
func (f *Farm) Plot(row, col int) (*Plot, error) {
	if !f.IsValid(row, col) {
		return nil, domain.ErrInvalidCoordinates
	}
	return f.plots[row][col], nil
}

// each visits every plot in row-major order until fn returns false
func (f *Farm) each(fn func(c domain.Coord, p *Plot) bool) {
	for r, row := range f.plots {
		for c, p := range row {
			if !fn(domain.Coord{Row: r, Col: c}, p) {
				return
			}
		}
	}
}

func (f *Farm) any(pred func(p *Plot) bool) bool {
	found := false
	f.each(func(_ domain.Coord, p *Plot) bool {
		if pred(p) {
			found = true
			return false
		}
		return true
	})
	return found
}

// AnyPlowable is true when some plot is unplowed and free of rocks
func (f *Farm) AnyPlowable() bool {
	return f.any(func(p *Plot) bool {
		return !p.plowed && !p.hasRock
	})
}

// AnyPlantable is true when some plot would pass CheckPlantable
func (f *Farm) AnyPlantable() bool {
	return f.any(func(p *Plot) bool {
		return p.CheckPlantable() == nil
	})
}

// AnyGrowingUnmatured is true when some crop is neither withered nor mature on day
func (f *Farm) AnyGrowingUnmatured(day int) bool {
	return f.any(func(p *Plot) bool {
		return p.crop != nil && !p.WitherCheck(day) && !p.crop.IsMature(day)
	})
}

// AnyHarvestable is true when some plot would pass HarvestCheck on day
func (f *Farm) AnyHarvestable(day int) bool {
	return f.any(func(p *Plot) bool {
		return p.HarvestCheck(day) == nil
	})
}

// AnyRock is true when some plot has a rock
func (f *Farm) AnyRock() bool {
	return f.any(func(p *Plot) bool {
		return p.hasRock
	})
}

// AllWithered is true when every plot holds a withered crop
func (f *Farm) AllWithered(day int) bool {
	return !f.any(func(p *Plot) bool {
		return !p.WitherCheck(day)
	})
}

// NeighborsAllEmpty applies the tree rule: every in-bounds Moore neighbor of
// (row, col) must have no rock and no crop. Out-of-bounds neighbors count as empty.
func (f *Farm) NeighborsAllEmpty(row, col int) bool {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if !f.IsValid(r, c) {
				continue
			}
			if !f.plots[r][c].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// Harvestable lists the coordinates of every crop ready on day
func (f *Farm) Harvestable(day int) []domain.Coord {
	var out []domain.Coord
	f.each(func(c domain.Coord, p *Plot) bool {
		if p.HarvestCheck(day) == nil {
			out = append(out, c)
		}
		return true
	})
	return out
}

// RefreshWither latches the wither state of every plot for day and returns the
// coordinates that withered on this call.
func (f *Farm) RefreshWither(day int) []domain.Coord {
	var newly []domain.Coord
	f.each(func(c domain.Coord, p *Plot) bool {
		was := p.withered
		if p.WitherCheck(day) && !was {
			newly = append(newly, c)
		}
		return true
	})
	return newly
}

// Glyphs renders the farm as one rune slice per row
func (f *Farm) Glyphs(day int) [][]rune {
	out := make([][]rune, f.rows)
	for r, row := range f.plots {
		out[r] = make([]rune, f.cols)
		for c, p := range row {
			out[r][c] = p.Glyph(day)
		}
	}
	return out
}
