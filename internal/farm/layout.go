package farm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/MyFarm_Go/internal/domain"
	"github.com/osse101/MyFarm_Go/internal/utils"
)

// Layout describes the starting shape of a farm
type Layout struct {
	Rows  int            `yaml:"rows"`
	Cols  int            `yaml:"cols"`
	Rocks []domain.Coord `yaml:"rocks"`
}

// LoadLayout reads and validates a YAML layout file
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadLayoutFailed, err)
	}
	return ParseLayout(data)
}

// ParseLayout decodes a YAML layout. Missing dimensions fall back to the defaults.
func ParseLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf(ErrMsgParseLayoutFailed, err)
	}
	if l.Rows == 0 {
		l.Rows = DefaultRows
	}
	if l.Cols == 0 {
		l.Cols = DefaultCols
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks the dimensions and that every rock is on the grid
func (l *Layout) Validate() error {
	if l.Rows < 1 || l.Rows > MaxSide || l.Cols < 1 || l.Cols > MaxSide {
		return fmt.Errorf(ErrMsgInvalidDimensions, l.Rows, l.Cols, MaxSide)
	}
	for _, rc := range l.Rocks {
		if rc.Row < 0 || rc.Row >= l.Rows || rc.Col < 0 || rc.Col >= l.Cols {
			return fmt.Errorf(ErrMsgRockOutOfBounds, rc, l.Rows, l.Cols)
		}
	}
	return nil
}

// RandomLayout scatters rockCount rocks on distinct plots
func RandomLayout(rows, cols, rockCount int, src utils.IntSource) (*Layout, error) {
	l := &Layout{Rows: rows, Cols: cols}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	total := rows * cols
	if rockCount < 0 || rockCount > total {
		return nil, fmt.Errorf(ErrMsgTooManyRocks, rockCount, total)
	}

	// partial Fisher-Yates over the flattened grid
	cells := make([]int, total)
	for i := range cells {
		cells[i] = i
	}
	for i := 0; i < rockCount; i++ {
		j := utils.RandomIntFrom(src, i, total-1)
		cells[i], cells[j] = cells[j], cells[i]
		l.Rocks = append(l.Rocks, domain.Coord{Row: cells[i] / cols, Col: cells[i] % cols})
	}
	return l, nil
}

// Build creates the farm described by the layout
func (l *Layout) Build() *Farm {
	return NewWithRocks(l.Rows, l.Cols, l.Rocks)
}
