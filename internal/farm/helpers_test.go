package farm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/osse101/MyFarm_Go/internal/domain"
)

// fixedSource returns v clamped to n-1, so 0 rolls the minimum and a large v the maximum
type fixedSource struct{ v int }

func (f fixedSource) IntN(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

var (
	lowRoll  = fixedSource{0}
	highRoll = fixedSource{1 << 20}
)

func cropSpec(t *testing.T, kind domain.CropKind) domain.CropSpec {
	t.Helper()
	spec, ok := domain.LookupCrop(kind)
	require.True(t, ok, "crop %v missing from catalog", kind)
	return spec
}

// plantedPlot returns a plowed plot holding kind, planted on day
func plantedPlot(t *testing.T, kind domain.CropKind, day int) *Plot {
	t.Helper()
	p := NewPlot()
	require.NoError(t, p.Plow(day))
	require.NoError(t, p.CheckPlantable())
	p.SetCrop(NewCrop(cropSpec(t, kind), day))
	return p
}
