package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MyFarm_Go/internal/domain"
)

func TestResolver_ResolveVerb(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		input string
		want  domain.Verb
	}{
		{"p", domain.VerbPlow},
		{"T", domain.VerbPlant},
		{"PLOW", domain.VerbPlow},
		{"  plant  ", domain.VerbPlant},
		{"pla", domain.VerbPlant},
		{"wat", domain.VerbWater},
		{"fertilizer", domain.VerbFertilize},
		{"harvst", domain.VerbHarvest},
		{"x", domain.VerbPickaxe},
		{"mine", domain.VerbPickaxe},
		{"e", domain.VerbAdvance},
		{"end-day", domain.VerbAdvance},
		{"r", domain.VerbRegister},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := r.ResolveVerb(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ResolveVerb_Unknown(t *testing.T) {
	r := NewResolver()

	for _, input := range []string{"", "z", "zzz", "pl", "9"} {
		t.Run(input, func(t *testing.T) {
			_, err := r.ResolveVerb(input)
			assert.ErrorIs(t, err, domain.ErrUnknownVerb)
		})
	}
}

func TestResolver_ResolveCrop(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		input string
		want  domain.CropKind
	}{
		{"t", domain.CropTurnip},
		{"u", domain.CropTulips},
		{"Turnips", domain.CropTulips},
		{"turnip", domain.CropTurnip},
		{"turnp", domain.CropTurnip},
		{"sunflwr", domain.CropSunflower},
		{"app", domain.CropApple},
		{"M", domain.CropMango},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := r.ResolveCrop(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, input := range []string{"tu", "x", "banana"} {
		t.Run("unknown "+input, func(t *testing.T) {
			_, err := r.ResolveCrop(input)
			assert.ErrorIs(t, err, domain.ErrUnknownCrop)
		})
	}
}

func TestResolver_Caches(t *testing.T) {
	r := NewResolver()

	_, err := r.ResolveVerb("Pla")
	require.NoError(t, err)
	assert.True(t, r.cache.Contains("verb:pla"))

	_, err = r.ResolveCrop("zzz")
	require.Error(t, err)
	assert.False(t, r.cache.Contains("crop:zzz"))

	// verbs and crops share letters without colliding
	_, err = r.ResolveCrop("p")
	require.NoError(t, err)
	v, err := r.ResolveVerb("p")
	require.NoError(t, err)
	assert.Equal(t, domain.VerbPlow, v)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "end day", normalize("  END__day "))
	assert.Equal(t, "", normalize("   "))
}
