package yeast

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizza_dough/internal/models"
)

func referenceStrain(t *testing.T) Model {
	t.Helper()
	m, err := Lookup(StrainCECT10131)
	require.NoError(t, err)
	return m
}

func TestSpecificGrowthRate_CardinalPoints(t *testing.T) {
	m := referenceStrain(t)

	assert.InDelta(t, m.MaximumSpecificGrowthRate, m.SpecificGrowthRate(m.TemperatureOpt), 1e-12)
	assert.Zero(t, m.SpecificGrowthRate(m.TemperatureMin))
	assert.Zero(t, m.SpecificGrowthRate(m.TemperatureMax))
	assert.Zero(t, m.SpecificGrowthRate(m.TemperatureMin-5))
	assert.Zero(t, m.SpecificGrowthRate(m.TemperatureMax+5))

	// rises towards the optimum, falls past it
	assert.Less(t, m.SpecificGrowthRate(20), m.SpecificGrowthRate(30))
	assert.Greater(t, m.SpecificGrowthRate(42), m.SpecificGrowthRate(44))
}

func TestSpecificGrowthRate_LeaveningTemperatures(t *testing.T) {
	m := referenceStrain(t)

	assert.InDelta(t, 0.440642, m.SpecificGrowthRate(35), 1e-6)
	assert.InDelta(t, 0.232747, m.SpecificGrowthRate(25), 1e-6)
	assert.Greater(t, m.SpecificGrowthRate(5), 0.)
}

func TestVolumeExpansionRatio(t *testing.T) {
	m := referenceStrain(t)

	t.Run("zero outside the domain", func(t *testing.T) {
		assert.Zero(t, m.VolumeExpansionRatio(0, 1, 2, 30, 1))
		assert.Zero(t, m.VolumeExpansionRatio(-1, 1, 2, 30, 1))
		assert.Zero(t, m.VolumeExpansionRatio(5, 1, 0, 30, 1))
		assert.Zero(t, m.VolumeExpansionRatio(5, 1, 2, 30, 0))
		assert.Zero(t, m.VolumeExpansionRatio(5, 1, 2, m.TemperatureMax, 1))
	})

	t.Run("tends to alpha", func(t *testing.T) {
		assert.InDelta(t, 2.5, m.VolumeExpansionRatio(500, 1, 2.5, 30, 1), 1e-9)
	})

	t.Run("gompertz value", func(t *testing.T) {
		mu := m.SpecificGrowthRate(30)
		want := 2. * math.Exp(-math.Exp(mu*math.E*(1.-3.)/2.+1))
		assert.InDelta(t, want, m.VolumeExpansionRatio(3, 1, 2, 30, 1), 1e-12)
	})

	t.Run("infinite lag yields zero", func(t *testing.T) {
		assert.Zero(t, m.VolumeExpansionRatio(3, EstimatedLag(0), 2, 30, 1))
	})

	t.Run("monotone in time", func(t *testing.T) {
		prev := 0.
		for h := 0.5; h < 24; h += 0.5 {
			cur := m.VolumeExpansionRatio(h, 0.5, 2.97, 28, 1)
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
	})
}

func TestKinetics(t *testing.T) {
	assert.True(t, math.IsInf(EstimatedLag(0), 1))
	assert.Greater(t, EstimatedLag(0.001), EstimatedLag(0.01))

	assert.Zero(t, MaximumVolumeExpansionRatio(0))
	assert.InDelta(t, 2.97, MaximumVolumeExpansionRatio(0.011), 1e-3)
	assert.Equal(t, 2.97, MaximumVolumeExpansionRatio(0.05))
	assert.Less(t, MaximumVolumeExpansionRatio(0.005), MaximumVolumeExpansionRatio(0.01))
}

func TestModelValidate(t *testing.T) {
	for _, name := range Strains() {
		m, err := Lookup(name)
		require.NoError(t, err)
		assert.NoError(t, m.Validate(), name)
	}

	bad := Model{Name: "x", TemperatureMin: 30, TemperatureOpt: 20, TemperatureMax: 40, MaximumSpecificGrowthRate: 1}
	assert.True(t, errors.Is(bad.Validate(), models.ErrValidation))

	badPH := Model{Name: "x", TemperatureMin: 1, TemperatureOpt: 20, TemperatureMax: 40, MaximumSpecificGrowthRate: 1, PHMin: 5, PHOpt: 4, PHMax: 8}
	assert.True(t, errors.Is(badPH.Validate(), models.ErrValidation))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("brettanomyces")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrValidation)

	m, err := Lookup("  SACCHAROMYCES_CEREVISIAE_BAKER ")
	require.NoError(t, err)
	assert.True(t, m.HasPHBounds())
}

func TestFreshEquivalence(t *testing.T) {
	tests := []struct {
		typ  Type
		want float64
	}{
		{TypeFresh, 1},
		{TypeActiveDry, 0.4},
		{TypeInstantDry, 1. / 3.},
		{"idy", 1. / 3.},
	}
	for _, tt := range tests {
		got, err := tt.typ.FreshEquivalence()
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, string(tt.typ))
	}

	_, err := Type("sourdough").FreshEquivalence()
	assert.ErrorIs(t, err, models.ErrValidation)
}
