package chemistry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemtools/latticelab/errors"
)

func TestCompoundByName(t *testing.T) {
	c, err := CompoundByName("AlCl3")
	require.NoError(t, err)
	assert.Equal(t, 5492, c.LatticeEnthalpy)
	assert.Equal(t, 3, c.ChargeProduct())
	assert.Equal(t, "AlCl₃", c.Formula)
}

func TestCompoundByNameUnknown(t *testing.T) {
	_, err := CompoundByName("CsI")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownCompound))
}

func TestCompoundTable(t *testing.T) {
	all := Compounds()
	require.Len(t, all, 7)

	// Spot-check the table against the published reference values.
	tests := []struct {
		name     string
		enthalpy int
		product  int
		radiiSum int
	}{
		{"LiCl", 853, 1, 257},
		{"NaCl", 786, 1, 283},
		{"Na2O", 2478, 2, 242},
		{"K2O", 2238, 2, 278},
		{"MgS", 3406, 4, 256},
		{"CaCl2", 2255, 2, 281},
		{"AlCl3", 5492, 3, 235},
	}
	for _, tc := range tests {
		c, err := CompoundByName(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.enthalpy, c.LatticeEnthalpy, tc.name)
		assert.Equal(t, tc.product, c.ChargeProduct(), tc.name)
		assert.Equal(t, tc.radiiSum, c.RadiusSum(), tc.name)
	}
}

func TestCompoundsReturnsCopy(t *testing.T) {
	all := Compounds()
	all[0].LatticeEnthalpy = -1

	again, err := CompoundByName("LiCl")
	require.NoError(t, err)
	assert.Equal(t, 853, again.LatticeEnthalpy, "mutating the returned slice must not affect the table")
}

func TestBornHaberCumulativeEnergies(t *testing.T) {
	steps := BornHaberSteps()
	require.Len(t, steps, 6)

	want := []int{0, 107, 229, 725, 376, -410}
	for i, s := range steps {
		assert.Equal(t, want[i], s.Cumulative, "step %d (%s)", i, s.Name)
	}

	// The final level is the enthalpy of formation of NaCl.
	assert.Equal(t, -410, steps[5].Cumulative)
	assert.Equal(t, "NaCl(s)", steps[5].Species)
}

func TestBornHaberStepOrder(t *testing.T) {
	steps := BornHaberSteps()
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"Start", "Sublimation", "Dissociation",
		"Ionization", "Electron Affinity", "Lattice Formation",
	}, names)
}

func TestCrystalStructures(t *testing.T) {
	structures := CrystalStructures()
	require.Len(t, structures, 4)

	tests := []struct {
		name         string
		coordination string
		madelung     float64
	}{
		{"Rock Salt", "6:6", 1.748},
		{"Cesium Chloride", "8:8", 1.763},
		{"Fluorite", "8:4", 2.519},
		{"Zinc Blende", "4:4", 1.638},
	}
	for _, tc := range tests {
		s, err := StructureByName(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.coordination, s.Coordination, tc.name)
		assert.InDelta(t, tc.madelung, s.Madelung, 1e-9, tc.name)
	}

	_, err := StructureByName("Wurtzite")
	assert.True(t, errors.Is(err, errors.ErrCodeUnknownStructure))
}

func TestCovalentCharacter(t *testing.T) {
	assert.InDelta(t, 50.0, CovalentCharacter(1.0, 1.0), 1e-9)
	assert.InDelta(t, 200.0, CovalentCharacter(2.0, 2.0), 1e-9)
	assert.InDelta(t, 0.5, CovalentCharacter(0.1, 0.1), 1e-9)

	assert.Equal(t, PredominantlyIonic, ClassifyCharacter(19.9))
	assert.Equal(t, MixedIonicCovalent, ClassifyCharacter(20))
	assert.Equal(t, MixedIonicCovalent, ClassifyCharacter(49.9))
	assert.Equal(t, PredominantlyCovalent, ClassifyCharacter(50))
}

func TestCompoundNotes(t *testing.T) {
	for _, name := range CompoundNames() {
		assert.NotEmpty(t, CompoundNotes(name), "every compound should carry analysis notes: %s", name)
	}
	assert.Nil(t, CompoundNotes("CsI"))
}
