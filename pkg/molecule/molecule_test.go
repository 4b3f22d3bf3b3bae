package molecule_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keiran-rowell/hartee-fock/pkg/molecule"
)

func TestReadXYZ(t *testing.T) {
	atoms, err := molecule.ReadXYZ(filepath.Join("testdata", "h2.xyz"))
	require.NoError(t, err)
	require.Len(t, atoms, 2)

	assert.Equal(t, "H", atoms[0].Symbol)
	assert.Equal(t, 1.0, atoms[0].Charge)
	assert.Equal(t, [3]float64{0, 0, 1.4}, atoms[1].Coords)

	t.Run("count mismatch", func(t *testing.T) {
		_, err := molecule.ReadXYZ(filepath.Join("testdata", "bad_count.xyz"))
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := molecule.ReadXYZ(filepath.Join("testdata", "nope.xyz"))
		require.Error(t, err)
	})
}

func TestChargeOf(t *testing.T) {
	z, err := molecule.ChargeOf("He")
	require.NoError(t, err)
	assert.Equal(t, 2.0, z)

	_, err = molecule.ChargeOf("Xx")
	require.Error(t, err)
}

func TestNumElectrons(t *testing.T) {
	atoms := []molecule.Atom{
		{Symbol: "H", Charge: 1},
		{Symbol: "H", Charge: 1},
	}
	assert.Equal(t, 2, molecule.NumElectrons(atoms))
}

func TestNuclearRepulsion(t *testing.T) {
	atoms := []molecule.Atom{
		{Charge: 1, Coords: [3]float64{0, 0, 0}},
		{Charge: 1, Coords: [3]float64{0, 0, 1.4}},
	}
	assert.InDelta(t, 1/1.4, molecule.NuclearRepulsion(atoms), 1e-12)

	t.Run("single atom has none", func(t *testing.T) {
		assert.Zero(t, molecule.NuclearRepulsion(atoms[:1]))
	})
}
