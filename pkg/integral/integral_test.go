package integral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keiran-rowell/hartee-fock/pkg/basis"
	"github.com/keiran-rowell/hartee-fock/pkg/integral"
	"github.com/keiran-rowell/hartee-fock/pkg/molecule"
)

// h2STO3G is the standard two-function test system: one contracted
// s-function per hydrogen, 1.4 bohr apart.
func h2STO3G() ([]basis.Function, []molecule.Atom) {
	centers := [][3]float64{{0, 0, 0}, {0, 0, 1.4}}
	funcs := basis.ForAtoms(basis.STO3G(), centers)
	atoms := []molecule.Atom{
		{Symbol: "H", Coords: centers[0], Charge: 1},
		{Symbol: "H", Coords: centers[1], Charge: 1},
	}
	return funcs, atoms
}

func TestOverlapPrimitiveSelfNormalization(t *testing.T) {
	r := [3]float64{0.3, -1.2, 2.5}
	for _, alpha := range []float64{0.01, 0.168855404, 1.0, 3.425250914, 42.0} {
		assert.InDelta(t, 1.0, integral.OverlapPrimitive(alpha, alpha, r, r), 1e-10)
	}
}

func TestBoys(t *testing.T) {
	t.Run("zeroth order matches gamma form", func(t *testing.T) {
		for _, x := range []float64{1e-6, 0.1, 1, 5, 40} {
			assert.InDelta(t, integral.Boys0(x), integral.BoysN(0, x), 1e-12)
		}
	})

	t.Run("limit at origin", func(t *testing.T) {
		assert.Equal(t, 1.0, integral.Boys0(0))
		assert.Equal(t, 1.0/3.0, integral.BoysN(1, 0))
		// Approaching the cutoff from above stays within 1e-8 of the limit.
		for _, x := range []float64{1e-10, 1e-9, 1e-8} {
			assert.InDelta(t, 1.0, integral.Boys0(x), 1e-8)
		}
	})
}

func TestNuclearPrimitiveCutoffContinuity(t *testing.T) {
	// Nudge the nucleus so the product-center distance straddles the
	// cutoff; both branches must agree at the seam.
	alpha, beta := 1.3, 0.7
	ra := [3]float64{0, 0, 0}
	// |P−R_nuc|² = 1.21e-10, just over the 1e-10 cutoff.
	above := integral.NuclearPrimitive(alpha, beta, ra, ra, [3]float64{0, 0, 1.1e-5})
	limit := integral.NuclearPrimitive(alpha, beta, ra, ra, ra)
	assert.InDelta(t, limit, above, 1e-8)
}

func TestERIPrimitiveCutoffContinuity(t *testing.T) {
	alpha := 0.9
	ra := [3]float64{0, 0, 0}
	// T = ρ·|P−Q|² ≈ 2e-10, just over the 1e-10 cutoff.
	shifted := [3]float64{0, 0, 1.5e-5}
	general := integral.ERIPrimitive(alpha, alpha, alpha, alpha, ra, ra, shifted, shifted)
	limit := integral.ERIPrimitive(alpha, alpha, alpha, alpha, ra, ra, ra, ra)
	assert.InDelta(t, limit, general, 1e-8)
}

func TestBuildOverlapKinetic(t *testing.T) {
	funcs, _ := h2STO3G()
	S, T, err := integral.BuildOverlapKinetic(funcs)
	require.NoError(t, err)

	// Reference values for H2/STO-3G at 1.4 bohr.
	assert.InDelta(t, 1.0, S.At(0, 0), 1e-4)
	assert.InDelta(t, 0.6593, S.At(0, 1), 1e-3)
	assert.InDelta(t, 0.7600, T.At(0, 0), 1e-3)
	assert.InDelta(t, 0.2365, T.At(0, 1), 1e-3)

	assert.Equal(t, S.At(0, 1), S.At(1, 0))
	assert.Equal(t, T.At(0, 1), T.At(1, 0))
}

func TestBuildNuclear(t *testing.T) {
	funcs, atoms := h2STO3G()
	V, err := integral.BuildNuclear(funcs, atoms)
	require.NoError(t, err)

	assert.InDelta(t, -1.8804, V.At(0, 0), 5e-3)
	// The two diagonal entries are physically equal, but their per-atom
	// terms are summed in opposite orders, so only near-equality holds.
	assert.InDelta(t, V.At(0, 0), V.At(1, 1), 1e-12)
	assert.Equal(t, V.At(0, 1), V.At(1, 0))
	assert.Less(t, V.At(0, 1), 0.0)
}

func TestBuildERI(t *testing.T) {
	funcs, _ := h2STO3G()
	eri, err := integral.BuildERI(funcs, 0)
	require.NoError(t, err)

	// Reference values for H2/STO-3G at 1.4 bohr, chemist's notation.
	assert.InDelta(t, 0.7746, eri.At(0, 0, 0, 0), 2e-3)
	assert.InDelta(t, 0.5697, eri.At(0, 0, 1, 1), 2e-3)
	assert.InDelta(t, 0.4441, eri.At(1, 0, 0, 0), 2e-3)
	assert.InDelta(t, 0.2970, eri.At(1, 0, 1, 0), 2e-3)
}

func TestERIPermutationalSymmetry(t *testing.T) {
	// Deliberately lopsided three-function basis so no symmetry holds
	// by accident.
	funcs := []basis.Function{
		{Center: [3]float64{0, 0, 0}, Exponents: []float64{1.9, 0.4}, Coefficients: []float64{0.3, 0.8}},
		{Center: [3]float64{0.5, -0.3, 1.1}, Exponents: []float64{0.9}, Coefficients: []float64{1.0}},
		{Center: [3]float64{-0.2, 0.7, 0.4}, Exponents: []float64{2.5, 0.6}, Coefficients: []float64{0.6, 0.5}},
	}
	eri, err := integral.BuildERI(funcs, 2)
	require.NoError(t, err)

	n := eri.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					v := eri.At(i, j, k, l)
					for _, w := range []float64{
						eri.At(j, i, k, l),
						eri.At(i, j, l, k),
						eri.At(j, i, l, k),
						eri.At(k, l, i, j),
						eri.At(l, k, i, j),
						eri.At(k, l, j, i),
						eri.At(l, k, j, i),
					} {
						assert.InDelta(t, v, w, 1e-10)
					}
				}
			}
		}
	}
}

func TestBuildERIWorkerCountInvariance(t *testing.T) {
	funcs, _ := h2STO3G()
	serial, err := integral.BuildERI(funcs, 1)
	require.NoError(t, err)
	parallel, err := integral.BuildERI(funcs, 4)
	require.NoError(t, err)

	n := serial.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					// Each entry is summed by exactly one worker in a
					// fixed order, so the results are bit-identical.
					assert.Equal(t, serial.At(i, j, k, l), parallel.At(i, j, k, l))
				}
			}
		}
	}
}

func TestBuildersRejectInvalidBasis(t *testing.T) {
	bad := []basis.Function{{
		Center:       [3]float64{0, 0, 0},
		Exponents:    []float64{1.0, 2.0},
		Coefficients: []float64{1.0},
	}}
	atoms := []molecule.Atom{{Charge: 1}}

	var ibe *basis.InvalidBasisError

	_, _, err := integral.BuildOverlapKinetic(bad)
	require.ErrorAs(t, err, &ibe)

	_, err = integral.BuildNuclear(bad, atoms)
	require.ErrorAs(t, err, &ibe)

	_, err = integral.BuildERI(bad, 0)
	require.ErrorAs(t, err, &ibe)
}
