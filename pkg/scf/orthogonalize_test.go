package scf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/keiran-rowell/hartee-fock/pkg/basis"
	"github.com/keiran-rowell/hartee-fock/pkg/integral"
	"github.com/keiran-rowell/hartee-fock/pkg/scf"
)

func TestLowdin(t *testing.T) {
	_, _, in := h2(t)
	X, err := scf.Lowdin(in.S)
	require.NoError(t, err)

	t.Run("whitens the overlap", func(t *testing.T) {
		var prod mat.Dense
		prod.Mul(X.T(), in.S)
		prod.Mul(&prod, X)
		n, _ := prod.Dims()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want := 0.0
				if i == j {
					want = 1.0
				}
				assert.InDelta(t, want, prod.At(i, j), 1e-10)
			}
		}
	})

	t.Run("symmetric transform", func(t *testing.T) {
		assert.InDelta(t, X.At(0, 1), X.At(1, 0), 1e-12)
	})
}

func TestLowdinLinearDependence(t *testing.T) {
	// Two copies of the same function on the same center make S
	// exactly singular.
	sh := basis.STO3G()
	funcs := basis.ForAtoms(sh, [][3]float64{{0, 0, 0}})
	funcs = append(funcs, funcs[0])

	S, _, err := integral.BuildOverlapKinetic(funcs)
	require.NoError(t, err)

	_, err = scf.Lowdin(S)
	var lde *scf.LinearDependenceError
	require.ErrorAs(t, err, &lde)
	assert.Less(t, lde.Eigenvalue, scf.OverlapEigenvalueFloor)
}

func TestSolveSurfacesLinearDependence(t *testing.T) {
	_, _, in := h2(t)
	n, _ := in.S.Dims()
	singular := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			singular.SetSym(i, j, 1)
		}
	}
	in.S = singular

	_, err := scf.Solve(in)
	var lde *scf.LinearDependenceError
	require.ErrorAs(t, err, &lde)
}
