package scf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/keiran-rowell/hartee-fock/pkg/scf"
)

func TestTwoElectron(t *testing.T) {
	_, _, in := h2(t)
	n, _ := in.S.Dims()

	t.Run("zero density gives zero G", func(t *testing.T) {
		G := scf.TwoElectron(mat.NewSymDense(n, nil), in.ERI, 0)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Zero(t, G.At(i, j))
			}
		}
	})

	t.Run("matches the contraction formula", func(t *testing.T) {
		D := mat.NewSymDense(n, []float64{1.2, 0.4, 0.4, 0.8})
		G := scf.TwoElectron(D, in.ERI, 1)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				var want float64
				for k := 0; k < n; k++ {
					for l := 0; l < n; l++ {
						want += D.At(k, l) * (in.ERI.At(i, j, k, l) - 0.5*in.ERI.At(i, k, j, l))
					}
				}
				assert.InDelta(t, want, G.At(i, j), 1e-12)
			}
		}
	})

	t.Run("worker count does not change the result", func(t *testing.T) {
		D := mat.NewSymDense(n, []float64{0.9, 0.3, 0.3, 1.1})
		serial := scf.TwoElectron(D, in.ERI, 1)
		parallel := scf.TwoElectron(D, in.ERI, 8)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				assert.Equal(t, serial.At(i, j), parallel.At(i, j))
			}
		}
	})
}

func TestFock(t *testing.T) {
	_, _, in := h2(t)
	n, _ := in.S.Dims()
	D := mat.NewSymDense(n, []float64{1.0, 0.5, 0.5, 1.0})
	G := scf.TwoElectron(D, in.ERI, 0)

	F := scf.Fock(in.T, in.V, G)
	require.NotNil(t, F)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, in.T.At(i, j)+in.V.At(i, j)+G.At(i, j), F.At(i, j), 1e-14)
		}
	}
}
