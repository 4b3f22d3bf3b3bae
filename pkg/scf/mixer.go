// mixer.go -- This file is part of the hartee-fock project.
//
//	hartee-fock is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package scf

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// MixStep is the per-iteration information a Mixer may draw on. Old is
// the density the Fock matrix was built from, New the density its
// eigenvectors produced.
type MixStep struct {
	Iteration int
	Occupied  int
	Old, New  *mat.SymDense
	Fock      *mat.SymDense
	Overlap   *mat.SymDense
	Transform *mat.Dense
}

// Mixer produces the density fed into the next SCF iteration. A nil
// Mixer in the solver input replaces the old density outright.
type Mixer interface {
	Mix(step MixStep) *mat.SymDense
}

// DampingMixer linearly mixes successive densities,
// D ← (1−Factor)·D_new + Factor·D_old, trading iterations for
// stability on oscillating systems.
type DampingMixer struct {
	Factor float64
}

func (m DampingMixer) Mix(step MixStep) *mat.SymDense {
	var dnew, dold mat.SymDense
	dnew.ScaleSym(1-m.Factor, step.New)
	dold.ScaleSym(m.Factor, step.Old)
	dnew.AddSym(&dnew, &dold)
	return &dnew
}

// DIISMixer accelerates convergence by Pulay's direct inversion in the
// iterative subspace: it keeps recent Fock matrices with their
// orbital-gradient residuals X·(FDS − SDF)·X, solves the bordered
// B-matrix system for extrapolation coefficients and rediagonalizes
// the extrapolated Fock matrix. Until two Fock matrices are stored, or
// when the linear system is singular, it falls back to plain
// replacement.
type DIISMixer struct {
	// MaxVectors bounds the subspace; older entries are dropped
	// first. <= 0 means 8.
	MaxVectors int

	fock []*mat.SymDense
	res  []*mat.Dense
}

func (m *DIISMixer) Mix(step MixStep) *mat.SymDense {
	n, _ := step.Fock.Dims()

	// Residual X·(F·D·S − S·D·F)·X; X is symmetric.
	var fds, sdf mat.Dense
	fds.Mul(step.Fock, step.Old)
	fds.Mul(&fds, step.Overlap)
	sdf.Mul(step.Overlap, step.Old)
	sdf.Mul(&sdf, step.Fock)
	fds.Sub(&fds, &sdf)
	var r mat.Dense
	r.Mul(step.Transform, &fds)
	r.Mul(&r, step.Transform)

	fcopy := mat.NewSymDense(n, nil)
	fcopy.CopySym(step.Fock)
	m.fock = append(m.fock, fcopy)
	m.res = append(m.res, &r)

	max := m.MaxVectors
	if max <= 0 {
		max = 8
	}
	if len(m.fock) > max {
		m.fock = m.fock[1:]
		m.res = m.res[1:]
	}
	if len(m.fock) < 2 {
		return step.New
	}

	nv := len(m.fock)
	B := mat.NewDense(nv+1, nv+1, nil)
	for i := 0; i < nv; i++ {
		B.Set(i, nv, -1)
		B.Set(nv, i, -1)
		for j := 0; j < nv; j++ {
			var p mat.Dense
			p.MulElem(m.res[i], m.res[j])
			B.Set(i, j, mat.Sum(&p))
		}
	}
	rhs := mat.NewVecDense(nv+1, nil)
	rhs.SetVec(nv, -1)

	var lu mat.LU
	lu.Factorize(B)
	var coefs mat.VecDense
	if err := lu.SolveVecTo(&coefs, false, rhs); err != nil {
		return step.New
	}

	fbar := mat.NewDense(n, n, nil)
	for i, f := range m.fock {
		var part mat.Dense
		part.Scale(coefs.AtVec(i), f)
		fbar.Add(fbar, &part)
	}

	// Rediagonalize the extrapolated operator and rebuild the density
	// from its occupied eigenvectors.
	var fp mat.Dense
	fp.Mul(step.Transform, fbar)
	fp.Mul(&fp, step.Transform)
	fpSym := mat.NewSymDense(n, fp.RawMatrix().Data)

	var eig mat.EigenSym
	if !eig.Factorize(fpSym, true) {
		return step.New
	}
	var C mat.Dense
	eig.VectorsTo(&C)
	C.Mul(step.Transform, &C)
	return density(&C, step.Occupied)
}

// ResidualRMS reports the root-mean-square of the latest stored
// residual, a convergence measure independent of the energy change.
// It is NaN before the first Mix call.
func (m *DIISMixer) ResidualRMS() float64 {
	if len(m.res) == 0 {
		return math.NaN()
	}
	last := m.res[len(m.res)-1]
	var sq mat.Dense
	sq.MulElem(last, last)
	return math.Sqrt(stat.Mean(sq.RawMatrix().Data, nil))
}
