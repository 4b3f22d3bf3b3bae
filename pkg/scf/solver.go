// solver.go -- This file is part of the hartee-fock project.
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

// Package scf drives the restricted closed-shell self-consistent-field
// iteration: Fock build, Löwdin orthogonalization, eigensolve, density
// update and convergence control.
package scf

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/keiran-rowell/hartee-fock/pkg/integral"
)

// Input collects everything one SCF solve consumes. The matrices and
// tensor are never mutated by the solver.
type Input struct {
	S, T, V          *mat.SymDense
	ERI              *integral.ERITensor
	NuclearRepulsion float64
	NumElectrons     int

	// InitialDensity seeds the iteration; nil means the zero matrix.
	InitialDensity *mat.SymDense

	MaxIterations   int
	EnergyTolerance float64

	// Workers bounds the goroutines of the per-iteration G build;
	// <= 0 means GOMAXPROCS.
	Workers int

	// Mixer produces the density fed into the next iteration; nil
	// means plain replacement.
	Mixer Mixer

	// Observer receives per-iteration state; nil means silent.
	Observer Observer
}

// Result is the terminal state of a solve. Non-convergence is not an
// error: Converged reports false and the last iterate is returned.
type Result struct {
	Converged       bool
	Energy          float64
	Iterations      int
	OrbitalEnergies []float64
	Coeffs          *mat.Dense
	Density         *mat.SymDense
	EnergyHistory   []float64
}

// Solve iterates the Fock eigenproblem to a fixed point. It fails fast
// on an odd electron count and a near-linearly-dependent basis; running
// out of iterations is a normal terminal state.
func Solve(in Input) (*Result, error) {
	if in.NumElectrons%2 != 0 {
		return nil, &OddElectronCountError{Count: in.NumElectrons}
	}
	nOcc := in.NumElectrons / 2
	n, _ := in.S.Dims()

	// S never changes, so the transform is hoisted out of the loop.
	X, err := Lowdin(in.S)
	if err != nil {
		return nil, err
	}

	D := mat.NewSymDense(n, nil)
	if in.InitialDensity != nil {
		D.CopySym(in.InitialDensity)
	}

	res := &Result{}
	ePrev := 0.0
	for iter := 1; iter <= in.MaxIterations; iter++ {
		G := TwoElectron(D, in.ERI, in.Workers)
		F := Fock(in.T, in.V, G)

		eps, C, err := diagonalize(F, X)
		if err != nil {
			return nil, fmt.Errorf("%w (iteration %d)", err, iter)
		}

		DNew := density(C, nOcc)
		e := electronicEnergy(DNew, in.T, in.V, F) + in.NuclearRepulsion
		delta := math.Abs(e - ePrev)

		res.Iterations = iter
		res.Energy = e
		res.OrbitalEnergies = eps
		res.Coeffs = C
		res.Density = DNew
		res.EnergyHistory = append(res.EnergyHistory, e)

		if in.Observer != nil {
			in.Observer.Iteration(Snapshot{
				Iteration:       iter,
				Energy:          e,
				Delta:           delta,
				OrbitalEnergies: eps,
				Fock:            F,
				Density:         DNew,
			})
		}

		if delta < in.EnergyTolerance {
			res.Converged = true
			return res, nil
		}
		ePrev = e
		if in.Mixer != nil {
			D = in.Mixer.Mix(MixStep{
				Iteration: iter,
				Occupied:  nOcc,
				Old:       D,
				New:       DNew,
				Fock:      F,
				Overlap:   in.S,
				Transform: X,
			})
		} else {
			D = DNew
		}
	}
	return res, nil
}

// diagonalize solves the generalized eigenproblem F·C = S·C·ε through
// the orthonormal basis: F' = Xᵀ·F·X, then C = X·C'. The eigenvalues
// come out ascending, which is exactly the aufbau filling order.
func diagonalize(F *mat.SymDense, X *mat.Dense) ([]float64, *mat.Dense, error) {
	n, _ := F.Dims()

	var fp mat.Dense
	fp.Mul(X.T(), F)
	fp.Mul(&fp, X)
	fpSym := mat.NewSymDense(n, fp.RawMatrix().Data)

	var eig mat.EigenSym
	if !eig.Factorize(fpSym, true) {
		return nil, nil, fmt.Errorf("scf: Fock eigendecomposition failed")
	}
	eps := eig.Values(nil)

	var C mat.Dense
	eig.VectorsTo(&C)
	C.Mul(X, &C)
	return eps, &C, nil
}

// density forms D = 2·C_occ·C_occᵀ over the nOcc lowest orbitals.
func density(C *mat.Dense, nOcc int) *mat.SymDense {
	n, _ := C.Dims()
	D := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var d float64
			for o := 0; o < nOcc; o++ {
				d += C.At(i, o) * C.At(j, o)
			}
			D.SetSym(i, j, 2*d)
		}
	}
	return D
}

// electronicEnergy is E_elec = ½·tr(D·(T+V+F)). All factors are
// symmetric, so the trace reduces to an elementwise sum.
func electronicEnergy(D, T, V, F *mat.SymDense) float64 {
	n, _ := D.Dims()
	var e float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e += D.At(i, j) * (T.At(i, j) + V.At(i, j) + F.At(i, j))
		}
	}
	return 0.5 * e
}
