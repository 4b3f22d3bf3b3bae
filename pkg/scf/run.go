// run.go -- This file is part of the hartee-fock project.
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
	"gonum.org/v1/gonum/mat"

	"github.com/keiran-rowell/hartee-fock/pkg/basis"
	"github.com/keiran-rowell/hartee-fock/pkg/integral"
	"github.com/keiran-rowell/hartee-fock/pkg/molecule"
)

// Options tunes a Run. The zero value gets the defaults: 50
// iterations, 1e-6 energy tolerance, zero initial density, no mixing,
// no observer.
type Options struct {
	InitialDensity  *mat.SymDense
	MaxIterations   int
	EnergyTolerance float64
	Workers         int
	Mixer           Mixer
	Observer        Observer
}

const (
	defaultMaxIterations   = 50
	defaultEnergyTolerance = 1e-6
)

// Run computes all molecular integrals for the given basis and
// geometry and drives the SCF iteration to a fixed point. It is a pure
// function of its arguments: identical inputs produce identical
// results.
func Run(funcs []basis.Function, atoms []molecule.Atom, numElectrons int,
	nuclearRepulsion float64, opts Options) (*Result, error) {
	// Checked before any integral is computed.
	if numElectrons%2 != 0 {
		return nil, &OddElectronCountError{Count: numElectrons}
	}

	S, T, err := integral.BuildOverlapKinetic(funcs)
	if err != nil {
		return nil, err
	}
	V, err := integral.BuildNuclear(funcs, atoms)
	if err != nil {
		return nil, err
	}
	eri, err := integral.BuildERI(funcs, opts.Workers)
	if err != nil {
		return nil, err
	}

	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}
	tol := opts.EnergyTolerance
	if tol <= 0 {
		tol = defaultEnergyTolerance
	}

	return Solve(Input{
		S:                S,
		T:                T,
		V:                V,
		ERI:              eri,
		NuclearRepulsion: nuclearRepulsion,
		NumElectrons:     numElectrons,
		InitialDensity:   opts.InitialDensity,
		MaxIterations:    maxIter,
		EnergyTolerance:  tol,
		Workers:          opts.Workers,
		Mixer:            opts.Mixer,
		Observer:         opts.Observer,
	})
}
