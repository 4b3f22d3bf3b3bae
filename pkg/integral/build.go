// build.go -- This file is part of the hartee-fock project.
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
package integral

import (
	"gonum.org/v1/gonum/mat"

	"github.com/keiran-rowell/hartee-fock/pkg/basis"
	"github.com/keiran-rowell/hartee-fock/pkg/molecule"
)

// BuildOverlapKinetic contracts the primitive overlap and kinetic
// integrals over all basis-function pairs. Both matrices are symmetric
// by construction, so only the upper triangle is computed.
func BuildOverlapKinetic(funcs []basis.Function) (*mat.SymDense, *mat.SymDense, error) {
	if err := basis.Validate(funcs); err != nil {
		return nil, nil, err
	}
	n := len(funcs)
	S := mat.NewSymDense(n, nil)
	T := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var s, t float64
			fi, fj := funcs[i], funcs[j]
			for k, alpha := range fi.Exponents {
				for l, beta := range fj.Exponents {
					cc := fi.Coefficients[k] * fj.Coefficients[l]
					sPrim := OverlapPrimitive(alpha, beta, fi.Center, fj.Center)
					s += cc * sPrim
					t += cc * KineticPrimitive(alpha, beta, fi.Center, fj.Center, sPrim)
				}
			}
			S.SetSym(i, j, s)
			T.SetSym(i, j, t)
		}
	}
	return S, T, nil
}

// BuildNuclear contracts the attraction integrals, summing the
// -Z-weighted term over every nucleus.
func BuildNuclear(funcs []basis.Function, atoms []molecule.Atom) (*mat.SymDense, error) {
	if err := basis.Validate(funcs); err != nil {
		return nil, err
	}
	n := len(funcs)
	V := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var v float64
			fi, fj := funcs[i], funcs[j]
			for _, atom := range atoms {
				for k, alpha := range fi.Exponents {
					for l, beta := range fj.Exponents {
						cc := fi.Coefficients[k] * fj.Coefficients[l]
						v += -atom.Charge * cc *
							NuclearPrimitive(alpha, beta, fi.Center, fj.Center, atom.Coords)
					}
				}
			}
			V.SetSym(i, j, v)
		}
	}
	return V, nil
}
