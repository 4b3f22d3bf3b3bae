// basis.go -- This file is part of the hartee-fock project.
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

// Package basis describes contracted Gaussian s-type basis functions:
// fixed linear combinations of primitive Gaussians sharing one center.
package basis

import (
	"fmt"
	"math"
)

// Function is one contracted s-type basis function. Exponents and
// Coefficients run in parallel, one entry per primitive.
type Function struct {
	Center       [3]float64
	Exponents    []float64
	Coefficients []float64
}

// Shell is one contraction read from a basis-set definition, not yet
// placed on an atomic center.
type Shell struct {
	Exponents    []float64
	Coefficients []float64
}

// InvalidBasisError reports a malformed basis function. It is returned
// before any integral work is attempted.
type InvalidBasisError struct {
	Index  int
	Reason string
}

func (e *InvalidBasisError) Error() string {
	return fmt.Sprintf("basis: function %d: %s", e.Index, e.Reason)
}

// Validate checks every function for a primitive count mismatch or a
// non-positive exponent. Integral builders call this before touching
// any matrix.
func Validate(funcs []Function) error {
	for i, f := range funcs {
		if len(f.Exponents) == 0 {
			return &InvalidBasisError{Index: i, Reason: "no primitives"}
		}
		if len(f.Exponents) != len(f.Coefficients) {
			return &InvalidBasisError{
				Index: i,
				Reason: fmt.Sprintf("%d exponents but %d coefficients",
					len(f.Exponents), len(f.Coefficients)),
			}
		}
		for k, a := range f.Exponents {
			if a <= 0 {
				return &InvalidBasisError{
					Index:  i,
					Reason: fmt.Sprintf("primitive %d has non-positive exponent %g", k, a),
				}
			}
		}
	}
	return nil
}

// SelfOverlap is the contracted <f|f> overlap of a function with
// itself, using the normalized-primitive closed form at zero
// separation.
func SelfOverlap(f Function) float64 {
	var s float64
	for i, a := range f.Exponents {
		for j, b := range f.Exponents {
			na := math.Pow(2*a/math.Pi, 0.75)
			nb := math.Pow(2*b/math.Pi, 0.75)
			prim := na * nb * math.Pow(math.Pi/(a+b), 1.5)
			s += f.Coefficients[i] * f.Coefficients[j] * prim
		}
	}
	return s
}

// Normalize rescales the contraction coefficients in place so that the
// contracted self-overlap is exactly one. Tabulated coefficients are
// usually normalized already, in which case the factor is close to one.
func Normalize(f *Function) {
	factor := 1 / math.Sqrt(SelfOverlap(*f))
	for i := range f.Coefficients {
		f.Coefficients[i] *= factor
	}
}

// ForAtoms places shells onto atomic centers, producing one Function
// per (shell, center) pair. Centers iterate fastest so that functions
// on the same atom stay adjacent per shell.
func ForAtoms(shells []Shell, centers [][3]float64) []Function {
	funcs := make([]Function, 0, len(shells)*len(centers))
	for _, sh := range shells {
		for _, c := range centers {
			funcs = append(funcs, Function{
				Center:       c,
				Exponents:    append([]float64(nil), sh.Exponents...),
				Coefficients: append([]float64(nil), sh.Coefficients...),
			})
		}
	}
	return funcs
}
