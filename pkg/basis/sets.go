// sets.go -- This file is part of the hartee-fock project.
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
package basis

// Built-in hydrogen sets so small jobs need no basis file.

// STO3G returns the hydrogen STO-3G s-shell.
func STO3G() []Shell {
	return []Shell{
		{
			Exponents:    []float64{0.3425250914e+01, 0.6239137298e+00, 0.1688554040e+00},
			Coefficients: []float64{0.1543289673e+00, 0.5353281423e+00, 0.4446345422e+00},
		},
	}
}

// Basis631G returns the hydrogen 6-31G s-shells: one three-primitive
// contraction and one free primitive.
func Basis631G() []Shell {
	return []Shell{
		{
			Exponents:    []float64{0.1873113696e+02, 0.2825394365e+01, 0.6401216923e+00},
			Coefficients: []float64{0.3349460434e-01, 0.2347269535e+00, 0.8137573261e+00},
		},
		{
			Exponents:    []float64{0.1612777588e+00},
			Coefficients: []float64{1.0},
		},
	}
}
