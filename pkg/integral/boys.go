// boys.go -- This file is part of the hartee-fock project.
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
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Boys0 is the zeroth-order Boys function F0(t) = ½·√(π/t)·erf(√t),
// the only order s-orbital integrals need.
func Boys0(t float64) float64 {
	if t == 0 {
		return 1
	}
	return 0.5 * math.Sqrt(math.Pi/t) * math.Erf(math.Sqrt(t))
}

// BoysN is the general-order Boys function expressed through the
// regularized lower incomplete gamma function,
// F_n(t) = γ(n+½, t)·Γ(n+½) / (2·t^(n+½)).
// BoysN(0, t) agrees with Boys0 and serves as its cross-check.
func BoysN(n int, t float64) float64 {
	nf := float64(n)
	if t == 0 {
		return 1 / (2*nf + 1)
	}
	return mathext.GammaIncReg(nf+0.5, t) * math.Gamma(nf+0.5) / (2 * math.Pow(t, nf+0.5))
}
