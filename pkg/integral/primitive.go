// primitive.go -- This file is part of the hartee-fock project.
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

// Package integral evaluates molecular integrals over contracted
// s-type Gaussians in closed form: overlap, kinetic energy, nuclear
// attraction and the four-index electron repulsion tensor.
package integral

import "math"

// boysCutoff bounds the argument below which the Boys function is
// replaced by its T→0 limit. The general formula divides by √T and
// loses all accuracy there.
const boysCutoff = 1e-10

// norm is the normalization factor of a primitive s-type Gaussian.
func norm(alpha float64) float64 {
	return math.Pow(2*alpha/math.Pi, 0.75)
}

func distSq(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

// productCenter is the center of the Gaussian product of two
// primitives, P = (α·RA + β·RB)/(α+β).
func productCenter(alpha, beta float64, ra, rb [3]float64) [3]float64 {
	zeta := alpha + beta
	var p [3]float64
	for k := 0; k < 3; k++ {
		p[k] = (alpha*ra[k] + beta*rb[k]) / zeta
	}
	return p
}

// OverlapPrimitive is the normalized overlap of two primitives via the
// Gaussian product theorem.
func OverlapPrimitive(alpha, beta float64, ra, rb [3]float64) float64 {
	zeta := alpha + beta
	return norm(alpha) * norm(beta) *
		math.Pow(math.Pi/zeta, 1.5) *
		math.Exp(-alpha*beta/zeta*distSq(ra, rb))
}

// KineticPrimitive derives the kinetic-energy integral from the
// overlap using the reduced exponent q = αβ/(α+β).
func KineticPrimitive(alpha, beta float64, ra, rb [3]float64, sPrim float64) float64 {
	q := alpha * beta / (alpha + beta)
	return q * (3 - 2*q*distSq(ra, rb)) * sPrim
}

// NuclearPrimitive is the attraction integral of two primitives to a
// unit charge at rnuc. The caller supplies the -Z factor.
func NuclearPrimitive(alpha, beta float64, ra, rb, rnuc [3]float64) float64 {
	zeta := alpha + beta
	p := productCenter(alpha, beta, ra, rb)
	kab := math.Exp(-alpha * beta / zeta * distSq(ra, rb))

	pcSq := distSq(p, rnuc)
	v := 2 * math.Pi / zeta
	if pcSq >= boysCutoff {
		v *= Boys0(zeta * pcSq)
	}
	return norm(alpha) * norm(beta) * kab * v
}

// ERIPrimitive is the (ab|cd) repulsion integral of four primitives:
// two Gaussian-product reductions joined through ρ = ζη/(ζ+η).
func ERIPrimitive(alpha, beta, gamma, delta float64, ra, rb, rc, rd [3]float64) float64 {
	zeta := alpha + beta
	eta := gamma + delta
	p := productCenter(alpha, beta, ra, rb)
	q := productCenter(gamma, delta, rc, rd)
	kab := math.Exp(-alpha * beta / zeta * distSq(ra, rb))
	kcd := math.Exp(-gamma * delta / eta * distSq(rc, rd))

	rho := zeta * eta / (zeta + eta)
	t := rho * distSq(p, q)
	f0 := 1.0
	if t >= boysCutoff {
		f0 = Boys0(t)
	}

	prefactor := 2 * math.Pow(math.Pi, 2.5) / (zeta * eta * math.Sqrt(zeta+eta))
	return prefactor * kab * kcd * f0 *
		norm(alpha) * norm(beta) * norm(gamma) * norm(delta)
}
