// orthogonalize.go -- This file is part of the hartee-fock project.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// OverlapEigenvalueFloor is the smallest overlap eigenvalue for which
// symmetric orthogonalization is still considered well posed.
const OverlapEigenvalueFloor = 1e-8

// Lowdin builds the symmetric orthogonalization transform
// X = U·diag(s^-1/2)·Uᵀ from the overlap matrix. X is symmetric and
// satisfies Xᵀ·S·X = I. S is loop-invariant across SCF iterations, so
// the solver computes X once per solve.
func Lowdin(S *mat.SymDense) (*mat.Dense, error) {
	n, _ := S.Dims()

	var eig mat.EigenSym
	if !eig.Factorize(S, true) {
		return nil, fmt.Errorf("scf: overlap eigendecomposition failed")
	}
	vals := eig.Values(nil)
	for i, v := range vals {
		if v < OverlapEigenvalueFloor {
			return nil, &LinearDependenceError{Index: i, Eigenvalue: v}
		}
	}

	var U mat.Dense
	eig.VectorsTo(&U)
	invSqrt := make([]float64, n)
	for i, v := range vals {
		invSqrt[i] = 1 / math.Sqrt(v)
	}

	var X mat.Dense
	X.Mul(&U, mat.NewDiagDense(n, invSqrt))
	X.Mul(&X, U.T())
	return &X, nil
}
