// errors.go -- This file is part of the hartee-fock project.
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

import "fmt"

// LinearDependenceError reports a near-zero overlap eigenvalue. The
// basis is (numerically) linearly dependent and the Löwdin transform
// is undefined.
type LinearDependenceError struct {
	Index      int
	Eigenvalue float64
}

func (e *LinearDependenceError) Error() string {
	return fmt.Sprintf("scf: overlap matrix near singular: eigenvalue %d is %g (floor %g)",
		e.Index, e.Eigenvalue, OverlapEigenvalueFloor)
}

// OddElectronCountError reports an electron count that cannot form
// closed shells; the restricted formalism is undefined for it.
type OddElectronCountError struct {
	Count int
}

func (e *OddElectronCountError) Error() string {
	return fmt.Sprintf("scf: %d electrons cannot be paired in a restricted closed-shell calculation", e.Count)
}
