// molecule.go -- This file is part of the hartee-fock project.
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

// Package molecule carries nuclear geometry: atoms, their charges and
// the energies and counts derived from them. Coordinates are in bohr.
package molecule

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Atom is one nuclear center. Charge is carried per atom rather than
// assumed from context, even though only hydrogen is exercised.
type Atom struct {
	Symbol string
	Coords [3]float64
	Charge float64
}

var symbols = []string{"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne"}

// ChargeOf maps an element symbol to its nuclear charge.
func ChargeOf(symbol string) (float64, error) {
	z := slices.Index(symbols, symbol)
	if z < 0 {
		return 0, fmt.Errorf("molecule: unknown element %q", symbol)
	}
	return float64(z + 1), nil
}

// NumElectrons counts the electrons of a neutral system.
func NumElectrons(atoms []Atom) int {
	n := 0.0
	for _, a := range atoms {
		n += a.Charge
	}
	return int(math.Round(n))
}

// NuclearRepulsion is the fixed-nuclei Coulomb energy
// Σ_i Σ_{j<i} Z_i·Z_j / R_ij.
func NuclearRepulsion(atoms []Atom) float64 {
	e := 0.0
	for i := range atoms {
		for j := 0; j < i; j++ {
			dx := atoms[i].Coords[0] - atoms[j].Coords[0]
			dy := atoms[i].Coords[1] - atoms[j].Coords[1]
			dz := atoms[i].Coords[2] - atoms[j].Coords[2]
			e += atoms[i].Charge * atoms[j].Charge / math.Sqrt(dx*dx+dy*dy+dz*dz)
		}
	}
	return e
}

// Centers collects the coordinates of every atom, in order.
func Centers(atoms []Atom) [][3]float64 {
	cs := make([][3]float64, len(atoms))
	for i, a := range atoms {
		cs[i] = a.Coords
	}
	return cs
}
