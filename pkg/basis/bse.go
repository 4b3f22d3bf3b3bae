// bse.go -- This file is part of the hartee-fock project.
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

import (
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

// Basis Set Exchange ships basis sets as JSON keyed by atomic number,
// with exponents and coefficients serialized as strings to preserve
// the tabulated digits.
type bseShell struct {
	AngularMomentum []int      `json:"angular_momentum"`
	Exponents       []string   `json:"exponents"`
	Coefficients    [][]string `json:"coefficients"`
}

type bseElement struct {
	ElectronShells []bseShell `json:"electron_shells"`
}

type bseFile struct {
	Name     string                `json:"name"`
	Elements map[string]bseElement `json:"elements"`
}

// ParseBSE decodes a Basis Set Exchange JSON document and returns the
// shells for one element, keyed by atomic number ("1" for hydrogen).
// Each general contraction within a shell becomes its own Shell. Only
// s-type shells are accepted.
func ParseBSE(data []byte, element string) ([]Shell, error) {
	var file bseFile
	if err := sonic.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("basis: decode basis set: %w", err)
	}
	elem, ok := file.Elements[element]
	if !ok {
		return nil, fmt.Errorf("basis: basis set %q has no element %s", file.Name, element)
	}

	var shells []Shell
	for si, sh := range elem.ElectronShells {
		for _, l := range sh.AngularMomentum {
			if l != 0 {
				return nil, &InvalidBasisError{
					Index:  si,
					Reason: fmt.Sprintf("angular momentum %d: only s-type shells are supported", l),
				}
			}
		}
		exps, err := parseFloats(sh.Exponents)
		if err != nil {
			return nil, fmt.Errorf("basis: shell %d exponents: %w", si, err)
		}
		for _, contraction := range sh.Coefficients {
			coeffs, err := parseFloats(contraction)
			if err != nil {
				return nil, fmt.Errorf("basis: shell %d coefficients: %w", si, err)
			}
			shells = append(shells, Shell{Exponents: exps, Coefficients: coeffs})
		}
	}
	if len(shells) == 0 {
		return nil, fmt.Errorf("basis: element %s has no electron shells", element)
	}
	return shells, nil
}

func parseFloats(ss []string) ([]float64, error) {
	out := make([]float64, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
