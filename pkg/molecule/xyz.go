// xyz.go -- This file is part of the hartee-fock project.
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
package molecule

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadXYZ reads an XYZ geometry file: an atom count, a comment line,
// then one "symbol x y z" line per atom. Nuclear charges are filled in
// from the element table.
func ReadXYZ(path string) ([]Atom, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("molecule: read %s: %w", path, err)
	}
	if len(lines) < 3 {
		return nil, fmt.Errorf("molecule: %s: not an XYZ file", path)
	}
	count, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, fmt.Errorf("molecule: %s: bad atom count %q", path, lines[0])
	}

	var atoms []Atom
	for _, line := range lines[2:] {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) < 4 {
			return nil, fmt.Errorf("molecule: %s: bad coordinate line %q", path, line)
		}
		charge, err := ChargeOf(words[0])
		if err != nil {
			return nil, err
		}
		var coords [3]float64
		for k := 0; k < 3; k++ {
			coords[k], err = strconv.ParseFloat(words[k+1], 64)
			if err != nil {
				return nil, fmt.Errorf("molecule: %s: bad coordinate %q: %w", path, words[k+1], err)
			}
		}
		atoms = append(atoms, Atom{Symbol: words[0], Coords: coords, Charge: charge})
	}
	if len(atoms) != count {
		return nil, fmt.Errorf("molecule: %s: header says %d atoms, found %d", path, count, len(atoms))
	}
	return atoms, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
