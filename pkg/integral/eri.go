// eri.go -- This file is part of the hartee-fock project.
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
	"runtime"
	"sync"

	"github.com/keiran-rowell/hartee-fock/pkg/basis"
)

// ERITensor holds the electron repulsion integrals (ij|kl) in
// chemist's notation as a flat n⁴ slice.
type ERITensor struct {
	n    int
	data []float64
}

// NewERITensor allocates a zeroed tensor over n basis functions.
func NewERITensor(n int) *ERITensor {
	return &ERITensor{n: n, data: make([]float64, n*n*n*n)}
}

// N is the number of basis functions the tensor is indexed by.
func (t *ERITensor) N() int { return t.n }

// At returns (ij|kl).
func (t *ERITensor) At(i, j, k, l int) float64 {
	return t.data[((i*t.n+j)*t.n+k)*t.n+l]
}

func (t *ERITensor) set(i, j, k, l int, v float64) {
	t.data[((i*t.n+j)*t.n+k)*t.n+l] = v
}

// BuildERI contracts the four-index repulsion integrals over all
// primitive quadruples, the dominant cost of the whole calculation.
// The (i,j) pair space is partitioned across workers goroutines; every
// entry is written by exactly one worker, over immutable inputs.
// workers <= 0 means GOMAXPROCS.
func BuildERI(funcs []basis.Function, workers int) (*ERITensor, error) {
	if err := basis.Validate(funcs); err != nil {
		return nil, err
	}
	n := len(funcs)
	t := NewERITensor(n)

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	pairs := n * n
	if workers > pairs {
		workers = pairs
	}

	var wg sync.WaitGroup
	chunk := pairs / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = pairs
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for p := lo; p < hi; p++ {
				i, j := p/n, p%n
				for k := 0; k < n; k++ {
					for l := 0; l < n; l++ {
						t.set(i, j, k, l, contractedERI(funcs, i, j, k, l))
					}
				}
			}
		}(lo, hi)
	}
	wg.Wait()
	return t, nil
}

func contractedERI(funcs []basis.Function, i, j, k, l int) float64 {
	fi, fj, fk, fl := funcs[i], funcs[j], funcs[k], funcs[l]
	var sum float64
	for a, alpha := range fi.Exponents {
		for b, beta := range fj.Exponents {
			for c, gamma := range fk.Exponents {
				for d, delta := range fl.Exponents {
					cccc := fi.Coefficients[a] * fj.Coefficients[b] *
						fk.Coefficients[c] * fl.Coefficients[d]
					sum += cccc * ERIPrimitive(alpha, beta, gamma, delta,
						fi.Center, fj.Center, fk.Center, fl.Center)
				}
			}
		}
	}
	return sum
}
