// fock.go -- This file is part of the hartee-fock project.
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
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/keiran-rowell/hartee-fock/pkg/integral"
)

// TwoElectron assembles the Coulomb-minus-half-exchange contribution
//
//	G[μν] = Σ_{λσ} D[λσ]·((μν|λσ) − ½·(μλ|νσ)).
//
// D and the tensor are read-only here, so output rows are partitioned
// across workers goroutines. workers <= 0 means GOMAXPROCS.
func TwoElectron(D *mat.SymDense, eri *integral.ERITensor, workers int) *mat.SymDense {
	n, _ := D.Dims()
	G := mat.NewSymDense(n, nil)

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	if workers > n {
		workers = n
	}

	var wg sync.WaitGroup
	chunk := n / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				for j := i; j < n; j++ {
					var g float64
					for k := 0; k < n; k++ {
						for l := 0; l < n; l++ {
							g += D.At(k, l) * (eri.At(i, j, k, l) - 0.5*eri.At(i, k, j, l))
						}
					}
					G.SetSym(i, j, g)
				}
			}
		}(lo, hi)
	}
	wg.Wait()
	return G
}

// Fock forms the effective one-electron operator F = T + V + G.
func Fock(T, V, G *mat.SymDense) *mat.SymDense {
	n, _ := T.Dims()
	F := mat.NewSymDense(n, nil)
	F.AddSym(T, V)
	F.AddSym(F, G)
	return F
}
