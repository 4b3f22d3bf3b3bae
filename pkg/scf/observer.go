// observer.go -- This file is part of the hartee-fock project.
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

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Snapshot is the per-iteration state handed to an Observer. The
// matrices are owned by the solver; implementations must not retain or
// mutate them.
type Snapshot struct {
	Iteration       int
	Energy          float64
	Delta           float64
	OrbitalEnergies []float64
	Fock            *mat.SymDense
	Density         *mat.SymDense
}

// Observer receives intermediate SCF state, decoupling the solver from
// any particular logging mechanism.
type Observer interface {
	Iteration(Snapshot)
}

// LogObserver adapts an Observer to a zap logger: one summary line per
// iteration, full matrices only at debug level.
type LogObserver struct {
	Log *zap.Logger
}

func (o LogObserver) Iteration(s Snapshot) {
	o.Log.Info("scf iteration",
		zap.Int("iter", s.Iteration),
		zap.Float64("energy", s.Energy),
		zap.Float64("delta_e", s.Delta),
	)
	if ce := o.Log.Check(zap.DebugLevel, "scf matrices"); ce != nil {
		ce.Write(
			zap.Int("iter", s.Iteration),
			zap.Float64s("orbital_energies", s.OrbitalEnergies),
			zap.String("fock", matString(s.Fock)),
			zap.String("density", matString(s.Density)),
		)
	}
}

func matString(m mat.Matrix) string {
	return fmt.Sprintf("%.8f", mat.Formatted(m, mat.Prefix("    "), mat.Squeeze()))
}
