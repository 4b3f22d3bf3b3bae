// main.go -- This file is part of the hartee-fock project.
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

// Command hf runs a restricted Hartree-Fock calculation described by a
// YAML job file:
//
//	geometry: h2.xyz
//	basis: sto-3g          # or basis_file: sto-3g.json
//	max_iterations: 50
//	energy_tolerance: 1e-6
//	workers: 4
//	diis: true
//	verbose: false
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/keiran-rowell/hartee-fock/pkg/basis"
	"github.com/keiran-rowell/hartee-fock/pkg/molecule"
	"github.com/keiran-rowell/hartee-fock/pkg/scf"
)

// Job is the YAML job file schema.
type Job struct {
	Geometry        string  `yaml:"geometry"`
	Basis           string  `yaml:"basis"`
	BasisFile       string  `yaml:"basis_file"`
	MaxIterations   int     `yaml:"max_iterations"`
	EnergyTolerance float64 `yaml:"energy_tolerance"`
	Workers         int     `yaml:"workers"`
	DIIS            bool    `yaml:"diis"`
	Damping         float64 `yaml:"damping"`
	Verbose         bool    `yaml:"verbose"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: hf <job.yaml>")
		os.Exit(1)
	}

	job, err := readJob(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := zap.NewDevelopmentConfig()
	if job.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(job, log); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func readJob(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	var job Job
	if err := yaml.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("parse job file %s: %w", path, err)
	}
	if job.Geometry == "" {
		return nil, fmt.Errorf("job file %s: no geometry", path)
	}
	return &job, nil
}

func run(job *Job, log *zap.Logger) error {
	atoms, err := molecule.ReadXYZ(job.Geometry)
	if err != nil {
		return err
	}
	log.Info("geometry loaded",
		zap.String("file", job.Geometry),
		zap.Int("atoms", len(atoms)),
	)

	shells, err := loadShells(job, atoms)
	if err != nil {
		return err
	}
	funcs := basis.ForAtoms(shells, molecule.Centers(atoms))
	for i := range funcs {
		basis.Normalize(&funcs[i])
	}
	log.Info("basis placed",
		zap.Int("shells", len(shells)),
		zap.Int("functions", len(funcs)),
	)

	var mixer scf.Mixer
	switch {
	case job.DIIS:
		mixer = &scf.DIISMixer{}
	case job.Damping > 0:
		mixer = scf.DampingMixer{Factor: job.Damping}
	}

	enn := molecule.NuclearRepulsion(atoms)
	log.Info("nuclear repulsion energy", zap.Float64("e_nn", enn))

	result, err := scf.Run(funcs, atoms, molecule.NumElectrons(atoms), enn, scf.Options{
		MaxIterations:   job.MaxIterations,
		EnergyTolerance: job.EnergyTolerance,
		Workers:         job.Workers,
		Mixer:           mixer,
		Observer:        scf.LogObserver{Log: log},
	})
	if err != nil {
		return err
	}

	if !result.Converged {
		log.Warn("scf did not converge", zap.Int("iterations", result.Iterations))
	} else {
		log.Info("scf converged", zap.Int("iterations", result.Iterations))
	}
	log.Info("final result",
		zap.Float64("total_energy", result.Energy),
		zap.Float64s("orbital_energies", result.OrbitalEnergies),
	)
	return nil
}

// loadShells picks the basis definition: an explicit Basis Set
// Exchange JSON file, a built-in set name, or STO-3G by default. The
// shells are looked up for the (single) element of the geometry;
// multi-element systems are out of scope.
func loadShells(job *Job, atoms []molecule.Atom) ([]basis.Shell, error) {
	if len(atoms) == 0 {
		return nil, fmt.Errorf("geometry has no atoms")
	}
	for _, a := range atoms[1:] {
		if a.Symbol != atoms[0].Symbol {
			return nil, fmt.Errorf("multi-element systems are not supported (%s and %s)",
				atoms[0].Symbol, a.Symbol)
		}
	}

	if job.BasisFile != "" {
		data, err := os.ReadFile(job.BasisFile)
		if err != nil {
			return nil, fmt.Errorf("read basis file: %w", err)
		}
		element := strconv.Itoa(int(atoms[0].Charge))
		return basis.ParseBSE(data, element)
	}

	if atoms[0].Symbol != "H" {
		return nil, fmt.Errorf("built-in sets cover hydrogen only; supply basis_file for %s", atoms[0].Symbol)
	}
	switch strings.ToLower(job.Basis) {
	case "", "sto-3g":
		return basis.STO3G(), nil
	case "6-31g":
		return basis.Basis631G(), nil
	default:
		return nil, fmt.Errorf("unknown built-in basis %q", job.Basis)
	}
}
