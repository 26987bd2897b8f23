// Package scenario loads Thomson scattering scenarios from TOML files.
//
// A scenario file bundles the probe, geometry, and plasma composition with an
// optional wavelength grid and instrument width, so that measurement setups
// can be stored and replayed:
//
//	probe_wavelength_nm = 532.0
//	scattering_angle_deg = 63.0
//	density_cm3 = 2e17
//
//	[[electron]]
//	temperature_ev = 12.0
//
//	[[ion]]
//	species = "H+"
//	temperature_ev = 10.0
//
//	[grid]
//	from_nm = 529.0
//	to_nm = 535.0
//	step_nm = 0.01
//
// Angles are given in degrees and converted to the radian geometry used by
// the evaluator. Alternatively probe_vec and scatter_vec give the directions
// explicitly.
package scenario

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-plasma/diag/thomson"
	"github.com/cwbudde/algo-plasma/plasma"
	"github.com/cwbudde/algo-plasma/plasma/species"
)

// ErrInvalidScenario reports a scenario file that decodes but does not
// describe a usable setup.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Scenario is a fully resolved measurement setup.
type Scenario struct {
	// Config is the evaluator configuration in SI units.
	Config thomson.Config

	// Grid is the wavelength grid in metres, nil when the file has no
	// [grid] table.
	Grid []float64

	// InstrumentFWHM is the Gaussian instrument width in metres, zero when
	// the file does not set one.
	InstrumentFWHM float64
}

// file mirrors the TOML layout.
type file struct {
	ProbeWavelengthNm  float64   `toml:"probe_wavelength_nm"`
	ScatteringAngleDeg *float64  `toml:"scattering_angle_deg"`
	ProbeVec           []float64 `toml:"probe_vec"`
	ScatterVec         []float64 `toml:"scatter_vec"`
	DensityCm3         float64   `toml:"density_cm3"`
	InstrumentFWHMNm   float64   `toml:"instrument_fwhm_nm"`
	Electrons          []filePop `toml:"electron"`
	Ions               []filePop `toml:"ion"`
	Grid               *fileGrid `toml:"grid"`
}

type filePop struct {
	Species       string    `toml:"species"`
	TemperatureEV float64   `toml:"temperature_ev"`
	Fraction      float64   `toml:"fraction"`
	DriftMS       []float64 `toml:"drift_m_s"`
}

type fileGrid struct {
	FromNm float64 `toml:"from_nm"`
	ToNm   float64 `toml:"to_nm"`
	StepNm float64 `toml:"step_nm"`
}

// Load reads and resolves a scenario file.
func Load(path string) (Scenario, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Scenario{}, fmt.Errorf("scenario: failed to decode %s: %w", path, err)
	}

	return resolve(f)
}

func resolve(f file) (Scenario, error) {
	var s Scenario

	s.Config.ProbeWavelength = plasma.Nanometers(f.ProbeWavelengthNm)
	s.Config.Plasma.Density = plasma.PerCubicCentimeter(f.DensityCm3)

	geom, err := resolveGeometry(f)
	if err != nil {
		return Scenario{}, err
	}

	s.Config.Geometry = geom

	if len(f.Electrons) == 0 {
		return Scenario{}, fmt.Errorf("%w: no [[electron]] table", ErrInvalidScenario)
	}

	if len(f.Ions) == 0 {
		return Scenario{}, fmt.Errorf("%w: no [[ion]] table", ErrInvalidScenario)
	}

	for i, pop := range f.Electrons {
		if pop.Species != "" && pop.Species != "e-" {
			return Scenario{}, fmt.Errorf("%w: electron %d has species %q", ErrInvalidScenario, i, pop.Species)
		}

		drift, err := resolveDrift(pop.DriftMS)
		if err != nil {
			return Scenario{}, fmt.Errorf("electron %d: %w", i, err)
		}

		s.Config.Plasma.Electrons = append(s.Config.Plasma.Electrons, thomson.ElectronPopulation{
			Temperature: plasma.EVToJoule(pop.TemperatureEV),
			Fraction:    pop.Fraction,
			Drift:       drift,
		})
	}

	for i, pop := range f.Ions {
		if pop.Species == "" {
			return Scenario{}, fmt.Errorf("%w: ion %d has no species", ErrInvalidScenario, i)
		}

		particle, err := species.Parse(pop.Species)
		if err != nil {
			return Scenario{}, fmt.Errorf("scenario: ion %d: %w", i, err)
		}

		drift, err := resolveDrift(pop.DriftMS)
		if err != nil {
			return Scenario{}, fmt.Errorf("ion %d: %w", i, err)
		}

		s.Config.Plasma.Ions = append(s.Config.Plasma.Ions, thomson.IonPopulation{
			Species:     particle,
			Temperature: plasma.EVToJoule(pop.TemperatureEV),
			Fraction:    pop.Fraction,
			Drift:       drift,
		})
	}

	if f.Grid != nil {
		grid, err := resolveGrid(*f.Grid)
		if err != nil {
			return Scenario{}, err
		}

		s.Grid = grid
	}

	if f.InstrumentFWHMNm < 0 {
		return Scenario{}, fmt.Errorf("%w: negative instrument fwhm", ErrInvalidScenario)
	}

	s.InstrumentFWHM = plasma.Nanometers(f.InstrumentFWHMNm)

	return s, nil
}

func resolveGeometry(f file) (thomson.Geometry, error) {
	hasVecs := len(f.ProbeVec) > 0 || len(f.ScatterVec) > 0

	if f.ScatteringAngleDeg != nil && hasVecs {
		return thomson.Geometry{}, fmt.Errorf(
			"%w: scattering_angle_deg and direction vectors are mutually exclusive", ErrInvalidScenario)
	}

	if f.ScatteringAngleDeg != nil {
		return thomson.GeometryFromAngle(*f.ScatteringAngleDeg * math.Pi / 180), nil
	}

	if !hasVecs {
		// Default geometry, filled in by the evaluator.
		return thomson.Geometry{}, nil
	}

	probe, err := resolveVec(f.ProbeVec)
	if err != nil {
		return thomson.Geometry{}, fmt.Errorf("probe_vec: %w", err)
	}

	scatter, err := resolveVec(f.ScatterVec)
	if err != nil {
		return thomson.Geometry{}, fmt.Errorf("scatter_vec: %w", err)
	}

	return thomson.Geometry{Probe: probe, Scatter: scatter}, nil
}

func resolveVec(v []float64) (plasma.Vec3, error) {
	if len(v) != 3 {
		return plasma.Vec3{}, fmt.Errorf("%w: want 3 components, got %d", ErrInvalidScenario, len(v))
	}

	return plasma.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

func resolveDrift(v []float64) (plasma.Vec3, error) {
	if len(v) == 0 {
		return plasma.Vec3{}, nil
	}

	return resolveVec(v)
}

func resolveGrid(g fileGrid) ([]float64, error) {
	if g.StepNm <= 0 {
		return nil, fmt.Errorf("%w: grid step %v must be positive", ErrInvalidScenario, g.StepNm)
	}

	if g.ToNm <= g.FromNm {
		return nil, fmt.Errorf("%w: grid range [%v, %v] is empty", ErrInvalidScenario, g.FromNm, g.ToNm)
	}

	n := int(math.Round((g.ToNm-g.FromNm)/g.StepNm)) + 1

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = plasma.Nanometers(g.FromNm + float64(i)*g.StepNm)
	}

	return grid, nil
}
