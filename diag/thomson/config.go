package thomson

import (
	"math"

	"github.com/cwbudde/algo-plasma/plasma"
	"github.com/cwbudde/algo-plasma/plasma/species"
)

// Geometry holds the probe and scatter directions. Both are normalized
// internally; the scattering angle is the angle between them.
type Geometry struct {
	Probe   plasma.Vec3
	Scatter plasma.Vec3
}

// GeometryFromAngle builds a geometry with the probe along +x and the
// detector direction rotated by the given scattering angle (radians) in the
// xy-plane.
func GeometryFromAngle(angle float64) Geometry {
	return Geometry{
		Probe:   plasma.Vec3{X: 1},
		Scatter: plasma.Vec3{X: math.Cos(angle), Y: math.Sin(angle)},
	}
}

// ElectronPopulation describes one thermal electron component.
type ElectronPopulation struct {
	// Temperature in joules.
	Temperature float64

	// Fraction of the total electron density carried by this population.
	// A single population may leave it zero, which defaults to 1; multiple
	// populations must set fractions explicitly, summing to 1.
	Fraction float64

	// Drift velocity in the rest frame (m/s).
	Drift plasma.Vec3
}

// IonPopulation describes one thermal ion component.
type IonPopulation struct {
	Species species.Particle

	// Temperature in joules.
	Temperature float64

	// Fraction of the total ion density carried by this population.
	// Defaulting rules match ElectronPopulation.Fraction.
	Fraction float64

	// Drift velocity in the rest frame (m/s).
	Drift plasma.Vec3
}

// PlasmaState describes a quasi-neutral plasma. Ion number densities are
// derived from the electron density and the charge-weighted ion fractions,
// so quasi-neutrality holds by construction.
type PlasmaState struct {
	// Density is the total electron number density (m^-3).
	Density float64

	Electrons []ElectronPopulation
	Ions      []IonPopulation
}

// Config holds the full description of one scattering arrangement.
type Config struct {
	// ProbeWavelength is the probe laser wavelength (m).
	ProbeWavelength float64

	// Geometry defaults to probe [1 0 0], scatter [0 1 0] (90 degrees)
	// when left zero.
	Geometry Geometry

	Plasma PlasmaState
}

// DefaultConfig returns a single-population configuration with hydrogen
// ions, zero drifts, and a 90 degree scattering geometry. Temperatures are
// in joules, the density in m^-3.
func DefaultConfig(probeWavelength, density, te, ti float64) Config {
	proton, _ := species.Parse("H+")

	return Config{
		ProbeWavelength: probeWavelength,
		Plasma: PlasmaState{
			Density:   density,
			Electrons: []ElectronPopulation{{Temperature: te, Fraction: 1}},
			Ions:      []IonPopulation{{Species: proton, Temperature: ti, Fraction: 1}},
		},
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.Geometry.Probe == (plasma.Vec3{}) && cfg.Geometry.Scatter == (plasma.Vec3{}) {
		cfg.Geometry = Geometry{
			Probe:   plasma.Vec3{X: 1},
			Scatter: plasma.Vec3{Y: 1},
		}
	}

	if len(cfg.Plasma.Electrons) == 1 && cfg.Plasma.Electrons[0].Fraction == 0 {
		cfg.Plasma.Electrons = []ElectronPopulation{cfg.Plasma.Electrons[0]}
		cfg.Plasma.Electrons[0].Fraction = 1
	}

	if len(cfg.Plasma.Ions) == 1 && cfg.Plasma.Ions[0].Fraction == 0 {
		cfg.Plasma.Ions = []IonPopulation{cfg.Plasma.Ions[0]}
		cfg.Plasma.Ions[0].Fraction = 1
	}

	return cfg
}
