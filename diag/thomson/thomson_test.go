package thomson

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-plasma/plasma"
	"github.com/cwbudde/algo-plasma/plasma/species"
)

// notebookConfig is the reference scenario: 532 nm probe, 2e17 cm^-3,
// Te = 12 eV, Ti = 10 eV hydrogen plasma at a 63 degree scattering angle.
func notebookConfig() Config {
	cfg := DefaultConfig(
		plasma.Nanometers(532),
		plasma.PerCubicCentimeter(2e17),
		plasma.EVToJoule(12),
		plasma.EVToJoule(10),
	)
	cfg.Geometry = GeometryFromAngle(63 * math.Pi / 180)

	return cfg
}

// nmGrid builds a wavelength grid in metres from an inclusive nm range.
func nmGrid(fromNm, toNm, stepNm float64) []float64 {
	n := int(math.Round((toNm-fromNm)/stepNm)) + 1

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = plasma.Nanometers(fromNm + float64(i)*stepNm)
	}

	return grid
}

func TestSpectralDensity_ReferenceScenario(t *testing.T) {
	res, err := SpectralDensity(nmGrid(472, 592, 0.01), notebookConfig())
	if err != nil {
		t.Fatalf("SpectralDensity failed: %v", err)
	}

	if len(res.Skw) != 12001 {
		t.Fatalf("got %d samples, want 12001", len(res.Skw))
	}

	// Collective regime: alpha = sqrt(2)*wpe/(k0*vTe) ~ 1.41 for these
	// parameters.
	if res.Alpha < 1.39 || res.Alpha > 1.42 {
		t.Fatalf("Alpha = %v, want ~1.41", res.Alpha)
	}

	maxS := 0.0
	for i, s := range res.Skw {
		if s < 0 {
			t.Fatalf("Skw[%d] = %v < 0", i, s)
		}

		if s > maxS {
			maxS = s
		}
	}

	if maxS < 1e-13 || maxS > 3e-12 {
		t.Fatalf("max Skw = %e s/rad, want within (1e-13, 3e-12)", maxS)
	}
}

func TestEvaluate_AlphaIndependentOfGrid(t *testing.T) {
	e, err := NewEvaluator(notebookConfig())
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}

	r1, err := e.Evaluate(nmGrid(530, 534, 0.02))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	r2, err := e.Evaluate(nmGrid(500, 560, 0.5))
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if r1.Alpha != r2.Alpha {
		t.Fatalf("alpha depends on the wavelength grid: %v vs %v", r1.Alpha, r2.Alpha)
	}

	if r1.Alpha != e.Alpha() {
		t.Fatalf("Result.Alpha %v != Evaluator.Alpha() %v", r1.Alpha, e.Alpha())
	}
}

func TestNewEvaluator_ValidationErrors(t *testing.T) {
	proton, _ := species.Parse("H+")
	neutral, _ := species.Parse("He-4")

	base := notebookConfig()

	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			"non-positive probe wavelength",
			func(c *Config) { c.ProbeWavelength = 0 },
			ErrInvalidConfig,
		},
		{
			"non-positive density",
			func(c *Config) { c.Plasma.Density = -1 },
			ErrInvalidConfig,
		},
		{
			"no electrons",
			func(c *Config) { c.Plasma.Electrons = nil },
			ErrInvalidConfig,
		},
		{
			"no ions",
			func(c *Config) { c.Plasma.Ions = nil },
			ErrInvalidConfig,
		},
		{
			"non-positive electron temperature",
			func(c *Config) { c.Plasma.Electrons[0].Temperature = 0 },
			ErrInvalidConfig,
		},
		{
			"non-positive ion temperature",
			func(c *Config) { c.Plasma.Ions[0].Temperature = -5 },
			ErrInvalidConfig,
		},
		{
			"electron fractions not summing to one",
			func(c *Config) {
				c.Plasma.Electrons = []ElectronPopulation{
					{Temperature: plasma.EVToJoule(10), Fraction: 0.3},
					{Temperature: plasma.EVToJoule(20), Fraction: 0.3},
				}
			},
			ErrInvalidConfig,
		},
		{
			"multiple populations without fractions",
			func(c *Config) {
				c.Plasma.Ions = []IonPopulation{
					{Species: proton, Temperature: plasma.EVToJoule(10)},
					{Species: proton, Temperature: plasma.EVToJoule(10)},
				}
			},
			ErrInvalidConfig,
		},
		{
			"negative fraction",
			func(c *Config) {
				c.Plasma.Electrons = []ElectronPopulation{
					{Temperature: plasma.EVToJoule(10), Fraction: 1.5},
					{Temperature: plasma.EVToJoule(10), Fraction: -0.5},
				}
			},
			ErrInvalidConfig,
		},
		{
			"ion without species mass",
			func(c *Config) { c.Plasma.Ions[0].Species = species.Particle{Charge: 1} },
			ErrInvalidConfig,
		},
		{
			"negatively charged ion",
			func(c *Config) { c.Plasma.Ions[0].Species = species.Electron() },
			ErrInvalidConfig,
		},
		{
			"all-neutral ion mix",
			func(c *Config) {
				c.Plasma.Ions = []IonPopulation{
					{Species: neutral, Temperature: plasma.EVToJoule(10), Fraction: 1},
				}
			},
			ErrInvalidConfig,
		},
		{
			"zero probe direction",
			func(c *Config) { c.Geometry.Probe = plasma.Vec3{} },
			ErrInvalidConfig,
		},
		{
			"colinear geometry",
			func(c *Config) {
				c.Geometry = Geometry{
					Probe:   plasma.Vec3{X: 1},
					Scatter: plasma.Vec3{X: 2},
				}
			},
			ErrDegenerateGeometry,
		},
	}

	for _, tc := range cases {
		cfg := base
		cfg.Plasma.Electrons = append([]ElectronPopulation(nil), base.Plasma.Electrons...)
		cfg.Plasma.Ions = append([]IonPopulation(nil), base.Plasma.Ions...)

		tc.mutate(&cfg)

		if _, err := NewEvaluator(cfg); !errors.Is(err, tc.want) {
			t.Fatalf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNewEvaluator_FractionTolerance(t *testing.T) {
	cfg := notebookConfig()
	cfg.Plasma.Electrons = []ElectronPopulation{
		{Temperature: plasma.EVToJoule(12), Fraction: 0.5002},
		{Temperature: plasma.EVToJoule(12), Fraction: 0.5},
	}

	if _, err := NewEvaluator(cfg); err != nil {
		t.Fatalf("fractions within tolerance rejected: %v", err)
	}
}

func TestEvaluate_InputErrors(t *testing.T) {
	e, err := NewEvaluator(notebookConfig())
	if err != nil {
		t.Fatalf("NewEvaluator failed: %v", err)
	}

	if _, err := e.Evaluate(nil); !errors.Is(err, ErrEmptyWavelengths) {
		t.Fatalf("empty grid: error = %v, want ErrEmptyWavelengths", err)
	}

	if _, err := e.Evaluate([]float64{plasma.Nanometers(532), -1}); !errors.Is(err, ErrInvalidWavelength) {
		t.Fatalf("negative wavelength: error = %v, want ErrInvalidWavelength", err)
	}

	// 0.1 mm is past the plasma-frequency cutoff for 2e17 cm^-3.
	if _, err := e.Evaluate([]float64{1e-4}); !errors.Is(err, ErrBelowCutoff) {
		t.Fatalf("cutoff: error = %v, want ErrBelowCutoff", err)
	}
}

func TestNewEvaluator_ProbeBelowCutoff(t *testing.T) {
	cfg := notebookConfig()
	cfg.ProbeWavelength = 1e-3

	if _, err := NewEvaluator(cfg); !errors.Is(err, ErrBelowCutoff) {
		t.Fatalf("error = %v, want ErrBelowCutoff", err)
	}
}

func TestEvaluate_SingleFractionDefaultsToOne(t *testing.T) {
	cfg := notebookConfig()
	cfg.Plasma.Electrons[0].Fraction = 0
	cfg.Plasma.Ions[0].Fraction = 0

	grid := nmGrid(530, 534, 0.05)

	got, err := SpectralDensity(grid, cfg)
	if err != nil {
		t.Fatalf("SpectralDensity failed: %v", err)
	}

	want, err := SpectralDensity(grid, notebookConfig())
	if err != nil {
		t.Fatalf("SpectralDensity failed: %v", err)
	}

	for i := range got.Skw {
		if got.Skw[i] != want.Skw[i] {
			t.Fatalf("defaulted fraction changed the spectrum at %d: %v vs %v", i, got.Skw[i], want.Skw[i])
		}
	}
}
