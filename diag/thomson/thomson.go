package thomson

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-plasma/plasma"
	"github.com/cwbudde/algo-plasma/plasma/dispersion"
)

const twoPiC = 2 * math.Pi * plasma.SpeedOfLight

// population carries the precomputed per-population quantities used during
// evaluation.
type population struct {
	vth      float64 // most-probable thermal speed (m/s)
	wp2      float64 // squared plasma frequency of this population (rad^2/s^2)
	fraction float64
	charge   float64 // |Z| weight of the scattered ion term; 1 for electrons
	drift    float64 // drift velocity projected on the k direction vector
}

// Evaluator computes spectral densities for one fixed configuration.
// It is immutable after construction and safe for concurrent use.
type Evaluator struct {
	cfg Config

	cosTheta float64
	kvec     plasma.Vec3 // scatter - probe, from unit vectors (unnormalized)
	omegal   float64     // probe angular frequency (rad/s)
	kl       float64     // probe wavenumber in the plasma (rad/m)
	wpe      float64     // total electron plasma frequency (rad/s)
	alpha    float64

	electrons []population
	ions      []population
}

// NewEvaluator validates the configuration and precomputes the
// wavelength-independent plasma parameters.
func NewEvaluator(cfg Config) (*Evaluator, error) {
	cfg = normalizeConfig(cfg)

	if cfg.ProbeWavelength <= 0 {
		return nil, fmt.Errorf("%w: probe wavelength %v must be positive", ErrInvalidConfig, cfg.ProbeWavelength)
	}

	if cfg.Plasma.Density <= 0 {
		return nil, fmt.Errorf("%w: density %v must be positive", ErrInvalidConfig, cfg.Plasma.Density)
	}

	if len(cfg.Plasma.Electrons) == 0 {
		return nil, fmt.Errorf("%w: at least one electron population required", ErrInvalidConfig)
	}

	if len(cfg.Plasma.Ions) == 0 {
		return nil, fmt.Errorf("%w: at least one ion population required", ErrInvalidConfig)
	}

	if err := validatePopulations(cfg.Plasma); err != nil {
		return nil, err
	}

	probe, err := cfg.Geometry.Probe.Unit()
	if err != nil {
		return nil, fmt.Errorf("%w: probe direction is zero", ErrInvalidConfig)
	}

	scatter, err := cfg.Geometry.Scatter.Unit()
	if err != nil {
		return nil, fmt.Errorf("%w: scatter direction is zero", ErrInvalidConfig)
	}

	kvec := scatter.Sub(probe)
	if kvec.Norm() < 1e-9 {
		return nil, fmt.Errorf("%w: probe and scatter directions coincide", ErrDegenerateGeometry)
	}

	e := &Evaluator{
		cfg:      cfg,
		cosTheta: probe.Dot(scatter),
		kvec:     kvec,
		omegal:   twoPiC / cfg.ProbeWavelength,
		wpe:      plasma.PlasmaFrequency(cfg.Plasma.Density, 1, plasma.ElectronMass),
	}

	if e.omegal <= e.wpe {
		return nil, fmt.Errorf("%w: probe wavelength %v m", ErrBelowCutoff, cfg.ProbeWavelength)
	}

	e.kl = math.Sqrt(e.omegal*e.omegal-e.wpe*e.wpe) / plasma.SpeedOfLight

	if err := e.buildPopulations(); err != nil {
		return nil, err
	}

	// alpha at the unshifted scattering wavenumber k0 = 2*kl*sin(theta/2),
	// with the electron Debye screening weighted over populations.
	k0 := e.kl * math.Sqrt(2-2*e.cosTheta)

	invVth := 0.0
	for _, pop := range e.electrons {
		invVth += pop.fraction / pop.vth
	}

	e.alpha = math.Sqrt2 * e.wpe / k0 * invVth

	return e, nil
}

func validatePopulations(state PlasmaState) error {
	esum := 0.0
	for i, pop := range state.Electrons {
		if pop.Temperature <= 0 {
			return fmt.Errorf("%w: electron population %d temperature %v must be positive",
				ErrInvalidConfig, i, pop.Temperature)
		}

		if pop.Fraction < 0 {
			return fmt.Errorf("%w: electron population %d fraction %v is negative",
				ErrInvalidConfig, i, pop.Fraction)
		}

		esum += pop.Fraction
	}

	if math.Abs(esum-1) > fractionTol {
		return fmt.Errorf("%w: electron fractions sum to %v, want 1", ErrInvalidConfig, esum)
	}

	isum := 0.0
	zbar := 0.0

	for i, pop := range state.Ions {
		if pop.Temperature <= 0 {
			return fmt.Errorf("%w: ion population %d temperature %v must be positive",
				ErrInvalidConfig, i, pop.Temperature)
		}

		if pop.Fraction < 0 {
			return fmt.Errorf("%w: ion population %d fraction %v is negative",
				ErrInvalidConfig, i, pop.Fraction)
		}

		if pop.Species.Mass <= 0 {
			return fmt.Errorf("%w: ion population %d has no species mass", ErrInvalidConfig, i)
		}

		if pop.Species.Charge < 0 {
			return fmt.Errorf("%w: ion population %d has negative charge %d",
				ErrInvalidConfig, i, pop.Species.Charge)
		}

		isum += pop.Fraction
		zbar += pop.Fraction * float64(pop.Species.Charge)
	}

	if math.Abs(isum-1) > fractionTol {
		return fmt.Errorf("%w: ion fractions sum to %v, want 1", ErrInvalidConfig, isum)
	}

	if zbar <= 0 {
		return fmt.Errorf("%w: quasi-neutrality requires at least one charged ion population", ErrInvalidConfig)
	}

	return nil
}

func (e *Evaluator) buildPopulations() error {
	n := e.cfg.Plasma.Density

	for _, pop := range e.cfg.Plasma.Electrons {
		e.electrons = append(e.electrons, population{
			vth:      plasma.ThermalSpeed(pop.Temperature, plasma.ElectronMass),
			wp2:      pop.Fraction * e.wpe * e.wpe,
			fraction: pop.Fraction,
			charge:   1,
			drift:    pop.Drift.Dot(e.kvec),
		})
	}

	zbar := 0.0
	for _, pop := range e.cfg.Plasma.Ions {
		zbar += pop.Fraction * float64(pop.Species.Charge)
	}

	for _, pop := range e.cfg.Plasma.Ions {
		z := float64(pop.Species.Charge)
		ni := pop.Fraction * n / zbar
		wp := plasma.PlasmaFrequency(ni, z, pop.Species.Mass)

		e.ions = append(e.ions, population{
			vth:      plasma.ThermalSpeed(pop.Temperature, pop.Species.Mass),
			wp2:      wp * wp,
			fraction: pop.Fraction,
			charge:   z,
			drift:    pop.Drift.Dot(e.kvec),
		})
	}

	return nil
}

// Alpha returns the scattering parameter of the configuration.
func (e *Evaluator) Alpha() float64 {
	return e.alpha
}

// Result holds one spectral density evaluation.
type Result struct {
	// Alpha is the scattering parameter 1/(k*lambda_De).
	Alpha float64

	// Skw is the spectral density (s/rad), one value per requested
	// wavelength.
	Skw []float64
}

// SpectralDensity is a one-shot evaluation of cfg over the wavelength grid.
func SpectralDensity(wavelengths []float64, cfg Config) (Result, error) {
	e, err := NewEvaluator(cfg)
	if err != nil {
		return Result{}, err
	}

	return e.Evaluate(wavelengths)
}

// Evaluate computes the spectral density at each requested wavelength (m).
// Either the full grid is computed or an error is returned; there are no
// partial results.
func (e *Evaluator) Evaluate(wavelengths []float64) (Result, error) {
	if len(wavelengths) == 0 {
		return Result{}, ErrEmptyWavelengths
	}

	for i, wl := range wavelengths {
		if wl <= 0 {
			return Result{}, fmt.Errorf("%w: wavelengths[%d] = %v", ErrInvalidWavelength, i, wl)
		}

		if twoPiC/wl <= e.wpe {
			return Result{}, fmt.Errorf("%w: wavelengths[%d] = %v m", ErrBelowCutoff, i, wl)
		}
	}

	n := len(wavelengths)

	// Frequency shift and scattering wavenumber per wavelength
	// (Sheffield Secs. 1.7.1 and 1.8.1).
	w := make([]float64, n)
	k := make([]float64, n)

	for j, lambda := range wavelengths {
		ws := twoPiC / lambda
		ks := math.Sqrt(ws*ws-e.wpe*e.wpe) / plasma.SpeedOfLight

		w[j] = ws - e.omegal
		k[j] = math.Sqrt(ks*ks + e.kl*e.kl - 2*ks*e.kl*e.cosTheta)
	}

	sumChiE := make([]complex128, n)
	sumChiI := make([]complex128, n)
	zetaE := susceptibilities(sumChiE, e.electrons, w, k)
	zetaI := susceptibilities(sumChiI, e.ions, w, k)

	// |1 - X_e/eps|^2 and |X_e/eps|^2 over the grid.
	reE := make([]float64, n)
	imE := make([]float64, n)
	reI := make([]float64, n)
	imI := make([]float64, n)

	for j := 0; j < n; j++ {
		eps := 1 + sumChiE[j] + sumChiI[j]
		ratio := sumChiE[j] / eps

		reE[j] = 1 - real(ratio)
		imE[j] = -imag(ratio)
		reI[j] = real(ratio)
		imI[j] = imag(ratio)
	}

	powE := make([]float64, n)
	powI := make([]float64, n)
	vecmath.Power(powE, reE, imE)
	vecmath.Power(powI, reI, imI)

	skw := make([]float64, n)
	tmp := make([]float64, n)

	accumulate(skw, tmp, powE, zetaE, e.electrons, k)
	accumulate(skw, tmp, powI, zetaI, e.ions, k)

	for j := 0; j < n; j++ {
		if math.IsNaN(skw[j]) || math.IsInf(skw[j], 0) {
			return Result{}, fmt.Errorf("%w: S at wavelength %v m", ErrNotFinite, wavelengths[j])
		}
	}

	return Result{Alpha: e.alpha, Skw: skw}, nil
}

// susceptibilities accumulates each population's susceptibility into sum and
// returns the normalized Doppler-shifted phase velocities per population.
func susceptibilities(sum []complex128, pops []population, w, k []float64) [][]float64 {
	zetas := make([][]float64, len(pops))

	for i, pop := range pops {
		zeta := make([]float64, len(w))

		for j := range w {
			// Doppler shift by the drift projected on the scattering
			// direction, then normalize by the thermal speed.
			zeta[j] = (w[j] - k[j]*pop.drift) / (k[j] * pop.vth)

			// X = -(w_p^2 / (k^2 v_th^2)) * Z'(zeta), the Maxwellian
			// susceptibility.
			coef := pop.wp2 / (k[j] * k[j] * pop.vth * pop.vth)
			zp := dispersion.ZPrime(zeta[j])
			sum[j] += complex(-coef*real(zp), -coef*imag(zp))
		}

		zetas[i] = zeta
	}

	return zetas
}

// accumulate adds each population's scattered term
// fraction * 2*sqrt(pi)*Z/(k*vth) * pow * exp(-zeta^2) into skw.
func accumulate(skw, tmp, pow []float64, zetas [][]float64, pops []population, k []float64) {
	for i, pop := range pops {
		zeta := zetas[i]

		for j := range tmp {
			tmp[j] = pow[j] * math.Exp(-zeta[j]*zeta[j]) / k[j]
		}

		scale := 2 * math.SqrtPi * pop.fraction * pop.charge / pop.vth
		vecmath.ScaleBlock(tmp, tmp, scale)
		vecmath.AddBlockInPlace(skw, tmp)
	}
}
