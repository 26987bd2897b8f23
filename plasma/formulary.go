package plasma

import "math"

// ThermalSpeed returns the most-probable thermal speed sqrt(2*T/m) in m/s
// for a species of mass m (kg) at temperature T (J).
func ThermalSpeed(temperature, mass float64) float64 {
	return math.Sqrt(2 * temperature / mass)
}

// PlasmaFrequency returns the angular plasma frequency (rad/s) of a species
// with number density n (m^-3), charge number z (elementary charges), and
// mass m (kg):
//
//	w_p = |z| e sqrt(n / (eps0 m))
func PlasmaFrequency(density, charge, mass float64) float64 {
	return math.Abs(charge) * ElementaryCharge * math.Sqrt(density/(VacuumPermittivity*mass))
}

// DebyeLength returns the electron Debye screening length (m) for electron
// density n (m^-3) and electron temperature Te (J).
func DebyeLength(density, temperature float64) float64 {
	return math.Sqrt(VacuumPermittivity * temperature / (density * ElementaryCharge * ElementaryCharge))
}

// ScatteringParameter returns the dimensionless Salpeter scattering
// parameter alpha = 1/(k*lambda_De) for scattering wavenumber k (rad/m).
// alpha < 1 indicates non-collective scattering, alpha >= 1 collective.
func ScatteringParameter(k, debyeLength float64) float64 {
	return 1 / (k * debyeLength)
}
