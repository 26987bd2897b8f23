// Package thomson computes the Thomson scattering spectral density of a
// multi-species Maxwellian plasma.
//
// Given a probe laser wavelength, a scattering geometry, and a plasma state
// (one or more electron populations and ion species), Evaluate returns the
// dimensionless scattering parameter alpha and the spectral density S(k,w)
// in s/rad at each requested scattering wavelength:
//
//	S(k,w) = sum_e (2*pi/k) |1 - X_e/eps|^2 f_e0(w/k)
//	       + sum_i (2*pi*Z_i/k) |X_e/eps|^2 f_i0(w/k)
//
// with X the species susceptibilities, eps = 1 + sum X the longitudinal
// dielectric function, and f0 the drifting Maxwellian velocity distribution
// of each population (Sheffield, "Plasma Scattering of Electromagnetic
// Radiation", Eq. 3.4.6). alpha = 1/(k*lambda_De) separates non-collective
// (alpha < 1) from collective (alpha >= 1) scattering and is evaluated once
// at the unshifted scattering wavenumber, independent of the requested
// wavelength grid.
//
// The plasma is assumed quasi-neutral: ion population densities are derived
// from the total electron density and the charge-weighted ion fractions.
// All inputs are SI (metres, joules, m^-3, m/s); see the plasma package for
// conversion helpers.
package thomson
