package thomson

import "errors"

// Errors returned by configuration validation and evaluation.
var (
	// ErrInvalidConfig flags a malformed or physically inconsistent
	// configuration (non-positive density or temperature, fractions not
	// summing to one, missing populations).
	ErrInvalidConfig = errors.New("thomson: invalid configuration")

	// ErrDegenerateGeometry flags colinear probe and scatter directions,
	// for which the scattering wavenumber vanishes and alpha is undefined.
	ErrDegenerateGeometry = errors.New("thomson: degenerate scattering geometry")

	// ErrEmptyWavelengths flags an empty wavelength grid.
	ErrEmptyWavelengths = errors.New("thomson: no wavelengths requested")

	// ErrInvalidWavelength flags a non-positive requested wavelength.
	ErrInvalidWavelength = errors.New("thomson: wavelengths must be positive")

	// ErrBelowCutoff flags a probe or scattered wave frequency at or below
	// the electron plasma frequency, where the wavenumber in the plasma is
	// not real.
	ErrBelowCutoff = errors.New("thomson: wave frequency at or below the plasma frequency")

	// ErrNotFinite flags a non-finite value produced during evaluation.
	ErrNotFinite = errors.New("thomson: computation produced a non-finite value")
)

// fractionTol is the tolerance on population fraction sums.
const fractionTol = 1e-3
