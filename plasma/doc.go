// Package plasma provides physical constants, unit conversion helpers,
// 3-vector geometry, and basic plasma formulary functions.
//
// All quantities are SI throughout the module: wavelengths in metres,
// temperatures in joules, number densities in m^-3, velocities in m/s.
// Conversion helpers (EVToJoule, Nanometers, PerCubicCentimeter, ...) exist
// so that callers working in the customary lab units (eV, nm, cm^-3) can
// convert explicitly at the boundary instead of guessing conventions.
//
// The formulary functions are plain scalar evaluations and do not validate
// their inputs; non-positive densities, temperatures, or masses yield NaN
// just as the underlying math functions would. Input validation belongs to
// the higher-level diagnostics packages.
package plasma
