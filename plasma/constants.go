package plasma

// Physical constants (CODATA 2018), SI units.
const (
	// SpeedOfLight is the speed of light in vacuum (m/s, exact).
	SpeedOfLight = 2.99792458e8

	// ElementaryCharge is the elementary charge (C, exact).
	ElementaryCharge = 1.602176634e-19

	// ElectronMass is the electron rest mass (kg).
	ElectronMass = 9.1093837015e-31

	// AtomicMassUnit is the unified atomic mass unit (kg).
	AtomicMassUnit = 1.66053906660e-27

	// VacuumPermittivity is the vacuum electric permittivity (F/m).
	VacuumPermittivity = 8.8541878128e-12

	// BoltzmannConstant is the Boltzmann constant (J/K, exact).
	BoltzmannConstant = 1.380649e-23
)
