package plasma

// EVToJoule converts an energy (or temperature) in electronvolts to joules.
func EVToJoule(ev float64) float64 {
	return ev * ElementaryCharge
}

// JouleToEV converts an energy in joules to electronvolts.
func JouleToEV(j float64) float64 {
	return j / ElementaryCharge
}

// EVToKelvin converts a temperature in electronvolts to kelvin.
func EVToKelvin(ev float64) float64 {
	return ev * ElementaryCharge / BoltzmannConstant
}

// KelvinToEV converts a temperature in kelvin to electronvolts.
func KelvinToEV(k float64) float64 {
	return k * BoltzmannConstant / ElementaryCharge
}

// Nanometers converts a length in nanometres to metres.
func Nanometers(nm float64) float64 {
	return nm * 1e-9
}

// ToNanometers converts a length in metres to nanometres.
func ToNanometers(m float64) float64 {
	return m * 1e9
}

// PerCubicCentimeter converts a number density in cm^-3 to m^-3.
func PerCubicCentimeter(n float64) float64 {
	return n * 1e6
}
