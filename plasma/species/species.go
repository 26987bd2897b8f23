// Package species provides a small particle database for scattering
// calculations: electron and common ion species with isotope masses and
// charge states.
//
// Species are identified by symbols in the form "El-A z+", for example
// "He-4 2+" (fully stripped helium-4) or "C-12 1+". The mass number may be
// omitted to select the element's most common isotope ("Ar 1+"), and the
// charge suffix may be attached directly for singly charged light ions
// ("H+", "D+", "T+"). "p+" is an alias for "H-1 1+" and "e-" denotes the
// electron.
package species

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-plasma/plasma"
)

// Errors returned by Parse.
var (
	ErrUnknownSpecies = errors.New("species: unknown species")
	ErrInvalidCharge  = errors.New("species: invalid charge state")
)

// Particle identifies a particle by name, rest mass (kg), and charge number
// (elementary charges; negative for the electron, zero for neutrals).
type Particle struct {
	Name   string
	Mass   float64
	Charge int
}

// isotope describes one table entry. Masses are neutral-atom masses in u;
// ion masses subtract the electron masses removed by ionization.
type isotope struct {
	element    string
	atomicNum  int
	massNumber int
	massU      float64
	common     bool // default isotope for a bare element symbol
}

var isotopes = []isotope{
	{"H", 1, 1, 1.00782503207, true},
	{"H", 1, 2, 2.01410177785, false},
	{"H", 1, 3, 3.01604927767, false},
	{"He", 2, 3, 3.01602932007, false},
	{"He", 2, 4, 4.00260325413, true},
	{"Li", 3, 6, 6.01512288742, false},
	{"Li", 3, 7, 7.01600343666, true},
	{"Be", 4, 9, 9.01218306500, true},
	{"B", 5, 11, 11.00930535640, true},
	{"C", 6, 12, 12.0, true},
	{"C", 6, 13, 13.00335483507, false},
	{"N", 7, 14, 14.00307400443, true},
	{"O", 8, 16, 15.99491461957, true},
	{"Ne", 10, 20, 19.99244017617, true},
	{"Ar", 18, 40, 39.96238312370, true},
	{"Fe", 26, 56, 55.93493632600, true},
	{"W", 74, 184, 183.95093091800, true},
}

// aliases maps shorthand symbols to canonical "El-A z+" forms.
var aliases = map[string]string{
	"p":  "H-1 1+",
	"p+": "H-1 1+",
	"H+": "H-1 1+",
	"D":  "H-2",
	"D+": "H-2 1+",
	"T":  "H-3",
	"T+": "H-3 1+",
}

// Electron returns the electron particle.
func Electron() Particle {
	return Particle{Name: "e-", Mass: plasma.ElectronMass, Charge: -1}
}

// Parse resolves a species symbol to a Particle.
func Parse(symbol string) (Particle, error) {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return Particle{}, fmt.Errorf("%w: empty symbol", ErrUnknownSpecies)
	}

	if s == "e-" {
		return Electron(), nil
	}

	if canonical, ok := aliases[s]; ok {
		s = canonical
	}

	elem, massNum, charge, err := splitSymbol(s)
	if err != nil {
		return Particle{}, err
	}

	iso, err := lookupIsotope(elem, massNum)
	if err != nil {
		return Particle{}, err
	}

	if charge < 0 {
		return Particle{}, fmt.Errorf("%w: negative ion charge in %q", ErrInvalidCharge, symbol)
	}

	if charge > iso.atomicNum {
		return Particle{}, fmt.Errorf("%w: charge %d exceeds atomic number %d of %s",
			ErrInvalidCharge, charge, iso.atomicNum, iso.element)
	}

	name := fmt.Sprintf("%s-%d", iso.element, iso.massNumber)
	if charge > 0 {
		name = fmt.Sprintf("%s %d+", name, charge)
	}

	mass := iso.massU*plasma.AtomicMassUnit - float64(charge)*plasma.ElectronMass

	return Particle{Name: name, Mass: mass, Charge: charge}, nil
}

// splitSymbol decomposes "El-A z+" into element, mass number, and charge.
// Mass number -1 means "unspecified"; charge -1 flags an invalid sign.
func splitSymbol(s string) (elem string, massNum, charge int, err error) {
	massNum = -1

	body := s
	if i := strings.IndexByte(s, ' '); i >= 0 {
		body = s[:i]

		charge, err = parseCharge(strings.TrimSpace(s[i+1:]))
		if err != nil {
			return "", 0, 0, err
		}
	}

	if i := strings.IndexByte(body, '-'); i >= 0 {
		elem = body[:i]

		massNum, err = strconv.Atoi(body[i+1:])
		if err != nil || massNum <= 0 {
			return "", 0, 0, fmt.Errorf("%w: malformed mass number in %q", ErrUnknownSpecies, s)
		}
	} else {
		elem = body
	}

	if elem == "" {
		return "", 0, 0, fmt.Errorf("%w: %q", ErrUnknownSpecies, s)
	}

	return elem, massNum, charge, nil
}

// parseCharge parses "z+", "+", or "z-" charge suffixes.
func parseCharge(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	sign := 0
	switch s[len(s)-1] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, fmt.Errorf("%w: malformed charge %q", ErrInvalidCharge, s)
	}

	digits := s[:len(s)-1]
	if digits == "" {
		return sign, nil
	}

	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: malformed charge %q", ErrInvalidCharge, s)
	}

	return sign * n, nil
}

func lookupIsotope(elem string, massNum int) (isotope, error) {
	for _, iso := range isotopes {
		if iso.element != elem {
			continue
		}

		if massNum == -1 && iso.common {
			return iso, nil
		}

		if iso.massNumber == massNum {
			return iso, nil
		}
	}

	if massNum == -1 {
		return isotope{}, fmt.Errorf("%w: %q", ErrUnknownSpecies, elem)
	}

	return isotope{}, fmt.Errorf("%w: %s-%d", ErrUnknownSpecies, elem, massNum)
}
