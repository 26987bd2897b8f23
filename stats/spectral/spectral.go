// Package spectral provides summary statistics and peak detection for
// sampled spectra.
//
// A spectrum is a pair of slices (x, y): sample positions (for scattering
// spectra, wavelengths) and non-negative spectral density values. The
// sample positions must be strictly increasing but need not be uniformly
// spaced; integrals use the trapezoidal rule.
package spectral

import (
	"errors"
	"math"
)

// Errors returned by Calculate.
var (
	ErrLengthMismatch = errors.New("spectral: x and y must have the same length")
	ErrTooFewPoints   = errors.New("spectral: at least two points required")
	ErrNotIncreasing  = errors.New("spectral: x must be strictly increasing")
)

// Stats holds summary statistics of a sampled spectrum.
type Stats struct {
	Points   int
	Max      float64
	MaxIndex int
	Min      float64
	Sum      float64
	Area     float64 // trapezoidal integral of y over x
	Centroid float64 // area-weighted mean position
	FWHM     float64 // full width at half maximum around the global peak; 0 if unresolved
}

// Calculate computes summary statistics for the spectrum (x, y).
func Calculate(x, y []float64) (Stats, error) {
	if len(x) != len(y) {
		return Stats{}, ErrLengthMismatch
	}

	if len(x) < 2 {
		return Stats{}, ErrTooFewPoints
	}

	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return Stats{}, ErrNotIncreasing
		}
	}

	s := Stats{
		Points: len(x),
		Max:    y[0],
		Min:    y[0],
	}

	area := 0.0
	moment := 0.0

	for i, v := range y {
		s.Sum += v

		if v > s.Max {
			s.Max = v
			s.MaxIndex = i
		}

		if v < s.Min {
			s.Min = v
		}

		if i == 0 {
			continue
		}

		dx := x[i] - x[i-1]
		area += 0.5 * (v + y[i-1]) * dx
		moment += 0.5 * (v*x[i] + y[i-1]*x[i-1]) * dx
	}

	s.Area = area
	if area != 0 {
		s.Centroid = moment / area
	}

	s.FWHM = fwhm(x, y, s.MaxIndex)

	return s, nil
}

// fwhm finds the width at half the peak value by linear interpolation on
// both flanks of the global peak. Returns 0 when either flank never drops
// below half maximum inside the sampled range.
func fwhm(x, y []float64, peak int) float64 {
	half := y[peak] / 2
	if half <= 0 {
		return 0
	}

	left := math.NaN()
	for i := peak; i > 0; i-- {
		if y[i-1] < half {
			left = crossing(x[i-1], x[i], y[i-1], y[i], half)
			break
		}
	}

	right := math.NaN()
	for i := peak; i < len(y)-1; i++ {
		if y[i+1] < half {
			right = crossing(x[i], x[i+1], y[i], y[i+1], half)
			break
		}
	}

	if math.IsNaN(left) || math.IsNaN(right) {
		return 0
	}

	return right - left
}

// crossing interpolates the x position where the segment (x0,y0)-(x1,y1)
// crosses the level value.
func crossing(x0, x1, y0, y1, level float64) float64 {
	if y1 == y0 {
		return x0
	}

	return x0 + (x1-x0)*(level-y0)/(y1-y0)
}

// Peaks returns the indices of local maxima with topographic prominence of
// at least minProminence, in ascending index order.
//
// A candidate is a sample strictly greater than its left neighbor and at
// least as large as its right neighbor. Its prominence is measured against
// the higher of the two minima separating it from neighboring higher
// terrain (or from the spectrum edges).
func Peaks(y []float64, minProminence float64) []int {
	var peaks []int

	for i := 1; i < len(y)-1; i++ {
		if !(y[i] > y[i-1] && y[i] >= y[i+1]) {
			continue
		}

		if prominence(y, i) >= minProminence {
			peaks = append(peaks, i)
		}
	}

	return peaks
}

func prominence(y []float64, peak int) float64 {
	leftMin := y[peak]
	for i := peak - 1; i >= 0; i-- {
		if y[i] > y[peak] {
			break
		}

		if y[i] < leftMin {
			leftMin = y[i]
		}
	}

	rightMin := y[peak]
	for i := peak + 1; i < len(y); i++ {
		if y[i] > y[peak] {
			break
		}

		if y[i] < rightMin {
			rightMin = y[i]
		}
	}

	return y[peak] - math.Max(leftMin, rightMin)
}
