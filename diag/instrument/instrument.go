// Package instrument models the spectral response of a detection system.
//
// A spectrometer records the plasma spectrum convolved with its instrument
// function. The package builds normalized Gaussian instrument kernels from a
// full width at half maximum and applies them to sampled spectra, keeping the
// output on the input wavelength grid.
package instrument

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by kernel construction and application.
var (
	ErrInvalidFWHM   = errors.New("instrument: fwhm must be positive")
	ErrInvalidStep   = errors.New("instrument: grid step must be positive")
	ErrEmptyInput    = errors.New("instrument: empty input")
	ErrKernelTooLong = errors.New("instrument: kernel longer than spectrum")
)

// Kernels shorter than this are convolved directly; longer ones go through
// the FFT path.
const directThreshold = 64

// Gaussian builds a discrete Gaussian instrument kernel for a spectrum
// sampled with the given grid step. fwhm and step share the same unit. The
// kernel is odd-length, spans four standard deviations to each side, and sums
// to one so that convolution preserves the integrated spectrum.
func Gaussian(fwhm, step float64) ([]float64, error) {
	if fwhm <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFWHM, fwhm)
	}

	if step <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStep, step)
	}

	sigma := fwhm / (2 * math.Sqrt(2*math.Ln2))

	half := int(math.Ceil(4 * sigma / step))
	if half < 1 {
		half = 1
	}

	kernel := make([]float64, 2*half+1)

	sum := 0.0
	for i := range kernel {
		x := float64(i-half) * step
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}

	vecmath.ScaleBlock(kernel, kernel, 1/sum)

	return kernel, nil
}

// Apply convolves the spectrum with the kernel and returns the centered
// portion on the input grid. The spectrum is treated as zero outside its
// range. The kernel must be odd-length and no longer than the spectrum.
func Apply(skw, kernel []float64) ([]float64, error) {
	if len(skw) == 0 {
		return nil, ErrEmptyInput
	}

	if len(kernel) == 0 || len(kernel)%2 == 0 {
		return nil, fmt.Errorf("instrument: kernel length %d must be odd", len(kernel))
	}

	if len(kernel) > len(skw) {
		return nil, fmt.Errorf("%w: %d > %d", ErrKernelTooLong, len(kernel), len(skw))
	}

	var (
		full []float64
		err  error
	)

	if len(kernel) <= directThreshold {
		full = convolveDirect(skw, kernel)
	} else {
		full, err = convolveFFT(skw, kernel)
		if err != nil {
			return nil, err
		}
	}

	out := full[(len(kernel)-1)/2:]
	out = out[:len(skw)]

	// The FFT round trip can leave tiny negative values where the spectrum
	// is near zero.
	for i, v := range out {
		if v < 0 {
			out[i] = 0
		}
	}

	return out, nil
}

// Broaden is a one-shot Gaussian instrument application: it builds the kernel
// for the given fwhm and grid step and convolves the spectrum with it.
func Broaden(skw []float64, fwhm, step float64) ([]float64, error) {
	kernel, err := Gaussian(fwhm, step)
	if err != nil {
		return nil, err
	}

	return Apply(skw, kernel)
}

func convolveDirect(a, b []float64) []float64 {
	full := make([]float64, len(a)+len(b)-1)
	temp := make([]float64, len(b))

	for i := range a {
		vecmath.ScaleBlock(temp, b, a[i])
		vecmath.AddBlockInPlace(full[i:i+len(b)], temp)
	}

	return full
}

func convolveFFT(a, b []float64) ([]float64, error) {
	size := nextPowerOf2(len(a) + len(b) - 1)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("instrument: failed to create FFT plan: %w", err)
	}

	aPad := make([]complex128, size)
	bPad := make([]complex128, size)

	for i, v := range a {
		aPad[i] = complex(v, 0)
	}

	for i, v := range b {
		bPad[i] = complex(v, 0)
	}

	aFreq := make([]complex128, size)
	bFreq := make([]complex128, size)

	if err := plan.Forward(aFreq, aPad); err != nil {
		return nil, fmt.Errorf("instrument: forward FFT failed: %w", err)
	}

	if err := plan.Forward(bFreq, bPad); err != nil {
		return nil, fmt.Errorf("instrument: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	result := make([]complex128, size)
	if err := plan.Inverse(result, aFreq); err != nil {
		return nil, fmt.Errorf("instrument: inverse FFT failed: %w", err)
	}

	full := make([]float64, len(a)+len(b)-1)
	for i := range full {
		full[i] = real(result[i])
	}

	return full, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
