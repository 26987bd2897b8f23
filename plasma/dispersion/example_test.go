package dispersion_test

import (
	"fmt"

	"github.com/cwbudde/algo-plasma/plasma/dispersion"
)

func ExampleDawson() {
	fmt.Printf("%.6f\n", dispersion.Dawson(1.0))
	// Output:
	// 0.538080
}

func ExampleZ() {
	fmt.Printf("%.4f\n", imag(dispersion.Z(0)))
	// Output:
	// 1.7725
}
