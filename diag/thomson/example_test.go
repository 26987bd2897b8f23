package thomson_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-plasma/diag/thomson"
	"github.com/cwbudde/algo-plasma/plasma"
)

func ExampleSpectralDensity() {
	cfg := thomson.DefaultConfig(
		plasma.Nanometers(532),
		plasma.PerCubicCentimeter(2e17),
		plasma.EVToJoule(12),
		plasma.EVToJoule(10),
	)
	cfg.Geometry = thomson.GeometryFromAngle(63 * math.Pi / 180)

	wavelengths := []float64{
		plasma.Nanometers(531.8),
		plasma.Nanometers(532.0),
		plasma.Nanometers(532.2),
	}

	res, err := thomson.SpectralDensity(wavelengths, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("alpha = %.2f, %d samples\n", res.Alpha, len(res.Skw))
	// Output:
	// alpha = 1.41, 3 samples
}
