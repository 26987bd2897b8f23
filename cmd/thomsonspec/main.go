// Command thomsonspec computes Thomson scattering spectral densities.
//
// Usage:
//
//	thomsonspec [flags]
//
// The plasma can be described inline with flags or loaded from a TOML
// scenario file.
//
// Examples:
//
//	thomsonspec -probe 532 -angle 63 -density 2e17 -te 12 -ti 10
//	thomsonspec -scenario shot42.toml
//	thomsonspec -scenario shot42.toml -fwhm 0.5 -csv
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-plasma/diag/instrument"
	"github.com/cwbudde/algo-plasma/diag/thomson"
	"github.com/cwbudde/algo-plasma/plasma"
	"github.com/cwbudde/algo-plasma/plasma/species"
	"github.com/cwbudde/algo-plasma/scenario"
	"github.com/cwbudde/algo-plasma/stats/spectral"
)

func main() {
	scenarioPath := flag.String("scenario", "", "TOML scenario file (overrides the plasma flags)")
	probe := flag.Float64("probe", 532, "probe wavelength in nm")
	angle := flag.Float64("angle", 63, "scattering angle in degrees")
	density := flag.Float64("density", 2e17, "electron density in cm^-3")
	te := flag.Float64("te", 12, "electron temperature in eV")
	ti := flag.Float64("ti", 10, "ion temperature in eV")
	ion := flag.String("ion", "H+", "ion species symbol")
	from := flag.Float64("from", 0, "grid start in nm (default: probe - 4)")
	to := flag.Float64("to", 0, "grid end in nm (default: probe + 4)")
	step := flag.Float64("step", 0.01, "grid step in nm")
	fwhm := flag.Float64("fwhm", 0, "Gaussian instrument FWHM in nm (0 disables)")
	csv := flag.Bool("csv", false, "write the spectrum as CSV instead of a summary")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: thomsonspec [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Computes the Thomson scattering spectral density of a Maxwellian plasma.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  thomsonspec -probe 532 -angle 63 -density 2e17 -te 12 -ti 10\n")
		fmt.Fprintf(os.Stderr, "  thomsonspec -scenario shot42.toml -fwhm 0.5 -csv\n")
	}
	flag.Parse()

	s, err := buildScenario(*scenarioPath, *probe, *angle, *density, *te, *ti, *ion)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	grid := s.Grid
	if *from != 0 || *to != 0 || grid == nil {
		center := plasma.ToNanometers(s.Config.ProbeWavelength)

		lo, hi := *from, *to
		if lo == 0 {
			lo = center - 4
		}

		if hi == 0 {
			hi = center + 4
		}

		grid, err = makeGrid(lo, hi, *step)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	res, err := thomson.SpectralDensity(grid, s.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	skw := res.Skw

	width := s.InstrumentFWHM
	if *fwhm > 0 {
		width = plasma.Nanometers(*fwhm)
	}

	if width > 0 {
		skw, err = instrument.Broaden(skw, width, grid[1]-grid[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *csv {
		printCSV(grid, skw)
		return
	}

	printSummary(grid, skw, res.Alpha)
}

func buildScenario(path string, probe, angle, density, te, ti float64, ion string) (scenario.Scenario, error) {
	if path != "" {
		return scenario.Load(path)
	}

	particle, err := species.Parse(ion)
	if err != nil {
		return scenario.Scenario{}, err
	}

	cfg := thomson.Config{
		ProbeWavelength: plasma.Nanometers(probe),
		Geometry:        thomson.GeometryFromAngle(angle * math.Pi / 180),
		Plasma: thomson.PlasmaState{
			Density: plasma.PerCubicCentimeter(density),
			Electrons: []thomson.ElectronPopulation{
				{Temperature: plasma.EVToJoule(te), Fraction: 1},
			},
			Ions: []thomson.IonPopulation{
				{Species: particle, Temperature: plasma.EVToJoule(ti), Fraction: 1},
			},
		},
	}

	return scenario.Scenario{Config: cfg}, nil
}

func makeGrid(fromNm, toNm, stepNm float64) ([]float64, error) {
	if stepNm <= 0 {
		return nil, fmt.Errorf("grid step %v nm must be positive", stepNm)
	}

	if toNm <= fromNm {
		return nil, fmt.Errorf("grid range [%v, %v] nm is empty", fromNm, toNm)
	}

	n := int(math.Round((toNm-fromNm)/stepNm)) + 1

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = plasma.Nanometers(fromNm + float64(i)*stepNm)
	}

	return grid, nil
}

func printCSV(grid, skw []float64) {
	fmt.Println("wavelength_nm,spectral_density_s_per_rad")
	for i := range grid {
		fmt.Printf("%.6f,%.8e\n", plasma.ToNanometers(grid[i]), skw[i])
	}
}

func printSummary(grid, skw []float64, alpha float64) {
	stats, err := spectral.Calculate(grid, skw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	regime := "non-collective"
	if alpha >= 1 {
		regime = "collective"
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "alpha\t%.4f (%s)\n", alpha, regime)
	fmt.Fprintf(tw, "grid\t%d points, %.3f to %.3f nm\n",
		stats.Points, plasma.ToNanometers(grid[0]), plasma.ToNanometers(grid[len(grid)-1]))
	fmt.Fprintf(tw, "peak\t%.4e s/rad at %.3f nm\n",
		stats.Max, plasma.ToNanometers(grid[stats.MaxIndex]))
	fmt.Fprintf(tw, "centroid\t%.3f nm\n", plasma.ToNanometers(stats.Centroid))
	fmt.Fprintf(tw, "fwhm\t%.4f nm\n", stats.FWHM*1e9)
	fmt.Fprintf(tw, "area\t%.4e s/rad * m\n", stats.Area)

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
