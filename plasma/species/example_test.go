package species_test

import (
	"fmt"

	"github.com/cwbudde/algo-plasma/plasma/species"
)

func ExampleParse() {
	p, _ := species.Parse("He-4 2+")
	fmt.Printf("%s charge=%d\n", p.Name, p.Charge)
	// Output:
	// He-4 2+ charge=2
}
