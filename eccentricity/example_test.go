package eccentricity_test

import (
	"fmt"

	"github.com/TianyiShi2001/Algorithms/eccentricity"
	"github.com/TianyiShi2001/Algorithms/tree"
)

// ExampleEccentricities computes the full eccentricity table of the path
// 0-1-2-3-4 in one linear pass.
func ExampleEccentricities() {
	ut, err := tree.FromEdges(5, [][2]tree.Node{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	ecc, err := eccentricity.Eccentricities(ut)
	if err != nil {
		fmt.Println("eccentricities:", err)
		return
	}

	fmt.Println(ecc)
	// Output:
	// [4 3 2 3 4]
}

// ExampleDiameter relates the longest path to the minimum eccentricity.
func ExampleDiameter() {
	//      5
	//      │
	//  1───0───2
	//      │
	//      3───4
	ut, err := tree.FromEdges(6, [][2]tree.Node{{0, 1}, {0, 2}, {0, 3}, {3, 4}, {0, 5}})
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	d, _ := eccentricity.Diameter(ut)
	r, _ := eccentricity.Radius(ut)
	fmt.Println("diameter:", d)
	fmt.Println("radius:  ", r)
	// Output:
	// diameter: 3
	// radius:   2
}
