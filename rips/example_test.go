// SPDX-License-Identifier: MIT
package rips_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-persistence/rips"
	"github.com/katalvlaran/lvlath-persistence/samples"
	"github.com/katalvlaran/lvlath-persistence/simplicial"
)

// A 3×3 unit lattice: nine components until ε=1, then four unit squares
// bound four independent 1-cycles (their diagonals are L1-distance 2).
func ExampleBuilder_Analyze() {
	c, err := samples.Build(samples.Grid(3, 3, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	b, err := rips.New(c)
	if err != nil {
		fmt.Println(err)
		return
	}
	records, err := b.Analyze(simplicial.Z, 1.5, 0.25)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, r := range records {
		fmt.Printf("[%.2f, %.2f) ranks=%v torsion=%v\n", r.Start, r.End, r.Ranks, r.Torsions)
	}
	// Output:
	// [0.00, 1.00) ranks=[9 0 0] torsion=[[] [] []]
	// [1.00, 1.75) ranks=[1 4 0] torsion=[[] [] []]
}
