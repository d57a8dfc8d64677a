package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/planar/pkg/planar"
	"github.com/dhconnelly/rtreego"
)

func main() {
	sys := planar.NewCoordinateSystem()

	// Index a few shapes and curves
	tree := rtreego.NewTree(2, 25, 50)
	tree.Insert(planar.NewRectangle(sys, 0, 0, 10, 10))
	tree.Insert(planar.NewRectangle(sys, 40, 40, 60, 55))
	tree.Insert(planar.NewPolySegmentXY(sys, [][2]float64{{5, 20}, {25, 20}, {25, 45}}))
	tree.Insert(planar.NewSegmentXY(sys, 70, 0, 90, 0))

	// Define viewport
	viewport := planar.NewExtentFromCorners(sys, 0, 15, 45, 50)
	query, err := viewport.Rect()
	if err != nil {
		log.Fatal(err)
	}

	// Query R-tree index for candidates (O(log n))
	hits := tree.SearchIntersect(query)
	fmt.Printf("Candidates: %d\n", len(hits))

	// Refine against the exact geometry
	for _, hit := range hits {
		switch g := hit.(type) {
		case planar.Shape:
			fmt.Printf("  shape area %.1f\n", g.Area())
		case *planar.ComplexLinear:
			inside, err := planar.NewRectangle(sys, 0, 15, 45, 50).SpatialPositionOfLinear(g)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("  curve of length %.1f: %v\n", g.Length(), inside)
		}
	}
}
