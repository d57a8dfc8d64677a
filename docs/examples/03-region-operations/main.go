package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/planar/pkg/planar"
)

func main() {
	sys := planar.NewCoordinateSystem()

	// A parcel with a courtyard
	parcel := planar.NewHoledShape(planar.NewRectangle(sys, 0, 0, 100, 60))
	if err := parcel.AddHole(planar.NewRectangle(sys, 40, 20, 60, 40)); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Parcel area: %.1f\n", parcel.Area())

	// A road footprint crossing it
	road, err := planar.NewPolygonOfSegmentsXY(sys, [][2]float64{
		{-10, 25}, {110, 25}, {110, 35}, {-10, 35},
	})
	if err != nil {
		log.Fatal(err)
	}

	remaining, err := planar.Difference(parcel, road)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Pieces after the road: %d\n", len(remaining))
	for i, piece := range remaining {
		fmt.Printf("  piece %d: area %.1f, holes %d\n", i, piece.Area(), piece.NumberOfHoles())
	}

	covered, err := planar.Intersection(parcel, road)
	if err != nil {
		log.Fatal(err)
	}
	var area float64
	for _, piece := range covered {
		area += piece.Area()
	}
	fmt.Printf("Road over the parcel: %.1f\n", area)

	// Check how the new edges meet the old boundary
	for _, piece := range remaining {
		ok, err := piece.Boundary().AreContiguous(parcel.Boundary())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("  shares the parcel edge: %v\n", ok)
	}
}
