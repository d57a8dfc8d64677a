package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/planar/pkg/planar"
)

func main() {
	// Create a world frame and a sheet placed in it
	world := planar.NewCoordinateSystem()
	sheet := world.Derive(planar.Similitude{DX: 100, DY: 50, Scale: 0.5})

	// Build a polyline on the sheet
	path := planar.NewPolySegmentXY(sheet, [][2]float64{
		{0, 0}, {10, 10}, {20, 10}, {30, 10}, {30, 5},
	})
	fmt.Printf("Leaves: %d\n", path.NumberOfLinears())
	fmt.Printf("Length: %.4f\n", path.Length())

	mid := path.RelativePoint(0.5)
	fmt.Printf("Midpoint on sheet: (%.4f, %.4f)\n", mid.X(), mid.Y())

	// Express the midpoint in the world frame
	w, err := mid.In(world)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Midpoint in world: (%.4f, %.4f)\n", w.X(), w.Y())

	// Cross it with a segment drawn in world coordinates
	cut := planar.NewSegmentXY(world, 107.5, 40, 107.5, 60)
	pts, err := path.Intersect(cut)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range pts {
		fmt.Printf("Crossing: (%.4f, %.4f)\n", p.X(), p.Y())
	}

	// Get the extent
	e := path.Extent()
	fmt.Printf("Extent: [%.1f,%.1f] to [%.1f,%.1f]\n",
		e.XMin(), e.YMin(), e.XMax(), e.YMax())
}
