package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/planar/pkg/planar"
	"github.com/sirupsen/logrus"
)

func convert(p planar.Position, target *planar.CoordinateSystem) (planar.Position, error) {
	q, err := p.In(target)
	if err != nil {
		var nie *planar.ErrNonInvertibleTransform
		if errors.As(err, &nie) {
			return planar.Position{}, fmt.Errorf("cannot invert %v model: %w", nie.Kind, err)
		}
		var unrelated *planar.ErrUnrelatedCoordSys
		if errors.As(err, &unrelated) {
			return planar.Position{}, fmt.Errorf("position belongs to another tree: %w", err)
		}
		return planar.Position{}, err
	}
	return q, nil
}

func main() {
	// Surface refused conversions at debug level
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	planar.SetLogger(logger)

	// Longitude/latitude frame projected into a Mercator world
	world := planar.NewCoordinateSystem()
	mercator, err := planar.NewProjectiveFromProj(
		"+proj=longlat +datum=WGS84 +no_defs",
		"+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs",
	)
	if err != nil {
		log.Fatal(err)
	}
	geo := world.Derive(mercator)

	// Forward through the projection works
	harbor, err := convert(planar.NewPosition(geo, -71.05, 42.35), world)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Harbor in Mercator: (%.1f, %.1f)\n", harbor.X(), harbor.Y())

	// The inverse does not
	if _, err := convert(harbor, geo); err != nil {
		log.Printf("Expected error: %v", err)
	}

	// Neither does a position from another tree
	if _, err := convert(planar.NewPosition(planar.NewCoordinateSystem(), 1, 1), world); err != nil {
		log.Printf("Expected error: %v", err)
	}

	// Bad relative positions are rejected
	path := planar.NewPolySegmentXY(world, [][2]float64{{0, 0}, {10, 0}})
	if err := path.Shorten(0.8, 0.2); err != nil {
		var bad *planar.ErrInvalidRelativePosition
		if errors.As(err, &bad) {
			log.Printf("Expected error: %v", bad)
		}
	}
}
