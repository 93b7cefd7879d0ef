package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"

	"github.com/osuushi/predicates/advanced"
)

// Read rings from newline separated points in the form "x y", with each ring
// separated by an extra newline. Rings are closed if they aren't already.
func readRings(in io.Reader) ([]advanced.Coordinates, error) {
	rings := []advanced.Coordinates{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := advanced.Coordinates{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, closeRing(points))
				points = advanced.Coordinates{}
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading rings")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, closeRing(points))
	}
	return rings, nil
}

func parsePoint(line string) (advanced.Coordinate, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Coordinate{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Coordinate{}, errors.Wrap(err, "bad x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Coordinate{}, errors.Wrap(err, "bad y")
	}
	return advanced.XY(x, y), nil
}

func closeRing(points advanced.Coordinates) advanced.Coordinates {
	if !points[0].Equals2D(points[len(points)-1]) {
		points = append(points, points[0])
	}
	return points
}

// The first ring is the shell, the rest are holes.
func polygonFromRings(rings []advanced.Coordinates) *geom.Polygon {
	var flat []float64
	var ends []int
	for _, ring := range rings {
		for _, p := range ring {
			flat = append(flat, p.X, p.Y)
		}
		ends = append(ends, len(flat))
	}
	return geom.NewPolygonFlat(geom.XY, flat, ends)
}
