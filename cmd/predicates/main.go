package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/predicates/advanced"
	"github.com/osuushi/predicates/dbg"
	"github.com/osuushi/predicates/dd"
	"github.com/osuushi/predicates/geomconv"
)

// Command line front end to the predicates. Geometries are given as WKT, for
// example
//
//	predicates intersect 'LINESTRING (0 0, 10 10)' 'LINESTRING (0 10, 10 0)'
//
// The locate command can also read a polygon on stdin as newline separated
// points in the form "x y", with each ring separated by an extra newline. The
// first ring is the shell and the rest are holes.

var log = logrus.New()

var (
	app     = kingpin.New("predicates", "Robust geometric predicates.")
	verbose = app.Flag("verbose", "Log debug details.").Short('v').Bool()
	trace   = app.Flag("trace", "Log every segment fed to the ray crossing counter.").Bool()
	draw    = app.Flag("draw", "Render the inputs to a PNG at this path.").PlaceHolder("PATH").String()
	scale   = app.Flag("scale", "Pixels per unit when drawing.").Default("20").Float64()
	show    = app.Flag("imgcat", "Print the drawing inline in the terminal.").Bool()

	orientCmd   = app.Command("orient", "Which side of a segment's line a point is on.")
	orientLine  = orientCmd.Arg("line", "Two point LINESTRING.").Required().String()
	orientPoint = orientCmd.Arg("point", "POINT to test.").Required().String()

	intersectCmd = app.Command("intersect", "Intersect two segments.")
	intersectP   = intersectCmd.Arg("p", "Two point LINESTRING.").Required().String()
	intersectQ   = intersectCmd.Arg("q", "Two point LINESTRING.").Required().String()

	lineCmd = app.Command("line", "Intersect the infinite lines through two segments.")
	lineFP  = lineCmd.Flag("fp", "Use conditioned floating point instead of double-double.").Bool()
	lineP   = lineCmd.Arg("p", "Two point LINESTRING.").Required().String()
	lineQ   = lineCmd.Arg("q", "Two point LINESTRING.").Required().String()

	locateCmd     = app.Command("locate", "Locate a point in a polygon.")
	locatePoint   = locateCmd.Arg("point", "POINT to locate.").Required().String()
	locatePolygon = locateCmd.Arg("polygon", "POLYGON, or read from stdin if omitted.").String()

	ccwCmd  = app.Command("ccw", "Check the winding of a ring.")
	ccwRing = ccwCmd.Arg("ring", "POLYGON or closed LINESTRING.").Required().String()

	ddCmd = app.Command("dd", "Double-double calculator.")
	ddA   = ddCmd.Arg("a", "Decimal number.").Required().String()
	ddOp  = ddCmd.Arg("op", "One of + - x /.").Required().Enum("+", "-", "x", "*", "/")
	ddB   = ddCmd.Arg("b", "Decimal number.").Required().String()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose || *trace {
		log.SetLevel(logrus.DebugLevel)
	}

	var err error
	switch command {
	case orientCmd.FullCommand():
		err = runOrient()
	case intersectCmd.FullCommand():
		err = runIntersect()
	case lineCmd.FullCommand():
		err = runLine()
	case locateCmd.FullCommand():
		err = runLocate()
	case ccwCmd.FullCommand():
		err = runCCW()
	case ddCmd.FullCommand():
		err = runDD()
	}
	if err != nil {
		log.WithField("command", command).Fatal(err)
	}
}

func parseSegment(s string) (p1, p2 advanced.Coordinate, err error) {
	g, err := geomconv.Parse(s)
	if err != nil {
		return p1, p2, err
	}
	return geomconv.Segment(g)
}

func parsePointArg(s string) (advanced.Coordinate, error) {
	g, err := geomconv.Parse(s)
	if err != nil {
		return advanced.Coordinate{}, err
	}
	return geomconv.Point(g)
}

// Draw the scene if asked to.
func maybeDraw(scene dbg.Scene) error {
	if *draw == "" {
		return nil
	}
	if err := scene.Draw(*draw, *scale); err != nil {
		return err
	}
	log.WithField("path", *draw).Debug("drew scene")
	if *show {
		dbg.Show(*draw)
	}
	return nil
}

func runOrient() error {
	p1, p2, err := parseSegment(*orientLine)
	if err != nil {
		return err
	}
	q, err := parsePointArg(*orientPoint)
	if err != nil {
		return err
	}

	orientation := advanced.OrientationIndex(p1, p2, q)
	log.WithFields(logrus.Fields{"p1": p1, "p2": p2, "q": q}).Debug("orientation")
	fmt.Println(dbg.ColorOrientation(orientation))
	return maybeDraw(dbg.Scene{
		Segments: [][2]advanced.Coordinate{{p1, p2}},
		Points:   []advanced.Coordinate{q},
	})
}

func runIntersect() error {
	p1, p2, err := parseSegment(*intersectP)
	if err != nil {
		return err
	}
	q1, q2, err := parseSegment(*intersectQ)
	if err != nil {
		return err
	}

	result := advanced.IntersectSegments(p1, p2, q1, q2)
	log.WithFields(logrus.Fields{
		"kind":     result.Kind(),
		"proper":   result.IsProper(),
		"interior": result.IsInteriorIntersection(),
	}).Debug("intersection")

	wkt, err := geomconv.MarshalWKT(geomconv.FromIntersection(result))
	if err != nil {
		return err
	}
	fmt.Println(dbg.ColorIntersection(result))
	fmt.Println(wkt)
	return maybeDraw(dbg.Scene{
		Segments: [][2]advanced.Coordinate{{p1, p2}, {q1, q2}},
		Points:   result.Points(),
	})
}

func runLine() error {
	p1, p2, err := parseSegment(*lineP)
	if err != nil {
		return err
	}
	q1, q2, err := parseSegment(*lineQ)
	if err != nil {
		return err
	}

	intersect := advanced.LineIntersection
	if *lineFP {
		intersect = advanced.LineIntersectionFP
	}
	pt, ok := intersect(p1, p2, q1, q2)
	if !ok {
		fmt.Println(aurora.Red("parallel"))
		return nil
	}
	wkt, err := geomconv.MarshalWKT(geomconv.FromCoordinate(pt))
	if err != nil {
		return err
	}
	fmt.Println(wkt)
	return nil
}

func runLocate() error {
	p, err := parsePointArg(*locatePoint)
	if err != nil {
		return err
	}

	var poly *geom.Polygon
	if *locatePolygon != "" {
		g, err := geomconv.Parse(*locatePolygon)
		if err != nil {
			return err
		}
		var ok bool
		if poly, ok = g.(*geom.Polygon); !ok {
			return errors.Errorf("expected a polygon, got %T", g)
		}
	} else {
		rings, err := readRings(os.Stdin)
		if err != nil {
			return err
		}
		log.WithField("rings", len(rings)).Debug("read polygon")
		poly = polygonFromRings(rings)
	}

	if *trace {
		traceShell(p, poly)
	}

	location, err := geomconv.LocateInPolygon(p, poly)
	if err != nil {
		return err
	}
	fmt.Println(dbg.ColorLocation(location))

	scene := dbg.Scene{Points: []advanced.Coordinate{p}}
	for i := 0; i < poly.NumLinearRings(); i++ {
		ring, err := geomconv.Ring(poly.LinearRing(i))
		if err != nil {
			return err
		}
		scene.Rings = append(scene.Rings, ring)
	}
	return maybeDraw(scene)
}

// Feed the shell to a counter one segment at a time, logging as we go.
func traceShell(p advanced.Coordinate, poly *geom.Polygon) {
	if poly.NumLinearRings() == 0 {
		return
	}
	shell, err := geomconv.Ring(poly.LinearRing(0))
	if err != nil {
		log.WithError(err).Warn("can't trace shell")
		return
	}
	counter := advanced.NewRayCrossingCounter(p)
	for i := 1; i < shell.Len(); i++ {
		segment := [2]advanced.Coordinate{shell.At(i), shell.At(i - 1)}
		counter.CountSegment(segment[0], segment[1])
		log.WithFields(logrus.Fields{
			"segment":   dbg.Name(segment),
			"from":      segment[0],
			"to":        segment[1],
			"crossings": counter.Count(),
			"onSegment": counter.IsOnSegment(),
		}).Debug("counted segment")
		if counter.IsOnSegment() {
			break
		}
	}
	log.WithField("location", counter.Location()).Debug("shell")
}

func runCCW() error {
	g, err := geomconv.Parse(*ccwRing)
	if err != nil {
		return err
	}
	ring, err := geomconv.RingOf(g)
	if err != nil {
		return err
	}

	ccw := advanced.IsCCW(ring)
	log.WithFields(logrus.Fields{
		"signedArea": advanced.SignedRingArea(ring),
		"byArea":     advanced.IsCCWArea(ring),
	}).Debug("winding")
	if ccw {
		fmt.Println(aurora.Green("counterclockwise"))
	} else {
		fmt.Println(aurora.Red("not counterclockwise"))
	}
	return maybeDraw(dbg.Scene{Rings: []advanced.Sequence{ring}})
}

func runDD() error {
	a, err := dd.Parse(*ddA)
	if err != nil {
		return err
	}
	b, err := dd.Parse(*ddB)
	if err != nil {
		return err
	}

	var result dd.DD
	switch *ddOp {
	case "+":
		result = a.Add(b)
	case "-":
		result = a.Sub(b)
	case "x", "*":
		result = a.Mul(b)
	case "/":
		result = a.Div(b)
	}
	log.WithFields(logrus.Fields{"a": a.Dump(), "b": b.Dump()}).Debug("operands")
	fmt.Println(result)
	fmt.Println(aurora.Cyan(result.Dump()))
	return nil
}
