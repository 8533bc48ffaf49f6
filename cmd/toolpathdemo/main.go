// Command toolpathdemo drives the planner over a single layer's worth of
// polygons read from a simple text file and writes the resulting G-code,
// grounded on the teacher's cmd/goslice/slicer.go Process() pipeline
// (read -> optimize -> slice -> modify -> generate -> write), narrowed to
// the planner's own inputs since mesh loading and slicing are out of
// scope.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/galamdring/toolpath/clip"
	"github.com/galamdring/toolpath/data"
	"github.com/galamdring/toolpath/gcode"
	"github.com/galamdring/toolpath/optimizer"
	"github.com/galamdring/toolpath/planner"
)

func main() {
	inputPath := flag.StringP("input", "i", "", "path to a polygon file (one polygon per line, X,Y;X,Y;... in millimeters)")
	outputPath := flag.StringP("output", "o", "out.gcode", "path to write the resulting G-code to")
	lineWidthMM := flag.Float64("line-width", 0.4, "nominal extrusion line width in millimeters")
	layerHeightMM := flag.Float64("layer-height", 0.2, "layer height in millimeters")
	printSpeedMMS := flag.Int("print-speed", 50, "nominal extrusion speed in mm/s")
	travelSpeedMMS := flag.Int("travel-speed", 150, "nominal travel speed in mm/s")
	avoidCombing := flag.Bool("avoid-combing", true, "route travel moves inside the first polygon's boundary")
	minLayerTimeS := flag.Float64("min-layer-time", 5, "minimum time, in seconds, the layer must take")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "toolpathdemo: -input is required")
		os.Exit(2)
	}

	polygons, err := readPolygons(*inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "toolpathdemo:", err)
		os.Exit(1)
	}
	if len(polygons) == 0 {
		fmt.Fprintln(os.Stderr, "toolpathdemo: input file contains no polygons")
		os.Exit(1)
	}

	opts := data.NewOptions()
	opts.Print.LayerThickness = data.Millimeter(*layerHeightMM).ToMicrometer()
	opts.Print.InitialLayerThickness = opts.Print.LayerThickness
	opts.Printer.ExtrusionWidth = data.Millimeter(*lineWidthMM).ToMicrometer()

	w := gcode.NewWriter(opts.Logger, 1)
	w.SetLayerThickness(opts.Print.InitialLayerThickness)
	w.SetRetraction(opts.Planner.RetractionMinimumDistanceUm, 40)

	gcode.PreLayer(w, 0, &opts)

	pl := planner.NewPlanner(w, *travelSpeedMMS, opts.Planner.RetractionMinimumDistanceUm)
	pl.SetIslandOrderOptimizer(optimizer.NearestNeighbor{})

	if *avoidCombing {
		pl.SetOuterPerimetersToAvoid(clip.NewBoundaryAvoider(polygons[0]))
	}

	wallConfig := &data.PathConfig{
		SpeedMMS:    *printSpeedMMS,
		LineWidthUm: opts.Printer.ExtrusionWidth,
		Comment:     data.CommentWallOuter,
		ClosedLoop:  true,
	}
	pl.QueuePolygonsByOptimizer(polygons, wallConfig)

	pl.ForceMinimumLayerTime(*minLayerTimeS, opts.Planner.MinimumPrintingSpeedMMS)
	if err := pl.WriteQueued(opts.Print.LayerThickness, opts.Planner.NormalFanSpeedPercent, opts.Planner.BridgeFanSpeedPercent); err != nil {
		fmt.Fprintln(os.Stderr, "toolpathdemo:", err)
		os.Exit(1)
	}

	gcode.PostLayer(w, 0, 0)

	if err := w.Flush(*outputPath); err != nil {
		fmt.Fprintln(os.Stderr, "toolpathdemo:", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s: %d islands, estimated print time %.1fs\n", *outputPath, len(polygons), pl.TotalPrintTime())
}

// readPolygons parses a simple text format: one polygon per non-blank,
// non-comment ("#"-prefixed) line, points separated by ";" and each point
// as "X,Y" in millimeters.
func readPolygons(path string) (data.Paths, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var polygons data.Paths
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var poly data.Path
		for _, tok := range strings.Split(line, ";") {
			coords := strings.SplitN(strings.TrimSpace(tok), ",", 2)
			if len(coords) != 2 {
				return nil, fmt.Errorf("malformed point %q", tok)
			}
			x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
			if err != nil {
				return nil, fmt.Errorf("malformed x in %q: %w", tok, err)
			}
			y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
			if err != nil {
				return nil, fmt.Errorf("malformed y in %q: %w", tok, err)
			}
			poly = append(poly, data.NewMicroPoint(data.Millimeter(x).ToMicrometer(), data.Millimeter(y).ToMicrometer()))
		}
		if len(poly) > 0 {
			polygons = append(polygons, poly)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return polygons, nil
}
