// Command orthograph reads a graph in TXT format, computes an orthogonal
// drawing of it, and writes the result as SVG and/or GraphML.
package main

import (
	"errors"
	"flag"
	"os"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/katalvlaran/orthograph/drawing"
	"github.com/katalvlaran/orthograph/graphalgo"
	"github.com/katalvlaran/orthograph/ioformat"
)

// Exit codes.
const (
	exitSuccess     = 0
	exitIOOrParse   = 1
	exitNotConnected = 2
	exitOther       = 3
)

var (
	inputPath        = flag.String("input", "", "path to a TXT graph file (required)")
	outputSVGPath    = flag.String("output-svg", "", "path to write an SVG rendering of the drawing")
	outputGraphMLPath = flag.String("output-graphml", "", "path to write a GraphML export of the drawing")
)

func main() {
	cli.Main()
	os.Exit(run())
}

func run() int {
	if *inputPath == "" {
		log.Errf("missing required -input flag")
		return exitIOOrParse
	}

	in, err := os.Open(*inputPath)
	if err != nil {
		log.Errf("opening input: %v", err)
		return exitIOOrParse
	}
	defer in.Close()

	g, err := ioformat.LoadTXT(in)
	if err != nil {
		log.Errf("parsing input: %v", err)
		return exitIOOrParse
	}

	result, err := drawing.MakeOrthogonalDrawing(g)
	if err != nil {
		if errors.Is(err, graphalgo.ErrNotConnected) {
			log.Errf("graph is not connected: %v", err)
			return exitNotConnected
		}
		log.Errf("computing drawing: %v", err)
		return exitOther
	}

	log.Infof("drawing computed: %d nodes, %d added cycles, %d useless bends removed",
		result.Graph.Size(), result.NumAddedCycles, result.NumUselessBends)

	if *outputSVGPath != "" {
		if err := writeTo(*outputSVGPath, func(f *os.File) error { return ioformat.SaveSVG(f, result) }); err != nil {
			log.Errf("writing SVG: %v", err)
			return exitOther
		}
	}
	if *outputGraphMLPath != "" {
		if err := writeTo(*outputGraphMLPath, func(f *os.File) error { return ioformat.SaveGraphML(f, result) }); err != nil {
			log.Errf("writing GraphML: %v", err)
			return exitOther
		}
	}

	return exitSuccess
}

func writeTo(path string, save func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return save(f)
}
