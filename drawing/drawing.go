package drawing

import (
	"fmt"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/graphalgo"
	"github.com/katalvlaran/orthograph/satoracle/dpll"
	"github.com/katalvlaran/orthograph/shape"
	"github.com/katalvlaran/orthograph/shapebuilder"
)

// Drawing is the result of MakeOrthogonalDrawing: the augmented graph
// (original nodes plus bend and helper nodes inserted during
// construction), its colors and final integer-grid positions, the shape
// every edge was assigned, and counters describing how much repair work
// the pipeline did.
type Drawing struct {
	Graph           *graph.UndirectedGraph
	Attributes      *attrs.GraphAttributes
	Shape           *shape.Shape
	NumCycles       int
	NumAddedCycles  int
	NumUselessBends int
}

// MakeOrthogonalDrawing computes an orthogonal drawing of g. g must be
// connected; ErrNotConnected-wrapping errors are returned otherwise.
func MakeOrthogonalDrawing(g *graph.UndirectedGraph, opts ...Option) (*Drawing, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !graphalgo.IsConnected(g) {
		return nil, fmt.Errorf("MakeOrthogonalDrawing: %w", graphalgo.ErrNotConnected)
	}

	cycles, err := graphalgo.ComputeCycleBasis(g)
	if err != nil {
		return nil, fmt.Errorf("MakeOrthogonalDrawing: %w", err)
	}

	return makeOrthogonalDrawingIncremental(g, cycles, cfg)
}

// makeOrthogonalDrawingIncremental runs the shape/metric repair loop to a
// fixed point, then lays out coordinates, expanding and shifting around
// any degree>4 node, and finally compacts the drawing onto a dense grid.
func makeOrthogonalDrawingIncremental(g *graph.UndirectedGraph, cycles []*cycle.Cycle, cfg Config) (*Drawing, error) {
	augmented := g.Clone()
	attributes := attrs.New()
	for _, id := range augmented.NodeIDs() {
		attributes.SetNodeColor(id, attrs.Black)
	}

	buildShape := func() (*shape.Shape, error) {
		return shapebuilder.BuildShape(augmented, attributes, cycles, dpll.New(),
			shapebuilder.WithMaxIterations(cfg.MaxMetricRepairIterations),
			shapebuilder.WithCnfLogSink(cfg.CnfLogSink),
			shapebuilder.WithUnitClausesLogSink(cfg.UnitClausesLogSink))
	}

	sh, err := buildShape()
	if err != nil {
		return nil, fmt.Errorf("makeOrthogonalDrawingIncremental: %w", err)
	}

	numAddedCycles := 0
	for i := 0; i < cfg.MaxMetricRepairIterations; i++ {
		extra, ok := checkIfMetricsExist(sh, augmented)
		if !ok {
			break
		}
		cycles = append(cycles, extra)
		numAddedCycles++

		sh, err = buildShape()
		if err != nil {
			return nil, fmt.Errorf("makeOrthogonalDrawingIncremental: %w", err)
		}
	}

	oldSize := augmented.Size()
	removeUselessBends(augmented, attributes, sh)
	numCycles := len(cycles)
	numUselessBends := oldSize - augmented.Size()

	if hasGraphDegreeMoreThan4(augmented) {
		if err := addGreenBlueNodes(augmented, attributes, sh); err != nil {
			return nil, fmt.Errorf("makeOrthogonalDrawingIncremental: %w", err)
		}
		if err := buildNodesPositions(augmented, attributes, sh); err != nil {
			return nil, fmt.Errorf("makeOrthogonalDrawingIncremental: %w", err)
		}
		makeShiftsOverlappedEdges(augmented, attributes, sh, cfg.OverlapShift)
		fixNegativePositions(augmented, attributes)
	} else {
		if err := buildNodesPositions(augmented, attributes, sh); err != nil {
			return nil, fmt.Errorf("makeOrthogonalDrawingIncremental: %w", err)
		}
	}

	compactArea(augmented, attributes, cfg.ClassSpacing, cfg.GridClusterThreshold)

	return &Drawing{
		Graph:           augmented,
		Attributes:      attributes,
		Shape:           sh,
		NumCycles:       numCycles - numAddedCycles,
		NumAddedCycles:  numAddedCycles,
		NumUselessBends: numUselessBends,
	}, nil
}
