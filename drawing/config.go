package drawing

import "io"

// DefaultGridClusterThreshold is the grid clustering threshold
// MakeOrthogonalDrawing uses unless overridden, and the one package stats
// assumes when it recomputes compacted positions for measurement.
const DefaultGridClusterThreshold = 45

// Config tunes the constants the pipeline uses for class spacing,
// overlap-repair shifts, and final grid clustering.
type Config struct {
	// ClassSpacing is the distance between adjacent grid indices in the
	// final, compacted drawing: compactArea multiplies each node's grid
	// index by it. Coordinate assignment before compaction always spaces
	// classes 100 units apart.
	ClassSpacing int
	// OverlapShift is the per-step offset used to fan helper edges out
	// around a degree>4 node so they stop overlapping.
	OverlapShift int
	// GridClusterThreshold is the minimum gap between two raw coordinates
	// for them to land in separate compacted grid indices.
	GridClusterThreshold int
	// MaxMetricRepairIterations bounds both the shape-repair loop and the
	// outer metric-consistency repair loop.
	MaxMetricRepairIterations int
	// CnfLogSink, if set, receives the DIMACS text of every CNF instance
	// the shape-repair loop builds. Silent by default.
	CnfLogSink io.Writer
	// UnitClausesLogSink, if set, receives the unit clause literals found
	// in every UNSAT iteration of the shape-repair loop. Silent by
	// default.
	UnitClausesLogSink io.Writer
}

func defaultConfig() Config {
	return Config{
		ClassSpacing:              100,
		OverlapShift:              5,
		GridClusterThreshold:      DefaultGridClusterThreshold,
		MaxMetricRepairIterations: 10000,
	}
}

// Option configures MakeOrthogonalDrawing.
type Option func(*Config)

// WithClassSpacing overrides the default class spacing of 100.
func WithClassSpacing(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.ClassSpacing = n
		}
	}
}

// WithOverlapShift overrides the default overlap shift of 5.
func WithOverlapShift(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.OverlapShift = n
		}
	}
}

// WithGridClusterThreshold overrides the default grid cluster threshold
// of 45.
func WithGridClusterThreshold(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.GridClusterThreshold = n
		}
	}
}

// WithMaxMetricRepairIterations overrides the default iteration bound of
// 10000.
func WithMaxMetricRepairIterations(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxMetricRepairIterations = n
		}
	}
}

// WithCnfLogSink routes every CNF instance the shape-repair loop builds to
// w for inspection or debugging.
func WithCnfLogSink(w io.Writer) Option {
	return func(c *Config) {
		c.CnfLogSink = w
	}
}

// WithUnitClausesLogSink routes the unit clause literals found in every
// UNSAT iteration of the shape-repair loop to w.
func WithUnitClausesLogSink(w io.Writer) Option {
	return func(c *Config) {
		c.UnitClausesLogSink = w
	}
}
