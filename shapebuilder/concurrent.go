package shapebuilder

import (
	"context"

	"github.com/katalvlaran/orthograph/attrs"
	"github.com/katalvlaran/orthograph/cycle"
	"github.com/katalvlaran/orthograph/graph"
	"github.com/katalvlaran/orthograph/satoracle"
	"github.com/katalvlaran/orthograph/shape"
	"golang.org/x/sync/errgroup"
)

// Job bundles the per-instance inputs BuildShapeConcurrent needs: each
// Job's graph, attributes, and cycle basis are its own independent
// pipeline run (the shape-repair loop mutates all three in place, so they
// cannot be shared across goroutines).
type Job struct {
	Graph      *graph.UndirectedGraph
	Attributes *attrs.GraphAttributes
	Cycles     []*cycle.Cycle
	Oracle     satoracle.Oracle
	Options    []Option
}

// BuildShapeConcurrent runs BuildShape for every job concurrently and
// returns the resulting shapes in the same order as jobs. If any job
// fails, the first error is returned once every job has finished: ctx and
// a failing job do not interrupt jobs already running, and the results of
// the other jobs are discarded.
func BuildShapeConcurrent(ctx context.Context, jobs []Job) ([]*shape.Shape, error) {
	results := make([]*shape.Shape, len(jobs))
	g, _ := errgroup.WithContext(ctx)

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			sh, err := BuildShape(job.Graph, job.Attributes, job.Cycles, job.Oracle, job.Options...)
			if err != nil {
				return err
			}
			results[i] = sh

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
