// Package orthograph computes orthogonal grid drawings of simple, connected,
// undirected graphs.
//
// Given a graph, the pipeline:
//
//  1. Computes a cycle basis (graphalgo).
//  2. Encodes an orthogonal-shape decision problem as CNF and solves it via a
//     SAT oracle, repairing UNSAT instances by inserting bend (corner)
//     nodes (satcnf, shapebuilder).
//  3. Partitions nodes into horizontal/vertical equivalence classes and
//     builds per-axis ordering DAGs over them (equivclass), which are
//     topologically ordered into integer coordinates (drawing).
//  4. Expands nodes of degree greater than four into multiple "ports" and
//     compacts the result (drawing).
//  5. Derives bend/crossing/area statistics (stats).
//
// shapebuilder.BuildShape accepts any satoracle.Oracle. The module also
// ships a reference DPLL oracle (satoracle/dpll), and
// drawing.MakeOrthogonalDrawing always uses it. The file formats and CLI
// are collaborators: see cmd/orthograph for a runnable end-to-end tool and
// ioformat for TXT/JSON/GraphML collaborators.
package orthograph
