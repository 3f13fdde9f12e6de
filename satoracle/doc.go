// Package satoracle defines Oracle, the boundary between the shape-repair
// loop and a real SAT solver. The pipeline only needs one method from a
// solver: hand it a Cnf, get back either a satisfying assignment or an
// UNSAT proof to mine for a unit clause to act on.
//
// package satoracle/dpll ships a reference Oracle implementation (plain
// DPLL with unit propagation), used as the CLI's default and in tests. A
// production deployment is expected to inject a collaborator backed by a
// real solver binary instead; Oracle is the seam that makes that swap
// possible without touching shapebuilder.
package satoracle
