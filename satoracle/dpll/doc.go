// Package dpll implements satoracle.Oracle with a plain Davis-Putnam-
// Logemann-Loveland solver: unit propagation and chronological
// backtracking over a branching variable. It has no pure-literal
// elimination and none of a production solver's clause learning or
// restarts, and exists as a
// dependency-free reference Oracle for tests and the CLI's default path.
//
// Its UNSAT proof lines are every unit clause unit propagation derived
// over the course of the search, each rendered as "<literal> 0" in
// derivation order; this is not a DRAT proof, but it gives
// shapebuilder's find_edges_to_split style repair loop the same thing to
// scan for: a stream of single-literal lines to mine a split edge from.
package dpll
