// Package satcnf builds the boolean satisfiability encoding of the
// "every node has at most one incident edge per compass direction, every
// face turns by a net +-4" shape problem, in DIMACS CNF form, and provides
// the VariablesHandler that maps between (edge, direction) pairs and CNF
// variable ids.
//
// The encoding follows the shape-building stage described for package
// shapebuilder: one-direction-per-edge exactly-one clauses, per-node
// fan-out clauses that branch on degree, and one at-least-one-per-direction
// clause per cycle in the current cycle basis.
package satcnf
