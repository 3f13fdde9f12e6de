// Package shapebuilder drives the iterative "encode as SAT, solve, repair"
// loop that turns a graph and its cycle basis into a Shape: encode the
// current graph and cycle basis as CNF, hand it to a satoracle.Oracle, and
// if UNSAT, mine the refutation proof for a unit clause, map it back to an
// edge, and split that edge with a RED corner node before trying again.
//
// BuildShape is deterministic when randomized is false (a fixed seed
// picks among tied candidate edges the same way every run); randomized
// uses hardware entropy instead, matching the two operating modes the
// pipeline needs: reproducible tests and varied output across repeated
// runs on the same input.
package shapebuilder
