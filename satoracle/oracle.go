package satoracle

import "github.com/katalvlaran/orthograph/satcnf"

// Result is the outcome of handing a Cnf to an Oracle.
type Result struct {
	// SAT reports whether a satisfying assignment was found.
	SAT bool

	// Assignment holds one signed literal per variable (1..NumVars, negated
	// if false) when SAT is true; nil otherwise.
	Assignment []int

	// ProofLines holds UNSAT refutation lines, in solver emission order,
	// when SAT is false; nil otherwise. find_edges_to_split style callers
	// scan this backwards for unit clauses.
	ProofLines []string
}

// Oracle solves a CNF instance.
type Oracle interface {
	Solve(cnf *satcnf.Cnf) (*Result, error)
}
