package satcnf

import (
	"fmt"
	"strconv"
	"strings"
)

type rowKind int

const (
	rowComment rowKind = iota
	rowClause
)

type row struct {
	kind    rowKind
	clause  []int
	comment string
}

// Cnf accumulates clauses and comments and serializes them to DIMACS CNF
// format: a leading "p cnf <vars> <clauses>" header, "c ..." comment rows,
// and clause rows of space-separated literals terminated by a literal 0.
type Cnf struct {
	rows    []row
	numVars int
}

// NewCnf returns an empty Cnf.
func NewCnf() *Cnf {
	return &Cnf{}
}

// AddClause appends a disjunction of literals (positive = variable true,
// negative = variable false). It grows NumVars to cover any new variable
// referenced.
func (c *Cnf) AddClause(literals ...int) {
	clause := append([]int(nil), literals...)
	for _, lit := range clause {
		if abs(lit) > c.numVars {
			c.numVars = abs(lit)
		}
	}
	c.rows = append(c.rows, row{kind: rowClause, clause: clause})
}

// AddComment appends a "c ..." row, purely for readability of the emitted
// DIMACS file; comments do not affect NumVars or NumClauses.
func (c *Cnf) AddComment(comment string) {
	c.rows = append(c.rows, row{kind: rowComment, comment: comment})
}

// NumVars returns the highest variable id referenced by any clause so far.
func (c *Cnf) NumVars() int { return c.numVars }

// Clauses returns every clause added so far, in insertion order, as slices
// of signed literals. The returned slices are copies, safe to mutate.
func (c *Cnf) Clauses() [][]int {
	clauses := make([][]int, 0, c.NumClauses())
	for _, r := range c.rows {
		if r.kind == rowClause {
			clauses = append(clauses, append([]int(nil), r.clause...))
		}
	}

	return clauses
}

// NumClauses returns the number of clauses added so far (comments excluded).
func (c *Cnf) NumClauses() int {
	n := 0
	for _, r := range c.rows {
		if r.kind == rowClause {
			n++
		}
	}

	return n
}

// String renders the accumulated rows as a DIMACS CNF document.
func (c *Cnf) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", c.numVars, c.NumClauses())
	for _, r := range c.rows {
		switch r.kind {
		case rowComment:
			sb.WriteString("c ")
			sb.WriteString(r.comment)
			sb.WriteByte('\n')
		case rowClause:
			for _, lit := range r.clause {
				sb.WriteString(strconv.Itoa(lit))
				sb.WriteByte(' ')
			}
			sb.WriteString("0\n")
		}
	}

	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
