package dpll

import (
	"fmt"

	"github.com/katalvlaran/orthograph/satcnf"
	"github.com/katalvlaran/orthograph/satoracle"
)

// Solver is a reference satoracle.Oracle backed by plain DPLL.
type Solver struct{}

// New returns a Solver. It holds no state and can be reused across calls.
func New() *Solver { return &Solver{} }

// state is the mutable search state threaded through the recursion.
type state struct {
	clauses [][]int
	assign  map[int]bool // variable -> value
	units   []string     // every unit clause derived, in derivation order
}

// Solve runs DPLL on cnf and reports SAT/UNSAT.
func (s *Solver) Solve(cnf *satcnf.Cnf) (*satoracle.Result, error) {
	st := &state{
		clauses: cnf.Clauses(),
		assign:  make(map[int]bool),
	}

	if ok := search(st); ok {
		assignment := make([]int, 0, cnf.NumVars())
		for v := 1; v <= cnf.NumVars(); v++ {
			if st.assign[v] {
				assignment = append(assignment, v)
			} else {
				assignment = append(assignment, -v)
			}
		}

		return &satoracle.Result{SAT: true, Assignment: assignment}, nil
	}

	return &satoracle.Result{SAT: false, ProofLines: st.units}, nil
}

// search attempts to extend st.assign to a full satisfying assignment,
// recording every unit clause it derives along the way.
func search(st *state) bool {
	for {
		lit, ok, conflict := findUnit(st.clauses, st.assign)
		if conflict {
			return false
		}
		if !ok {
			break
		}
		st.units = append(st.units, fmt.Sprintf("%d 0", lit))
		st.assign[vabs(lit)] = lit > 0
	}

	unassigned, satisfied, conflict := evaluate(st.clauses, st.assign)
	if conflict {
		return false
	}
	if satisfied {
		return true
	}

	branch := unassigned
	for _, v := range []bool{true, false} {
		saved := make(map[int]bool, len(st.assign))
		for k, val := range st.assign {
			saved[k] = val
		}
		st.assign[branch] = v
		if search(st) {
			return true
		}
		st.assign = saved
	}
	delete(st.assign, branch)

	return false
}

// findUnit scans for a clause with exactly one unassigned literal and all
// others false, returning that literal. conflict is true if some clause
// has every literal false.
func findUnit(clauses [][]int, assign map[int]bool) (lit int, found bool, conflict bool) {
	for _, clause := range clauses {
		unassignedCount := 0
		var lastUnassigned int
		satisfied := false
		for _, l := range clause {
			v, ok := assign[vabs(l)]
			switch {
			case !ok:
				unassignedCount++
				lastUnassigned = l
			case v == (l > 0):
				satisfied = true
			}
		}
		if satisfied {
			continue
		}
		if unassignedCount == 0 {
			return 0, false, true
		}
		if unassignedCount == 1 {
			return lastUnassigned, true, false
		}
	}

	return 0, false, false
}

// evaluate reports whether every clause is already satisfied, or returns
// an unassigned variable to branch on. conflict is true if some clause has
// every literal false.
func evaluate(clauses [][]int, assign map[int]bool) (unassigned int, satisfied bool, conflict bool) {
	allSatisfied := true
	for _, clause := range clauses {
		clauseSatisfied := false
		clauseUnassigned := 0
		var firstUnassigned int
		for _, l := range clause {
			v, ok := assign[vabs(l)]
			if !ok {
				clauseUnassigned++
				firstUnassigned = vabs(l)
				continue
			}
			if v == (l > 0) {
				clauseSatisfied = true
			}
		}
		if clauseSatisfied {
			continue
		}
		allSatisfied = false
		if clauseUnassigned == 0 {
			return 0, false, true
		}
		if unassigned == 0 {
			unassigned = firstUnassigned
		}
	}
	if allSatisfied {
		return 0, true, false
	}

	return unassigned, false, false
}

func vabs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
