package shapebuilder

import (
	"fmt"
	"io"
	"sync"
)

// sinkMu guards cnfLog/unitClausesLog writes: BuildShapeConcurrent can run
// several repair loops in the same process, and two instances sharing a
// sink must not interleave partial writes.
var sinkMu sync.Mutex

// logCnf appends cnf's DIMACS text to w, a no-op if w is nil. Logging is
// best-effort: a write failure is silently ignored rather than failing
// shape construction over it.
func logCnf(w io.Writer, cnf string) {
	if w == nil {
		return
	}
	sinkMu.Lock()
	defer sinkMu.Unlock()
	fmt.Fprintln(w, cnf)
}

// logUnitClauses appends the unit clause literals found in one UNSAT
// iteration to w, a no-op if w is nil.
func logUnitClauses(w io.Writer, literals []int) {
	if w == nil || len(literals) == 0 {
		return
	}
	sinkMu.Lock()
	defer sinkMu.Unlock()
	fmt.Fprintln(w, literals)
}
